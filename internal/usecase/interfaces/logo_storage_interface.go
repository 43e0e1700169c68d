package interfaces

import "context"

// ILogoStorage abstracts object storage for establishment logos (S3). Upload
// happens outside this service; here we only verify the object exists at
// registration and drop it on cascade deletion.

type ILogoStorage interface {
	Exists(ctx context.Context, key string) (bool, error)
	Delete(ctx context.Context, key string) error
}
