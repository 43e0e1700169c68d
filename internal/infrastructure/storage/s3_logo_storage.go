package storage

import (
	"context"
	"errors"
	"log"
	"os"

	"cartao_fidelidade/internal/infrastructure/database"
	"cartao_fidelidade/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

const defaultLogosBucketName = "loyalty-logos"

// S3LogoStorage keeps establishment logos in an S3 bucket. Uploads happen
// outside this service (pre-signed or frontend-direct); here we only verify
// the object at registration time and drop it on cascade deletion.
//
// Env vars:
//   - LOGOS_BUCKET (default: loyalty-logos)
//   - S3_ENDPOINT (optional; e.g. http://minio:9000 for local runs)

type S3LogoStorage struct {
	client *s3.Client
	bucket string
}

var _ interfaces.ILogoStorage = (*S3LogoStorage)(nil)

func NewS3LogoStorage() (*S3LogoStorage, error) {
	cfg, err := database.NewAWSConfigFromEnv(context.Background(), os.Getenv("S3_ENDPOINT"), s3.ServiceID)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		// Path-style is required by MinIO and other local S3 emulators.
		o.UsePathStyle = os.Getenv("S3_ENDPOINT") != ""
	})

	bucket := os.Getenv("LOGOS_BUCKET")
	if bucket == "" {
		bucket = defaultLogosBucketName
	}

	return &S3LogoStorage{client: client, bucket: bucket}, nil
}

func (s *S3LogoStorage) Exists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var notFound *s3types.NotFound
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *S3LogoStorage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		log.Printf("[storage][s3] delete failed bucket=%s key=%s err=%v", s.bucket, key, err)
		return err
	}
	return nil
}
