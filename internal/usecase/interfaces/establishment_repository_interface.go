package interfaces

import (
	"context"

	"cartao_fidelidade/internal/domain/entities"
)

// IEstablishmentRepository abstracts DynamoDB persistence for Establishment.
//
// Conventions shared by all repositories in this package:
//   - Get* returns a zero-value entity (ID == "") when nothing matches; the
//     use case layer translates that into its NotFound sentinel.
//   - Create fails when the PK already exists.

type IEstablishmentRepository interface {
	// Create writes the establishment row and its owner user in one
	// transaction, so a tenant never exists without an operator.
	Create(ctx context.Context, e entities.Establishment, owner entities.User) (entities.Establishment, entities.User, error)
	GetByID(ctx context.Context, id string) (entities.Establishment, error)
	GetBySlug(ctx context.Context, slug string) (entities.Establishment, error)
	// DeleteCascade removes every record owned by the establishment in
	// FK-safe order (movements, vouchers, cards, clients, payments, users)
	// and the establishment row last, so a partial failure leaves the tenant
	// root intact and the cascade retryable.
	DeleteCascade(ctx context.Context, establishmentID string) error
}
