package interfaces

import (
	"context"

	"cartao_fidelidade/internal/domain/entities"
)

// IUserRepository reads operator users. Writes happen inside the tenant
// creation transaction in IEstablishmentRepository.

type IUserRepository interface {
	GetByID(ctx context.Context, id string) (entities.User, error)
	ListByEstablishmentID(ctx context.Context, establishmentID string) ([]entities.User, error)
}
