package interfaces

import (
	"context"

	"cartao_fidelidade/internal/domain/entities"
)

// ICardRepository abstracts DynamoDB persistence for Client + Card.
//
// Client and Card rows always travel together: a card is created with its
// owning client in one transaction, and deleting a client's last card removes
// the client in the same transaction.

type ICardRepository interface {
	// CreateWithClient atomically persists the client, the card and, when
	// initial is non-nil, the opening credit movement. card.Points must
	// already reflect the initial credit.
	CreateWithClient(ctx context.Context, client entities.Client, card entities.Card, initial *entities.Movement) (entities.Card, error)
	GetByID(ctx context.Context, id string) (entities.Card, error)
	GetByEstablishmentAndPhone(ctx context.Context, establishmentID, phone string) (entities.Card, error)
	GetByEstablishmentAndCode(ctx context.Context, establishmentID, code string) (entities.Card, error)
	ListByEstablishmentID(ctx context.Context, establishmentID string) ([]entities.Card, error)
	// DeleteCascade removes the card, its movements and vouchers, and the
	// owning client when no other card references it.
	DeleteCascade(ctx context.Context, card entities.Card) error
}
