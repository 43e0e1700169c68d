package interfaces

import (
	"context"

	"cartao_fidelidade/internal/domain/entities"
)

// ILedgerRepository owns every mutation of the card points counter. All paths
// that touch Card.Points funnel through here; the movement insert and the
// counter update always commit in one DynamoDB transaction so a partially
// applied ledger entry is never observable.

type ILedgerRepository interface {
	// Credit appends mov and increments the card counter atomically, then
	// returns the card as re-read after the transaction.
	Credit(ctx context.Context, card entities.Card, mov entities.Movement) (entities.Movement, entities.Card, error)
	// Redeem atomically persists the voucher, appends the debit movement and
	// decrements the counter by threshold, guarded by a points >= threshold
	// condition on the card item. When the condition is lost to a concurrent
	// redemption it returns zero values and a nil error; the use case maps
	// that to its insufficient-points sentinel.
	Redeem(ctx context.Context, card entities.Card, mov entities.Movement, voucher entities.Voucher, threshold int) (entities.Voucher, entities.Card, error)
	ListByCardID(ctx context.Context, cardID string) ([]entities.Movement, error)
	// SumByCardID recomputes the net movement sum, the ledger's source of truth.
	SumByCardID(ctx context.Context, cardID string) (int, error)
	// SetCardPoints overwrites the denormalized counter. Reconciliation only.
	SetCardPoints(ctx context.Context, cardID string, points int) (entities.Card, error)
}
