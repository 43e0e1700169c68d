package interfaces

import (
	"context"

	"cartao_fidelidade/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for subscription payments.

type IPaymentRepository interface {
	// Confirm atomically persists the payment and moves the establishment's
	// subscription_valid_until to the window granted by it. Returns a
	// zero-value payment when the establishment does not exist.
	Confirm(ctx context.Context, p entities.SubscriptionPayment) (entities.SubscriptionPayment, error)
	ListByEstablishmentID(ctx context.Context, establishmentID string) ([]entities.SubscriptionPayment, error)
}
