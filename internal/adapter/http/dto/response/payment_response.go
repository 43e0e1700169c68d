package response

import (
	"time"

	"cartao_fidelidade/internal/domain/entities"
)

type PaymentResponse struct {
	ID              string    `json:"id"`
	EstablishmentID string    `json:"establishment_id"`
	PaymentDate     time.Time `json:"payment_date"`
	CreatedAt       time.Time `json:"created_at"`
}

func FromPayment(p entities.SubscriptionPayment) PaymentResponse {
	return PaymentResponse{
		ID:              p.ID,
		EstablishmentID: p.EstablishmentID,
		PaymentDate:     p.PaymentDate,
		CreatedAt:       p.CreatedAt,
	}
}

func FromPayments(payments []entities.SubscriptionPayment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromPayment(p))
	}
	return out
}

// ConfirmPaymentResponse returns the recorded payment and the access window it
// granted.
type ConfirmPaymentResponse struct {
	Payment                PaymentResponse `json:"payment"`
	SubscriptionValidUntil time.Time       `json:"subscription_valid_until"`
}
