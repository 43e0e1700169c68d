package entities

import "time"

// SubscriptionValidityDays is the access window granted by one confirmed
// monthly payment (mensalidade).
const SubscriptionValidityDays = 31

// SubscriptionPayment is the administrative record of a subscription renewal.
// Confirming a payment is a timestamp write, not a gateway integration: each
// confirmation recomputes the establishment's subscription_valid_until as
// payment date + 31 days.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (establishment_id-index): establishment_id
type SubscriptionPayment struct {
	ID              string    `json:"id"`
	EstablishmentID string    `json:"establishment_id"`
	PaymentDate     time.Time `json:"payment_date"`
	CreatedAt       time.Time `json:"created_at"`
}

// ValidUntil returns the access window granted by this payment.
func (p SubscriptionPayment) ValidUntil() time.Time {
	return p.PaymentDate.AddDate(0, 0, SubscriptionValidityDays)
}
