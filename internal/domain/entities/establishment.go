package entities

import "time"

// Establishment is the tenant root of the loyalty system.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (slug-index): slug
//
// Subscription model:
//   - SubscriptionValidUntil is absent (zero) until the first monthly payment is
//     confirmed. Every point-mutating operation checks this window first.
//
// DefaultVoucherMessage is used when the establishment never configured a
// template and the caller did not provide a custom message.

type Establishment struct {
	ID                     string    `json:"id"`
	Name                   string    `json:"name"`
	Email                  string    `json:"email"`
	Phone                  string    `json:"phone"`
	Slug                   string    `json:"slug"`
	PointsForVoucher       int       `json:"points_for_voucher"`
	VoucherMessageTemplate string    `json:"voucher_message_template"`
	LogoKey                string    `json:"logo_key"`
	SubscriptionValidUntil time.Time `json:"subscription_valid_until,omitempty"`
	CreatedAt              time.Time `json:"created_at"`
}

const DefaultVoucherMessage = "Parabéns {cliente}! Você completou seus pontos e ganhou um voucher. Apresente esta mensagem para resgatar seu prêmio."

// ClientePlaceholder is the literal token replaced by the client name when a
// voucher message is rendered. Single replacement, first occurrence only.
const ClientePlaceholder = "{cliente}"

// SubscriptionActiveAt reports whether the paid access window covers t.
// An absent (zero) validity always fails.
func (e Establishment) SubscriptionActiveAt(t time.Time) bool {
	if e.SubscriptionValidUntil.IsZero() {
		return false
	}
	return !e.SubscriptionValidUntil.Before(t)
}

// User is an operator account owned by one establishment. Authentication is
// handled outside this service; we keep the record because vouchers reference
// the issuing user and the cascade delete must cover it.
type User struct {
	ID              string    `json:"id"`
	EstablishmentID string    `json:"establishment_id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	CreatedAt       time.Time `json:"created_at"`
}
