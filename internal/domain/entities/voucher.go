package entities

import (
	"net/url"
	"time"
)

// VoucherStatus tracks the delivery state of a redemption.
//
// The service never sends the message itself; "enviado" means the rendered
// payload was handed to the caller. A manual confirmation step may later mark
// it "entregue".

type VoucherStatus string

const (
	VoucherStatusEnviado  VoucherStatus = "enviado"
	VoucherStatusEntregue VoucherStatus = "entregue"
)

// Voucher records one redemption: threshold points consumed in exchange for a
// reward communicated externally.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (card_id-index): card_id
//   - GSI2 (establishment_id-index): establishment_id
//
// Message and Phone are snapshots taken at redemption time so later edits to
// the client or the template do not rewrite history.
type Voucher struct {
	ID              string        `json:"id"`
	CardID          string        `json:"card_id"`
	ClientID        string        `json:"client_id"`
	EstablishmentID string        `json:"establishment_id"`
	UserID          string        `json:"user_id"`
	Message         string        `json:"message"`
	Phone           string        `json:"phone"`
	Status          VoucherStatus `json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
}

// DeliveryPayload is what the external messaging collaborator needs to deliver
// a voucher: the recipient and the rendered text, plus a ready-to-open WhatsApp
// deep link. Fire-and-forget; no delivery guarantee is modeled here.
type DeliveryPayload struct {
	RecipientPhone string `json:"recipient_phone"`
	Message        string `json:"message"`
	WhatsAppLink   string `json:"whatsapp_link"`
}

// NewDeliveryPayload builds the payload for a redeemed voucher.
func NewDeliveryPayload(phone, message string) DeliveryPayload {
	return DeliveryPayload{
		RecipientPhone: phone,
		Message:        message,
		WhatsAppLink:   "https://wa.me/" + phone + "?text=" + url.QueryEscape(message),
	}
}
