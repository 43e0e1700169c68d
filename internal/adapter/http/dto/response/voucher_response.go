package response

import (
	"time"

	"cartao_fidelidade/internal/domain/entities"
)

type VoucherResponse struct {
	ID              string    `json:"id"`
	CardID          string    `json:"card_id"`
	ClientID        string    `json:"client_id"`
	EstablishmentID string    `json:"establishment_id"`
	UserID          string    `json:"user_id"`
	Message         string    `json:"message"`
	Phone           string    `json:"phone"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

func FromVoucher(v entities.Voucher) VoucherResponse {
	return VoucherResponse{
		ID:              v.ID,
		CardID:          v.CardID,
		ClientID:        v.ClientID,
		EstablishmentID: v.EstablishmentID,
		UserID:          v.UserID,
		Message:         v.Message,
		Phone:           v.Phone,
		Status:          string(v.Status),
		CreatedAt:       v.CreatedAt,
	}
}

func FromVouchers(vouchers []entities.Voucher) []VoucherResponse {
	out := make([]VoucherResponse, 0, len(vouchers))
	for _, v := range vouchers {
		out = append(out, FromVoucher(v))
	}
	return out
}

type DeliveryPayloadResponse struct {
	RecipientPhone string `json:"recipient_phone"`
	Message        string `json:"message"`
	WhatsAppLink   string `json:"whatsapp_link"`
}

// RedeemVoucherResponse carries the voucher, the card after the debit, and the
// payload the caller hands to WhatsApp.
type RedeemVoucherResponse struct {
	Voucher  VoucherResponse         `json:"voucher"`
	Card     CardResponse            `json:"card"`
	Delivery DeliveryPayloadResponse `json:"delivery"`
}

func FromDeliveryPayload(p entities.DeliveryPayload) DeliveryPayloadResponse {
	return DeliveryPayloadResponse{
		RecipientPhone: p.RecipientPhone,
		Message:        p.Message,
		WhatsAppLink:   p.WhatsAppLink,
	}
}
