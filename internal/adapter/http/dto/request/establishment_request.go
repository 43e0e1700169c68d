package request

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidPaymentDateFormat = errors.New("invalid payment date format")

// CreateEstablishmentRequest registers a new tenant. LogoKey must reference an
// object already uploaded to the logos bucket.
type CreateEstablishmentRequest struct {
	Name                   string `json:"name" binding:"required"`
	Email                  string `json:"email" binding:"required"`
	Phone                  string `json:"phone"`
	PointsForVoucher       int    `json:"points_for_voucher" binding:"required"`
	VoucherMessageTemplate string `json:"voucher_message_template"`
	LogoKey                string `json:"logo_key" binding:"required"`
	OwnerName              string `json:"owner_name"`
	OwnerEmail             string `json:"owner_email"`
}

// ConfirmPaymentRequest records a subscription renewal. PaymentDate is an
// optional RFC3339 timestamp; empty means "now".
type ConfirmPaymentRequest struct {
	PaymentDate string `json:"payment_date"`
}

func (r ConfirmPaymentRequest) ResolvePaymentDate() (time.Time, error) {
	raw := strings.TrimSpace(r.PaymentDate)
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, ErrInvalidPaymentDateFormat
	}
	return t, nil
}
