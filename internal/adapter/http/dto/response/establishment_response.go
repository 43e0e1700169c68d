package response

import (
	"time"

	"cartao_fidelidade/internal/domain/entities"
)

type EstablishmentResponse struct {
	ID                     string     `json:"id"`
	Name                   string     `json:"name"`
	Email                  string     `json:"email"`
	Phone                  string     `json:"phone,omitempty"`
	Slug                   string     `json:"slug"`
	PointsForVoucher       int        `json:"points_for_voucher"`
	VoucherMessageTemplate string     `json:"voucher_message_template,omitempty"`
	LogoKey                string     `json:"logo_key"`
	SubscriptionValidUntil *time.Time `json:"subscription_valid_until,omitempty"`
	CreatedAt              time.Time  `json:"created_at"`
}

func FromEstablishment(e entities.Establishment) EstablishmentResponse {
	resp := EstablishmentResponse{
		ID:                     e.ID,
		Name:                   e.Name,
		Email:                  e.Email,
		Phone:                  e.Phone,
		Slug:                   e.Slug,
		PointsForVoucher:       e.PointsForVoucher,
		VoucherMessageTemplate: e.VoucherMessageTemplate,
		LogoKey:                e.LogoKey,
		CreatedAt:              e.CreatedAt,
	}
	if !e.SubscriptionValidUntil.IsZero() {
		t := e.SubscriptionValidUntil
		resp.SubscriptionValidUntil = &t
	}
	return resp
}

// PublicEstablishmentResponse is the unauthenticated view used by the search
// page: no contact data, no subscription state.
type PublicEstablishmentResponse struct {
	Name             string `json:"name"`
	Slug             string `json:"slug"`
	PointsForVoucher int    `json:"points_for_voucher"`
	LogoKey          string `json:"logo_key"`
}

func FromEstablishmentPublic(e entities.Establishment) PublicEstablishmentResponse {
	return PublicEstablishmentResponse{
		Name:             e.Name,
		Slug:             e.Slug,
		PointsForVoucher: e.PointsForVoucher,
		LogoKey:          e.LogoKey,
	}
}

type UserResponse struct {
	ID              string    `json:"id"`
	EstablishmentID string    `json:"establishment_id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	CreatedAt       time.Time `json:"created_at"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{
		ID:              u.ID,
		EstablishmentID: u.EstablishmentID,
		Name:            u.Name,
		Email:           u.Email,
		CreatedAt:       u.CreatedAt,
	}
}

func FromUsers(users []entities.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, FromUser(u))
	}
	return out
}

type CreateEstablishmentResponse struct {
	Establishment EstablishmentResponse `json:"establishment"`
	Owner         UserResponse          `json:"owner"`
}

// SearchResponse is the public lookup result: the establishment summary plus
// the matching cards.
type SearchResponse struct {
	Establishment PublicEstablishmentResponse `json:"establishment"`
	Cards         []CardResponse              `json:"cards"`
}
