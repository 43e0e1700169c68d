package response

import (
	"time"

	"cartao_fidelidade/internal/domain/entities"
)

type CardResponse struct {
	ID              string     `json:"id"`
	EstablishmentID string     `json:"establishment_id"`
	ClientID        string     `json:"client_id"`
	ClientName      string     `json:"client_name"`
	Phone           string     `json:"phone"`
	Code            string     `json:"code"`
	Points          int        `json:"points"`
	CreatedAt       time.Time  `json:"created_at"`
	LastPointsAt    *time.Time `json:"last_points_at,omitempty"`
}

func FromCard(c entities.Card) CardResponse {
	resp := CardResponse{
		ID:              c.ID,
		EstablishmentID: c.EstablishmentID,
		ClientID:        c.ClientID,
		ClientName:      c.ClientName,
		Phone:           c.Phone,
		Code:            c.Code,
		Points:          c.Points,
		CreatedAt:       c.CreatedAt,
	}
	if !c.LastPointsAt.IsZero() {
		t := c.LastPointsAt
		resp.LastPointsAt = &t
	}
	return resp
}

func FromCards(cards []entities.Card) []CardResponse {
	out := make([]CardResponse, 0, len(cards))
	for _, c := range cards {
		out = append(out, FromCard(c))
	}
	return out
}

// RegisterCardResponse flags idempotent re-registration so the client app can
// tell "created" from "already on record".
type RegisterCardResponse struct {
	Card           CardResponse `json:"card"`
	AlreadyExisted bool         `json:"already_existed"`
}
