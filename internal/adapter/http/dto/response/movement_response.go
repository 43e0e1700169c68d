package response

import (
	"time"

	"cartao_fidelidade/internal/domain/entities"
)

type MovementResponse struct {
	ID          string    `json:"id"`
	CardID      string    `json:"card_id"`
	Type        string    `json:"type"`
	Points      int       `json:"points"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromMovement(m entities.Movement) MovementResponse {
	return MovementResponse{
		ID:          m.ID,
		CardID:      m.CardID,
		Type:        string(m.Type),
		Points:      m.Points,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

func FromMovements(movements []entities.Movement) []MovementResponse {
	out := make([]MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, FromMovement(m))
	}
	return out
}

// AddPointsResponse pairs the recorded movement with the refreshed card.
type AddPointsResponse struct {
	Movement MovementResponse `json:"movement"`
	Card     CardResponse     `json:"card"`
}
