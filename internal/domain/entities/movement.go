package entities

import "time"

// MovementType classifies a ledger entry.

type MovementType string

const (
	MovementTypeCredito MovementType = "credito"
	MovementTypeDebito  MovementType = "debito"
)

// Movement is an immutable, append-only ledger entry for one card.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (card_id-index): card_id
//
// Points carries the signed delta actually applied to the card counter:
// positive for credits, negative for debits. Movements are never updated or
// deleted individually; they only disappear as part of whole-card cascade
// deletion.
type Movement struct {
	ID              string       `json:"id"`
	CardID          string       `json:"card_id"`
	EstablishmentID string       `json:"establishment_id"`
	Type            MovementType `json:"type"`
	Points          int          `json:"points"`
	Description     string       `json:"description"`
	CreatedAt       time.Time    `json:"created_at"`
}
