package entities

import (
	"regexp"
	"strings"
	"time"
)

// Client is a person identified by name + normalized phone.
//
// Identity policy: a Client row is scoped to one establishment. The same phone
// number registering at two establishments produces two independent Client rows,
// each with its own card. A Client is removed together with its last card.
type Client struct {
	ID              string    `json:"id"`
	EstablishmentID string    `json:"establishment_id"`
	Name            string    `json:"name"`
	Phone           string    `json:"phone"`
	CreatedAt       time.Time `json:"created_at"`
}

// Card (cartão fidelidade) is the unit of point accrual: the join between a
// Client and an Establishment.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (establishment_id-index): establishment_id
//
// Points is a denormalized running total. The movements table is the source of
// truth; Points must always equal the net sum of the card's movement deltas,
// which is why every mutation travels in the same transaction as its movement.
type Card struct {
	ID              string    `json:"id"`
	EstablishmentID string    `json:"establishment_id"`
	ClientID        string    `json:"client_id"`
	ClientName      string    `json:"client_name"`
	Phone           string    `json:"phone"`
	Code            string    `json:"code"`
	Points          int       `json:"points"`
	CreatedAt       time.Time `json:"created_at"`
	LastPointsAt    time.Time `json:"last_points_at,omitempty"`
}

var nonDigits = regexp.MustCompile(`\D`)

// NormalizePhone strips everything but digits. All phone comparison and storage
// goes through this; formatted input ("(11) 99999-8888") and raw digits match.
func NormalizePhone(phone string) string {
	return nonDigits.ReplaceAllString(strings.TrimSpace(phone), "")
}

// PhoneMatches reports whether a stored normalized phone and a normalized query
// match as substrings in either direction. Tolerates partial queries and stored
// numbers with/without country code.
func PhoneMatches(stored, query string) bool {
	if stored == "" || query == "" {
		return false
	}
	return strings.Contains(stored, query) || strings.Contains(query, stored)
}
