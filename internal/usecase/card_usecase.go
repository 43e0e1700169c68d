package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"cartao_fidelidade/internal/domain/entities"
	"cartao_fidelidade/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidClientName    = errors.New("invalid client name")
	ErrInvalidPhone         = errors.New("invalid phone")
	ErrInvalidInitialPoints = errors.New("invalid initial points")
	ErrInvalidCardID        = errors.New("invalid card id")
	ErrCardNotFound         = errors.New("card not found")
	ErrCardForbidden        = errors.New("card belongs to another establishment")
	ErrCardCodeConflict     = errors.New("card code conflict")
	ErrSearchParamsMissing  = errors.New("search requires name or phone")
	ErrNoCardsFound         = errors.New("no cards found")
)

const initialCreditDescription = "pontos iniciais"

// cardCodeAttempts bounds code regeneration before surfacing a conflict.
const cardCodeAttempts = 3

// RegisterCardInput is the find-or-create command for client registration.
type RegisterCardInput struct {
	EstablishmentID string
	Name            string
	Phone           string
	InitialPoints   int
}

// ICardUseCase is the client/card identity resolver: deduplication by
// normalized phone within an establishment, public search by slug, listing and
// cascade deletion.

type ICardUseCase interface {
	Register(ctx context.Context, input RegisterCardInput) (entities.Card, bool, error)
	ListByEstablishment(ctx context.Context, establishmentID string) ([]entities.Card, error)
	Search(ctx context.Context, slug, name, phone string) (entities.Establishment, []entities.Card, error)
	Delete(ctx context.Context, establishmentID, cardID string) error
}

type CardUseCase struct {
	cardRepo interfaces.ICardRepository
	estRepo  interfaces.IEstablishmentRepository
}

var _ ICardUseCase = (*CardUseCase)(nil)

func NewCardUseCase(cardRepo interfaces.ICardRepository, estRepo interfaces.IEstablishmentRepository) *CardUseCase {
	return &CardUseCase{cardRepo: cardRepo, estRepo: estRepo}
}

// Register finds or creates the card for (establishment, phone).
//
// Re-registering a phone already on record returns the existing card unchanged
// with alreadyExisted=true; initial points are NOT re-applied. A fresh
// registration creates client + card (+ opening credit when initialPoints > 0)
// in a single transaction.
func (u *CardUseCase) Register(ctx context.Context, input RegisterCardInput) (entities.Card, bool, error) {
	establishmentID := strings.TrimSpace(input.EstablishmentID)
	if establishmentID == "" {
		return entities.Card{}, false, ErrInvalidEstablishmentID
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return entities.Card{}, false, ErrInvalidClientName
	}
	phone := entities.NormalizePhone(input.Phone)
	if len(phone) < 8 {
		return entities.Card{}, false, ErrInvalidPhone
	}
	if input.InitialPoints < 0 {
		return entities.Card{}, false, ErrInvalidInitialPoints
	}

	if _, err := assertSubscriptionActive(ctx, u.estRepo, establishmentID); err != nil {
		return entities.Card{}, false, err
	}

	existing, err := u.cardRepo.GetByEstablishmentAndPhone(ctx, establishmentID, phone)
	if err != nil {
		return entities.Card{}, false, err
	}
	if existing.ID != "" {
		return existing, true, nil
	}

	code, err := u.generateCardCode(ctx, establishmentID)
	if err != nil {
		return entities.Card{}, false, err
	}

	now := time.Now().UTC()
	client := entities.Client{
		ID:              uuid.NewString(),
		EstablishmentID: establishmentID,
		Name:            name,
		Phone:           phone,
		CreatedAt:       now,
	}
	card := entities.Card{
		ID:              uuid.NewString(),
		EstablishmentID: establishmentID,
		ClientID:        client.ID,
		ClientName:      name,
		Phone:           phone,
		Code:            code,
		Points:          input.InitialPoints,
		CreatedAt:       now,
	}

	var initial *entities.Movement
	if input.InitialPoints > 0 {
		card.LastPointsAt = now
		initial = &entities.Movement{
			ID:              uuid.NewString(),
			CardID:          card.ID,
			EstablishmentID: establishmentID,
			Type:            entities.MovementTypeCredito,
			Points:          input.InitialPoints,
			Description:     initialCreditDescription,
			CreatedAt:       now,
		}
	}

	created, err := u.cardRepo.CreateWithClient(ctx, client, card, initial)
	if err != nil {
		return entities.Card{}, false, err
	}
	if created.ID == "" {
		// A concurrent registration took the phone first. Resolve to that
		// card; when the index has not caught up yet, surface a conflict so
		// the caller retries.
		winner, err := u.cardRepo.GetByEstablishmentAndPhone(ctx, establishmentID, phone)
		if err != nil {
			return entities.Card{}, false, err
		}
		if winner.ID == "" {
			return entities.Card{}, false, ErrCardCodeConflict
		}
		return winner, true, nil
	}
	return created, false, nil
}

// generateCardCode derives a short printable code and retries on the rare
// collision within the establishment before giving up with a conflict.
func (u *CardUseCase) generateCardCode(ctx context.Context, establishmentID string) (string, error) {
	for i := 0; i < cardCodeAttempts; i++ {
		code := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
		taken, err := u.cardRepo.GetByEstablishmentAndCode(ctx, establishmentID, code)
		if err != nil {
			return "", err
		}
		if taken.ID == "" {
			return code, nil
		}
	}
	return "", ErrCardCodeConflict
}

// ListByEstablishment returns all cards, most recent first. Read-only, so the
// subscription gate is bypassed.
func (u *CardUseCase) ListByEstablishment(ctx context.Context, establishmentID string) ([]entities.Card, error) {
	establishmentID = strings.TrimSpace(establishmentID)
	if establishmentID == "" {
		return nil, ErrInvalidEstablishmentID
	}
	cards, err := u.cardRepo.ListByEstablishmentID(ctx, establishmentID)
	if err != nil {
		return nil, err
	}
	sort.Slice(cards, func(i, j int) bool {
		return cards[i].CreatedAt.After(cards[j].CreatedAt)
	})
	return cards, nil
}

// Search is the public lookup by establishment slug. At least one of
// name/phone is required; name matches a case-insensitive substring, phone
// matches normalized substrings in either direction.
func (u *CardUseCase) Search(ctx context.Context, slug, name, phone string) (entities.Establishment, []entities.Card, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return entities.Establishment{}, nil, ErrInvalidEstablishmentID
	}
	name = strings.TrimSpace(name)
	phone = entities.NormalizePhone(phone)
	if name == "" && phone == "" {
		return entities.Establishment{}, nil, ErrSearchParamsMissing
	}

	est, err := u.estRepo.GetBySlug(ctx, slug)
	if err != nil {
		return entities.Establishment{}, nil, err
	}
	if est.ID == "" {
		return entities.Establishment{}, nil, ErrEstablishmentNotFound
	}

	cards, err := u.cardRepo.ListByEstablishmentID(ctx, est.ID)
	if err != nil {
		return entities.Establishment{}, nil, err
	}

	lowerName := strings.ToLower(name)
	matches := make([]entities.Card, 0, len(cards))
	for _, c := range cards {
		if lowerName != "" && strings.Contains(strings.ToLower(c.ClientName), lowerName) {
			matches = append(matches, c)
			continue
		}
		if phone != "" && entities.PhoneMatches(c.Phone, phone) {
			matches = append(matches, c)
		}
	}
	if len(matches) == 0 {
		return entities.Establishment{}, nil, ErrNoCardsFound
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].CreatedAt.After(matches[j].CreatedAt)
	})
	return est, matches, nil
}

// Delete removes the card with its movements and vouchers; the owning client
// goes with it when this was its last card.
func (u *CardUseCase) Delete(ctx context.Context, establishmentID, cardID string) error {
	establishmentID = strings.TrimSpace(establishmentID)
	if establishmentID == "" {
		return ErrInvalidEstablishmentID
	}
	cardID = strings.TrimSpace(cardID)
	if cardID == "" {
		return ErrInvalidCardID
	}

	card, err := u.cardRepo.GetByID(ctx, cardID)
	if err != nil {
		return err
	}
	if card.ID == "" {
		return ErrCardNotFound
	}
	if card.EstablishmentID != establishmentID {
		return ErrCardForbidden
	}
	return u.cardRepo.DeleteCascade(ctx, card)
}
