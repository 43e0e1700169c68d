package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"cartao_fidelidade/internal/domain/entities"
	"cartao_fidelidade/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrInvalidPoints = errors.New("invalid points amount")

const defaultCreditDescription = "credito de pontos"

// CreditInput is the add-points command.
type CreditInput struct {
	EstablishmentID string
	CardID          string
	Points          int
	Description     string
}

// ReconcileResult reports a counter-vs-ledger check. Adjusted is true when the
// denormalized counter drifted and was rewritten from the movement sum.
type ReconcileResult struct {
	CardID        string `json:"card_id"`
	LedgerSum     int    `json:"ledger_sum"`
	CounterBefore int    `json:"counter_before"`
	CounterAfter  int    `json:"counter_after"`
	Adjusted      bool   `json:"adjusted"`
}

// IPointsUseCase is the points ledger: credits, the movement statement and the
// counter reconciliation routine.

type IPointsUseCase interface {
	Credit(ctx context.Context, input CreditInput) (entities.Movement, entities.Card, error)
	Statement(ctx context.Context, establishmentID, cardID string) ([]entities.Movement, error)
	Reconcile(ctx context.Context, establishmentID, cardID string) (ReconcileResult, error)
}

type PointsUseCase struct {
	ledgerRepo interfaces.ILedgerRepository
	cardRepo   interfaces.ICardRepository
	estRepo    interfaces.IEstablishmentRepository
}

var _ IPointsUseCase = (*PointsUseCase)(nil)

func NewPointsUseCase(ledgerRepo interfaces.ILedgerRepository, cardRepo interfaces.ICardRepository, estRepo interfaces.IEstablishmentRepository) *PointsUseCase {
	return &PointsUseCase{ledgerRepo: ledgerRepo, cardRepo: cardRepo, estRepo: estRepo}
}

// Credit appends a positive movement and increments the card counter in one
// transaction. There is no upper bound: a card may accumulate past the voucher
// threshold while awaiting redemption.
func (u *PointsUseCase) Credit(ctx context.Context, input CreditInput) (entities.Movement, entities.Card, error) {
	establishmentID := strings.TrimSpace(input.EstablishmentID)
	if establishmentID == "" {
		return entities.Movement{}, entities.Card{}, ErrInvalidEstablishmentID
	}
	cardID := strings.TrimSpace(input.CardID)
	if cardID == "" {
		return entities.Movement{}, entities.Card{}, ErrInvalidCardID
	}
	if input.Points <= 0 {
		return entities.Movement{}, entities.Card{}, ErrInvalidPoints
	}
	description := strings.TrimSpace(input.Description)
	if description == "" {
		description = defaultCreditDescription
	}

	card, err := u.loadOwnedCard(ctx, establishmentID, cardID)
	if err != nil {
		return entities.Movement{}, entities.Card{}, err
	}
	if _, err := assertSubscriptionActive(ctx, u.estRepo, establishmentID); err != nil {
		return entities.Movement{}, entities.Card{}, err
	}

	mov := entities.Movement{
		ID:              uuid.NewString(),
		CardID:          card.ID,
		EstablishmentID: establishmentID,
		Type:            entities.MovementTypeCredito,
		Points:          input.Points,
		Description:     description,
		CreatedAt:       time.Now().UTC(),
	}

	created, updated, err := u.ledgerRepo.Credit(ctx, card, mov)
	if err != nil {
		log.Printf("[points][usecase] credit failed card_id=%s points=%d err=%v", card.ID, input.Points, err)
		return entities.Movement{}, entities.Card{}, err
	}
	if created.ID == "" {
		// Card row vanished between the read and the transaction.
		return entities.Movement{}, entities.Card{}, ErrCardNotFound
	}
	return created, updated, nil
}

// Statement returns the card's movement history, most recent first. Read-only.
func (u *PointsUseCase) Statement(ctx context.Context, establishmentID, cardID string) ([]entities.Movement, error) {
	establishmentID = strings.TrimSpace(establishmentID)
	if establishmentID == "" {
		return nil, ErrInvalidEstablishmentID
	}
	cardID = strings.TrimSpace(cardID)
	if cardID == "" {
		return nil, ErrInvalidCardID
	}

	card, err := u.loadOwnedCard(ctx, establishmentID, cardID)
	if err != nil {
		return nil, err
	}

	movements, err := u.ledgerRepo.ListByCardID(ctx, card.ID)
	if err != nil {
		return nil, err
	}
	sort.Slice(movements, func(i, j int) bool {
		return movements[i].CreatedAt.After(movements[j].CreatedAt)
	})
	return movements, nil
}

// Reconcile recomputes the counter from the movement sum and rewrites it on
// drift. The ledger is the source of truth; the counter is a transactionally
// maintained cache, so under normal operation Adjusted is always false.
func (u *PointsUseCase) Reconcile(ctx context.Context, establishmentID, cardID string) (ReconcileResult, error) {
	establishmentID = strings.TrimSpace(establishmentID)
	if establishmentID == "" {
		return ReconcileResult{}, ErrInvalidEstablishmentID
	}
	cardID = strings.TrimSpace(cardID)
	if cardID == "" {
		return ReconcileResult{}, ErrInvalidCardID
	}

	card, err := u.loadOwnedCard(ctx, establishmentID, cardID)
	if err != nil {
		return ReconcileResult{}, err
	}

	sum, err := u.ledgerRepo.SumByCardID(ctx, card.ID)
	if err != nil {
		return ReconcileResult{}, err
	}

	result := ReconcileResult{
		CardID:        card.ID,
		LedgerSum:     sum,
		CounterBefore: card.Points,
		CounterAfter:  card.Points,
	}
	if sum == card.Points {
		return result, nil
	}

	log.Printf("[points][usecase] counter drift card_id=%s counter=%d ledger_sum=%d", card.ID, card.Points, sum)
	fixed, err := u.ledgerRepo.SetCardPoints(ctx, card.ID, sum)
	if err != nil {
		return ReconcileResult{}, err
	}
	result.CounterAfter = fixed.Points
	result.Adjusted = true
	return result, nil
}

func (u *PointsUseCase) loadOwnedCard(ctx context.Context, establishmentID, cardID string) (entities.Card, error) {
	card, err := u.cardRepo.GetByID(ctx, cardID)
	if err != nil {
		return entities.Card{}, err
	}
	if card.ID == "" {
		return entities.Card{}, ErrCardNotFound
	}
	if card.EstablishmentID != establishmentID {
		return entities.Card{}, ErrCardForbidden
	}
	return card, nil
}
