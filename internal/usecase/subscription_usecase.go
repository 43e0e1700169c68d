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

var (
	ErrEstablishmentNotFound  = errors.New("establishment not found")
	ErrSubscriptionExpired    = errors.New("subscription expired")
	ErrInvalidEstablishmentID = errors.New("invalid establishment id")
	ErrInvalidPaymentDate     = errors.New("invalid payment date")
)

// ISubscriptionUseCase is the subscription gate plus the administrative
// payment-confirmation flow.
//
// AssertActive is the gate every point-mutating operation must pass before
// touching clients, movements or vouchers. Read-only listings bypass it.

type ISubscriptionUseCase interface {
	AssertActive(ctx context.Context, establishmentID string) error
	ConfirmPayment(ctx context.Context, establishmentID string, paymentDate time.Time) (entities.SubscriptionPayment, time.Time, error)
	ListPayments(ctx context.Context, establishmentID string) ([]entities.SubscriptionPayment, error)
}

type SubscriptionUseCase struct {
	estRepo interfaces.IEstablishmentRepository
	payRepo interfaces.IPaymentRepository
}

var _ ISubscriptionUseCase = (*SubscriptionUseCase)(nil)

func NewSubscriptionUseCase(estRepo interfaces.IEstablishmentRepository, payRepo interfaces.IPaymentRepository) *SubscriptionUseCase {
	return &SubscriptionUseCase{estRepo: estRepo, payRepo: payRepo}
}

// assertSubscriptionActive loads the establishment and checks its paid access
// window. Shared by every use case that mutates points state; returns the
// establishment so callers don't re-read it for threshold/template lookups.
func assertSubscriptionActive(ctx context.Context, repo interfaces.IEstablishmentRepository, establishmentID string) (entities.Establishment, error) {
	est, err := repo.GetByID(ctx, establishmentID)
	if err != nil {
		return entities.Establishment{}, err
	}
	if est.ID == "" {
		return entities.Establishment{}, ErrEstablishmentNotFound
	}
	if !est.SubscriptionActiveAt(time.Now().UTC()) {
		return entities.Establishment{}, ErrSubscriptionExpired
	}
	return est, nil
}

func (u *SubscriptionUseCase) AssertActive(ctx context.Context, establishmentID string) error {
	establishmentID = strings.TrimSpace(establishmentID)
	if establishmentID == "" {
		return ErrInvalidEstablishmentID
	}
	_, err := assertSubscriptionActive(ctx, u.estRepo, establishmentID)
	return err
}

// ConfirmPayment records a subscription renewal. paymentDate zero means "now";
// future dates are rejected. The new validity is paymentDate + 31 days,
// written together with the payment row in one transaction.
func (u *SubscriptionUseCase) ConfirmPayment(ctx context.Context, establishmentID string, paymentDate time.Time) (entities.SubscriptionPayment, time.Time, error) {
	establishmentID = strings.TrimSpace(establishmentID)
	if establishmentID == "" {
		return entities.SubscriptionPayment{}, time.Time{}, ErrInvalidEstablishmentID
	}

	now := time.Now().UTC()
	if paymentDate.IsZero() {
		paymentDate = now
	} else {
		paymentDate = paymentDate.UTC()
	}
	if paymentDate.After(now.Add(24 * time.Hour)) {
		return entities.SubscriptionPayment{}, time.Time{}, ErrInvalidPaymentDate
	}

	est, err := u.estRepo.GetByID(ctx, establishmentID)
	if err != nil {
		return entities.SubscriptionPayment{}, time.Time{}, err
	}
	if est.ID == "" {
		return entities.SubscriptionPayment{}, time.Time{}, ErrEstablishmentNotFound
	}

	p := entities.SubscriptionPayment{
		ID:              uuid.NewString(),
		EstablishmentID: establishmentID,
		PaymentDate:     paymentDate,
		CreatedAt:       now,
	}

	confirmed, err := u.payRepo.Confirm(ctx, p)
	if err != nil {
		log.Printf("[subscription][usecase] confirm failed establishment_id=%s err=%v", establishmentID, err)
		return entities.SubscriptionPayment{}, time.Time{}, err
	}
	if confirmed.ID == "" {
		return entities.SubscriptionPayment{}, time.Time{}, ErrEstablishmentNotFound
	}
	log.Printf("[subscription][usecase] payment confirmed establishment_id=%s payment_id=%s valid_until=%s",
		establishmentID, confirmed.ID, confirmed.ValidUntil().Format(time.RFC3339))
	return confirmed, confirmed.ValidUntil(), nil
}

func (u *SubscriptionUseCase) ListPayments(ctx context.Context, establishmentID string) ([]entities.SubscriptionPayment, error) {
	establishmentID = strings.TrimSpace(establishmentID)
	if establishmentID == "" {
		return nil, ErrInvalidEstablishmentID
	}
	payments, err := u.payRepo.ListByEstablishmentID(ctx, establishmentID)
	if err != nil {
		return nil, err
	}
	sort.Slice(payments, func(i, j int) bool {
		return payments[i].PaymentDate.After(payments[j].PaymentDate)
	})
	return payments, nil
}
