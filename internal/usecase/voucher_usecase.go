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
	ErrInsufficientPoints = errors.New("insufficient points for voucher")
	ErrInvalidUserID      = errors.New("invalid user id")
	ErrUserNotFound       = errors.New("user not found")
)

const redeemDebitDescription = "resgate de voucher"

// RedeemInput is the voucher redemption command. CustomMessage overrides the
// establishment template when present.
type RedeemInput struct {
	EstablishmentID string
	CardID          string
	UserID          string
	CustomMessage   string
}

// IVoucherUseCase is the redemption engine: eligibility check, message
// rendering and the atomic debit, plus voucher history reads.

type IVoucherUseCase interface {
	Redeem(ctx context.Context, input RedeemInput) (entities.Voucher, entities.Card, entities.DeliveryPayload, error)
	ListByEstablishment(ctx context.Context, establishmentID string) ([]entities.Voucher, error)
	ListByCard(ctx context.Context, establishmentID, cardID string) ([]entities.Voucher, error)
}

type VoucherUseCase struct {
	ledgerRepo  interfaces.ILedgerRepository
	cardRepo    interfaces.ICardRepository
	estRepo     interfaces.IEstablishmentRepository
	voucherRepo interfaces.IVoucherRepository
	userRepo    interfaces.IUserRepository
}

var _ IVoucherUseCase = (*VoucherUseCase)(nil)

func NewVoucherUseCase(ledgerRepo interfaces.ILedgerRepository, cardRepo interfaces.ICardRepository, estRepo interfaces.IEstablishmentRepository, voucherRepo interfaces.IVoucherRepository, userRepo interfaces.IUserRepository) *VoucherUseCase {
	return &VoucherUseCase{ledgerRepo: ledgerRepo, cardRepo: cardRepo, estRepo: estRepo, voucherRepo: voucherRepo, userRepo: userRepo}
}

// Redeem consumes exactly the establishment threshold from the card balance
// and records the voucher with a compensating debit movement, all in one
// transaction. Surplus above the threshold is preserved.
//
// The eligibility pre-check here gives the friendly business error; the
// points >= threshold condition inside the transaction closes the race when
// two redemptions hit the same balance, so exactly one wins.
func (u *VoucherUseCase) Redeem(ctx context.Context, input RedeemInput) (entities.Voucher, entities.Card, entities.DeliveryPayload, error) {
	establishmentID := strings.TrimSpace(input.EstablishmentID)
	if establishmentID == "" {
		return entities.Voucher{}, entities.Card{}, entities.DeliveryPayload{}, ErrInvalidEstablishmentID
	}
	cardID := strings.TrimSpace(input.CardID)
	if cardID == "" {
		return entities.Voucher{}, entities.Card{}, entities.DeliveryPayload{}, ErrInvalidCardID
	}
	userID := strings.TrimSpace(input.UserID)
	if userID == "" {
		return entities.Voucher{}, entities.Card{}, entities.DeliveryPayload{}, ErrInvalidUserID
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return entities.Voucher{}, entities.Card{}, entities.DeliveryPayload{}, err
	}
	if user.ID == "" || user.EstablishmentID != establishmentID {
		return entities.Voucher{}, entities.Card{}, entities.DeliveryPayload{}, ErrUserNotFound
	}

	card, err := u.cardRepo.GetByID(ctx, cardID)
	if err != nil {
		return entities.Voucher{}, entities.Card{}, entities.DeliveryPayload{}, err
	}
	if card.ID == "" {
		return entities.Voucher{}, entities.Card{}, entities.DeliveryPayload{}, ErrCardNotFound
	}
	if card.EstablishmentID != establishmentID {
		return entities.Voucher{}, entities.Card{}, entities.DeliveryPayload{}, ErrCardForbidden
	}

	est, err := assertSubscriptionActive(ctx, u.estRepo, establishmentID)
	if err != nil {
		return entities.Voucher{}, entities.Card{}, entities.DeliveryPayload{}, err
	}

	threshold := est.PointsForVoucher
	if card.Points < threshold {
		return entities.Voucher{}, entities.Card{}, entities.DeliveryPayload{}, ErrInsufficientPoints
	}

	message := renderVoucherMessage(est, card.ClientName, input.CustomMessage)
	now := time.Now().UTC()

	voucher := entities.Voucher{
		ID:              uuid.NewString(),
		CardID:          card.ID,
		ClientID:        card.ClientID,
		EstablishmentID: establishmentID,
		UserID:          userID,
		Message:         message,
		Phone:           card.Phone,
		Status:          entities.VoucherStatusEnviado,
		CreatedAt:       now,
	}
	mov := entities.Movement{
		ID:              uuid.NewString(),
		CardID:          card.ID,
		EstablishmentID: establishmentID,
		Type:            entities.MovementTypeDebito,
		Points:          -threshold,
		Description:     redeemDebitDescription,
		CreatedAt:       now,
	}

	log.Printf("[voucher][usecase] redeem start card_id=%s points=%d threshold=%d", card.ID, card.Points, threshold)
	created, updated, err := u.ledgerRepo.Redeem(ctx, card, mov, voucher, threshold)
	if err != nil {
		log.Printf("[voucher][usecase] redeem failed card_id=%s err=%v", card.ID, err)
		return entities.Voucher{}, entities.Card{}, entities.DeliveryPayload{}, err
	}
	if created.ID == "" {
		// Lost the race: a concurrent redemption consumed the balance first.
		log.Printf("[voucher][usecase] redeem lost race card_id=%s", card.ID)
		return entities.Voucher{}, entities.Card{}, entities.DeliveryPayload{}, ErrInsufficientPoints
	}
	log.Printf("[voucher][usecase] redeem success card_id=%s voucher_id=%s remaining=%d", card.ID, created.ID, updated.Points)

	return created, updated, entities.NewDeliveryPayload(created.Phone, created.Message), nil
}

// renderVoucherMessage picks customMessage, then the establishment template,
// then the hard default, and substitutes the first {cliente} occurrence.
// Plain string replacement, not a template engine.
func renderVoucherMessage(est entities.Establishment, clientName, customMessage string) string {
	msg := strings.TrimSpace(customMessage)
	if msg == "" {
		msg = est.VoucherMessageTemplate
	}
	if msg == "" {
		msg = entities.DefaultVoucherMessage
	}
	return strings.Replace(msg, entities.ClientePlaceholder, clientName, 1)
}

// ListByEstablishment returns issued vouchers, most recent first. Read-only.
func (u *VoucherUseCase) ListByEstablishment(ctx context.Context, establishmentID string) ([]entities.Voucher, error) {
	establishmentID = strings.TrimSpace(establishmentID)
	if establishmentID == "" {
		return nil, ErrInvalidEstablishmentID
	}
	vouchers, err := u.voucherRepo.ListByEstablishmentID(ctx, establishmentID)
	if err != nil {
		return nil, err
	}
	sort.Slice(vouchers, func(i, j int) bool {
		return vouchers[i].CreatedAt.After(vouchers[j].CreatedAt)
	})
	return vouchers, nil
}

// ListByCard returns the card's redemption history, most recent first.
func (u *VoucherUseCase) ListByCard(ctx context.Context, establishmentID, cardID string) ([]entities.Voucher, error) {
	establishmentID = strings.TrimSpace(establishmentID)
	if establishmentID == "" {
		return nil, ErrInvalidEstablishmentID
	}
	cardID = strings.TrimSpace(cardID)
	if cardID == "" {
		return nil, ErrInvalidCardID
	}

	card, err := u.cardRepo.GetByID(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if card.ID == "" {
		return nil, ErrCardNotFound
	}
	if card.EstablishmentID != establishmentID {
		return nil, ErrCardForbidden
	}

	vouchers, err := u.voucherRepo.ListByCardID(ctx, card.ID)
	if err != nil {
		return nil, err
	}
	sort.Slice(vouchers, func(i, j int) bool {
		return vouchers[i].CreatedAt.After(vouchers[j].CreatedAt)
	})
	return vouchers, nil
}
