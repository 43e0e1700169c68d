package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"cartao_fidelidade/internal/domain/entities"
	mock_interfaces "cartao_fidelidade/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPointsUseCase_Credit(t *testing.T) {
	t.Run("invalid points", func(t *testing.T) {
		uc := NewPointsUseCase(nil, nil, nil)
		_, _, err := uc.Credit(context.Background(), CreditInput{EstablishmentID: "est-1", CardID: "card-1", Points: 0})
		if !errors.Is(err, ErrInvalidPoints) {
			t.Fatalf("expected ErrInvalidPoints, got %v", err)
		}
	})

	t.Run("negative points", func(t *testing.T) {
		uc := NewPointsUseCase(nil, nil, nil)
		_, _, err := uc.Credit(context.Background(), CreditInput{EstablishmentID: "est-1", CardID: "card-1", Points: -3})
		if !errors.Is(err, ErrInvalidPoints) {
			t.Fatalf("expected ErrInvalidPoints, got %v", err)
		}
	})

	t.Run("card not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cardRepo := mock_interfaces.NewMockICardRepository(ctrl)
		uc := NewPointsUseCase(nil, cardRepo, nil)

		cardRepo.EXPECT().GetByID(gomock.Any(), "card-1").Return(entities.Card{}, nil)

		_, _, err := uc.Credit(context.Background(), CreditInput{EstablishmentID: "est-1", CardID: "card-1", Points: 5})
		if !errors.Is(err, ErrCardNotFound) {
			t.Fatalf("expected ErrCardNotFound, got %v", err)
		}
	})

	t.Run("card from another establishment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cardRepo := mock_interfaces.NewMockICardRepository(ctrl)
		uc := NewPointsUseCase(nil, cardRepo, nil)

		cardRepo.EXPECT().GetByID(gomock.Any(), "card-1").Return(entities.Card{ID: "card-1", EstablishmentID: "other"}, nil)

		_, _, err := uc.Credit(context.Background(), CreditInput{EstablishmentID: "est-1", CardID: "card-1", Points: 5})
		if !errors.Is(err, ErrCardForbidden) {
			t.Fatalf("expected ErrCardForbidden, got %v", err)
		}
	})

	t.Run("subscription expired blocks credit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cardRepo := mock_interfaces.NewMockICardRepository(ctrl)
		estRepo := mock_interfaces.NewMockIEstablishmentRepository(ctrl)
		uc := NewPointsUseCase(nil, cardRepo, estRepo)

		cardRepo.EXPECT().GetByID(gomock.Any(), "card-1").Return(entities.Card{ID: "card-1", EstablishmentID: "est-1"}, nil)
		estRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Establishment{ID: "est-1"}, nil)

		_, _, err := uc.Credit(context.Background(), CreditInput{EstablishmentID: "est-1", CardID: "card-1", Points: 5})
		if !errors.Is(err, ErrSubscriptionExpired) {
			t.Fatalf("expected ErrSubscriptionExpired, got %v", err)
		}
	})

	t.Run("success with default description", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledgerRepo := mock_interfaces.NewMockILedgerRepository(ctrl)
		cardRepo := mock_interfaces.NewMockICardRepository(ctrl)
		estRepo := mock_interfaces.NewMockIEstablishmentRepository(ctrl)
		uc := NewPointsUseCase(ledgerRepo, cardRepo, estRepo)

		card := entities.Card{ID: "card-1", EstablishmentID: "est-1", Points: 3}
		cardRepo.EXPECT().GetByID(gomock.Any(), "card-1").Return(card, nil)
		estRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(activeEstablishment("est-1"), nil)
		ledgerRepo.EXPECT().Credit(gomock.Any(), card, gomock.AssignableToTypeOf(entities.Movement{})).DoAndReturn(
			func(_ context.Context, c entities.Card, mov entities.Movement) (entities.Movement, entities.Card, error) {
				if mov.ID == "" || mov.CardID != "card-1" || mov.Points != 5 {
					t.Fatalf("unexpected movement: %+v", mov)
				}
				if mov.Type != entities.MovementTypeCredito || mov.Description != "credito de pontos" {
					t.Fatalf("unexpected movement: %+v", mov)
				}
				c.Points += mov.Points
				return mov, c, nil
			},
		)

		mov, updated, err := uc.Credit(context.Background(), CreditInput{EstablishmentID: "est-1", CardID: "card-1", Points: 5})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if mov.Points != 5 || updated.Points != 8 {
			t.Fatalf("unexpected result: mov=%+v card=%+v", mov, updated)
		}
	})

	t.Run("card vanished during transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledgerRepo := mock_interfaces.NewMockILedgerRepository(ctrl)
		cardRepo := mock_interfaces.NewMockICardRepository(ctrl)
		estRepo := mock_interfaces.NewMockIEstablishmentRepository(ctrl)
		uc := NewPointsUseCase(ledgerRepo, cardRepo, estRepo)

		card := entities.Card{ID: "card-1", EstablishmentID: "est-1"}
		cardRepo.EXPECT().GetByID(gomock.Any(), "card-1").Return(card, nil)
		estRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(activeEstablishment("est-1"), nil)
		ledgerRepo.EXPECT().Credit(gomock.Any(), card, gomock.Any()).Return(entities.Movement{}, entities.Card{}, nil)

		_, _, err := uc.Credit(context.Background(), CreditInput{EstablishmentID: "est-1", CardID: "card-1", Points: 5})
		if !errors.Is(err, ErrCardNotFound) {
			t.Fatalf("expected ErrCardNotFound, got %v", err)
		}
	})
}

func TestPointsUseCase_Statement(t *testing.T) {
	t.Run("invalid card id", func(t *testing.T) {
		uc := NewPointsUseCase(nil, nil, nil)
		_, err := uc.Statement(context.Background(), "est-1", " ")
		if !errors.Is(err, ErrInvalidCardID) {
			t.Fatalf("expected ErrInvalidCardID, got %v", err)
		}
	})

	t.Run("sorted newest first without subscription gate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledgerRepo := mock_interfaces.NewMockILedgerRepository(ctrl)
		cardRepo := mock_interfaces.NewMockICardRepository(ctrl)
		uc := NewPointsUseCase(ledgerRepo, cardRepo, nil)

		now := time.Now().UTC()
		cardRepo.EXPECT().GetByID(gomock.Any(), "card-1").Return(entities.Card{ID: "card-1", EstablishmentID: "est-1"}, nil)
		ledgerRepo.EXPECT().ListByCardID(gomock.Any(), "card-1").Return([]entities.Movement{
			{ID: "m-old", CreatedAt: now.Add(-time.Hour)},
			{ID: "m-new", CreatedAt: now},
		}, nil)

		movements, err := uc.Statement(context.Background(), "est-1", "card-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(movements) != 2 || movements[0].ID != "m-new" {
			t.Fatalf("expected newest first, got %+v", movements)
		}
	})
}

func TestPointsUseCase_Reconcile(t *testing.T) {
	t.Run("counter matches ledger", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledgerRepo := mock_interfaces.NewMockILedgerRepository(ctrl)
		cardRepo := mock_interfaces.NewMockICardRepository(ctrl)
		uc := NewPointsUseCase(ledgerRepo, cardRepo, nil)

		cardRepo.EXPECT().GetByID(gomock.Any(), "card-1").Return(entities.Card{ID: "card-1", EstablishmentID: "est-1", Points: 12}, nil)
		ledgerRepo.EXPECT().SumByCardID(gomock.Any(), "card-1").Return(12, nil)

		res, err := uc.Reconcile(context.Background(), "est-1", "card-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Adjusted || res.CounterBefore != 12 || res.CounterAfter != 12 || res.LedgerSum != 12 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("drift rewrites the counter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ledgerRepo := mock_interfaces.NewMockILedgerRepository(ctrl)
		cardRepo := mock_interfaces.NewMockICardRepository(ctrl)
		uc := NewPointsUseCase(ledgerRepo, cardRepo, nil)

		cardRepo.EXPECT().GetByID(gomock.Any(), "card-1").Return(entities.Card{ID: "card-1", EstablishmentID: "est-1", Points: 15}, nil)
		ledgerRepo.EXPECT().SumByCardID(gomock.Any(), "card-1").Return(12, nil)
		ledgerRepo.EXPECT().SetCardPoints(gomock.Any(), "card-1", 12).Return(entities.Card{ID: "card-1", Points: 12}, nil)

		res, err := uc.Reconcile(context.Background(), "est-1", "card-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Adjusted || res.CounterBefore != 15 || res.CounterAfter != 12 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("ownership enforced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cardRepo := mock_interfaces.NewMockICardRepository(ctrl)
		uc := NewPointsUseCase(nil, cardRepo, nil)

		cardRepo.EXPECT().GetByID(gomock.Any(), "card-1").Return(entities.Card{ID: "card-1", EstablishmentID: "other"}, nil)

		_, err := uc.Reconcile(context.Background(), "est-1", "card-1")
		if !errors.Is(err, ErrCardForbidden) {
			t.Fatalf("expected ErrCardForbidden, got %v", err)
		}
	})
}
