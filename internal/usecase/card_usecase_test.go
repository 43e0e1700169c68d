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

func activeEstablishment(id string) entities.Establishment {
	return entities.Establishment{
		ID:                     id,
		PointsForVoucher:       10,
		SubscriptionValidUntil: time.Now().UTC().Add(24 * time.Hour),
	}
}

func TestCardUseCase_Register(t *testing.T) {
	t.Run("invalid establishment id", func(t *testing.T) {
		uc := NewCardUseCase(nil, nil)
		_, _, err := uc.Register(context.Background(), RegisterCardInput{Name: "Maria", Phone: "11988887777"})
		if !errors.Is(err, ErrInvalidEstablishmentID) {
			t.Fatalf("expected ErrInvalidEstablishmentID, got %v", err)
		}
	})

	t.Run("invalid name", func(t *testing.T) {
		uc := NewCardUseCase(nil, nil)
		_, _, err := uc.Register(context.Background(), RegisterCardInput{EstablishmentID: "est-1", Name: "  ", Phone: "11988887777"})
		if !errors.Is(err, ErrInvalidClientName) {
			t.Fatalf("expected ErrInvalidClientName, got %v", err)
		}
	})

	t.Run("phone too short after normalization", func(t *testing.T) {
		uc := NewCardUseCase(nil, nil)
		_, _, err := uc.Register(context.Background(), RegisterCardInput{EstablishmentID: "est-1", Name: "Maria", Phone: "(11) 98"})
		if !errors.Is(err, ErrInvalidPhone) {
			t.Fatalf("expected ErrInvalidPhone, got %v", err)
		}
	})

	t.Run("negative initial points", func(t *testing.T) {
		uc := NewCardUseCase(nil, nil)
		_, _, err := uc.Register(context.Background(), RegisterCardInput{EstablishmentID: "est-1", Name: "Maria", Phone: "11988887777", InitialPoints: -1})
		if !errors.Is(err, ErrInvalidInitialPoints) {
			t.Fatalf("expected ErrInvalidInitialPoints, got %v", err)
		}
	})

	t.Run("subscription expired blocks registration", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cardRepo := mock_interfaces.NewMockICardRepository(ctrl)
		estRepo := mock_interfaces.NewMockIEstablishmentRepository(ctrl)
		uc := NewCardUseCase(cardRepo, estRepo)

		estRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Establishment{ID: "est-1"}, nil)

		_, _, err := uc.Register(context.Background(), RegisterCardInput{EstablishmentID: "est-1", Name: "Maria", Phone: "11988887777"})
		if !errors.Is(err, ErrSubscriptionExpired) {
			t.Fatalf("expected ErrSubscriptionExpired, got %v", err)
		}
	})

	t.Run("existing phone returns card unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cardRepo := mock_interfaces.NewMockICardRepository(ctrl)
		estRepo := mock_interfaces.NewMockIEstablishmentRepository(ctrl)
		uc := NewCardUseCase(cardRepo, estRepo)

		existing := entities.Card{ID: "card-1", EstablishmentID: "est-1", Phone: "11988887777", Points: 7}
		estRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(activeEstablishment("est-1"), nil)
		cardRepo.EXPECT().GetByEstablishmentAndPhone(gomock.Any(), "est-1", "11988887777").Return(existing, nil)

		card, alreadyExisted, err := uc.Register(context.Background(), RegisterCardInput{
			EstablishmentID: "est-1",
			Name:            "Maria",
			Phone:           "(11) 98888-7777",
			InitialPoints:   5,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !alreadyExisted {
			t.Fatalf("expected alreadyExisted=true")
		}
		if card.Points != 7 {
			t.Fatalf("initial points must not be re-applied, got %d", card.Points)
		}
	})

	t.Run("new registration with initial points", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cardRepo := mock_interfaces.NewMockICardRepository(ctrl)
		estRepo := mock_interfaces.NewMockIEstablishmentRepository(ctrl)
		uc := NewCardUseCase(cardRepo, estRepo)

		estRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(activeEstablishment("est-1"), nil)
		cardRepo.EXPECT().GetByEstablishmentAndPhone(gomock.Any(), "est-1", "11988887777").Return(entities.Card{}, nil)
		cardRepo.EXPECT().GetByEstablishmentAndCode(gomock.Any(), "est-1", gomock.Any()).Return(entities.Card{}, nil)
		cardRepo.EXPECT().CreateWithClient(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, client entities.Client, card entities.Card, initial *entities.Movement) (entities.Card, error) {
				if client.ID == "" || client.EstablishmentID != "est-1" || client.Phone != "11988887777" {
					t.Fatalf("unexpected client: %+v", client)
				}
				if card.ClientID != client.ID || card.Points != 5 || len(card.Code) != 8 {
					t.Fatalf("unexpected card: %+v", card)
				}
				if initial == nil || initial.Points != 5 || initial.Type != entities.MovementTypeCredito || initial.CardID != card.ID {
					t.Fatalf("unexpected initial movement: %+v", initial)
				}
				return card, nil
			},
		)

		card, alreadyExisted, err := uc.Register(context.Background(), RegisterCardInput{
			EstablishmentID: "est-1",
			Name:            "Maria",
			Phone:           "(11) 98888-7777",
			InitialPoints:   5,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if alreadyExisted {
			t.Fatalf("expected a fresh card")
		}
		if card.ID == "" {
			t.Fatalf("expected generated id")
		}
	})

	t.Run("new registration without initial points has no movement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cardRepo := mock_interfaces.NewMockICardRepository(ctrl)
		estRepo := mock_interfaces.NewMockIEstablishmentRepository(ctrl)
		uc := NewCardUseCase(cardRepo, estRepo)

		estRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(activeEstablishment("est-1"), nil)
		cardRepo.EXPECT().GetByEstablishmentAndPhone(gomock.Any(), "est-1", "11988887777").Return(entities.Card{}, nil)
		cardRepo.EXPECT().GetByEstablishmentAndCode(gomock.Any(), "est-1", gomock.Any()).Return(entities.Card{}, nil)
		cardRepo.EXPECT().CreateWithClient(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
			func(_ context.Context, _ entities.Client, card entities.Card, _ *entities.Movement) (entities.Card, error) {
				if card.Points != 0 || !card.LastPointsAt.IsZero() {
					t.Fatalf("unexpected card: %+v", card)
				}
				return card, nil
			},
		)

		_, _, err := uc.Register(context.Background(), RegisterCardInput{EstablishmentID: "est-1", Name: "Maria", Phone: "11988887777"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("concurrent registration resolves to the winner card", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cardRepo := mock_interfaces.NewMockICardRepository(ctrl)
		estRepo := mock_interfaces.NewMockIEstablishmentRepository(ctrl)
		uc := NewCardUseCase(cardRepo, estRepo)

		// Both registrations pass the phone pre-check; the storage guard
		// rejects the second write and Register falls back to the card the
		// winner created.
		winner := entities.Card{ID: "card-winner", EstablishmentID: "est-1", ClientName: "Maria", Phone: "11988887777"}
		estRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(activeEstablishment("est-1"), nil)
		gomock.InOrder(
			cardRepo.EXPECT().GetByEstablishmentAndPhone(gomock.Any(), "est-1", "11988887777").Return(entities.Card{}, nil),
			cardRepo.EXPECT().GetByEstablishmentAndCode(gomock.Any(), "est-1", gomock.Any()).Return(entities.Card{}, nil),
			cardRepo.EXPECT().CreateWithClient(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Card{}, nil),
			cardRepo.EXPECT().GetByEstablishmentAndPhone(gomock.Any(), "est-1", "11988887777").Return(winner, nil),
		)

		card, alreadyExisted, err := uc.Register(context.Background(), RegisterCardInput{EstablishmentID: "est-1", Name: "Maria", Phone: "11988887777"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !alreadyExisted || card.ID != "card-winner" {
			t.Fatalf("expected the winner card, got already_existed=%v card=%+v", alreadyExisted, card)
		}
	})

	t.Run("code collisions exhaust attempts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cardRepo := mock_interfaces.NewMockICardRepository(ctrl)
		estRepo := mock_interfaces.NewMockIEstablishmentRepository(ctrl)
		uc := NewCardUseCase(cardRepo, estRepo)

		estRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(activeEstablishment("est-1"), nil)
		cardRepo.EXPECT().GetByEstablishmentAndPhone(gomock.Any(), "est-1", "11988887777").Return(entities.Card{}, nil)
		cardRepo.EXPECT().GetByEstablishmentAndCode(gomock.Any(), "est-1", gomock.Any()).Return(entities.Card{ID: "taken"}, nil).Times(cardCodeAttempts)

		_, _, err := uc.Register(context.Background(), RegisterCardInput{EstablishmentID: "est-1", Name: "Maria", Phone: "11988887777"})
		if !errors.Is(err, ErrCardCodeConflict) {
			t.Fatalf("expected ErrCardCodeConflict, got %v", err)
		}
	})
}

func TestCardUseCase_ListByEstablishment(t *testing.T) {
	t.Run("invalid establishment id", func(t *testing.T) {
		uc := NewCardUseCase(nil, nil)
		_, err := uc.ListByEstablishment(context.Background(), "")
		if !errors.Is(err, ErrInvalidEstablishmentID) {
			t.Fatalf("expected ErrInvalidEstablishmentID, got %v", err)
		}
	})

	t.Run("sorted newest first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cardRepo := mock_interfaces.NewMockICardRepository(ctrl)
		uc := NewCardUseCase(cardRepo, nil)

		now := time.Now().UTC()
		cardRepo.EXPECT().ListByEstablishmentID(gomock.Any(), "est-1").Return([]entities.Card{
			{ID: "old", CreatedAt: now.Add(-time.Hour)},
			{ID: "new", CreatedAt: now},
		}, nil)

		cards, err := uc.ListByEstablishment(context.Background(), "est-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cards) != 2 || cards[0].ID != "new" {
			t.Fatalf("expected newest first, got %+v", cards)
		}
	})
}

func TestCardUseCase_Search(t *testing.T) {
	t.Run("missing search params", func(t *testing.T) {
		uc := NewCardUseCase(nil, nil)
		_, _, err := uc.Search(context.Background(), "padaria-sol", "", "")
		if !errors.Is(err, ErrSearchParamsMissing) {
			t.Fatalf("expected ErrSearchParamsMissing, got %v", err)
		}
	})

	t.Run("slug not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estRepo := mock_interfaces.NewMockIEstablishmentRepository(ctrl)
		uc := NewCardUseCase(nil, estRepo)

		estRepo.EXPECT().GetBySlug(gomock.Any(), "padaria-sol").Return(entities.Establishment{}, nil)

		_, _, err := uc.Search(context.Background(), "padaria-sol", "maria", "")
		if !errors.Is(err, ErrEstablishmentNotFound) {
			t.Fatalf("expected ErrEstablishmentNotFound, got %v", err)
		}
	})

	t.Run("name matches case-insensitive substring", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cardRepo := mock_interfaces.NewMockICardRepository(ctrl)
		estRepo := mock_interfaces.NewMockIEstablishmentRepository(ctrl)
		uc := NewCardUseCase(cardRepo, estRepo)

		estRepo.EXPECT().GetBySlug(gomock.Any(), "padaria-sol").Return(entities.Establishment{ID: "est-1", Slug: "padaria-sol"}, nil)
		cardRepo.EXPECT().ListByEstablishmentID(gomock.Any(), "est-1").Return([]entities.Card{
			{ID: "c1", ClientName: "Maria Silva", Phone: "11988887777"},
			{ID: "c2", ClientName: "Joao Souza", Phone: "11977776666"},
		}, nil)

		est, cards, err := uc.Search(context.Background(), "padaria-sol", "mArIa", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if est.ID != "est-1" {
			t.Fatalf("unexpected establishment: %+v", est)
		}
		if len(cards) != 1 || cards[0].ID != "c1" {
			t.Fatalf("expected only c1, got %+v", cards)
		}
	})

	t.Run("phone matches in either direction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cardRepo := mock_interfaces.NewMockICardRepository(ctrl)
		estRepo := mock_interfaces.NewMockIEstablishmentRepository(ctrl)
		uc := NewCardUseCase(cardRepo, estRepo)

		estRepo.EXPECT().GetBySlug(gomock.Any(), "padaria-sol").Return(entities.Establishment{ID: "est-1"}, nil)
		cardRepo.EXPECT().ListByEstablishmentID(gomock.Any(), "est-1").Return([]entities.Card{
			{ID: "c1", ClientName: "Maria", Phone: "11988887777"},
		}, nil)

		_, cards, err := uc.Search(context.Background(), "padaria-sol", "", "8888-7777")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cards) != 1 || cards[0].ID != "c1" {
			t.Fatalf("expected c1, got %+v", cards)
		}
	})

	t.Run("no matches", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cardRepo := mock_interfaces.NewMockICardRepository(ctrl)
		estRepo := mock_interfaces.NewMockIEstablishmentRepository(ctrl)
		uc := NewCardUseCase(cardRepo, estRepo)

		estRepo.EXPECT().GetBySlug(gomock.Any(), "padaria-sol").Return(entities.Establishment{ID: "est-1"}, nil)
		cardRepo.EXPECT().ListByEstablishmentID(gomock.Any(), "est-1").Return([]entities.Card{
			{ID: "c1", ClientName: "Maria", Phone: "11988887777"},
		}, nil)

		_, _, err := uc.Search(context.Background(), "padaria-sol", "carlos", "")
		if !errors.Is(err, ErrNoCardsFound) {
			t.Fatalf("expected ErrNoCardsFound, got %v", err)
		}
	})
}

func TestCardUseCase_Delete(t *testing.T) {
	t.Run("card not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cardRepo := mock_interfaces.NewMockICardRepository(ctrl)
		uc := NewCardUseCase(cardRepo, nil)

		cardRepo.EXPECT().GetByID(gomock.Any(), "card-1").Return(entities.Card{}, nil)

		err := uc.Delete(context.Background(), "est-1", "card-1")
		if !errors.Is(err, ErrCardNotFound) {
			t.Fatalf("expected ErrCardNotFound, got %v", err)
		}
	})

	t.Run("card from another establishment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cardRepo := mock_interfaces.NewMockICardRepository(ctrl)
		uc := NewCardUseCase(cardRepo, nil)

		cardRepo.EXPECT().GetByID(gomock.Any(), "card-1").Return(entities.Card{ID: "card-1", EstablishmentID: "other"}, nil)

		err := uc.Delete(context.Background(), "est-1", "card-1")
		if !errors.Is(err, ErrCardForbidden) {
			t.Fatalf("expected ErrCardForbidden, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cardRepo := mock_interfaces.NewMockICardRepository(ctrl)
		uc := NewCardUseCase(cardRepo, nil)

		card := entities.Card{ID: "card-1", EstablishmentID: "est-1", ClientID: "cli-1"}
		cardRepo.EXPECT().GetByID(gomock.Any(), "card-1").Return(card, nil)
		cardRepo.EXPECT().DeleteCascade(gomock.Any(), card).Return(nil)

		if err := uc.Delete(context.Background(), "est-1", " card-1 "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
