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

func validCreateInput() CreateEstablishmentInput {
	return CreateEstablishmentInput{
		Name:             "Padaria do Sol",
		Email:            "contato@padariadosol.com",
		Phone:            "(11) 3333-2222",
		PointsForVoucher: 10,
		LogoKey:          "logos/padaria-do-sol.png",
	}
}

func TestEstablishmentUseCase_Create(t *testing.T) {
	t.Run("invalid name", func(t *testing.T) {
		uc := NewEstablishmentUseCase(nil, nil, nil)
		input := validCreateInput()
		input.Name = "  "
		_, _, err := uc.Create(context.Background(), input)
		if !errors.Is(err, ErrInvalidEstablishmentName) {
			t.Fatalf("expected ErrInvalidEstablishmentName, got %v", err)
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		uc := NewEstablishmentUseCase(nil, nil, nil)
		input := validCreateInput()
		input.Email = "not-an-email"
		_, _, err := uc.Create(context.Background(), input)
		if !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("expected ErrInvalidEmail, got %v", err)
		}
	})

	t.Run("invalid threshold", func(t *testing.T) {
		uc := NewEstablishmentUseCase(nil, nil, nil)
		input := validCreateInput()
		input.PointsForVoucher = 0
		_, _, err := uc.Create(context.Background(), input)
		if !errors.Is(err, ErrInvalidThreshold) {
			t.Fatalf("expected ErrInvalidThreshold, got %v", err)
		}
	})

	t.Run("template without placeholder", func(t *testing.T) {
		uc := NewEstablishmentUseCase(nil, nil, nil)
		input := validCreateInput()
		input.VoucherMessageTemplate = "parabens pelo voucher"
		_, _, err := uc.Create(context.Background(), input)
		if !errors.Is(err, ErrInvalidTemplate) {
			t.Fatalf("expected ErrInvalidTemplate, got %v", err)
		}
	})

	t.Run("logo missing in storage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		storage := mock_interfaces.NewMockILogoStorage(ctrl)
		uc := NewEstablishmentUseCase(nil, nil, storage)

		storage.EXPECT().Exists(gomock.Any(), "logos/padaria-do-sol.png").Return(false, nil)

		_, _, err := uc.Create(context.Background(), validCreateInput())
		if !errors.Is(err, ErrLogoNotFound) {
			t.Fatalf("expected ErrLogoNotFound, got %v", err)
		}
	})

	t.Run("slug already taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estRepo := mock_interfaces.NewMockIEstablishmentRepository(ctrl)
		storage := mock_interfaces.NewMockILogoStorage(ctrl)
		uc := NewEstablishmentUseCase(estRepo, nil, storage)

		storage.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(true, nil)
		estRepo.EXPECT().GetBySlug(gomock.Any(), "padaria-do-sol").Return(entities.Establishment{ID: "existing"}, nil)

		_, _, err := uc.Create(context.Background(), validCreateInput())
		if !errors.Is(err, ErrSlugAlreadyExists) {
			t.Fatalf("expected ErrSlugAlreadyExists, got %v", err)
		}
	})

	t.Run("success starts with expired subscription", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estRepo := mock_interfaces.NewMockIEstablishmentRepository(ctrl)
		storage := mock_interfaces.NewMockILogoStorage(ctrl)
		uc := NewEstablishmentUseCase(estRepo, nil, storage)

		storage.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(true, nil)
		estRepo.EXPECT().GetBySlug(gomock.Any(), "padaria-do-sol").Return(entities.Establishment{}, nil)
		estRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Establishment{}), gomock.AssignableToTypeOf(entities.User{})).DoAndReturn(
			func(_ context.Context, e entities.Establishment, owner entities.User) (entities.Establishment, entities.User, error) {
				if e.ID == "" || e.Slug != "padaria-do-sol" || e.Phone != "1133332222" {
					t.Fatalf("unexpected establishment: %+v", e)
				}
				if !e.SubscriptionValidUntil.IsZero() {
					t.Fatalf("new tenant must start without paid access")
				}
				if owner.EstablishmentID != e.ID || owner.Name != "Padaria do Sol" {
					t.Fatalf("unexpected owner: %+v", owner)
				}
				return e, owner, nil
			},
		)

		est, owner, err := uc.Create(context.Background(), validCreateInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if est.ID == "" || owner.EstablishmentID != est.ID {
			t.Fatalf("unexpected result: est=%+v owner=%+v", est, owner)
		}
	})

	t.Run("failed registration leaves nothing committed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estRepo := mock_interfaces.NewMockIEstablishmentRepository(ctrl)
		storage := mock_interfaces.NewMockILogoStorage(ctrl)
		uc := NewEstablishmentUseCase(estRepo, nil, storage)

		storage.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(true, nil).Times(2)

		// The first attempt fails inside the transaction, so neither the
		// establishment nor the owner exists afterwards: the slug stays free
		// and a plain retry must succeed instead of hitting a conflict.
		estRepo.EXPECT().GetBySlug(gomock.Any(), "padaria-do-sol").Return(entities.Establishment{}, nil).Times(2)
		gomock.InOrder(
			estRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Establishment{}, entities.User{}, errors.New("transaction cancelled")),
			estRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, e entities.Establishment, owner entities.User) (entities.Establishment, entities.User, error) {
					return e, owner, nil
				},
			),
		)

		_, _, err := uc.Create(context.Background(), validCreateInput())
		if err == nil || err.Error() != "transaction cancelled" {
			t.Fatalf("expected transaction error, got %v", err)
		}

		est, owner, err := uc.Create(context.Background(), validCreateInput())
		if err != nil {
			t.Fatalf("retry after failed registration must succeed, got %v", err)
		}
		if est.ID == "" || owner.EstablishmentID != est.ID {
			t.Fatalf("unexpected result: est=%+v owner=%+v", est, owner)
		}
	})
}

func TestEstablishmentUseCase_GetBySlug(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estRepo := mock_interfaces.NewMockIEstablishmentRepository(ctrl)
		uc := NewEstablishmentUseCase(estRepo, nil, nil)

		estRepo.EXPECT().GetBySlug(gomock.Any(), "padaria-do-sol").Return(entities.Establishment{}, nil)

		_, err := uc.GetBySlug(context.Background(), "padaria-do-sol")
		if !errors.Is(err, ErrEstablishmentNotFound) {
			t.Fatalf("expected ErrEstablishmentNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estRepo := mock_interfaces.NewMockIEstablishmentRepository(ctrl)
		uc := NewEstablishmentUseCase(estRepo, nil, nil)

		estRepo.EXPECT().GetBySlug(gomock.Any(), "padaria-do-sol").Return(entities.Establishment{ID: "est-1", Slug: "padaria-do-sol"}, nil)

		est, err := uc.GetBySlug(context.Background(), " padaria-do-sol ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if est.ID != "est-1" {
			t.Fatalf("unexpected establishment: %+v", est)
		}
	})
}

func TestEstablishmentUseCase_ListUsers(t *testing.T) {
	t.Run("establishment not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estRepo := mock_interfaces.NewMockIEstablishmentRepository(ctrl)
		uc := NewEstablishmentUseCase(estRepo, nil, nil)

		estRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Establishment{}, nil)

		_, err := uc.ListUsers(context.Background(), "est-1")
		if !errors.Is(err, ErrEstablishmentNotFound) {
			t.Fatalf("expected ErrEstablishmentNotFound, got %v", err)
		}
	})

	t.Run("sorted oldest first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estRepo := mock_interfaces.NewMockIEstablishmentRepository(ctrl)
		userRepo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewEstablishmentUseCase(estRepo, userRepo, nil)

		now := time.Now().UTC()
		estRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Establishment{ID: "est-1"}, nil)
		userRepo.EXPECT().ListByEstablishmentID(gomock.Any(), "est-1").Return([]entities.User{
			{ID: "user-2", CreatedAt: now},
			{ID: "user-1", CreatedAt: now.Add(-time.Hour)},
		}, nil)

		users, err := uc.ListUsers(context.Background(), "est-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(users) != 2 || users[0].ID != "user-1" {
			t.Fatalf("unexpected users: %+v", users)
		}
	})
}

func TestEstablishmentUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estRepo := mock_interfaces.NewMockIEstablishmentRepository(ctrl)
		uc := NewEstablishmentUseCase(estRepo, nil, nil)

		estRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Establishment{}, nil)

		err := uc.Delete(context.Background(), "est-1")
		if !errors.Is(err, ErrEstablishmentNotFound) {
			t.Fatalf("expected ErrEstablishmentNotFound, got %v", err)
		}
	})

	t.Run("cascade failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estRepo := mock_interfaces.NewMockIEstablishmentRepository(ctrl)
		uc := NewEstablishmentUseCase(estRepo, nil, nil)

		estRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Establishment{ID: "est-1"}, nil)
		estRepo.EXPECT().DeleteCascade(gomock.Any(), "est-1").Return(errors.New("db"))

		err := uc.Delete(context.Background(), "est-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("logo delete failure is not fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estRepo := mock_interfaces.NewMockIEstablishmentRepository(ctrl)
		storage := mock_interfaces.NewMockILogoStorage(ctrl)
		uc := NewEstablishmentUseCase(estRepo, nil, storage)

		est := entities.Establishment{ID: "est-1", LogoKey: "logos/x.png"}
		estRepo.EXPECT().GetByID(gomock.Any(), "est-1").Return(est, nil)
		estRepo.EXPECT().DeleteCascade(gomock.Any(), "est-1").Return(nil)
		storage.EXPECT().Delete(gomock.Any(), "logos/x.png").Return(errors.New("s3 down"))

		if err := uc.Delete(context.Background(), "est-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Padaria do Sol", "padaria-do-sol"},
		{"  Café & Pão  ", "cafe-pao"},
		{"Açougue São João", "acougue-sao-joao"},
		{"---", ""},
		{"Loja 24h!!", "loja-24h"},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Fatalf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
