package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cartao_fidelidade/internal/adapter/http/handlers/mocks"
	"cartao_fidelidade/internal/domain/entities"
	"cartao_fidelidade/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPointsHandler_AddPoints(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPointsUseCase(ctrl)
		h := NewPointsHandler(uc)

		r := gin.New()
		r.POST("/v1/establishments/:establishment_id/cards/:card_id/points", h.AddPoints)

		req := httptest.NewRequest(http.MethodPost, "/v1/establishments/est-1/cards/card-1/points", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing points", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPointsUseCase(ctrl)
		h := NewPointsHandler(uc)

		r := gin.New()
		r.POST("/v1/establishments/:establishment_id/cards/:card_id/points", h.AddPoints)

		req := httptest.NewRequest(http.MethodPost, "/v1/establishments/est-1/cards/card-1/points", bytes.NewBufferString(`{"description":"compra"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPointsUseCase(ctrl)
		h := NewPointsHandler(uc)

		r := gin.New()
		r.POST("/v1/establishments/:establishment_id/cards/:card_id/points", h.AddPoints)

		now := time.Now().UTC()
		uc.EXPECT().Credit(gomock.Any(), usecase.CreditInput{
			EstablishmentID: "est-1",
			CardID:          "card-1",
			Points:          5,
			Description:     "compra",
		}).Return(
			entities.Movement{ID: "mov-1", CardID: "card-1", Type: entities.MovementTypeCredito, Points: 5, CreatedAt: now},
			entities.Card{ID: "card-1", Points: 8},
			nil,
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/establishments/est-1/cards/card-1/points", bytes.NewBufferString(`{"points":5,"description":"compra"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		card, _ := body["card"].(map[string]any)
		if card["points"] != float64(8) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("expired subscription returns 402", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPointsUseCase(ctrl)
		h := NewPointsHandler(uc)

		r := gin.New()
		r.POST("/v1/establishments/:establishment_id/cards/:card_id/points", h.AddPoints)

		uc.EXPECT().Credit(gomock.Any(), gomock.Any()).Return(entities.Movement{}, entities.Card{}, usecase.ErrSubscriptionExpired)

		req := httptest.NewRequest(http.MethodPost, "/v1/establishments/est-1/cards/card-1/points", bytes.NewBufferString(`{"points":5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusPaymentRequired {
			t.Fatalf("expected 402, got %d", w.Code)
		}
	})
}

func TestPointsHandler_GetStatement(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("card not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPointsUseCase(ctrl)
		h := NewPointsHandler(uc)

		r := gin.New()
		r.GET("/v1/establishments/:establishment_id/cards/:card_id/movements", h.GetStatement)

		uc.EXPECT().Statement(gomock.Any(), "est-1", "card-1").Return(nil, usecase.ErrCardNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/establishments/est-1/cards/card-1/movements", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPointsUseCase(ctrl)
		h := NewPointsHandler(uc)

		r := gin.New()
		r.GET("/v1/establishments/:establishment_id/cards/:card_id/movements", h.GetStatement)

		uc.EXPECT().Statement(gomock.Any(), "est-1", "card-1").Return([]entities.Movement{
			{ID: "mov-1", Type: entities.MovementTypeCredito, Points: 5},
			{ID: "mov-2", Type: entities.MovementTypeDebito, Points: -10},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/establishments/est-1/cards/card-1/movements", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 {
			t.Fatalf("expected 2 movements, got %s", w.Body.String())
		}
	})
}

func TestPointsHandler_ReconcileCard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPointsUseCase(ctrl)
		h := NewPointsHandler(uc)

		r := gin.New()
		r.POST("/v1/establishments/:establishment_id/cards/:card_id/reconcile", h.ReconcileCard)

		uc.EXPECT().Reconcile(gomock.Any(), "est-1", "card-1").Return(usecase.ReconcileResult{
			CardID:        "card-1",
			LedgerSum:     12,
			CounterBefore: 15,
			CounterAfter:  12,
			Adjusted:      true,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/establishments/est-1/cards/card-1/reconcile", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["adjusted"] != true {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}
