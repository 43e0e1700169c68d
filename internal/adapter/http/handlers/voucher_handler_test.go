package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cartao_fidelidade/internal/adapter/http/handlers/mocks"
	"cartao_fidelidade/internal/domain/entities"
	"cartao_fidelidade/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestVoucherHandler_RedeemVoucher(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVoucherUseCase(ctrl)
		h := NewVoucherHandler(uc)

		r := gin.New()
		r.POST("/v1/establishments/:establishment_id/cards/:card_id/vouchers", h.RedeemVoucher)

		req := httptest.NewRequest(http.MethodPost, "/v1/establishments/est-1/cards/card-1/vouchers", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("insufficient points returns 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVoucherUseCase(ctrl)
		h := NewVoucherHandler(uc)

		r := gin.New()
		r.POST("/v1/establishments/:establishment_id/cards/:card_id/vouchers", h.RedeemVoucher)

		uc.EXPECT().Redeem(gomock.Any(), gomock.Any()).Return(entities.Voucher{}, entities.Card{}, entities.DeliveryPayload{}, usecase.ErrInsufficientPoints)

		req := httptest.NewRequest(http.MethodPost, "/v1/establishments/est-1/cards/card-1/vouchers", bytes.NewBufferString(`{"user_id":"user-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "INSUFFICIENT_POINTS" {
			t.Fatalf("unexpected error code: %s", w.Body.String())
		}
	})

	t.Run("success returns voucher, card and delivery payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVoucherUseCase(ctrl)
		h := NewVoucherHandler(uc)

		r := gin.New()
		r.POST("/v1/establishments/:establishment_id/cards/:card_id/vouchers", h.RedeemVoucher)

		voucher := entities.Voucher{ID: "v-1", CardID: "card-1", Status: entities.VoucherStatusEnviado, Message: "Parabens Maria!", Phone: "11988887777"}
		card := entities.Card{ID: "card-1", Points: 3}
		delivery := entities.NewDeliveryPayload("11988887777", "Parabens Maria!")
		uc.EXPECT().Redeem(gomock.Any(), usecase.RedeemInput{
			EstablishmentID: "est-1",
			CardID:          "card-1",
			UserID:          "user-1",
			CustomMessage:   "",
		}).Return(voucher, card, delivery, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/establishments/est-1/cards/card-1/vouchers", bytes.NewBufferString(`{"user_id":"user-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		deliveryBody, _ := body["delivery"].(map[string]any)
		if deliveryBody["whatsapp_link"] != delivery.WhatsAppLink {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestVoucherHandler_ListCardVouchers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("card of another establishment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVoucherUseCase(ctrl)
		h := NewVoucherHandler(uc)

		r := gin.New()
		r.GET("/v1/establishments/:establishment_id/cards/:card_id/vouchers", h.ListCardVouchers)

		uc.EXPECT().ListByCard(gomock.Any(), "est-1", "card-1").Return(nil, usecase.ErrCardForbidden)

		req := httptest.NewRequest(http.MethodGet, "/v1/establishments/est-1/cards/card-1/vouchers", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVoucherUseCase(ctrl)
		h := NewVoucherHandler(uc)

		r := gin.New()
		r.GET("/v1/establishments/:establishment_id/cards/:card_id/vouchers", h.ListCardVouchers)

		uc.EXPECT().ListByCard(gomock.Any(), "est-1", "card-1").Return([]entities.Voucher{{ID: "v-1", CardID: "card-1"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/establishments/est-1/cards/card-1/vouchers", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["card_id"] != "card-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestVoucherHandler_ListVouchers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVoucherUseCase(ctrl)
		h := NewVoucherHandler(uc)

		r := gin.New()
		r.GET("/v1/establishments/:establishment_id/vouchers", h.ListVouchers)

		uc.EXPECT().ListByEstablishment(gomock.Any(), "est-1").Return([]entities.Voucher{{ID: "v-1"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/establishments/est-1/vouchers", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
