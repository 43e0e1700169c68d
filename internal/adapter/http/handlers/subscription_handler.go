package handlers

import (
	"log"
	"net/http"

	"cartao_fidelidade/internal/adapter/http/dto/request"
	"cartao_fidelidade/internal/adapter/http/dto/response"
	"cartao_fidelidade/internal/usecase"

	"github.com/gin-gonic/gin"
)

// SubscriptionHandler handles the administrative payment confirmation and the
// payment history.

type SubscriptionHandler struct {
	usecase usecase.ISubscriptionUseCase
}

func NewSubscriptionHandler(uc usecase.ISubscriptionUseCase) *SubscriptionHandler {
	return &SubscriptionHandler{usecase: uc}
}

// ConfirmPayment records a subscription renewal and returns the new access
// window. Body is optional; an empty payment_date means "now".
func (h *SubscriptionHandler) ConfirmPayment(c *gin.Context) {
	var payload request.ConfirmPaymentRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
			return
		}
	}

	paymentDate, err := payload.ResolvePaymentDate()
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	establishmentID := c.Param("establishment_id")
	payment, validUntil, err := h.usecase.ConfirmPayment(c.Request.Context(), establishmentID, paymentDate)
	if err != nil {
		log.Printf("[subscription][handler] confirm failed establishment_id=%s err=%v", establishmentID, err)
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.ConfirmPaymentResponse{
		Payment:                response.FromPayment(payment),
		SubscriptionValidUntil: validUntil,
	})
}

func (h *SubscriptionHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.ListPayments(c.Request.Context(), c.Param("establishment_id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(payments))
}
