package handlers

import (
	"log"
	"net/http"

	"cartao_fidelidade/internal/adapter/http/dto/request"
	"cartao_fidelidade/internal/adapter/http/dto/response"
	"cartao_fidelidade/internal/usecase"

	"github.com/gin-gonic/gin"
)

// VoucherHandler handles voucher redemption and history.

type VoucherHandler struct {
	usecase usecase.IVoucherUseCase
}

func NewVoucherHandler(uc usecase.IVoucherUseCase) *VoucherHandler {
	return &VoucherHandler{usecase: uc}
}

// RedeemVoucher consumes the establishment threshold from the card and returns
// the WhatsApp delivery payload. The service never sends the message itself.
func (h *VoucherHandler) RedeemVoucher(c *gin.Context) {
	var payload request.RedeemVoucherRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	voucher, card, delivery, err := h.usecase.Redeem(c.Request.Context(), usecase.RedeemInput{
		EstablishmentID: c.Param("establishment_id"),
		CardID:          c.Param("card_id"),
		UserID:          payload.UserID,
		CustomMessage:   payload.CustomMessage,
	})
	if err != nil {
		log.Printf("[voucher][handler] redeem failed card_id=%s err=%v", c.Param("card_id"), err)
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.RedeemVoucherResponse{
		Voucher:  response.FromVoucher(voucher),
		Card:     response.FromCard(card),
		Delivery: response.FromDeliveryPayload(delivery),
	})
}

func (h *VoucherHandler) ListVouchers(c *gin.Context) {
	vouchers, err := h.usecase.ListByEstablishment(c.Request.Context(), c.Param("establishment_id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromVouchers(vouchers))
}

func (h *VoucherHandler) ListCardVouchers(c *gin.Context) {
	vouchers, err := h.usecase.ListByCard(c.Request.Context(), c.Param("establishment_id"), c.Param("card_id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromVouchers(vouchers))
}
