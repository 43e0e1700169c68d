package handlers

import (
	"log"
	"net/http"

	"cartao_fidelidade/internal/adapter/http/dto/request"
	"cartao_fidelidade/internal/adapter/http/dto/response"
	"cartao_fidelidade/internal/usecase"

	"github.com/gin-gonic/gin"
)

// EstablishmentHandler handles tenant registration, the public slug view and
// the administrative cascade deletion.

type EstablishmentHandler struct {
	usecase usecase.IEstablishmentUseCase
}

func NewEstablishmentHandler(uc usecase.IEstablishmentUseCase) *EstablishmentHandler {
	return &EstablishmentHandler{usecase: uc}
}

func (h *EstablishmentHandler) CreateEstablishment(c *gin.Context) {
	var payload request.CreateEstablishmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	est, owner, err := h.usecase.Create(c.Request.Context(), usecase.CreateEstablishmentInput{
		Name:                   payload.Name,
		Email:                  payload.Email,
		Phone:                  payload.Phone,
		PointsForVoucher:       payload.PointsForVoucher,
		VoucherMessageTemplate: payload.VoucherMessageTemplate,
		LogoKey:                payload.LogoKey,
		OwnerName:              payload.OwnerName,
		OwnerEmail:             payload.OwnerEmail,
	})
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.CreateEstablishmentResponse{
		Establishment: response.FromEstablishment(est),
		Owner:         response.FromUser(owner),
	})
}

func (h *EstablishmentHandler) GetEstablishmentBySlug(c *gin.Context) {
	est, err := h.usecase.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstablishmentPublic(est))
}

func (h *EstablishmentHandler) ListUsers(c *gin.Context) {
	users, err := h.usecase.ListUsers(c.Request.Context(), c.Param("establishment_id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUsers(users))
}

// DeleteEstablishment removes the whole tenant, all-or-nothing.
func (h *EstablishmentHandler) DeleteEstablishment(c *gin.Context) {
	id := c.Param("establishment_id")
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		log.Printf("[establishment][handler] delete failed establishment_id=%s err=%v", id, err)
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}
