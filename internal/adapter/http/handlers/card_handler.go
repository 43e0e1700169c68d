package handlers

import (
	"net/http"

	"cartao_fidelidade/internal/adapter/http/dto/request"
	"cartao_fidelidade/internal/adapter/http/dto/response"
	"cartao_fidelidade/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CardHandler handles client registration, listing, the public slug search and
// card deletion.

type CardHandler struct {
	usecase usecase.ICardUseCase
}

func NewCardHandler(uc usecase.ICardUseCase) *CardHandler {
	return &CardHandler{usecase: uc}
}

// RegisterCard is the find-or-create endpoint. Re-registering a known phone
// returns 200 with already_existed=true instead of 201.
func (h *CardHandler) RegisterCard(c *gin.Context) {
	var payload request.RegisterCardRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	card, alreadyExisted, err := h.usecase.Register(c.Request.Context(), usecase.RegisterCardInput{
		EstablishmentID: c.Param("establishment_id"),
		Name:            payload.Name,
		Phone:           payload.Phone,
		InitialPoints:   payload.InitialPoints,
	})
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status := http.StatusCreated
	if alreadyExisted {
		status = http.StatusOK
	}
	c.JSON(status, response.RegisterCardResponse{
		Card:           response.FromCard(card),
		AlreadyExisted: alreadyExisted,
	})
}

func (h *CardHandler) ListCards(c *gin.Context) {
	cards, err := h.usecase.ListByEstablishment(c.Request.Context(), c.Param("establishment_id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCards(cards))
}

// SearchCards is the public lookup by establishment slug. Query params: name
// and/or phone, at least one required.
func (h *CardHandler) SearchCards(c *gin.Context) {
	est, cards, err := h.usecase.Search(c.Request.Context(), c.Param("slug"), c.Query("name"), c.Query("phone"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.SearchResponse{
		Establishment: response.FromEstablishmentPublic(est),
		Cards:         response.FromCards(cards),
	})
}

func (h *CardHandler) DeleteCard(c *gin.Context) {
	err := h.usecase.Delete(c.Request.Context(), c.Param("establishment_id"), c.Param("card_id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}
