package handlers

import (
	"log"
	"net/http"

	"cartao_fidelidade/internal/adapter/http/dto/request"
	"cartao_fidelidade/internal/adapter/http/dto/response"
	"cartao_fidelidade/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PointsHandler handles ledger operations: credits, the movement statement and
// the counter reconciliation.

type PointsHandler struct {
	usecase usecase.IPointsUseCase
}

func NewPointsHandler(uc usecase.IPointsUseCase) *PointsHandler {
	return &PointsHandler{usecase: uc}
}

func (h *PointsHandler) AddPoints(c *gin.Context) {
	var payload request.AddPointsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	mov, card, err := h.usecase.Credit(c.Request.Context(), usecase.CreditInput{
		EstablishmentID: c.Param("establishment_id"),
		CardID:          c.Param("card_id"),
		Points:          payload.Points,
		Description:     payload.Description,
	})
	if err != nil {
		log.Printf("[points][handler] credit failed card_id=%s err=%v", c.Param("card_id"), err)
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.AddPointsResponse{
		Movement: response.FromMovement(mov),
		Card:     response.FromCard(card),
	})
}

func (h *PointsHandler) GetStatement(c *gin.Context) {
	movements, err := h.usecase.Statement(c.Request.Context(), c.Param("establishment_id"), c.Param("card_id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMovements(movements))
}

func (h *PointsHandler) ReconcileCard(c *gin.Context) {
	result, err := h.usecase.Reconcile(c.Request.Context(), c.Param("establishment_id"), c.Param("card_id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, result)
}
