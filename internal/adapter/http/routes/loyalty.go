package routes

import (
	"cartao_fidelidade/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstablishments = "/establishments"
	PathCardSearch     = "/cards/search"
)

func addLoyaltyRoutes(
	rg *gin.RouterGroup,
	establishmentHandler *handlers.EstablishmentHandler,
	subscriptionHandler *handlers.SubscriptionHandler,
	cardHandler *handlers.CardHandler,
	pointsHandler *handlers.PointsHandler,
	voucherHandler *handlers.VoucherHandler,
) {
	establishments := rg.Group(PathEstablishments)
	{
		establishments.POST("", establishmentHandler.CreateEstablishment)
		establishments.GET("/slug/:slug", establishmentHandler.GetEstablishmentBySlug)
		establishments.DELETE("/:establishment_id", establishmentHandler.DeleteEstablishment)

		establishments.POST("/:establishment_id/payments", subscriptionHandler.ConfirmPayment)
		establishments.GET("/:establishment_id/payments", subscriptionHandler.ListPayments)

		establishments.GET("/:establishment_id/users", establishmentHandler.ListUsers)

		establishments.POST("/:establishment_id/cards", cardHandler.RegisterCard)
		establishments.GET("/:establishment_id/cards", cardHandler.ListCards)
		establishments.DELETE("/:establishment_id/cards/:card_id", cardHandler.DeleteCard)

		establishments.POST("/:establishment_id/cards/:card_id/points", pointsHandler.AddPoints)
		establishments.GET("/:establishment_id/cards/:card_id/movements", pointsHandler.GetStatement)
		establishments.POST("/:establishment_id/cards/:card_id/reconcile", pointsHandler.ReconcileCard)

		establishments.POST("/:establishment_id/cards/:card_id/vouchers", voucherHandler.RedeemVoucher)
		establishments.GET("/:establishment_id/cards/:card_id/vouchers", voucherHandler.ListCardVouchers)
		establishments.GET("/:establishment_id/vouchers", voucherHandler.ListVouchers)
	}

	// Busca publica pelo slug do estabelecimento.
	rg.GET(PathCardSearch+"/:slug", cardHandler.SearchCards)
}
