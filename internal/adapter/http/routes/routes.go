package routes

import (
	"log"
	"strconv"

	_ "cartao_fidelidade/docs" // swag-generated OpenAPI registration
	"cartao_fidelidade/internal/adapter/http/handlers"
	"cartao_fidelidade/internal/adapter/persistence/repository"
	"cartao_fidelidade/internal/infrastructure/database"
	"cartao_fidelidade/internal/infrastructure/storage"
	"cartao_fidelidade/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	estRepo := repository.NewEstablishmentDynamoRepository(ddb)
	userRepo := repository.NewUserDynamoRepository(ddb)
	cardRepo := repository.NewCardDynamoRepository(ddb)
	ledgerRepo := repository.NewLedgerDynamoRepository(ddb)
	voucherRepo := repository.NewVoucherDynamoRepository(ddb)
	paymentRepo := repository.NewPaymentDynamoRepository(ddb)

	logoStorage, err := storage.NewS3LogoStorage()
	if err != nil {
		log.Fatalf("Failed to configure logo storage: %v", err)
	}

	establishmentUseCase := usecase.NewEstablishmentUseCase(estRepo, userRepo, logoStorage)
	subscriptionUseCase := usecase.NewSubscriptionUseCase(estRepo, paymentRepo)
	cardUseCase := usecase.NewCardUseCase(cardRepo, estRepo)
	pointsUseCase := usecase.NewPointsUseCase(ledgerRepo, cardRepo, estRepo)
	voucherUseCase := usecase.NewVoucherUseCase(ledgerRepo, cardRepo, estRepo, voucherRepo, userRepo)

	establishmentHandler := handlers.NewEstablishmentHandler(establishmentUseCase)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionUseCase)
	cardHandler := handlers.NewCardHandler(cardUseCase)
	pointsHandler := handlers.NewPointsHandler(pointsUseCase)
	voucherHandler := handlers.NewVoucherHandler(voucherUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addLoyaltyRoutes(v1, establishmentHandler, subscriptionHandler, cardHandler, pointsHandler, voucherHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
