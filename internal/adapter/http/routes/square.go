package routes

import (
	"context"
	"log"

	"card_payments/internal/adapter/http/handlers"
	"card_payments/internal/adapter/persistence/repository"
	"card_payments/internal/config"
	"card_payments/internal/infrastructure/database"
	"card_payments/internal/infrastructure/payments"
	"card_payments/internal/usecase"
	"card_payments/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

const (
	PathCreateSquarePayment  = "/create-square-payment"
	PathCreateSquareCustomer = "/create-square-customer"
	PathStoreCard            = "/store-card"
	PathPayWithStoredCard    = "/pay-with-stored-card"
	PathSquarePaymentStatus  = "/payment-status/:id"
	PathSquareLocations      = "/square-locations"
)

type SquareHandlers struct {
	Health  *handlers.HealthHandler
	Payment *handlers.SquarePaymentHandler
}

// RunSquare wires the point-of-sale service from cfg and blocks serving it.
func RunSquare(cfg *config.Config) {
	run(NewSquareRouter(NewSquareHandlers(cfg)), cfg.Port)
}

func NewSquareRouter(h SquareHandlers) *gin.Engine {
	router := newRouter(SwaggerInstanceSquare)

	router.GET("/", h.Health.Root)
	router.POST(PathCreateSquarePayment, h.Payment.CreatePayment)
	router.POST(PathCreateSquareCustomer, h.Payment.CreateCustomer)
	router.POST(PathStoreCard, h.Payment.StoreCard)
	router.POST(PathPayWithStoredCard, h.Payment.PayWithStoredCard)
	router.GET(PathSquarePaymentStatus, h.Payment.GetPayment)
	router.GET(PathSquareLocations, h.Payment.ListLocations)
	return router
}

func NewSquareHandlers(cfg *config.Config) SquareHandlers {
	var gateway interfaces.ISquareGateway
	squareGateway, err := payments.NewSquareGateway(payments.SquareOptions{
		AccessToken: cfg.Square.AccessToken,
		Environment: cfg.Square.Environment,
		BaseURL:     cfg.Square.BaseURL,
		APIVersion:  cfg.Square.APIVersion,
		Timeout:     cfg.Square.HTTPTimeout,
	})
	if err != nil {
		log.Printf("Square gateway not configured: %v", err)
	} else {
		gateway = squareGateway
	}
	if cfg.Square.LocationID == "" {
		log.Printf("SQUARE_LOCATION_ID not set; payments must carry a locationId")
	}

	uc := usecase.NewSquarePaymentUseCase(gateway, payments.NewUUIDKeyGenerator(), newTransactionRecorder(cfg), cfg.SquarePolicy(), cfg.Square.LocationID)

	return SquareHandlers{
		Health:  handlers.NewSquareHealthHandler(cfg.Square.Environment, cfg.Square.LocationID),
		Payment: handlers.NewSquarePaymentHandler(uc),
	}
}

func newTransactionRecorder(cfg *config.Config) interfaces.ITransactionRecorder {
	if cfg.Transactions.Store != config.TransactionStoreDynamoDB {
		return repository.LogTransactionRecorder{}
	}
	ddb, err := database.ConnectDynamoDB(context.Background(), cfg.DynamoDB)
	if err != nil {
		log.Printf("DynamoDB not available, transactions will only be logged: %v", err)
		return repository.LogTransactionRecorder{}
	}
	return repository.NewTransactionDynamoRepository(ddb, cfg.Transactions.Table)
}
