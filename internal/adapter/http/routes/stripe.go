package routes

import (
	"log"
	"net/http"

	"card_payments/internal/adapter/http/handlers"
	"card_payments/internal/config"
	"card_payments/internal/infrastructure/events"
	"card_payments/internal/infrastructure/payments"
	"card_payments/internal/usecase"
	"card_payments/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
)

const (
	PathCreatePaymentIntent      = "/create-payment-intent"
	PathPaymentIntentStatus      = "/payment-status/:paymentIntentId"
	PathWebhook                  = "/webhook"
	PathCreateMercadoPagoPayment = "/create-mercadopago-payment"
	PathMercadoPagoPayment       = "/mercadopago-payment/:id"
)

type StripeHandlers struct {
	Health        *handlers.HealthHandler
	PaymentIntent *handlers.PaymentIntentHandler
	Webhook       *handlers.WebhookHandler
	MercadoPago   *handlers.MercadoPagoPaymentHandler
}

// RunStripe wires the charge service from cfg and blocks serving it.
func RunStripe(cfg *config.Config) {
	run(NewStripeRouter(NewStripeHandlers(cfg)), cfg.Port)
}

func NewStripeRouter(h StripeHandlers) *gin.Engine {
	router := newRouter(SwaggerInstanceStripe)

	router.GET("/", h.Health.Root)
	router.POST(PathCreatePaymentIntent, h.PaymentIntent.CreatePaymentIntent)
	router.GET(PathPaymentIntentStatus, h.PaymentIntent.GetPaymentStatus)
	router.POST(PathWebhook, h.Webhook.HandleStripeWebhook)
	router.POST(PathCreateMercadoPagoPayment, h.MercadoPago.CreatePayment)
	router.GET(PathMercadoPagoPayment, h.MercadoPago.GetPayment)
	return router
}

// NewStripeHandlers builds the charge service's handlers. A provider that cannot
// be configured is logged and left nil; its routes answer with an error instead of
// keeping the service down.
func NewStripeHandlers(cfg *config.Config) StripeHandlers {
	var intentGateway interfaces.IPaymentIntentGateway
	stripeGateway, err := payments.NewStripeGateway(cfg.Stripe.SecretKey, cfg.Stripe.BaseURL, &http.Client{Timeout: cfg.Stripe.HTTPTimeout})
	if err != nil {
		log.Printf("Stripe gateway not configured: %v", err)
	} else {
		intentGateway = stripeGateway
	}

	var verifier interfaces.IWebhookVerifier
	stripeVerifier, err := payments.NewStripeWebhookVerifier(cfg.Stripe.WebhookSecret)
	if err != nil {
		log.Printf("Stripe webhook verifier not configured: %v", err)
	} else {
		verifier = stripeVerifier
	}

	var mpGateway interfaces.IMercadoPagoGateway
	gateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPago.AccessToken, cfg.MercadoPago.MockMode,
		mpconfig.WithHTTPClient(&http.Client{Timeout: cfg.MercadoPago.HTTPTimeout}))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		mpGateway = gateway
	}

	keys := payments.NewUUIDKeyGenerator()
	intentUseCase := usecase.NewPaymentIntentUseCase(intentGateway, keys, cfg.StripePolicy())
	webhookUseCase := usecase.NewWebhookUseCase(verifier, newEventPublisher(cfg.Redis))
	mpUseCase := usecase.NewMercadoPagoPaymentUseCase(mpGateway, cfg.MercadoPagoPolicy(), usecase.MercadoPagoOptions{
		MockMode:        cfg.MercadoPago.MockMode,
		AccessToken:     cfg.MercadoPago.AccessToken,
		TestPayerEmail:  cfg.MercadoPago.TestPayerEmail,
		TestPayerUserID: cfg.MercadoPago.TestPayerUserID,
	})

	return StripeHandlers{
		Health:        handlers.NewStripeHealthHandler(),
		PaymentIntent: handlers.NewPaymentIntentHandler(intentUseCase),
		Webhook:       handlers.NewWebhookHandler(webhookUseCase),
		MercadoPago:   handlers.NewMercadoPagoPaymentHandler(mpUseCase),
	}
}

func newEventPublisher(cfg config.RedisConfig) interfaces.IPaymentEventPublisher {
	if cfg.URL == "" {
		return events.LogPublisher{}
	}
	publisher, err := events.NewRedisPublisher(cfg.URL, cfg.QueueName)
	if err != nil {
		log.Printf("Redis publisher not available, events will only be logged: %v", err)
		return events.LogPublisher{}
	}
	return publisher
}
