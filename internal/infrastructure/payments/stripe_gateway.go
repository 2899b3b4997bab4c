package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"card_payments/internal/domain/entities"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

var ErrMissingStripeSecretKey = errors.New("missing STRIPE_SECRET_KEY")

// StripeGateway creates and reads payment intents through a per-instance client;
// the package level stripe.Key is never touched.
type StripeGateway struct {
	client *client.API
}

// NewStripeGateway builds a client with network retries disabled. baseURL and
// httpClient are optional and exist for pointing the client at a fake backend.
func NewStripeGateway(secretKey, baseURL string, httpClient *http.Client) (*StripeGateway, error) {
	secretKey = strings.TrimSpace(secretKey)
	if secretKey == "" {
		log.Printf("[payment][stripe] missing STRIPE_SECRET_KEY")
		return nil, ErrMissingStripeSecretKey
	}

	cfg := &stripe.BackendConfig{
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelError},
	}
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}
	if baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/"); baseURL != "" {
		cfg.URL = stripe.String(baseURL)
	}

	sc := &client.API{}
	sc.Init(secretKey, &stripe.Backends{
		API:     stripe.GetBackendWithConfig(stripe.APIBackend, cfg),
		Connect: stripe.GetBackendWithConfig(stripe.ConnectBackend, cfg),
		Uploads: stripe.GetBackendWithConfig(stripe.UploadsBackend, cfg),
	})
	log.Printf("[payment][stripe] client initialized")
	return &StripeGateway{client: sc}, nil
}

func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, p entities.ProviderCallParams) (entities.PaymentResult, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(p.Amount),
		Currency: stripe.String(p.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	if p.OrderID != "" {
		params.AddMetadata("order_id", p.OrderID)
	}
	if p.CustomerID != "" {
		params.Customer = stripe.String(p.CustomerID)
	}
	if p.Note != "" {
		params.Description = stripe.String(p.Note)
	}
	if p.IdempotencyKey != "" {
		params.IdempotencyKey = stripe.String(p.IdempotencyKey)
	}
	params.Context = ctx

	log.Printf("[payment][stripe] create intent start amount=%d currency=%s order_id=%s", p.Amount, p.Currency, p.OrderID)
	pi, err := g.client.PaymentIntents.New(params)
	if err != nil {
		log.Printf("[payment][stripe] create intent failed order_id=%s err=%v", p.OrderID, err)
		return entities.PaymentResult{}, mapStripeError(err)
	}
	log.Printf("[payment][stripe] create intent success payment_intent_id=%s status=%s", pi.ID, pi.Status)
	return stripeResult(pi), nil
}

func (g *StripeGateway) GetPaymentIntent(ctx context.Context, id string) (entities.PaymentResult, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := g.client.PaymentIntents.Get(id, params)
	if err != nil {
		log.Printf("[payment][stripe] get intent failed payment_intent_id=%s err=%v", id, err)
		return entities.PaymentResult{}, mapStripeError(err)
	}
	return stripeResult(pi), nil
}

func stripeResult(pi *stripe.PaymentIntent) entities.PaymentResult {
	status := string(pi.Status)
	res := entities.PaymentResult{
		Provider:     entities.ProviderStripe,
		ID:           pi.ID,
		Status:       status,
		Outcome:      entities.OutcomeFor(entities.ProviderStripe, status),
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
		ClientSecret: pi.ClientSecret,
	}
	if pi.Customer != nil {
		res.CustomerID = pi.Customer.ID
	}
	if pi.Created > 0 {
		res.CreatedAt = time.Unix(pi.Created, 0).UTC().Format(time.RFC3339)
	}
	if pi.LatestCharge != nil {
		res.ReceiptURL = pi.LatestCharge.ReceiptURL
		res.ReceiptNumber = pi.LatestCharge.ReceiptNumber
	}
	return res
}

// mapStripeError keeps stripe-go types out of the use case layer. API errors become
// provider rejections; anything else never got a usable answer from Stripe.
func mapStripeError(err error) error {
	var se *stripe.Error
	if errors.As(err, &se) {
		status := se.HTTPStatusCode
		if status == 0 {
			status = http.StatusBadGateway
		}
		detail := entities.ProviderErrorDetail{
			Category: string(se.Type),
			Code:     string(se.Code),
			Detail:   se.Msg,
			Field:    se.Param,
		}
		return entities.NewProviderError(entities.ProviderStripe, status, []entities.ProviderErrorDetail{detail}, "")
	}
	return fmt.Errorf("%w: %v", entities.ErrProviderUnavailable, err)
}
