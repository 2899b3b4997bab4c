package payments

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"card_payments/internal/domain/entities"

	"github.com/stripe/stripe-go/v79/webhook"
)

var ErrMissingWebhookSecret = errors.New("missing STRIPE_WEBHOOK_SECRET")

// StripeWebhookVerifier checks the Stripe-Signature header against the raw body
// before anything reads it as JSON.
type StripeWebhookVerifier struct {
	secret    string
	tolerance time.Duration
}

func NewStripeWebhookVerifier(secret string) (*StripeWebhookVerifier, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil, ErrMissingWebhookSecret
	}
	return &StripeWebhookVerifier{secret: secret, tolerance: webhook.DefaultTolerance}, nil
}

func (v *StripeWebhookVerifier) Verify(payload []byte, signatureHeader string) (entities.WebhookEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signatureHeader, v.secret, webhook.ConstructEventOptions{
		Tolerance:                v.tolerance,
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return entities.WebhookEvent{}, err
	}

	out := entities.WebhookEvent{
		ID:       event.ID,
		Provider: entities.ProviderStripe,
		Type:     string(event.Type),
		Kind:     stripeEventKind(string(event.Type)),
		Payload:  json.RawMessage(payload),
	}
	if event.Data != nil {
		if id, ok := event.Data.Object["id"].(string); ok {
			out.ObjectID = id
		}
	}
	return out, nil
}

func stripeEventKind(eventType string) entities.WebhookEventKind {
	switch eventType {
	case "payment_intent.succeeded":
		return entities.WebhookEventPaymentSucceeded
	case "payment_intent.payment_failed":
		return entities.WebhookEventPaymentFailed
	}
	return entities.WebhookEventOther
}
