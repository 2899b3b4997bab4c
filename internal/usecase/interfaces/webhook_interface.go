package interfaces

import (
	"context"

	"card_payments/internal/domain/entities"
)

// IWebhookVerifier authenticates a provider notification against the raw,
// unparsed body. An event is only returned when the signature matches.
type IWebhookVerifier interface {
	Verify(payload []byte, signatureHeader string) (entities.WebhookEvent, error)
}

// IPaymentEventPublisher receives verified payment events for downstream handling.
type IPaymentEventPublisher interface {
	Publish(ctx context.Context, event entities.WebhookEvent) error
}
