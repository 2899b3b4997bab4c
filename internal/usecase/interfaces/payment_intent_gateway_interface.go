package interfaces

import (
	"context"

	"card_payments/internal/domain/entities"
)

// IPaymentIntentGateway abstracts a charge-style provider (e.g. Stripe) that
// creates payment intents confirmed later by the client.
type IPaymentIntentGateway interface {
	CreatePaymentIntent(ctx context.Context, params entities.ProviderCallParams) (entities.PaymentResult, error)
	GetPaymentIntent(ctx context.Context, id string) (entities.PaymentResult, error)
}
