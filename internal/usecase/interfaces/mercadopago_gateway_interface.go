package interfaces

import (
	"context"
	"encoding/json"
)

// IMercadoPagoGateway abstracts the Mercado Pago payments API.
//
// The payload is the provider's own request schema; the raw provider response is
// returned alongside the id/status pair so callers can normalize amounts from it.
type IMercadoPagoGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
	GetPayment(ctx context.Context, providerPaymentID string) (providerStatus string, providerResponse json.RawMessage, err error)
}
