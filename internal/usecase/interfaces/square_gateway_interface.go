package interfaces

import (
	"context"

	"card_payments/internal/domain/entities"
)

// ISquareGateway abstracts a point-of-sale provider with customer and card vaulting.
//
// Mutating calls take the idempotency key explicitly so every attempt can be
// deduplicated at the provider's edge.
type ISquareGateway interface {
	CreatePayment(ctx context.Context, params entities.ProviderCallParams) (entities.PaymentResult, error)
	GetPayment(ctx context.Context, id string) (entities.PaymentResult, error)
	CreateCustomer(ctx context.Context, idempotencyKey string, in entities.CustomerInput) (entities.Customer, error)
	CreateCard(ctx context.Context, idempotencyKey string, in entities.CardInput) (entities.Card, error)
	ListLocations(ctx context.Context) ([]entities.Location, error)
}
