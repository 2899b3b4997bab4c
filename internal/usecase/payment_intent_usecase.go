package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"card_payments/internal/domain/entities"
	"card_payments/internal/usecase/interfaces"
)

// IPaymentIntentUseCase creates payment intents confirmed later by the client and
// reports their status.
type IPaymentIntentUseCase interface {
	CreatePaymentIntent(ctx context.Context, in entities.PaymentInput) (entities.PaymentResult, error)
	GetPaymentStatus(ctx context.Context, id string) (entities.PaymentResult, error)
}

type PaymentIntentUseCase struct {
	gateway interfaces.IPaymentIntentGateway
	keys    interfaces.IIdempotencyKeyGenerator
	policy  entities.PaymentPolicy
	now     func() time.Time
}

var _ IPaymentIntentUseCase = (*PaymentIntentUseCase)(nil)

func NewPaymentIntentUseCase(gateway interfaces.IPaymentIntentGateway, keys interfaces.IIdempotencyKeyGenerator, policy entities.PaymentPolicy) *PaymentIntentUseCase {
	return &PaymentIntentUseCase{gateway: gateway, keys: keys, policy: policy, now: time.Now}
}

func (u *PaymentIntentUseCase) CreatePaymentIntent(ctx context.Context, in entities.PaymentInput) (entities.PaymentResult, error) {
	log.Printf("[payment][usecase] create-intent start raw_amount=%q currency=%q", in.Amount, in.Currency)
	req, err := ValidatePayment(in, u.policy, "")
	if err != nil {
		log.Printf("[payment][usecase] create-intent invalid input err=%v", err)
		return entities.PaymentResult{}, err
	}
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured")
		return entities.PaymentResult{}, ErrGatewayNotConfigured
	}

	orderID := fmt.Sprintf("order_%d", u.now().UnixMilli())
	params := entities.NewProviderCallParams(req, u.keys.NewKey(), orderID)

	// The provider call outlives a disconnected caller.
	result, err := u.gateway.CreatePaymentIntent(context.WithoutCancel(ctx), params)
	if err != nil {
		log.Printf("[payment][usecase] create-intent gateway failed order_id=%s err=%v", orderID, err)
		return entities.PaymentResult{}, err
	}
	log.Printf("[payment][usecase] create-intent success payment_intent_id=%s status=%s", result.ID, result.Status)
	return result, nil
}

func (u *PaymentIntentUseCase) GetPaymentStatus(ctx context.Context, id string) (entities.PaymentResult, error) {
	id, err := requireID(id)
	if err != nil {
		return entities.PaymentResult{}, err
	}
	if u.gateway == nil {
		return entities.PaymentResult{}, ErrGatewayNotConfigured
	}

	result, err := u.gateway.GetPaymentIntent(context.WithoutCancel(ctx), id)
	if err != nil {
		log.Printf("[payment][usecase] payment-status failed payment_intent_id=%s err=%v", id, err)
		return entities.PaymentResult{}, err
	}
	return result, nil
}
