package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"card_payments/internal/domain/entities"
	mock_interfaces "card_payments/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPaymentIntentUseCase_CreatePaymentIntent(t *testing.T) {
	t.Run("amount below minimum never reaches the gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		// No EXPECT: any call fails the test.
		gateway := mock_interfaces.NewMockIPaymentIntentGateway(ctrl)
		keys := mock_interfaces.NewMockIIdempotencyKeyGenerator(ctrl)
		uc := NewPaymentIntentUseCase(gateway, keys, stripePolicy)

		for _, raw := range []string{"", "0", "10", "49", "-1"} {
			_, err := uc.CreatePaymentIntent(context.Background(), entities.PaymentInput{Amount: raw})
			if _, ok := AsValidationError(err); !ok {
				t.Fatalf("raw %q: expected validation error, got %v", raw, err)
			}
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewPaymentIntentUseCase(nil, nil, stripePolicy)
		_, err := uc.CreatePaymentIntent(context.Background(), entities.PaymentInput{Amount: "1000"})
		if !errors.Is(err, ErrGatewayNotConfigured) {
			t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("success builds provider params", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentIntentGateway(ctrl)
		keys := mock_interfaces.NewMockIIdempotencyKeyGenerator(ctrl)
		uc := NewPaymentIntentUseCase(gateway, keys, stripePolicy)
		uc.now = func() time.Time { return time.UnixMilli(1700000000000) }

		keys.EXPECT().NewKey().Return("key-1")
		gateway.EXPECT().CreatePaymentIntent(gomock.Any(), gomock.AssignableToTypeOf(entities.ProviderCallParams{})).DoAndReturn(
			func(ctx context.Context, p entities.ProviderCallParams) (entities.PaymentResult, error) {
				if p.Amount != 1000 || p.Currency != "eur" || p.IdempotencyKey != "key-1" || p.OrderID != "order_1700000000000" {
					t.Fatalf("unexpected params: %+v", p)
				}
				return entities.PaymentResult{ID: "pi_123", ClientSecret: "pi_123_secret_abc", Status: "requires_payment_method"}, nil
			},
		)

		res, err := uc.CreatePaymentIntent(context.Background(), entities.PaymentInput{Amount: "1000", Currency: "eur"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "pi_123" || res.ClientSecret != "pi_123_secret_abc" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("provider call survives caller cancellation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentIntentGateway(ctrl)
		keys := mock_interfaces.NewMockIIdempotencyKeyGenerator(ctrl)
		uc := NewPaymentIntentUseCase(gateway, keys, stripePolicy)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		keys.EXPECT().NewKey().Return("key-2")
		gateway.EXPECT().CreatePaymentIntent(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, _ entities.ProviderCallParams) (entities.PaymentResult, error) {
				if ctx.Err() != nil {
					t.Fatalf("expected detached context, got %v", ctx.Err())
				}
				return entities.PaymentResult{ID: "pi_1"}, nil
			},
		)

		if _, err := uc.CreatePaymentIntent(ctx, entities.PaymentInput{Amount: "50"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("gateway error is returned unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentIntentGateway(ctrl)
		keys := mock_interfaces.NewMockIIdempotencyKeyGenerator(ctrl)
		uc := NewPaymentIntentUseCase(gateway, keys, stripePolicy)

		pe := entities.NewProviderError(entities.ProviderStripe, 402, nil, "Your card was declined.")
		keys.EXPECT().NewKey().Return("key-3")
		gateway.EXPECT().CreatePaymentIntent(gomock.Any(), gomock.Any()).Return(entities.PaymentResult{}, pe).Times(1)

		_, err := uc.CreatePaymentIntent(context.Background(), entities.PaymentInput{Amount: "1000"})
		if got, ok := entities.AsProviderError(err); !ok || got != pe {
			t.Fatalf("expected provider error, got %v", err)
		}
	})
}

func TestPaymentIntentUseCase_GetPaymentStatus(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc := NewPaymentIntentUseCase(nil, nil, stripePolicy)
		_, err := uc.GetPaymentStatus(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidPaymentID) {
			t.Fatalf("expected ErrInvalidPaymentID, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentIntentGateway(ctrl)
		uc := NewPaymentIntentUseCase(gateway, nil, stripePolicy)

		gateway.EXPECT().GetPaymentIntent(gomock.Any(), "pi_123").Return(entities.PaymentResult{ID: "pi_123", Status: "succeeded", Amount: 1000, Currency: "eur"}, nil)

		res, err := uc.GetPaymentStatus(context.Background(), " pi_123 ")
		if err != nil || res.Status != "succeeded" || res.Amount != 1000 {
			t.Fatalf("got %+v err=%v", res, err)
		}
	})

	t.Run("lookup failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentIntentGateway(ctrl)
		uc := NewPaymentIntentUseCase(gateway, nil, stripePolicy)

		gateway.EXPECT().GetPaymentIntent(gomock.Any(), "pi_x").Return(entities.PaymentResult{}, errors.New("boom"))

		_, err := uc.GetPaymentStatus(context.Background(), "pi_x")
		if err == nil || !strings.Contains(err.Error(), "boom") {
			t.Fatalf("expected boom, got %v", err)
		}
	})
}
