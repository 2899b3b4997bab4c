package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"card_payments/internal/domain/entities"
	"card_payments/internal/usecase/interfaces"

	"github.com/go-redis/redis/v8"
)

var (
	_ interfaces.IPaymentEventPublisher = LogPublisher{}
	_ interfaces.IPaymentEventPublisher = (*RedisPublisher)(nil)
)

type fakePusher struct {
	key    string
	values []interface{}
	err    error
}

func (f *fakePusher) RPush(_ context.Context, key string, values ...interface{}) *redis.IntCmd {
	f.key = key
	f.values = append(f.values, values...)
	return redis.NewIntResult(int64(len(f.values)), f.err)
}

func TestRedisPublisher_Publish(t *testing.T) {
	t.Run("pushes the event as json", func(t *testing.T) {
		fake := &fakePusher{}
		p := newRedisPublisher(fake, "")
		p.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }

		err := p.Publish(context.Background(), entities.WebhookEvent{
			ID:       "evt_1",
			Provider: entities.ProviderStripe,
			Kind:     entities.WebhookEventPaymentSucceeded,
			Type:     "payment_intent.succeeded",
			ObjectID: "pi_1",
			Payload:  json.RawMessage(`{"id":"evt_1"}`),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fake.key != DefaultQueueName || len(fake.values) != 1 {
			t.Fatalf("unexpected push key=%s values=%d", fake.key, len(fake.values))
		}

		var m message
		if err := json.Unmarshal(fake.values[0].([]byte), &m); err != nil {
			t.Fatalf("invalid message: %v", err)
		}
		if m.ID != "evt_1" || m.Kind != "payment_succeeded" || m.ObjectID != "pi_1" || !m.ReceivedAt.Equal(p.now()) {
			t.Fatalf("unexpected message: %+v", m)
		}
	})

	t.Run("redis errors are returned", func(t *testing.T) {
		fake := &fakePusher{err: errors.New("connection refused")}
		p := newRedisPublisher(fake, "custom")

		err := p.Publish(context.Background(), entities.WebhookEvent{ID: "evt_2"})
		if err == nil || fake.key != "custom" {
			t.Fatalf("expected error on custom queue, got key=%s err=%v", fake.key, err)
		}
	})
}

func TestNewRedisPublisher_InvalidURL(t *testing.T) {
	if _, err := NewRedisPublisher("not a url", ""); err == nil {
		t.Fatalf("expected error for invalid url")
	}
}

func TestLogPublisher(t *testing.T) {
	if err := (LogPublisher{}).Publish(context.Background(), entities.WebhookEvent{ID: "evt"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
