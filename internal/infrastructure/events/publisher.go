package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"card_payments/internal/domain/entities"

	"github.com/go-redis/redis/v8"
)

const DefaultQueueName = "payment_events"

// LogPublisher only logs verified events.
type LogPublisher struct{}

func (LogPublisher) Publish(_ context.Context, event entities.WebhookEvent) error {
	log.Printf("[payment][events] %s event_id=%s type=%s object_id=%s", event.Kind, event.ID, event.Type, event.ObjectID)
	return nil
}

// message is the JSON pushed onto the queue.
type message struct {
	ID         string          `json:"id"`
	Provider   string          `json:"provider"`
	Kind       string          `json:"kind"`
	Type       string          `json:"type"`
	ObjectID   string          `json:"object_id,omitempty"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	ReceivedAt time.Time       `json:"received_at"`
}

type listPusher interface {
	RPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
}

// RedisPublisher appends verified events to a Redis list for downstream workers.
type RedisPublisher struct {
	client    listPusher
	queueName string
	now       func() time.Time
}

func NewRedisPublisher(redisURL, queueName string) (*RedisPublisher, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid Redis URL: %v", err)
	}

	client := redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}
	log.Printf("[payment][events] redis publisher ready queue=%s", queueOrDefault(queueName))
	return newRedisPublisher(client, queueName), nil
}

func newRedisPublisher(client listPusher, queueName string) *RedisPublisher {
	return &RedisPublisher{client: client, queueName: queueOrDefault(queueName), now: time.Now}
}

func queueOrDefault(name string) string {
	if name == "" {
		return DefaultQueueName
	}
	return name
}

func (p *RedisPublisher) Publish(ctx context.Context, event entities.WebhookEvent) error {
	b, err := json.Marshal(message{
		ID:         event.ID,
		Provider:   event.Provider,
		Kind:       string(event.Kind),
		Type:       event.Type,
		ObjectID:   event.ObjectID,
		Payload:    event.Payload,
		ReceivedAt: p.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %v", err)
	}

	if err := p.client.RPush(ctx, p.queueName, b).Err(); err != nil {
		return fmt.Errorf("failed to push event to queue: %w", err)
	}
	log.Printf("[payment][events] enqueued event_id=%s kind=%s queue=%s", event.ID, event.Kind, p.queueName)
	return nil
}
