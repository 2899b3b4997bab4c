package entities

import "encoding/json"

// WebhookEventKind classifies a verified provider notification.
type WebhookEventKind string

const (
	WebhookEventPaymentSucceeded WebhookEventKind = "payment_succeeded"
	WebhookEventPaymentFailed    WebhookEventKind = "payment_failed"
	WebhookEventOther            WebhookEventKind = "other"
)

// WebhookEvent only exists once the notification signature has been verified.
type WebhookEvent struct {
	ID       string           `json:"id"`
	Provider string           `json:"provider"`
	Kind     WebhookEventKind `json:"kind"`
	Type     string           `json:"type"`
	ObjectID string           `json:"object_id,omitempty"`
	Payload  json.RawMessage  `json:"payload"`
}
