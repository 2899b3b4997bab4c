package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"card_payments/internal/domain/entities"
	"card_payments/internal/usecase/interfaces"
)

// VerificationState tracks one notification through UNVERIFIED -> VERIFIED | REJECTED.
type VerificationState string

const (
	VerificationUnverified VerificationState = "unverified"
	VerificationVerified   VerificationState = "verified"
	VerificationRejected   VerificationState = "rejected"
)

// WebhookOutcome reports what happened to a notification.
type WebhookOutcome struct {
	State      VerificationState
	Event      entities.WebhookEvent
	Dispatched bool
}

type IWebhookUseCase interface {
	Handle(ctx context.Context, payload []byte, signatureHeader string) (WebhookOutcome, error)
}

type WebhookUseCase struct {
	verifier  interfaces.IWebhookVerifier
	publisher interfaces.IPaymentEventPublisher
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

func NewWebhookUseCase(verifier interfaces.IWebhookVerifier, publisher interfaces.IPaymentEventPublisher) *WebhookUseCase {
	return &WebhookUseCase{verifier: verifier, publisher: publisher}
}

// Handle verifies payload as received and dispatches the event by kind.
//
// Only a signature failure is returned as an error. Everything after verification
// is acknowledged, including publisher failures, so the provider stops retrying.
func (u *WebhookUseCase) Handle(ctx context.Context, payload []byte, signatureHeader string) (WebhookOutcome, error) {
	out := WebhookOutcome{State: VerificationUnverified}

	if strings.TrimSpace(signatureHeader) == "" {
		out.State = VerificationRejected
		log.Printf("[payment][webhook] rejected: missing signature header")
		return out, fmt.Errorf("%w: missing signature header", ErrInvalidSignature)
	}
	if u.verifier == nil {
		out.State = VerificationRejected
		log.Printf("[payment][webhook] rejected: verifier not configured")
		return out, fmt.Errorf("%w: webhook secret not configured", ErrInvalidSignature)
	}

	event, err := u.verifier.Verify(payload, signatureHeader)
	if err != nil {
		out.State = VerificationRejected
		log.Printf("[payment][webhook] signature verification failed err=%v", err)
		return out, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	out.State = VerificationVerified
	out.Event = event

	switch event.Kind {
	case entities.WebhookEventPaymentSucceeded:
		log.Printf("[payment][webhook] payment succeeded object_id=%s event_id=%s", event.ObjectID, event.ID)
		out.Dispatched = u.publish(ctx, event)
	case entities.WebhookEventPaymentFailed:
		log.Printf("[payment][webhook] payment failed object_id=%s event_id=%s", event.ObjectID, event.ID)
		out.Dispatched = u.publish(ctx, event)
	default:
		log.Printf("[payment][webhook] unhandled event type=%s event_id=%s", event.Type, event.ID)
	}
	return out, nil
}

func (u *WebhookUseCase) publish(ctx context.Context, event entities.WebhookEvent) bool {
	if u.publisher == nil {
		return false
	}
	if err := u.publisher.Publish(context.WithoutCancel(ctx), event); err != nil {
		log.Printf("[payment][webhook] publish failed event_id=%s type=%s err=%v", event.ID, event.Type, err)
		return false
	}
	return true
}
