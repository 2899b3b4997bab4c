package entities

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestNewProviderError_PrefersFirstDetail(t *testing.T) {
	details := []ProviderErrorDetail{
		{Detail: "Card declined", Category: "PAYMENT_METHOD_ERROR", Code: "CARD_DECLINED"},
		{Detail: "second entry", Category: "API_ERROR", Code: "OTHER"},
	}
	pe := NewProviderError(ProviderSquare, http.StatusPaymentRequired, details, "Payment failed")

	if pe.Message != "Card declined" {
		t.Fatalf("expected first detail as message, got %q", pe.Message)
	}
	if pe.Category != "PAYMENT_METHOD_ERROR" || pe.Code != "CARD_DECLINED" {
		t.Fatalf("unexpected category/code: %+v", pe)
	}
	if len(pe.Errors) != 2 {
		t.Fatalf("expected raw list preserved, got %+v", pe.Errors)
	}
}

func TestNewProviderError_NeverFabricatesCategoryOrCode(t *testing.T) {
	pe := NewProviderError(ProviderSquare, http.StatusBadRequest, []ProviderErrorDetail{{Detail: "Bad source"}}, "")
	if pe.Category != "" || pe.Code != "" {
		t.Fatalf("expected empty category/code, got %+v", pe)
	}

	pe = NewProviderError(ProviderStripe, http.StatusBadGateway, nil, "")
	if pe.Message != http.StatusText(http.StatusBadGateway) {
		t.Fatalf("expected status text fallback, got %q", pe.Message)
	}
	if pe.Category != "" || pe.Code != "" {
		t.Fatalf("expected empty category/code, got %+v", pe)
	}
}

func TestNewProviderError_FallsBackToCode(t *testing.T) {
	pe := NewProviderError(ProviderSquare, http.StatusNotFound, []ProviderErrorDetail{{Code: "NOT_FOUND", Category: "INVALID_REQUEST_ERROR"}}, "")
	if pe.Message != "NOT_FOUND" {
		t.Fatalf("expected code as message, got %q", pe.Message)
	}

	pe = NewProviderError(ProviderSquare, http.StatusNotFound, []ProviderErrorDetail{{Code: "NOT_FOUND"}}, "Payment not found")
	if pe.Message != "Payment not found" {
		t.Fatalf("expected fallback message, got %q", pe.Message)
	}
	if !pe.HasCode("NOT_FOUND") {
		t.Fatalf("expected HasCode to match")
	}
}

func TestAsProviderError(t *testing.T) {
	pe := NewProviderError(ProviderStripe, http.StatusPaymentRequired, nil, "Your card was declined.")
	wrapped := fmt.Errorf("create intent: %w", pe)

	got, ok := AsProviderError(wrapped)
	if !ok || got != pe {
		t.Fatalf("expected to unwrap provider error")
	}
	if _, ok := AsProviderError(errors.New("boom")); ok {
		t.Fatalf("expected plain error not to match")
	}
}

func TestOutcomeFor(t *testing.T) {
	cases := []struct {
		provider string
		status   string
		want     PaymentOutcome
	}{
		{ProviderStripe, "succeeded", PaymentOutcomeSucceeded},
		{ProviderStripe, "requires_payment_method", PaymentOutcomePending},
		{ProviderStripe, "canceled", PaymentOutcomeFailed},
		{ProviderSquare, "COMPLETED", PaymentOutcomeSucceeded},
		{ProviderSquare, "approved", PaymentOutcomePending},
		{ProviderSquare, "FAILED", PaymentOutcomeFailed},
		{ProviderMercadoPago, "approved", PaymentOutcomeSucceeded},
		{ProviderMercadoPago, "rejected", PaymentOutcomeFailed},
		{ProviderSquare, "SOMETHING_NEW", PaymentOutcomeUnknown},
		{"other", "succeeded", PaymentOutcomeUnknown},
	}
	for _, tc := range cases {
		if got := OutcomeFor(tc.provider, tc.status); got != tc.want {
			t.Fatalf("OutcomeFor(%s, %s) = %s, want %s", tc.provider, tc.status, got, tc.want)
		}
	}
}
