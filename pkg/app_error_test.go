package pkg

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
)

func TestAppError_ToHTTPError(t *testing.T) {
	cause := errors.New("dial tcp: timeout")
	appErr := NewDomainError("INTERNAL_ERROR", "Failed to create payment intent", cause, http.StatusInternalServerError)

	if !errors.Is(appErr, cause) {
		t.Fatalf("expected wrapped cause")
	}

	b, err := json.Marshal(appErr.ToHTTPError())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var body map[string]any
	_ = json.Unmarshal(b, &body)
	if body["error"] != "Failed to create payment intent" {
		t.Fatalf("unexpected body: %s", b)
	}
	if _, ok := body["message"]; ok {
		t.Fatalf("cause must not leak into the body: %s", b)
	}
	if _, ok := body["category"]; ok {
		t.Fatalf("category must be absent: %s", b)
	}
}

func TestNewProviderError_OmitsMissingFields(t *testing.T) {
	appErr := NewProviderError("Card declined", "", "", nil, http.StatusBadRequest)
	b, _ := json.Marshal(appErr.ToHTTPError())

	var body map[string]any
	_ = json.Unmarshal(b, &body)
	if body["error"] != "Card declined" {
		t.Fatalf("unexpected body: %s", b)
	}
	for _, key := range []string{"category", "code", "details"} {
		if _, ok := body[key]; ok {
			t.Fatalf("expected %s to be absent: %s", key, b)
		}
	}
}

func TestAppError_WithDetail(t *testing.T) {
	appErr := NewDomainErrorSimple("PROVIDER_ERROR", "Failed to create payment intent", http.StatusInternalServerError).
		WithDetail("Invalid API Key provided")
	if got := appErr.ToHTTPError().Message; got != "Invalid API Key provided" {
		t.Fatalf("expected detail as message, got %q", got)
	}
}
