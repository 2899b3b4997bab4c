package request

import (
	"encoding/json"
	"testing"
)

func TestAmountText(t *testing.T) {
	cases := map[string]string{
		``:                  "",
		`null`:              "",
		` 1000 `:            "1000",
		`1000.0`:            "1000.0",
		`"250"`:             "250",
		`1000000000000`:     "1000000000000",
		`true`:              "true",
		`"  not-a-number "`: "not-a-number",
	}
	for raw, want := range cases {
		if got := AmountText(json.RawMessage(raw)); got != want {
			t.Fatalf("AmountText(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestSquarePaymentRequest_ToPaymentInput(t *testing.T) {
	var r SquarePaymentRequest
	if err := json.Unmarshal([]byte(`{"amount":1500,"sourceId":"cnon:ok","currency":"USD","note":"n"}`), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	in := r.ToPaymentInput()
	if in.Amount != "1500" || in.SourceID != "cnon:ok" || in.Currency != "USD" || in.Note != "n" {
		t.Fatalf("unexpected input: %+v", in)
	}
}

func TestStoredCardPaymentRequest_CardIsSource(t *testing.T) {
	in := StoredCardPaymentRequest{Amount: json.RawMessage(`1`), CardID: "ccof:1", CustomerID: "C1"}.ToPaymentInput()
	if in.SourceID != "ccof:1" || in.CustomerID != "C1" || in.Amount != "1" {
		t.Fatalf("unexpected input: %+v", in)
	}
}

func TestStoreCardRequest_ResolveSourceID(t *testing.T) {
	if got := (StoreCardRequest{SourceID: " cnon:a ", CardNonce: "cnon:b"}).ResolveSourceID(); got != "cnon:a" {
		t.Fatalf("expected sourceId to win, got %q", got)
	}
	if got := (StoreCardRequest{CardNonce: "cnon:b"}).ResolveSourceID(); got != "cnon:b" {
		t.Fatalf("expected cardNonce fallback, got %q", got)
	}
	if got := (StoreCardRequest{}).ResolveSourceID(); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestMercadoPagoPaymentRequest_ToUseCaseInput(t *testing.T) {
	var r MercadoPagoPaymentRequest
	body := `{"amount":"1990","currency":"BRL","externalReference":"ord-1","mp_payload":{"payment_method_id":"pix"}}`
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	in := r.ToUseCaseInput()
	if in.Payment.Amount != "1990" || in.Payment.ReferenceID != "ord-1" || string(in.Payload) != `{"payment_method_id":"pix"}` {
		t.Fatalf("unexpected input: %+v payload=%s", in, in.Payload)
	}
}
