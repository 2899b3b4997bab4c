package payments

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"card_payments/internal/domain/entities"
	"card_payments/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/mperror"
)

var _ interfaces.IMercadoPagoGateway = (*MercadoPagoGateway)(nil)

func TestMercadoPagoGateway_MockMode(t *testing.T) {
	g, err := NewMercadoPagoGateway("", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":10.5,"external_reference":"order_1"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == "" || status != "approved" {
		t.Fatalf("unexpected id/status %q %q", id, status)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if m["external_reference"] != "order_1" || m["transaction_amount"] != 10.5 || m["status_detail"] != "accredited" {
		t.Fatalf("expected payload echoed back, got %v", m)
	}

	status, _, err = g.GetPayment(context.Background(), id)
	if err != nil || status != "approved" {
		t.Fatalf("get: status=%q err=%v", status, err)
	}
	_, _, err = g.GetPayment(context.Background(), "not-a-number")
	if pe, ok := entities.AsProviderError(err); !ok || pe.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected not found provider error, got %v", err)
	}
}

func TestNewMercadoPagoGateway_RequiresToken(t *testing.T) {
	if _, err := NewMercadoPagoGateway(" ", false); !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
	}
}

func TestMercadoPagoGateway_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	if _, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`)); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
}

type requesterFunc func(*http.Request) (*http.Response, error)

func (f requesterFunc) Do(req *http.Request) (*http.Response, error) { return f(req) }

func cannedRequester(status int, body string) requesterFunc {
	return func(*http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: status,
			Header:     http.Header{"Content-Type": []string{"application/json"}},
			Body:       io.NopCloser(strings.NewReader(body)),
		}, nil
	}
}

func TestMercadoPagoGateway_CreatePaymentRejection(t *testing.T) {
	body := `{"message":"Invalid users involved","error":"bad_request","status":400,"cause":[{"code":2034,"description":"Invalid users involved"}]}`
	g, err := NewMercadoPagoGateway("TEST-token", false, config.WithHTTPClient(cannedRequester(http.StatusBadRequest, body)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, _, _, err = g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":10,"payment_method_id":"visa"}`))
	pe, ok := entities.AsProviderError(err)
	if !ok {
		t.Fatalf("expected provider error, got %v", err)
	}
	if pe.HTTPStatus != http.StatusBadRequest || pe.Message != "Invalid users involved" || pe.Code != "2034" || pe.Category != "bad_request" {
		t.Fatalf("unexpected provider error: %+v", pe)
	}
	if pe.Provider != entities.ProviderMercadoPago || len(pe.Errors) != 1 {
		t.Fatalf("unexpected provider error list: %+v", pe)
	}
}

func TestMercadoPagoGateway_TransportFailure(t *testing.T) {
	failing := requesterFunc(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("connection reset")
	})
	g, err := NewMercadoPagoGateway("TEST-token", false, config.WithHTTPClient(failing))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, _, err = g.GetPayment(context.Background(), "123")
	if !errors.Is(err, entities.ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
	if _, ok := entities.AsProviderError(err); ok {
		t.Fatalf("transport failure must not be a provider rejection")
	}
}

func TestMercadoPagoError(t *testing.T) {
	t.Run("cause list is kept in order", func(t *testing.T) {
		err := mercadoPagoError("create", &mperror.ResponseError{
			StatusCode: http.StatusBadRequest,
			Message:    `{"message":"bad","error":"bad_request","cause":[{"code":"2002","description":"Customer not found"},{"code":4020,"description":""}]}`,
		})
		pe, ok := entities.AsProviderError(err)
		if !ok || pe.Message != "Customer not found" || pe.Code != "2002" {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(pe.Errors) != 2 || pe.Errors[1].Code != "4020" || pe.Errors[1].Detail != "bad" {
			t.Fatalf("unexpected list: %+v", pe.Errors)
		}
	})

	t.Run("single cause object", func(t *testing.T) {
		err := mercadoPagoError("get", &mperror.ResponseError{
			StatusCode: http.StatusNotFound,
			Message:    `{"message":"Payment not found","error":"not_found","status":404,"cause":{"code":2000,"description":"Payment not found"}}`,
		})
		pe, ok := entities.AsProviderError(err)
		if !ok || pe.HTTPStatus != http.StatusNotFound || pe.Code != "2000" || pe.Category != "not_found" {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("no cause uses the top level message", func(t *testing.T) {
		err := mercadoPagoError("create", &mperror.ResponseError{
			StatusCode: http.StatusUnauthorized,
			Message:    `{"message":"invalid access token","error":"unauthorized","status":401,"cause":[]}`,
		})
		pe, ok := entities.AsProviderError(err)
		if !ok || pe.HTTPStatus != http.StatusUnauthorized || pe.Message != "invalid access token" || pe.Code != "" {
			t.Fatalf("unexpected error: %+v", pe)
		}
	})

	t.Run("undecodable rejection keeps the status", func(t *testing.T) {
		err := mercadoPagoError("create", &mperror.ResponseError{StatusCode: http.StatusBadRequest, Message: "<html>"})
		pe, ok := entities.AsProviderError(err)
		if !ok || pe.HTTPStatus != http.StatusBadRequest || pe.Message != "Bad Request" {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("server errors are transport failures", func(t *testing.T) {
		err := mercadoPagoError("create", &mperror.ResponseError{StatusCode: http.StatusBadGateway, Message: `{"message":"upstream"}`})
		if !errors.Is(err, entities.ErrProviderUnavailable) {
			t.Fatalf("expected ErrProviderUnavailable, got %v", err)
		}
	})
}
