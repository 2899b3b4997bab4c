package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"card_payments/internal/adapter/http/handlers/mocks"
	"card_payments/internal/domain/entities"
	"card_payments/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newSquareRouter(uc usecase.ISquarePaymentUseCase) *gin.Engine {
	h := NewSquarePaymentHandler(uc)
	r := gin.New()
	r.POST("/create-square-payment", h.CreatePayment)
	r.POST("/pay-with-stored-card", h.PayWithStoredCard)
	r.POST("/create-square-customer", h.CreateCustomer)
	r.POST("/store-card", h.StoreCard)
	r.GET("/payment-status/:id", h.GetPayment)
	r.GET("/square-locations", h.ListLocations)
	return r
}

func serveJSON(r http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var out map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w, out
}

func TestSquarePaymentHandler_CreatePayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISquarePaymentUseCase(ctrl)
		r := newSquareRouter(uc)

		uc.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return(entities.PaymentResult{}, &usecase.ValidationError{Violations: []usecase.Violation{{Field: "sourceId", Message: "Source ID is required"}}})

		w, body := serveJSON(r, http.MethodPost, "/create-square-payment", `{"amount":100}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body["success"] != false || body["error"] != "Source ID is required" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("provider rejection keeps category code and errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISquarePaymentUseCase(ctrl)
		r := newSquareRouter(uc)

		details := []entities.ProviderErrorDetail{{Detail: "Card declined", Category: "PAYMENT_METHOD_ERROR", Code: "CARD_DECLINED"}}
		uc.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return(entities.PaymentResult{}, entities.NewProviderError(entities.ProviderSquare, http.StatusPaymentRequired, details, "Payment failed"))

		w, body := serveJSON(r, http.MethodPost, "/create-square-payment", `{"amount":100,"sourceId":"cnon:card-nonce-declined"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body["error"] != "Card declined" || body["category"] != "PAYMENT_METHOD_ERROR" || body["code"] != "CARD_DECLINED" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if errs, ok := body["errors"].([]any); !ok || len(errs) != 1 {
			t.Fatalf("expected provider error list, got %s", w.Body.String())
		}
	})

	t.Run("transport failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISquarePaymentUseCase(ctrl)
		r := newSquareRouter(uc)

		uc.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return(entities.PaymentResult{}, fmt.Errorf("%w: connection reset", entities.ErrProviderUnavailable))

		w, body := serveJSON(r, http.MethodPost, "/create-square-payment", `{"amount":100,"sourceId":"cnon:ok"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if body["success"] != false || body["error"] != "Internal server error" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISquarePaymentUseCase(ctrl)
		r := newSquareRouter(uc)

		uc.EXPECT().CreatePayment(gomock.Any(), entities.PaymentInput{Amount: "100", SourceID: "cnon:ok"}).
			Return(entities.PaymentResult{ID: "p1", Amount: 100, Currency: "USD", Status: "COMPLETED", ReceiptNumber: "R1", ReceiptURL: "https://r", Card: &entities.CardSummary{Brand: "VISA", LastFour: "1111"}}, nil)

		w, body := serveJSON(r, http.MethodPost, "/create-square-payment", `{"amount":100,"sourceId":"cnon:ok"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		card, _ := body["cardDetails"].(map[string]any)
		if body["success"] != true || body["paymentId"] != "p1" || body["receiptUrl"] != "https://r" || card["lastFour"] != "1111" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestSquarePaymentHandler_PayWithStoredCard(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockISquarePaymentUseCase(ctrl)
	r := newSquareRouter(uc)

	uc.EXPECT().PayWithStoredCard(gomock.Any(), entities.PaymentInput{Amount: "250", SourceID: "ccof:1", CustomerID: "C1"}).
		Return(entities.PaymentResult{ID: "p2", Amount: 250, Currency: "USD", Status: "COMPLETED", ReceiptNumber: "R2"}, nil)

	w, body := serveJSON(r, http.MethodPost, "/pay-with-stored-card", `{"amount":250,"cardId":"ccof:1","customerId":"C1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body["paymentId"] != "p2" || body["receiptNumber"] != "R2" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestSquarePaymentHandler_CreateCustomer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockISquarePaymentUseCase(ctrl)
	r := newSquareRouter(uc)

	uc.EXPECT().CreateCustomer(gomock.Any(), entities.CustomerInput{GivenName: "Ada", EmailAddress: "ada@example.com"}).
		Return(entities.Customer{ID: "CUST_1", GivenName: "Ada"}, nil)

	w, body := serveJSON(r, http.MethodPost, "/create-square-customer", `{"givenName":"Ada","emailAddress":"ada@example.com"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body["customerId"] != "CUST_1" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestSquarePaymentHandler_StoreCard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("card nonce is accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISquarePaymentUseCase(ctrl)
		r := newSquareRouter(uc)

		uc.EXPECT().StoreCard(gomock.Any(), entities.CardInput{CustomerID: "C1", SourceID: "cnon:ok"}).
			Return(entities.Card{ID: "ccof:1", LastFour: "1111", CardBrand: "VISA", ExpMonth: 1, ExpYear: 2031}, nil)

		w, body := serveJSON(r, http.MethodPost, "/store-card", `{"customerId":"C1","cardNonce":"cnon:ok"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body["cardId"] != "ccof:1" || body["lastFour"] != "1111" || body["expYear"] != float64(2031) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISquarePaymentUseCase(ctrl)
		r := newSquareRouter(uc)

		uc.EXPECT().StoreCard(gomock.Any(), gomock.Any()).Return(entities.Card{}, usecase.ErrGatewayNotConfigured)

		w, _ := serveJSON(r, http.MethodPost, "/store-card", `{"customerId":"C1","sourceId":"cnon:ok"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestSquarePaymentHandler_GetPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("provider not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISquarePaymentUseCase(ctrl)
		r := newSquareRouter(uc)

		details := []entities.ProviderErrorDetail{{Category: "INVALID_REQUEST_ERROR", Code: "NOT_FOUND", Detail: "Could not find payment with id: nope"}}
		uc.EXPECT().GetPayment(gomock.Any(), "nope").
			Return(entities.PaymentResult{}, entities.NewProviderError(entities.ProviderSquare, http.StatusNotFound, details, "Failed to retrieve payment"))

		w, body := serveJSON(r, http.MethodGet, "/payment-status/nope", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if body["success"] != false || body["code"] != "NOT_FOUND" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISquarePaymentUseCase(ctrl)
		r := newSquareRouter(uc)

		uc.EXPECT().GetPayment(gomock.Any(), "p1").
			Return(entities.PaymentResult{ID: "p1", Status: "COMPLETED", Amount: 100, Currency: "USD", CreatedAt: "2024-01-01T00:00:00Z", UpdatedAt: "2024-01-01T00:00:01Z"}, nil)

		w, body := serveJSON(r, http.MethodGet, "/payment-status/p1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		payment, _ := body["payment"].(map[string]any)
		if body["status"] != "COMPLETED" || body["createdAt"] != "2024-01-01T00:00:00Z" || payment["id"] != "p1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestSquarePaymentHandler_ListLocations(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockISquarePaymentUseCase(ctrl)
	r := newSquareRouter(uc)

	uc.EXPECT().ListLocations(gomock.Any()).
		Return([]entities.Location{{ID: "L1", Name: "Main", Status: "ACTIVE", Capabilities: []string{"CREDIT_CARD_PROCESSING"}}}, nil)

	w, body := serveJSON(r, http.MethodGet, "/square-locations", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	locations, _ := body["locations"].([]any)
	if len(locations) != 1 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestHealthHandlers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/stripe", NewStripeHealthHandler().Root)
	r.GET("/square", NewSquareHealthHandler("sandbox", "L1").Root)

	w, body := serveJSON(r, http.MethodGet, "/stripe", "")
	if w.Code != http.StatusOK || body["message"] != "Stripe Payment Server is running!" {
		t.Fatalf("unexpected stripe health: %d %s", w.Code, w.Body.String())
	}
	w, body = serveJSON(r, http.MethodGet, "/square", "")
	if w.Code != http.StatusOK || body["environment"] != "sandbox" || body["locationConfigured"] != true {
		t.Fatalf("unexpected square health: %d %s", w.Code, w.Body.String())
	}
}
