package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"card_payments/internal/domain/entities"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/mperror"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

// NewMercadoPagoGateway builds the SDK client. opts are passed to the SDK config,
// e.g. config.WithHTTPClient to set timeouts.
func NewMercadoPagoGateway(accessToken string, mockMode bool, opts ...config.Option) (*MercadoPagoGateway, error) {
	if mockMode {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	accessToken = strings.TrimSpace(accessToken)
	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken, opts...)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	if g != nil && g.mockMode {
		return g.mockCreate(requestPayload)
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] create start payload_len=%d", len(requestPayload))

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		log.Printf("[payment][gateway] payload unmarshal failed err=%v", err)
		return "", "", nil, localRejection(http.StatusBadRequest, "bad_request", "invalid payment payload: "+err.Error())
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed err=%v", err)
		return "", "", nil, mercadoPagoError("create", err)
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, fmt.Errorf("%w: mercado pago response: %v", entities.ErrProviderUnavailable, err)
	}
	log.Printf("[payment][gateway] create success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)

	return strconv.Itoa(resp.ID), resp.Status, b, nil
}

func (g *MercadoPagoGateway) GetPayment(ctx context.Context, providerPaymentID string) (providerStatus string, providerResponse json.RawMessage, err error) {
	if g != nil && g.mockMode {
		return g.mockGet(providerPaymentID)
	}

	if g == nil || g.client == nil {
		return "", nil, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(strings.TrimSpace(providerPaymentID))
	if err != nil {
		return "", nil, localRejection(http.StatusBadRequest, "bad_request", "invalid payment id")
	}

	resp, err := g.client.Get(ctx, id)
	if err != nil {
		log.Printf("[payment][gateway] sdk get failed provider_payment_id=%d err=%v", id, err)
		return "", nil, mercadoPagoError("get", err)
	}
	b, err := json.Marshal(resp)
	if err != nil {
		return "", nil, fmt.Errorf("%w: mercado pago response: %v", entities.ErrProviderUnavailable, err)
	}
	return resp.Status, b, nil
}

// mercadoPagoErrorBody is what the API answers with on a rejected request.
type mercadoPagoErrorBody struct {
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Cause   json.RawMessage `json:"cause"`
}

type mercadoPagoCause struct {
	Code        json.RawMessage `json:"code"`
	Description string          `json:"description"`
}

// causes accepts the list form and the single object some endpoints send.
func (b mercadoPagoErrorBody) causes() []mercadoPagoCause {
	raw := bytes.TrimSpace(b.Cause)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	var list []mercadoPagoCause
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}
	var one mercadoPagoCause
	if err := json.Unmarshal(raw, &one); err == nil {
		return []mercadoPagoCause{one}
	}
	return nil
}

// mercadoPagoError sorts an SDK error into a provider rejection (4xx with the
// provider's message and causes kept) or a transport failure.
func mercadoPagoError(op string, err error) error {
	var respErr *mperror.ResponseError
	if !errors.As(err, &respErr) || respErr.StatusCode < http.StatusBadRequest || respErr.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("%w: mercado pago %s: %v", entities.ErrProviderUnavailable, op, err)
	}

	var body mercadoPagoErrorBody
	if jsonErr := json.Unmarshal([]byte(respErr.Message), &body); jsonErr != nil {
		return entities.NewProviderError(entities.ProviderMercadoPago, respErr.StatusCode, nil, "")
	}

	var details []entities.ProviderErrorDetail
	for _, c := range body.causes() {
		detail := c.Description
		if detail == "" {
			detail = body.Message
		}
		details = append(details, entities.ProviderErrorDetail{
			Category: body.Error,
			Code:     strings.Trim(string(bytes.TrimSpace(c.Code)), `"`),
			Detail:   detail,
		})
	}
	if len(details) == 0 && (body.Message != "" || body.Error != "") {
		details = []entities.ProviderErrorDetail{{Category: body.Error, Detail: body.Message}}
	}
	return entities.NewProviderError(entities.ProviderMercadoPago, respErr.StatusCode, details, body.Message)
}

func localRejection(status int, category, detail string) *entities.ProviderError {
	return entities.NewProviderError(entities.ProviderMercadoPago, status,
		[]entities.ProviderErrorDetail{{Category: category, Detail: detail}}, "")
}

// mockCreate approves every payment, echoing the payload back the way the API
// echoes the request fields in its response.
func (g *MercadoPagoGateway) mockCreate(requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	resp := map[string]any{}
	if err := json.Unmarshal(requestPayload, &resp); err != nil || resp == nil {
		resp = map[string]any{}
	}

	now := time.Now().UTC()
	id := strconv.FormatInt(now.UnixNano(), 10)
	stamp := now.Format(time.RFC3339Nano)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = stamp
	resp["date_approved"] = stamp

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, fmt.Errorf("%w: mock response: %v", entities.ErrProviderUnavailable, err)
	}
	log.Printf("[payment][gateway] mock create provider_payment_id=%s provider_status=approved", id)
	return id, "approved", b, nil
}

// mockGet answers any numeric id with an approved payment, mirroring mockCreate.
func (g *MercadoPagoGateway) mockGet(providerPaymentID string) (string, json.RawMessage, error) {
	if _, err := strconv.ParseInt(strings.TrimSpace(providerPaymentID), 10, 64); err != nil {
		return "", nil, localRejection(http.StatusNotFound, "not_found", "Payment not found")
	}
	b, err := json.Marshal(map[string]any{
		"id":            providerPaymentID,
		"status":        "approved",
		"status_detail": "accredited",
	})
	if err != nil {
		return "", nil, fmt.Errorf("%w: mock response: %v", entities.ErrProviderUnavailable, err)
	}
	log.Printf("[payment][gateway] mock get provider_payment_id=%s provider_status=approved", providerPaymentID)
	return "approved", b, nil
}
