package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"card_payments/internal/domain/entities"
	"card_payments/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var ErrInvalidMPPayload = errors.New("invalid mercado pago payload")

const defaultSandboxPayerEmail = "test_user_br@testuser.com"

// MercadoPagoOptions carries the sandbox switches the payload enrichment reads.
type MercadoPagoOptions struct {
	MockMode        bool
	AccessToken     string
	TestPayerEmail  string
	TestPayerUserID string
}

func (o MercadoPagoOptions) sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(o.AccessToken), "TEST-")
}

// MercadoPagoPaymentInput is a direct charge request. Payload holds the provider's
// own fields (payment_method_id, token, installments, payer...) and is enriched
// with the validated amount before it is sent.
type MercadoPagoPaymentInput struct {
	Payment     entities.PaymentInput
	Description string
	Payload     json.RawMessage
}

// IMercadoPagoPaymentUseCase encapsulates the "create and process payment" behavior
// against Mercado Pago.
type IMercadoPagoPaymentUseCase interface {
	CreatePayment(ctx context.Context, in MercadoPagoPaymentInput) (entities.PaymentResult, error)
	GetPayment(ctx context.Context, id string) (entities.PaymentResult, error)
}

type MercadoPagoPaymentUseCase struct {
	gateway interfaces.IMercadoPagoGateway
	policy  entities.PaymentPolicy
	opts    MercadoPagoOptions
	now     func() time.Time
}

var _ IMercadoPagoPaymentUseCase = (*MercadoPagoPaymentUseCase)(nil)

func NewMercadoPagoPaymentUseCase(gateway interfaces.IMercadoPagoGateway, policy entities.PaymentPolicy, opts MercadoPagoOptions) *MercadoPagoPaymentUseCase {
	return &MercadoPagoPaymentUseCase{gateway: gateway, policy: policy, opts: opts, now: time.Now}
}

func (u *MercadoPagoPaymentUseCase) CreatePayment(ctx context.Context, in MercadoPagoPaymentInput) (entities.PaymentResult, error) {
	log.Printf("[payment][usecase] mp create start raw_amount=%q payload_len=%d", in.Payment.Amount, len(in.Payload))
	req, err := ValidatePayment(in.Payment, u.policy, "")
	if err != nil {
		log.Printf("[payment][usecase] mp create invalid input err=%v", err)
		return entities.PaymentResult{}, err
	}

	payload := in.Payload
	if len(bytes.TrimSpace(payload)) == 0 || !json.Valid(payload) {
		if !u.opts.MockMode {
			log.Printf("[payment][usecase] invalid payload (empty or not-json)")
			return entities.PaymentResult{}, ErrInvalidMPPayload
		}
		payload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured")
		return entities.PaymentResult{}, ErrGatewayNotConfigured
	}

	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil || reqMap == nil {
		log.Printf("[payment][usecase] payload is not an object err=%v", err)
		return entities.PaymentResult{}, ErrInvalidMPPayload
	}
	if !u.opts.MockMode {
		if textField(reqMap, "payment_method_id") == "" {
			log.Printf("[payment][usecase] missing payment_method_id")
			return entities.PaymentResult{}, ErrInvalidMPPayload
		}
		if !u.preparePayer(reqMap) {
			log.Printf("[payment][usecase] missing/invalid payer")
			return entities.PaymentResult{}, ErrInvalidMPPayload
		}
	}

	reference := req.ReferenceID
	if reference == "" {
		reference = fmt.Sprintf("order_%d", u.now().UnixMilli())
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = reference
	}
	if _, ok := reqMap["description"]; !ok {
		desc := strings.TrimSpace(in.Description)
		if desc == "" {
			desc = fmt.Sprintf("Order %s", reference)
		}
		reqMap["description"] = desc
	}
	// The validated amount is the source of truth, whatever the payload says.
	reqMap["transaction_amount"] = json.Number(MinorToMajor(req.Amount, req.Currency).String())

	body, err := json.Marshal(reqMap)
	if err != nil {
		return entities.PaymentResult{}, err
	}
	log.Printf("[payment][usecase] payload enriched reference=%s payload_len=%d", reference, len(body))

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(context.WithoutCancel(ctx), body)
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed reference=%s err=%v", reference, err)
		return entities.PaymentResult{}, err
	}
	log.Printf("[payment][usecase] payment gateway success provider_payment_id=%s provider_status=%s", providerPaymentID, providerStatus)

	result := u.resultFrom(providerResp, req.Currency)
	result.ID = providerPaymentID
	result.Status = providerStatus
	result.Outcome = entities.OutcomeFor(entities.ProviderMercadoPago, providerStatus)
	if result.Amount == 0 {
		result.Amount = req.Amount
	}
	return result, nil
}

func (u *MercadoPagoPaymentUseCase) GetPayment(ctx context.Context, id string) (entities.PaymentResult, error) {
	id, err := requireID(id)
	if err != nil {
		return entities.PaymentResult{}, err
	}
	if u.gateway == nil {
		return entities.PaymentResult{}, ErrGatewayNotConfigured
	}

	status, providerResp, err := u.gateway.GetPayment(context.WithoutCancel(ctx), id)
	if err != nil {
		log.Printf("[payment][usecase] mp get failed provider_payment_id=%s err=%v", id, err)
		return entities.PaymentResult{}, err
	}

	result := u.resultFrom(providerResp, u.policy.DefaultCurrency)
	result.ID = id
	result.Status = status
	result.Outcome = entities.OutcomeFor(entities.ProviderMercadoPago, status)
	return result, nil
}

type mercadoPagoPaymentView struct {
	StatusDetail    string      `json:"status_detail"`
	CurrencyID      string      `json:"currency_id"`
	Amount          json.Number `json:"transaction_amount"`
	DateCreated     string      `json:"date_created"`
	DateLastUpdated string      `json:"date_last_updated"`
	Card            *struct {
		LastFourDigits  string `json:"last_four_digits"`
		ExpirationMonth int64  `json:"expiration_month"`
		ExpirationYear  int64  `json:"expiration_year"`
	} `json:"card"`
	PaymentMethodID string `json:"payment_method_id"`
}

// resultFrom reads the fields the response DTOs need from a raw provider body.
// Undecodable bodies leave the result empty rather than failing a settled charge.
func (u *MercadoPagoPaymentUseCase) resultFrom(raw json.RawMessage, fallbackCurrency string) entities.PaymentResult {
	result := entities.PaymentResult{Provider: entities.ProviderMercadoPago, Currency: fallbackCurrency}
	if len(raw) == 0 {
		return result
	}

	var view mercadoPagoPaymentView
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&view); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed err=%v", err)
		return result
	}

	if view.CurrencyID != "" {
		result.Currency = view.CurrencyID
	}
	if view.Amount != "" {
		if major, err := decimal.NewFromString(view.Amount.String()); err == nil {
			if minor, err := MajorToMinor(major, result.Currency); err == nil {
				result.Amount = minor
			} else {
				log.Printf("[payment][usecase] provider amount not convertible amount=%s err=%v", view.Amount, err)
			}
		}
	}
	result.StatusDetail = view.StatusDetail
	result.CreatedAt = view.DateCreated
	result.UpdatedAt = view.DateLastUpdated
	if view.Card != nil && view.Card.LastFourDigits != "" {
		result.Card = &entities.CardSummary{
			Brand:    view.PaymentMethodID,
			LastFour: view.Card.LastFourDigits,
			ExpMonth: view.Card.ExpirationMonth,
			ExpYear:  view.Card.ExpirationYear,
		}
	}
	return result
}

// preparePayer completes the payer block: type defaults to customer, a sandbox test
// user id is swapped for its email, and a payer with neither id nor email gets the
// configured test email. It reports whether the payer can be identified.
func (u *MercadoPagoPaymentUseCase) preparePayer(reqMap map[string]any) bool {
	if reqMap["payer"] == nil {
		reqMap["payer"] = map[string]any{}
	}
	payer, ok := reqMap["payer"].(map[string]any)
	if !ok {
		return false
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	testEmail := strings.TrimSpace(u.opts.TestPayerEmail)
	testUserID := strings.TrimSpace(u.opts.TestPayerUserID)
	id, email := textField(payer, "id"), textField(payer, "email")
	switch {
	case email != "":
	case id != "":
		if u.opts.sandbox() && testEmail != "" && id == testUserID {
			payer["email"] = testEmail
			delete(payer, "id")
			log.Printf("[payment][usecase] mapped sandbox payer user_id to payer.email")
		}
	case testEmail != "":
		payer["email"] = testEmail
	case u.opts.sandbox():
		payer["email"] = defaultSandboxPayerEmail
	}
	return textField(payer, "id") != "" || textField(payer, "email") != ""
}

// textField reads a string or numeric JSON value as trimmed text.
func textField(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	}
	return ""
}
