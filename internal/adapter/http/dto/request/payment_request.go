package request

import (
	"bytes"
	"encoding/json"
	"strings"

	"card_payments/internal/domain/entities"
)

// AmountText keeps a JSON amount as text so a missing amount ("") can be told
// apart from a malformed one. Quoted numbers are unquoted.
func AmountText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return strings.TrimSpace(s)
		}
	}
	return string(raw)
}

// PaymentIntentRequest is the body of POST /create-payment-intent.
type PaymentIntentRequest struct {
	Amount   json.RawMessage `json:"amount" swaggertype:"integer" example:"1000"`
	Currency string          `json:"currency" example:"eur"`
}

func (r PaymentIntentRequest) ToPaymentInput() entities.PaymentInput {
	return entities.PaymentInput{
		Amount:   AmountText(r.Amount),
		Currency: r.Currency,
	}
}

// SquarePaymentRequest is the body of POST /create-square-payment.
type SquarePaymentRequest struct {
	Amount      json.RawMessage `json:"amount" swaggertype:"integer" example:"1000"`
	Currency    string          `json:"currency" example:"USD"`
	SourceID    string          `json:"sourceId" example:"cnon:card-nonce-ok"`
	CustomerID  string          `json:"customerId"`
	LocationID  string          `json:"locationId"`
	Note        string          `json:"note"`
	ReferenceID string          `json:"referenceId"`
}

func (r SquarePaymentRequest) ToPaymentInput() entities.PaymentInput {
	return entities.PaymentInput{
		Amount:      AmountText(r.Amount),
		Currency:    r.Currency,
		SourceID:    r.SourceID,
		CustomerID:  r.CustomerID,
		LocationID:  r.LocationID,
		Note:        r.Note,
		ReferenceID: r.ReferenceID,
	}
}

// StoredCardPaymentRequest is the body of POST /pay-with-stored-card.
type StoredCardPaymentRequest struct {
	Amount      json.RawMessage `json:"amount" swaggertype:"integer" example:"1000"`
	Currency    string          `json:"currency" example:"USD"`
	CardID      string          `json:"cardId" example:"ccof:customer-card-id-ok"`
	CustomerID  string          `json:"customerId"`
	LocationID  string          `json:"locationId"`
	Note        string          `json:"note"`
	ReferenceID string          `json:"referenceId"`
}

// ToPaymentInput maps the vaulted card id onto the payment source.
func (r StoredCardPaymentRequest) ToPaymentInput() entities.PaymentInput {
	return entities.PaymentInput{
		Amount:      AmountText(r.Amount),
		Currency:    r.Currency,
		SourceID:    r.CardID,
		CustomerID:  r.CustomerID,
		LocationID:  r.LocationID,
		Note:        r.Note,
		ReferenceID: r.ReferenceID,
	}
}

type SquareCustomerRequest struct {
	GivenName    string `json:"givenName" example:"Ada"`
	FamilyName   string `json:"familyName" example:"Lovelace"`
	EmailAddress string `json:"emailAddress" example:"ada@example.com"`
	PhoneNumber  string `json:"phoneNumber"`
	CompanyName  string `json:"companyName"`
	ReferenceID  string `json:"referenceId"`
	Note         string `json:"note"`
}

func (r SquareCustomerRequest) ToCustomerInput() entities.CustomerInput {
	return entities.CustomerInput{
		GivenName:    r.GivenName,
		FamilyName:   r.FamilyName,
		EmailAddress: r.EmailAddress,
		PhoneNumber:  r.PhoneNumber,
		CompanyName:  r.CompanyName,
		ReferenceID:  r.ReferenceID,
		Note:         r.Note,
	}
}

// StoreCardRequest accepts either sourceId or the older cardNonce field.
type StoreCardRequest struct {
	CustomerID     string `json:"customerId"`
	SourceID       string `json:"sourceId"`
	CardNonce      string `json:"cardNonce"`
	CardholderName string `json:"cardholderName"`
}

func (r StoreCardRequest) ResolveSourceID() string {
	if v := strings.TrimSpace(r.SourceID); v != "" {
		return v
	}
	return strings.TrimSpace(r.CardNonce)
}

func (r StoreCardRequest) ToCardInput() entities.CardInput {
	return entities.CardInput{
		CustomerID:     r.CustomerID,
		SourceID:       r.ResolveSourceID(),
		CardholderName: r.CardholderName,
	}
}
