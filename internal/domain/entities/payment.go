package entities

import "strings"

const (
	ProviderStripe      = "stripe"
	ProviderSquare      = "square"
	ProviderMercadoPago = "mercadopago"
)

// PaymentPolicy holds the provider specific business rules applied before a
// charge reaches the provider.
//
// Values come from configuration:
//   - Stripe: minimum 50 minor units, default currency "eur"
//   - Square: minimum 1 minor unit, default currency "USD"
type PaymentPolicy struct {
	Provider        string
	MinAmount       int64
	DefaultCurrency string
}

// PaymentInput is the caller's raw intent, before validation.
//
// Amount keeps the textual form received on the wire ("" when absent) so the
// validator can tell a missing amount from a malformed one.
type PaymentInput struct {
	Amount      string
	Currency    string
	SourceID    string
	CustomerID  string
	LocationID  string
	Note        string
	ReferenceID string
}

// PaymentRequest is a validated charge intent. Amount is in minor currency units.
type PaymentRequest struct {
	Amount      int64
	Currency    string
	SourceID    string
	CustomerID  string
	LocationID  string
	Note        string
	ReferenceID string
}

// ProviderCallParams is the provider shaped body derived 1:1 from a PaymentRequest.
type ProviderCallParams struct {
	IdempotencyKey string
	Amount         int64
	Currency       string
	SourceID       string
	CustomerID     string
	LocationID     string
	OrderID        string
	Note           string
	ReferenceID    string
}

func NewProviderCallParams(req PaymentRequest, idempotencyKey, orderID string) ProviderCallParams {
	return ProviderCallParams{
		IdempotencyKey: idempotencyKey,
		Amount:         req.Amount,
		Currency:       req.Currency,
		SourceID:       req.SourceID,
		CustomerID:     req.CustomerID,
		LocationID:     req.LocationID,
		OrderID:        orderID,
		Note:           req.Note,
		ReferenceID:    req.ReferenceID,
	}
}

// PaymentOutcome is the provider agnostic classification of a payment status.
type PaymentOutcome string

const (
	PaymentOutcomeSucceeded PaymentOutcome = "succeeded"
	PaymentOutcomePending   PaymentOutcome = "pending"
	PaymentOutcomeFailed    PaymentOutcome = "failed"
	PaymentOutcomeUnknown   PaymentOutcome = "unknown"
)

var outcomesByProvider = map[string]map[string]PaymentOutcome{
	ProviderStripe: {
		"succeeded":               PaymentOutcomeSucceeded,
		"processing":              PaymentOutcomePending,
		"requires_payment_method": PaymentOutcomePending,
		"requires_confirmation":   PaymentOutcomePending,
		"requires_action":         PaymentOutcomePending,
		"requires_capture":        PaymentOutcomePending,
		"canceled":                PaymentOutcomeFailed,
	},
	// Square APPROVED means authorized but not yet captured.
	ProviderSquare: {
		"COMPLETED": PaymentOutcomeSucceeded,
		"APPROVED":  PaymentOutcomePending,
		"PENDING":   PaymentOutcomePending,
		"CANCELED":  PaymentOutcomeFailed,
		"FAILED":    PaymentOutcomeFailed,
	},
	ProviderMercadoPago: {
		"approved":     PaymentOutcomeSucceeded,
		"authorized":   PaymentOutcomePending,
		"pending":      PaymentOutcomePending,
		"in_process":   PaymentOutcomePending,
		"in_mediation": PaymentOutcomePending,
		"rejected":     PaymentOutcomeFailed,
		"cancelled":    PaymentOutcomeFailed,
	},
}

// OutcomeFor classifies a provider status string. Unknown vocabulary yields
// PaymentOutcomeUnknown; callers keep the raw status alongside.
func OutcomeFor(provider, status string) PaymentOutcome {
	vocab, ok := outcomesByProvider[provider]
	if !ok {
		return PaymentOutcomeUnknown
	}
	key := strings.TrimSpace(status)
	if provider == ProviderSquare {
		key = strings.ToUpper(key)
	} else {
		key = strings.ToLower(key)
	}
	if o, ok := vocab[key]; ok {
		return o
	}
	return PaymentOutcomeUnknown
}

// CardSummary is the masked view of a card used in a payment.
type CardSummary struct {
	Brand    string `json:"brand"`
	LastFour string `json:"lastFour"`
	ExpMonth int64  `json:"expMonth,omitempty"`
	ExpYear  int64  `json:"expYear,omitempty"`
}

// PaymentResult is the normalized outcome of a successful provider call.
//
// Status is the provider's status verbatim; Outcome is its classification.
type PaymentResult struct {
	Provider      string         `json:"provider"`
	ID            string         `json:"id"`
	Status        string         `json:"status"`
	Outcome       PaymentOutcome `json:"outcome"`
	StatusDetail  string         `json:"statusDetail,omitempty"`
	Amount        int64          `json:"amount"`
	Currency      string         `json:"currency"`
	ClientSecret  string         `json:"-"`
	ReceiptNumber string         `json:"receiptNumber,omitempty"`
	ReceiptURL    string         `json:"receiptUrl,omitempty"`
	Card          *CardSummary   `json:"cardDetails,omitempty"`
	CustomerID    string         `json:"customerId,omitempty"`
	LocationID    string         `json:"locationId,omitempty"`
	CreatedAt     string         `json:"createdAt,omitempty"`
	UpdatedAt     string         `json:"updatedAt,omitempty"`
}
