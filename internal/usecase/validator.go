package usecase

import (
	"fmt"
	"strings"

	"card_payments/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const (
	FieldAmount     = "amount"
	FieldCurrency   = "currency"
	FieldSourceID   = "sourceId"
	FieldCardID     = "cardId"
	FieldCustomerID = "customerId"
)

var sourceFieldMessages = map[string]string{
	FieldSourceID: "Source ID is required",
	FieldCardID:   "Card ID is required",
}

// ValidatePayment checks a raw payment input against a provider policy.
//
// sourceField names the required payment source field ("" when the operation does
// not take one, e.g. payment intents confirmed client side).
func ValidatePayment(in entities.PaymentInput, policy entities.PaymentPolicy, sourceField string) (entities.PaymentRequest, error) {
	ve := &ValidationError{}

	amount, amountMsg := parseAmount(in.Amount, policy.MinAmount)
	if amountMsg != "" {
		ve.add(FieldAmount, amountMsg)
	}

	currency := strings.TrimSpace(in.Currency)
	if currency == "" {
		currency = policy.DefaultCurrency
	}
	if !isCurrencyCode(currency) {
		ve.add(FieldCurrency, "Currency must be a 3-letter ISO 4217 code")
	}

	source := strings.TrimSpace(in.SourceID)
	if sourceField != "" && source == "" {
		msg, ok := sourceFieldMessages[sourceField]
		if !ok {
			msg = fmt.Sprintf("%s is required", sourceField)
		}
		ve.add(sourceField, msg)
	}

	if err := ve.orNil(); err != nil {
		return entities.PaymentRequest{}, err
	}

	return entities.PaymentRequest{
		Amount:      amount,
		Currency:    currency,
		SourceID:    source,
		CustomerID:  strings.TrimSpace(in.CustomerID),
		LocationID:  strings.TrimSpace(in.LocationID),
		Note:        strings.TrimSpace(in.Note),
		ReferenceID: strings.TrimSpace(in.ReferenceID),
	}, nil
}

const (
	amountNotIntegerMessage = "Amount must be an integer number of minor currency units"

	// maxAmountTextLen bounds the digits a coefficient can carry, so any non-zero
	// amount with a smaller exponent is fractional.
	maxAmountTextLen = 32
	// A non-zero coefficient scaled past 10^18 no longer fits in int64.
	maxAmountExponent = 18
)

// parseAmount returns the amount in minor units or a violation message.
func parseAmount(raw string, min int64) (int64, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return 0, "Amount is required"
	}
	if len(raw) > maxAmountTextLen {
		return 0, "Amount is too large"
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, amountNotIntegerMessage
	}
	// Exponents are checked first: IsInteger and BigInt both cost time
	// proportional to the exponent.
	var amount int64
	switch {
	case d.IsZero():
	case d.Exponent() > maxAmountExponent:
		return 0, "Amount is too large"
	case d.Exponent() < -maxAmountTextLen, !d.IsInteger():
		return 0, amountNotIntegerMessage
	case !d.BigInt().IsInt64():
		return 0, "Amount is too large"
	default:
		amount = d.IntPart()
	}
	if amount < min {
		return 0, minAmountMessage(min)
	}
	return amount, ""
}

func minAmountMessage(min int64) string {
	unit := "cents"
	if min == 1 {
		unit = "cent"
	}
	return fmt.Sprintf("Amount must be at least %d %s", min, unit)
}

func isCurrencyCode(c string) bool {
	if len(c) != 3 {
		return false
	}
	for _, r := range c {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
