package usecase

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Currencies charged in whole units by the providers we talk to.
var zeroDecimalCurrencies = map[string]bool{
	"CLP": true,
	"PYG": true,
	"JPY": true,
	"KRW": true,
}

// Provider decimals are rejected beyond this scale rather than inspected digit by digit.
const maxProviderScale = 64

func currencyExponent(currency string) int32 {
	if zeroDecimalCurrencies[strings.ToUpper(strings.TrimSpace(currency))] {
		return 0
	}
	return 2
}

// MinorToMajor converts an amount in minor units (cents) to the provider's
// decimal major-unit representation.
func MinorToMajor(amount int64, currency string) decimal.Decimal {
	return decimal.New(amount, -currencyExponent(currency))
}

// MajorToMinor converts a decimal major-unit amount back to minor units. It fails
// when the value has more precision than the currency allows or overflows int64.
func MajorToMinor(major decimal.Decimal, currency string) (int64, error) {
	minor := major.Shift(currencyExponent(currency))
	switch {
	case minor.IsZero():
		return 0, nil
	case minor.Exponent() > maxAmountExponent:
		return 0, fmt.Errorf("amount %s overflows minor units", major.String())
	case minor.Exponent() < -maxProviderScale:
		return 0, fmt.Errorf("amount %s has sub-unit precision for %s", major.String(), currency)
	}
	if !minor.IsInteger() {
		return 0, fmt.Errorf("amount %s has sub-unit precision for %s", major.String(), currency)
	}
	if !minor.BigInt().IsInt64() {
		return 0, fmt.Errorf("amount %s overflows minor units", major.String())
	}
	return minor.IntPart(), nil
}
