package entities

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrProviderUnavailable marks transport level failures: the provider could not be
// reached or answered with something that is not a recognizable payload.
var ErrProviderUnavailable = errors.New("payment provider unavailable")

// ProviderErrorDetail is one entry of a provider's error list.
type ProviderErrorDetail struct {
	Category string `json:"category,omitempty"`
	Code     string `json:"code,omitempty"`
	Detail   string `json:"detail,omitempty"`
	Field    string `json:"field,omitempty"`
}

// ProviderError is a normalized provider rejection.
//
// Message prefers the first entry's detail. Category and Code are only set when the
// provider supplied them on that entry.
type ProviderError struct {
	Provider   string
	HTTPStatus int
	Message    string
	Category   string
	Code       string
	Errors     []ProviderErrorDetail
}

func NewProviderError(provider string, httpStatus int, details []ProviderErrorDetail, fallback string) *ProviderError {
	pe := &ProviderError{
		Provider:   provider,
		HTTPStatus: httpStatus,
		Message:    fallback,
		Errors:     details,
	}
	if len(details) == 0 {
		if pe.Message == "" {
			pe.Message = http.StatusText(httpStatus)
		}
		return pe
	}

	first := details[0]
	pe.Category = first.Category
	pe.Code = first.Code
	switch {
	case first.Detail != "":
		pe.Message = first.Detail
	case first.Code != "" && fallback == "":
		pe.Message = first.Code
	}
	if pe.Message == "" {
		pe.Message = http.StatusText(httpStatus)
	}
	return pe
}

func (e *ProviderError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s provider error (%s): %s", e.Provider, e.Code, e.Message)
	}
	return fmt.Sprintf("%s provider error: %s", e.Provider, e.Message)
}

// HasCode reports whether any entry of the error list carries code.
func (e *ProviderError) HasCode(code string) bool {
	if e.Code == code {
		return true
	}
	for _, d := range e.Errors {
		if d.Code == code {
			return true
		}
	}
	return false
}

// AsProviderError unwraps err into a *ProviderError.
func AsProviderError(err error) (*ProviderError, bool) {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
