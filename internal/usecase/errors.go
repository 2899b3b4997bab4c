package usecase

import (
	"errors"
	"strings"
)

var (
	ErrInvalidPaymentID      = errors.New("invalid payment id")
	ErrInvalidSignature      = errors.New("webhook signature verification failed")
	ErrGatewayNotConfigured  = errors.New("payment gateway not configured")
	ErrRecorderNotConfigured = errors.New("transaction recorder not configured")
)

// Violation is one failed input constraint.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned before any provider interaction when the input
// breaks one or more constraints.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "invalid request"
	}
	return e.Violations[0].Message
}

func (e *ValidationError) add(field, message string) {
	e.Violations = append(e.Violations, Violation{Field: field, Message: message})
}

// orNil keeps a typed nil from escaping as a non-nil error.
func (e *ValidationError) orNil() error {
	if e == nil || len(e.Violations) == 0 {
		return nil
	}
	return e
}

// Fields lists the violated field names, in order.
func (e *ValidationError) Fields() []string {
	out := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		out = append(out, v.Field)
	}
	return out
}

func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

func newValidationError(field, message string) *ValidationError {
	ve := &ValidationError{}
	ve.add(field, message)
	return ve
}

func requireID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", ErrInvalidPaymentID
	}
	return id, nil
}
