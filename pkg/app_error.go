package pkg

import "fmt"

// AppError is the error envelope returned by every HTTP handler.
//
// Code is a machine-readable identifier; for provider rejections it carries the
// provider's own code and Category its category. Err is the underlying cause and is
// never serialized.
type AppError struct {
	Code       string
	Message    string
	Detail     string
	Category   string
	Details    any
	Err        error
	HTTPStatus int
}

// HTTPError is the JSON body produced from an AppError.
type HTTPError struct {
	Error    string `json:"error"`
	Message  string `json:"message,omitempty"`
	Category string `json:"category,omitempty"`
	Code     string `json:"code,omitempty"`
	Details  any    `json:"details,omitempty"`
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

// NewProviderError builds an envelope that exposes a provider's category and code
// as-is. Empty values stay absent from the body.
func NewProviderError(message, category, code string, details any, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		Category:   category,
		Details:    details,
		HTTPStatus: httpStatus,
	}
}

// WithDetail attaches a human readable explanation rendered as "message".
func (e *AppError) WithDetail(detail string) *AppError {
	e.Detail = detail
	return e
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{
		Error:    e.Message,
		Message:  e.Detail,
		Category: e.Category,
		Code:     e.Code,
		Details:  e.Details,
	}
}
