package handlers

import (
	"errors"
	"net/http"

	"card_payments/internal/domain/entities"
	"card_payments/internal/usecase"
	"card_payments/pkg"

	"github.com/gin-gonic/gin"
)

const squareNotFoundCode = "NOT_FOUND"

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func invalidRequest(err error) *pkg.AppError {
	if ve, ok := usecase.AsValidationError(err); ok {
		return pkg.NewDomainError("INVALID_REQUEST", ve.Error(), err, http.StatusBadRequest)
	}
	return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
}

func mapPaymentIntentError(err error) *pkg.AppError {
	if _, ok := usecase.AsValidationError(err); ok {
		return invalidRequest(err)
	}
	appErr := pkg.NewDomainError("PAYMENT_INTENT_FAILED", "Failed to create payment intent", err, http.StatusInternalServerError)
	if pe, ok := entities.AsProviderError(err); ok {
		appErr.WithDetail(pe.Message)
	}
	return appErr
}

func mapPaymentStatusError(err error) *pkg.AppError {
	return pkg.NewDomainError("PAYMENT_STATUS_FAILED", "Failed to retrieve payment status", err, http.StatusInternalServerError)
}

// mapMercadoPagoPaymentError maps direct charge failures. Provider rejections keep
// the provider's message, category and code; lookup enables 404 for unknown ids.
func mapMercadoPagoPaymentError(err error, lookup bool) *pkg.AppError {
	switch {
	case isValidationError(err):
		return invalidRequest(err)
	case errors.Is(err, usecase.ErrInvalidPaymentID), errors.Is(err, usecase.ErrInvalidMPPayload):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	}
	if pe, ok := entities.AsProviderError(err); ok {
		status := http.StatusBadRequest
		switch {
		case pe.HTTPStatus == http.StatusUnauthorized:
			status = http.StatusUnauthorized
		case lookup && pe.HTTPStatus == http.StatusNotFound:
			status = http.StatusNotFound
		}
		return providerAppError(pe, status)
	}
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

func providerAppError(pe *entities.ProviderError, status int) *pkg.AppError {
	var details any
	if len(pe.Errors) > 0 {
		details = pe.Errors
	}
	return pkg.NewProviderError(pe.Message, pe.Category, pe.Code, details, status)
}

// SquareErrorResponse is the point-of-sale error body: the shared envelope plus a
// success flag, with the provider error list under "errors".
type SquareErrorResponse struct {
	Success  bool   `json:"success"`
	Error    string `json:"error"`
	Message  string `json:"message,omitempty"`
	Category string `json:"category,omitempty"`
	Code     string `json:"code,omitempty"`
	Errors   any    `json:"errors,omitempty"`
}

func writeSquareError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, SquareErrorResponse{
		Success:  false,
		Error:    appErr.Message,
		Message:  appErr.Detail,
		Category: appErr.Category,
		Code:     appErr.Code,
		Errors:   appErr.Details,
	})
}

// mapSquareError maps point-of-sale failures. lookup enables 404 for NOT_FOUND.
func mapSquareError(err error, lookup bool) *pkg.AppError {
	if ve, ok := usecase.AsValidationError(err); ok {
		return pkg.NewDomainError("", ve.Error(), err, http.StatusBadRequest)
	}
	if errors.Is(err, usecase.ErrInvalidPaymentID) {
		return pkg.NewDomainError("", "Payment ID is required", err, http.StatusBadRequest)
	}
	if pe, ok := entities.AsProviderError(err); ok {
		status := http.StatusBadRequest
		if lookup && pe.HasCode(squareNotFoundCode) {
			status = http.StatusNotFound
		}
		return providerAppError(pe, status)
	}
	return pkg.NewDomainError("", "Internal server error", err, http.StatusInternalServerError)
}

func isValidationError(err error) bool {
	_, ok := usecase.AsValidationError(err)
	return ok
}
