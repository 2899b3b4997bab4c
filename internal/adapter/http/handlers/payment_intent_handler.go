package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"card_payments/internal/adapter/http/dto/request"
	"card_payments/internal/adapter/http/dto/response"
	"card_payments/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PaymentIntentHandler handles HTTP requests for Stripe payment intents.
type PaymentIntentHandler struct {
	usecase usecase.IPaymentIntentUseCase
}

func NewPaymentIntentHandler(uc usecase.IPaymentIntentUseCase) *PaymentIntentHandler {
	return &PaymentIntentHandler{usecase: uc}
}

// CreatePaymentIntent godoc
// @Summary      Create a payment intent
// @Description  Validates the amount (minor units) and creates a Stripe payment intent with automatic payment methods.
// @Tags         stripe
// @Accept       json
// @Produce      json
// @Param        request  body      request.PaymentIntentRequest  true  "Amount and currency"
// @Success      200      {object}  response.PaymentIntentResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /create-payment-intent [post]
func (h *PaymentIntentHandler) CreatePaymentIntent(c *gin.Context) {
	var req request.PaymentIntentRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		log.Printf("[payment][handler] create-intent invalid body err=%v", err)
		writeError(c, invalidRequest(err))
		return
	}

	result, err := h.usecase.CreatePaymentIntent(c.Request.Context(), req.ToPaymentInput())
	if err != nil {
		log.Printf("[payment][handler] create-intent failed err=%v", err)
		writeError(c, mapPaymentIntentError(err))
		return
	}
	log.Printf("[payment][handler] create-intent success payment_intent_id=%s", result.ID)

	c.JSON(http.StatusOK, response.FromPaymentIntent(result))
}

// GetPaymentStatus godoc
// @Summary      Payment intent status
// @Tags         stripe
// @Produce      json
// @Param        paymentIntentId  path      string  true  "Payment intent id"
// @Success      200              {object}  response.PaymentStatusResponse
// @Failure      500              {object}  pkg.HTTPError
// @Router       /payment-status/{paymentIntentId} [get]
func (h *PaymentIntentHandler) GetPaymentStatus(c *gin.Context) {
	id := c.Param("paymentIntentId")

	result, err := h.usecase.GetPaymentStatus(c.Request.Context(), id)
	if err != nil {
		log.Printf("[payment][handler] payment-status failed payment_intent_id=%s err=%v", id, err)
		writeError(c, mapPaymentStatusError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentStatus(result))
}

// bindOptionalJSON decodes the body into dst; an empty body leaves dst zero so
// the validator reports the missing fields.
func bindOptionalJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
