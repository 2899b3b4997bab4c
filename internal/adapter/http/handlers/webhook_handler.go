package handlers

import (
	"errors"
	"log"
	"net/http"

	"card_payments/internal/adapter/http/dto/response"
	"card_payments/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	StripeSignatureHeader = "Stripe-Signature"
	MaxWebhookBodyBytes   = 64 << 10
)

type WebhookHandler struct {
	usecase usecase.IWebhookUseCase
}

func NewWebhookHandler(uc usecase.IWebhookUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// HandleStripeWebhook godoc
// @Summary      Stripe webhook
// @Description  Verifies the Stripe-Signature header against the raw body before the event is parsed.
// @Tags         stripe
// @Accept       json
// @Produce      json
// @Param        Stripe-Signature  header    string  true  "Stripe signature"
// @Success      200               {object}  response.WebhookAckResponse
// @Failure      400               {string}  string  "Webhook Error: <reason>"
// @Router       /webhook [post]
func (h *WebhookHandler) HandleStripeWebhook(c *gin.Context) {
	// The body must reach the verifier byte for byte, so nothing binds it first.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxWebhookBodyBytes)
	payload, err := c.GetRawData()
	if err != nil {
		log.Printf("[payment][handler] webhook body read failed err=%v", err)
		c.String(http.StatusBadRequest, "Webhook Error: %s", webhookReadReason(err))
		return
	}

	outcome, err := h.usecase.Handle(c.Request.Context(), payload, c.GetHeader(StripeSignatureHeader))
	if err != nil {
		c.String(http.StatusBadRequest, "Webhook Error: %s", usecase.ErrInvalidSignature.Error())
		return
	}
	log.Printf("[payment][handler] webhook acknowledged event_id=%s type=%s dispatched=%t", outcome.Event.ID, outcome.Event.Type, outcome.Dispatched)

	c.JSON(http.StatusOK, response.WebhookAckResponse{Received: true})
}

func webhookReadReason(err error) string {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return "request body too large"
	}
	return "unable to read request body"
}
