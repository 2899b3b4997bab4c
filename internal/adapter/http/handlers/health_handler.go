package handlers

import (
	"net/http"
	"strings"

	"card_payments/internal/adapter/http/dto/response"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	body any
}

func NewStripeHealthHandler() *HealthHandler {
	return &HealthHandler{body: response.MessageResponse{Message: "Stripe Payment Server is running!"}}
}

func NewSquareHealthHandler(environment, locationID string) *HealthHandler {
	return &HealthHandler{body: response.SquareHealthResponse{
		Message:            "Square Payment Server is running!",
		Environment:        environment,
		LocationConfigured: strings.TrimSpace(locationID) != "",
	}}
}

// Root godoc
// @Summary  Liveness check
// @Tags     health
// @Produce  json
// @Success  200  {object}  response.MessageResponse
// @Router   / [get]
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, h.body)
}
