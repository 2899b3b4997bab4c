package handlers

import (
	"log"
	"net/http"

	"card_payments/internal/adapter/http/dto/request"
	"card_payments/internal/adapter/http/dto/response"
	"card_payments/internal/usecase"
	"card_payments/pkg"

	"github.com/gin-gonic/gin"
)

// SquarePaymentHandler handles HTTP requests for the point-of-sale service.
type SquarePaymentHandler struct {
	usecase usecase.ISquarePaymentUseCase
}

func NewSquarePaymentHandler(uc usecase.ISquarePaymentUseCase) *SquarePaymentHandler {
	return &SquarePaymentHandler{usecase: uc}
}

func invalidSquareBody(c *gin.Context, err error) {
	log.Printf("[square][handler] invalid body path=%s err=%v", c.FullPath(), err)
	writeSquareError(c, pkg.NewDomainError("", "Invalid request body", err, http.StatusBadRequest))
}

// CreatePayment godoc
// @Summary      Create a Square payment
// @Tags         square
// @Accept       json
// @Produce      json
// @Param        request  body      request.SquarePaymentRequest  true  "Amount (minor units) and source id"
// @Success      200      {object}  response.SquarePaymentResponse
// @Failure      400      {object}  handlers.SquareErrorResponse
// @Failure      500      {object}  handlers.SquareErrorResponse
// @Router       /create-square-payment [post]
func (h *SquarePaymentHandler) CreatePayment(c *gin.Context) {
	var req request.SquarePaymentRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		invalidSquareBody(c, err)
		return
	}

	result, err := h.usecase.CreatePayment(c.Request.Context(), req.ToPaymentInput())
	if err != nil {
		log.Printf("[square][handler] create-payment failed err=%v", err)
		writeSquareError(c, mapSquareError(err, false))
		return
	}

	c.JSON(http.StatusOK, response.FromSquarePayment(result))
}

// PayWithStoredCard godoc
// @Summary      Charge a stored card
// @Tags         square
// @Accept       json
// @Produce      json
// @Param        request  body      request.StoredCardPaymentRequest  true  "Amount (minor units) and card id"
// @Success      200      {object}  response.StoredCardPaymentResponse
// @Failure      400      {object}  handlers.SquareErrorResponse
// @Failure      500      {object}  handlers.SquareErrorResponse
// @Router       /pay-with-stored-card [post]
func (h *SquarePaymentHandler) PayWithStoredCard(c *gin.Context) {
	var req request.StoredCardPaymentRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		invalidSquareBody(c, err)
		return
	}

	result, err := h.usecase.PayWithStoredCard(c.Request.Context(), req.ToPaymentInput())
	if err != nil {
		log.Printf("[square][handler] pay-with-stored-card failed err=%v", err)
		writeSquareError(c, mapSquareError(err, false))
		return
	}

	c.JSON(http.StatusOK, response.FromStoredCardPayment(result))
}

// CreateCustomer godoc
// @Summary      Create a Square customer
// @Tags         square
// @Accept       json
// @Produce      json
// @Param        request  body      request.SquareCustomerRequest  true  "Customer fields"
// @Success      200      {object}  response.SquareCustomerResponse
// @Failure      400      {object}  handlers.SquareErrorResponse
// @Failure      500      {object}  handlers.SquareErrorResponse
// @Router       /create-square-customer [post]
func (h *SquarePaymentHandler) CreateCustomer(c *gin.Context) {
	var req request.SquareCustomerRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		invalidSquareBody(c, err)
		return
	}

	customer, err := h.usecase.CreateCustomer(c.Request.Context(), req.ToCustomerInput())
	if err != nil {
		log.Printf("[square][handler] create-customer failed err=%v", err)
		writeSquareError(c, mapSquareError(err, false))
		return
	}

	c.JSON(http.StatusOK, response.FromSquareCustomer(customer))
}

// StoreCard godoc
// @Summary      Store a card on file
// @Tags         square
// @Accept       json
// @Produce      json
// @Param        request  body      request.StoreCardRequest  true  "Customer id and sourceId or cardNonce"
// @Success      200      {object}  response.StoreCardResponse
// @Failure      400      {object}  handlers.SquareErrorResponse
// @Failure      500      {object}  handlers.SquareErrorResponse
// @Router       /store-card [post]
func (h *SquarePaymentHandler) StoreCard(c *gin.Context) {
	var req request.StoreCardRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		invalidSquareBody(c, err)
		return
	}

	card, err := h.usecase.StoreCard(c.Request.Context(), req.ToCardInput())
	if err != nil {
		log.Printf("[square][handler] store-card failed err=%v", err)
		writeSquareError(c, mapSquareError(err, false))
		return
	}

	c.JSON(http.StatusOK, response.FromStoredCard(card))
}

// GetPayment godoc
// @Summary      Square payment lookup
// @Tags         square
// @Produce      json
// @Param        id   path      string  true  "Square payment id"
// @Success      200  {object}  response.SquarePaymentStatusResponse
// @Failure      400  {object}  handlers.SquareErrorResponse
// @Failure      404  {object}  handlers.SquareErrorResponse
// @Failure      500  {object}  handlers.SquareErrorResponse
// @Router       /payment-status/{id} [get]
func (h *SquarePaymentHandler) GetPayment(c *gin.Context) {
	id := c.Param("id")

	result, err := h.usecase.GetPayment(c.Request.Context(), id)
	if err != nil {
		log.Printf("[square][handler] get-payment failed payment_id=%s err=%v", id, err)
		writeSquareError(c, mapSquareError(err, true))
		return
	}

	c.JSON(http.StatusOK, response.FromSquarePaymentStatus(result))
}

// ListLocations godoc
// @Summary      List Square locations
// @Tags         square
// @Produce      json
// @Success      200  {object}  response.LocationsResponse
// @Failure      400  {object}  handlers.SquareErrorResponse
// @Failure      500  {object}  handlers.SquareErrorResponse
// @Router       /square-locations [get]
func (h *SquarePaymentHandler) ListLocations(c *gin.Context) {
	locations, err := h.usecase.ListLocations(c.Request.Context())
	if err != nil {
		log.Printf("[square][handler] list-locations failed err=%v", err)
		writeSquareError(c, mapSquareError(err, false))
		return
	}

	c.JSON(http.StatusOK, response.FromLocations(locations))
}
