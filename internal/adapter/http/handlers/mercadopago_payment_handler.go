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

// MercadoPagoPaymentHandler handles HTTP requests for Mercado Pago payments.
type MercadoPagoPaymentHandler struct {
	usecase usecase.IMercadoPagoPaymentUseCase
}

func NewMercadoPagoPaymentHandler(uc usecase.IMercadoPagoPaymentUseCase) *MercadoPagoPaymentHandler {
	return &MercadoPagoPaymentHandler{usecase: uc}
}

// CreatePayment godoc
// @Summary      Create a Mercado Pago payment
// @Description  Charges through Mercado Pago. mp_payload is forwarded with the validated amount as transaction_amount.
// @Tags         mercadopago
// @Accept       json
// @Produce      json
// @Param        request  body      request.MercadoPagoPaymentRequest  true  "Amount and Mercado Pago payload"
// @Success      200      {object}  response.MercadoPagoPaymentResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      401      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /create-mercadopago-payment [post]
func (h *MercadoPagoPaymentHandler) CreatePayment(c *gin.Context) {
	var req request.MercadoPagoPaymentRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		log.Printf("[payment][handler] mp create invalid body err=%v", err)
		writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
		return
	}

	result, err := h.usecase.CreatePayment(c.Request.Context(), req.ToUseCaseInput())
	if err != nil {
		log.Printf("[payment][handler] mp create failed err=%v", err)
		writeError(c, mapMercadoPagoPaymentError(err, false))
		return
	}
	log.Printf("[payment][handler] mp create success payment_id=%s status=%s", result.ID, result.Status)

	c.JSON(http.StatusOK, response.FromMercadoPagoPayment(result))
}

// GetPayment godoc
// @Summary      Mercado Pago payment lookup
// @Tags         mercadopago
// @Produce      json
// @Param        id   path      string  true  "Mercado Pago payment id"
// @Success      200  {object}  response.MercadoPagoPaymentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      401  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /mercadopago-payment/{id} [get]
func (h *MercadoPagoPaymentHandler) GetPayment(c *gin.Context) {
	id := c.Param("id")

	result, err := h.usecase.GetPayment(c.Request.Context(), id)
	if err != nil {
		log.Printf("[payment][handler] mp get failed payment_id=%s err=%v", id, err)
		writeError(c, mapMercadoPagoPaymentError(err, true))
		return
	}

	c.JSON(http.StatusOK, response.FromMercadoPagoPayment(result))
}
