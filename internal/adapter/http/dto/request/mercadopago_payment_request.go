package request

import (
	"encoding/json"

	"card_payments/internal/domain/entities"
	"card_payments/internal/usecase"
)

// MercadoPagoPaymentRequest is the body of POST /create-mercadopago-payment.
//
// `mp_payload` is forwarded as-is (raw JSON) to support varying Mercado Pago schemas;
// amount is in minor units and always overrides transaction_amount.
type MercadoPagoPaymentRequest struct {
	Amount            json.RawMessage `json:"amount" swaggertype:"integer" example:"1000"`
	Currency          string          `json:"currency" example:"BRL"`
	Description       string          `json:"description"`
	ExternalReference string          `json:"externalReference"`
	MPPayload         json.RawMessage `json:"mp_payload" swaggertype:"object"`
}

func (r MercadoPagoPaymentRequest) ToUseCaseInput() usecase.MercadoPagoPaymentInput {
	return usecase.MercadoPagoPaymentInput{
		Payment: entities.PaymentInput{
			Amount:      AmountText(r.Amount),
			Currency:    r.Currency,
			ReferenceID: r.ExternalReference,
		},
		Description: r.Description,
		Payload:     r.MPPayload,
	}
}
