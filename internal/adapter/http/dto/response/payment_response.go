package response

import (
	"card_payments/internal/domain/entities"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type PaymentIntentResponse struct {
	ClientSecret    string `json:"clientSecret"`
	PaymentIntentID string `json:"paymentIntentId"`
}

func FromPaymentIntent(r entities.PaymentResult) PaymentIntentResponse {
	return PaymentIntentResponse{ClientSecret: r.ClientSecret, PaymentIntentID: r.ID}
}

type PaymentStatusResponse struct {
	Status   string `json:"status"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

func FromPaymentStatus(r entities.PaymentResult) PaymentStatusResponse {
	return PaymentStatusResponse{Status: r.Status, Amount: r.Amount, Currency: r.Currency}
}

type WebhookAckResponse struct {
	Received bool `json:"received"`
}

// MercadoPagoPaymentResponse reports a Mercado Pago charge; amount is in minor units.
type MercadoPagoPaymentResponse struct {
	Success      bool   `json:"success"`
	PaymentID    string `json:"paymentId"`
	Status       string `json:"status"`
	StatusDetail string `json:"statusDetail"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

func FromMercadoPagoPayment(r entities.PaymentResult) MercadoPagoPaymentResponse {
	return MercadoPagoPaymentResponse{
		Success:      true,
		PaymentID:    r.ID,
		Status:       r.Status,
		StatusDetail: r.StatusDetail,
		Amount:       r.Amount,
		Currency:     r.Currency,
	}
}
