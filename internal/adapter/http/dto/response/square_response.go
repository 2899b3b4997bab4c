package response

import (
	"card_payments/internal/domain/entities"
)

type SquareHealthResponse struct {
	Message            string `json:"message"`
	Environment        string `json:"environment"`
	LocationConfigured bool   `json:"locationConfigured"`
}

type SquarePaymentResponse struct {
	Success       bool                  `json:"success"`
	PaymentID     string                `json:"paymentId"`
	Amount        int64                 `json:"amount"`
	Currency      string                `json:"currency"`
	Status        string                `json:"status"`
	ReceiptNumber string                `json:"receiptNumber"`
	ReceiptURL    string                `json:"receiptUrl"`
	CardDetails   *entities.CardSummary `json:"cardDetails,omitempty"`
}

func FromSquarePayment(r entities.PaymentResult) SquarePaymentResponse {
	return SquarePaymentResponse{
		Success:       true,
		PaymentID:     r.ID,
		Amount:        r.Amount,
		Currency:      r.Currency,
		Status:        r.Status,
		ReceiptNumber: r.ReceiptNumber,
		ReceiptURL:    r.ReceiptURL,
		CardDetails:   r.Card,
	}
}

type StoredCardPaymentResponse struct {
	Success       bool   `json:"success"`
	PaymentID     string `json:"paymentId"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
	Status        string `json:"status"`
	ReceiptNumber string `json:"receiptNumber"`
}

func FromStoredCardPayment(r entities.PaymentResult) StoredCardPaymentResponse {
	return StoredCardPaymentResponse{
		Success:       true,
		PaymentID:     r.ID,
		Amount:        r.Amount,
		Currency:      r.Currency,
		Status:        r.Status,
		ReceiptNumber: r.ReceiptNumber,
	}
}

type SquareCustomerResponse struct {
	Success    bool              `json:"success"`
	Customer   entities.Customer `json:"customer"`
	CustomerID string            `json:"customerId"`
}

func FromSquareCustomer(c entities.Customer) SquareCustomerResponse {
	return SquareCustomerResponse{Success: true, Customer: c, CustomerID: c.ID}
}

type StoreCardResponse struct {
	Success   bool          `json:"success"`
	Card      entities.Card `json:"card"`
	CardID    string        `json:"cardId"`
	LastFour  string        `json:"lastFour"`
	CardBrand string        `json:"cardBrand"`
	ExpMonth  int64         `json:"expMonth"`
	ExpYear   int64         `json:"expYear"`
}

func FromStoredCard(c entities.Card) StoreCardResponse {
	return StoreCardResponse{
		Success:   true,
		Card:      c,
		CardID:    c.ID,
		LastFour:  c.LastFour,
		CardBrand: c.CardBrand,
		ExpMonth:  c.ExpMonth,
		ExpYear:   c.ExpYear,
	}
}

type SquarePaymentStatusResponse struct {
	Success   bool                   `json:"success"`
	Payment   entities.PaymentResult `json:"payment"`
	Status    string                 `json:"status"`
	Amount    int64                  `json:"amount"`
	Currency  string                 `json:"currency"`
	CreatedAt string                 `json:"createdAt"`
	UpdatedAt string                 `json:"updatedAt"`
}

func FromSquarePaymentStatus(r entities.PaymentResult) SquarePaymentStatusResponse {
	return SquarePaymentStatusResponse{
		Success:   true,
		Payment:   r,
		Status:    r.Status,
		Amount:    r.Amount,
		Currency:  r.Currency,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type LocationsResponse struct {
	Success   bool                `json:"success"`
	Locations []entities.Location `json:"locations"`
}

func FromLocations(locations []entities.Location) LocationsResponse {
	if locations == nil {
		locations = []entities.Location{}
	}
	return LocationsResponse{Success: true, Locations: locations}
}
