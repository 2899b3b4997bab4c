package entities

import "time"

// Transaction is a completed charge handed to the transaction recorder.
//
// Storage model (DynamoDB): PK id (provider payment id).
type Transaction struct {
	ID            string         `json:"id"`
	Provider      string         `json:"provider"`
	Status        string         `json:"status"`
	Outcome       PaymentOutcome `json:"outcome"`
	Amount        int64          `json:"amount"`
	Currency      string         `json:"currency"`
	CustomerID    string         `json:"customer_id,omitempty"`
	CardID        string         `json:"card_id,omitempty"`
	ReceiptNumber string         `json:"receipt_number,omitempty"`
	RecordedAt    time.Time      `json:"recorded_at"`
}

func NewTransaction(result PaymentResult, cardID string, now time.Time) Transaction {
	return Transaction{
		ID:            result.ID,
		Provider:      result.Provider,
		Status:        result.Status,
		Outcome:       result.Outcome,
		Amount:        result.Amount,
		Currency:      result.Currency,
		CustomerID:    result.CustomerID,
		CardID:        cardID,
		ReceiptNumber: result.ReceiptNumber,
		RecordedAt:    now.UTC(),
	}
}
