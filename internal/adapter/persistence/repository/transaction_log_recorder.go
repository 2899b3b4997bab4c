package repository

import (
	"context"
	"log"

	"card_payments/internal/domain/entities"
	"card_payments/internal/usecase/interfaces"
)

// LogTransactionRecorder is the default recorder: it writes one log line per
// completed charge and stores nothing.
type LogTransactionRecorder struct{}

var _ interfaces.ITransactionRecorder = LogTransactionRecorder{}

func (LogTransactionRecorder) Record(_ context.Context, tx entities.Transaction) error {
	log.Printf("[square][transactions] recorded payment_id=%s status=%s amount=%d currency=%s customer_id=%s card_id=%s",
		tx.ID, tx.Status, tx.Amount, tx.Currency, tx.CustomerID, tx.CardID)
	return nil
}
