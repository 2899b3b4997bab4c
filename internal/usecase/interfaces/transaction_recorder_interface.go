package interfaces

import (
	"context"

	"card_payments/internal/domain/entities"
)

// ITransactionRecorder persists completed charges. Implementations may only log.
type ITransactionRecorder interface {
	Record(ctx context.Context, tx entities.Transaction) error
}
