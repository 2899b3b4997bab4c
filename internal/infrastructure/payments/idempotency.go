package payments

import (
	"log"

	"github.com/google/uuid"
)

// UUIDKeyGenerator issues UUIDv7 idempotency keys: a 48-bit millisecond timestamp,
// monotonic within the process, followed by random bits.
type UUIDKeyGenerator struct{}

func NewUUIDKeyGenerator() UUIDKeyGenerator {
	return UUIDKeyGenerator{}
}

func (UUIDKeyGenerator) NewKey() string {
	id, err := uuid.NewV7()
	if err != nil {
		log.Printf("[payment][idempotency] v7 generation failed, falling back to v4 err=%v", err)
		return uuid.NewString()
	}
	return id.String()
}
