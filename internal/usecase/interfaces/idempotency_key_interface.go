package interfaces

// IIdempotencyKeyGenerator produces a best-effort unique token per call attempt.
type IIdempotencyKeyGenerator interface {
	NewKey() string
}
