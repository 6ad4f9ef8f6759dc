package usecase

import "time"

const (
	// StatementCacheTTL is how long a rendered statement stays cached.
	// Short on purpose: a deposit right after a report should show up on
	// the next refresh.
	StatementCacheTTL = 30 * time.Second

	// IdempotencyKeyTTL is how long idempotency keys are cached.
	IdempotencyKeyTTL = 24 * time.Hour
)
