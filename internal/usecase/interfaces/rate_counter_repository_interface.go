package interfaces

import (
	"context"
	"time"
)

// IRateCounterRepository is the externally owned keyed counter used for rate limiting.
//
// Increment atomically adds one to the counter stored under key and returns the new value.
// expiresAt tells the store when the counter may be discarded.
type IRateCounterRepository interface {
	Increment(ctx context.Context, key string, expiresAt time.Time) (int64, error)
}
