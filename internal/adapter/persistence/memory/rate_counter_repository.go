package memory

import (
	"context"
	"time"

	"quotelock/internal/usecase/interfaces"
)

type RateCounterRepository struct {
	store *Store
	now   func() time.Time
}

var _ interfaces.IRateCounterRepository = (*RateCounterRepository)(nil)

func NewRateCounterRepository(store *Store) *RateCounterRepository {
	return &RateCounterRepository{store: store, now: time.Now}
}

func (r *RateCounterRepository) Increment(ctx context.Context, key string, expiresAt time.Time) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := r.now()
	for k, c := range r.store.counters {
		if !c.expiresAt.After(now) {
			delete(r.store.counters, k)
		}
	}

	c := r.store.counters[key]
	c.value++
	c.expiresAt = expiresAt
	r.store.counters[key] = c
	return c.value, nil
}
