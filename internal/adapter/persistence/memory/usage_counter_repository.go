package memory

import (
	"context"

	"quotelock/internal/usecase/interfaces"
)

type UsageCounterRepository struct {
	store *Store
}

var _ interfaces.IUsageCounterRepository = (*UsageCounterRepository)(nil)

func NewUsageCounterRepository(store *Store) *UsageCounterRepository {
	return &UsageCounterRepository{store: store}
}

func (r *UsageCounterRepository) Current(ctx context.Context, userID, period string) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.usage[usageKey(userID, period)], nil
}

func (r *UsageCounterRepository) Increment(ctx context.Context, userID, period string) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	key := usageKey(userID, period)
	r.store.usage[key]++
	return r.store.usage[key], nil
}

func usageKey(userID, period string) string {
	return userID + "#" + period
}
