package memory

import (
	"context"

	"quotelock/internal/domain/entities"
	"quotelock/internal/usecase/interfaces"
)

type AuditEventRepository struct {
	store *Store
}

var _ interfaces.IAuditEventRepository = (*AuditEventRepository)(nil)

func NewAuditEventRepository(store *Store) *AuditEventRepository {
	return &AuditEventRepository{store: store}
}

func (r *AuditEventRepository) Append(ctx context.Context, e entities.AuditEvent) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.agreements[e.AgreementID]; !ok {
		return interfaces.ErrNotFound
	}
	r.store.appendEventLocked(e)
	return nil
}

func (r *AuditEventRepository) ListByAgreementID(ctx context.Context, agreementID string, limit int) ([]entities.AuditEvent, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	list := r.store.events[agreementID]
	if limit > 0 && len(list) > limit {
		list = list[len(list)-limit:]
	}
	out := make([]entities.AuditEvent, 0, len(list))
	for _, e := range list {
		out = append(out, cloneEvent(e))
	}
	return out, nil
}
