package memory

import (
	"context"
	"sort"

	"quotelock/internal/domain/entities"
	"quotelock/internal/usecase/interfaces"
)

type AgreementRepository struct {
	store *Store
}

var _ interfaces.IAgreementRepository = (*AgreementRepository)(nil)

func NewAgreementRepository(store *Store) *AgreementRepository {
	return &AgreementRepository{store: store}
}

func (r *AgreementRepository) Create(ctx context.Context, a entities.Agreement, created entities.AuditEvent) (entities.Agreement, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.agreements[a.ID]; exists {
		return entities.Agreement{}, interfaces.ErrConflict
	}
	r.store.agreements[a.ID] = a
	r.store.appendEventLocked(created)
	return a, nil
}

func (r *AgreementRepository) GetByID(ctx context.Context, id string) (entities.Agreement, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.agreements[id], nil
}

func (r *AgreementRepository) GetByPublicSlug(ctx context.Context, slug string) (entities.Agreement, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, a := range r.store.agreements {
		if a.PublicSlug == slug {
			return a, nil
		}
	}
	return entities.Agreement{}, nil
}

func (r *AgreementRepository) ListByUserID(ctx context.Context, userID string, status entities.AgreementStatus) ([]entities.Agreement, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]entities.Agreement, 0)
	for _, a := range r.store.agreements {
		if a.UserID != userID {
			continue
		}
		if status != "" && a.Status != status {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *AgreementRepository) ApplyTransition(ctx context.Context, cmd interfaces.TransitionCommand) (entities.Agreement, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	a, ok := r.store.agreements[cmd.AgreementID]
	if !ok {
		return entities.Agreement{}, interfaces.ErrNotFound
	}
	if a.Status != cmd.From {
		return entities.Agreement{}, interfaces.ErrConflict
	}

	a.Status = cmd.To
	a.UpdatedAt = cmd.Now
	if cmd.LockAt != nil && a.LockedAt == nil {
		t := *cmd.LockAt
		a.LockedAt = &t
	}
	if cmd.ClientName != nil {
		a.ClientName = cmd.ClientName
	}
	if cmd.ClientEmail != nil {
		a.ClientEmail = cmd.ClientEmail
	}

	r.store.agreements[a.ID] = a
	r.store.appendEventLocked(cmd.Event)
	return a, nil
}

func (r *AgreementRepository) ApplyUpdate(ctx context.Context, cmd interfaces.UpdateCommand) (entities.Agreement, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	a, ok := r.store.agreements[cmd.AgreementID]
	if !ok {
		return entities.Agreement{}, interfaces.ErrNotFound
	}
	if a.Status != cmd.ExpectedStatus || (a.LockedAt != nil) != cmd.ExpectedLocked {
		return entities.Agreement{}, interfaces.ErrConflict
	}

	a = cmd.Changes.Apply(a)
	a.UpdatedAt = cmd.Now
	r.store.agreements[a.ID] = a
	r.store.appendEventLocked(cmd.Event)
	return a, nil
}
