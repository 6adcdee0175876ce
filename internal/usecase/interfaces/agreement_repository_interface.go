package interfaces

import (
	"context"
	"errors"
	"time"

	"quotelock/internal/domain/entities"
)

var (
	// ErrNotFound is returned by repositories when the referenced agreement does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when a conditional write lost against a concurrent change.
	ErrConflict = errors.New("conditional write conflict")
	// ErrRetryable is returned when the store cancelled a write that may succeed if repeated.
	ErrRetryable = errors.New("transient write conflict")
)

// TransitionCommand is a status change plus the audit event that records it.
//
// Repositories apply it only while the stored status still equals From. LockAt, when set,
// latches locked_at if it is still empty and never overwrites an existing value.
type TransitionCommand struct {
	AgreementID string
	From        entities.AgreementStatus
	To          entities.AgreementStatus
	LockAt      *time.Time
	ClientName  *string
	ClientEmail *string
	Event       entities.AuditEvent
	Now         time.Time
}

// UpdateCommand is a field update plus its UPDATED audit event.
//
// Repositories apply it only while status and lock state still match what the caller
// validated against.
type UpdateCommand struct {
	AgreementID    string
	ExpectedStatus entities.AgreementStatus
	ExpectedLocked bool
	Changes        entities.AgreementChanges
	Event          entities.AuditEvent
	Now            time.Time
}

// IAgreementRepository abstracts persistence for Agreement.
//
// Every mutation writes the agreement and its audit event as one unit: either both are
// stored or neither is. There is intentionally no delete.
type IAgreementRepository interface {
	Create(ctx context.Context, a entities.Agreement, created entities.AuditEvent) (entities.Agreement, error)
	GetByID(ctx context.Context, id string) (entities.Agreement, error)
	GetByPublicSlug(ctx context.Context, slug string) (entities.Agreement, error)
	ListByUserID(ctx context.Context, userID string, status entities.AgreementStatus) ([]entities.Agreement, error)
	ApplyTransition(ctx context.Context, cmd TransitionCommand) (entities.Agreement, error)
	ApplyUpdate(ctx context.Context, cmd UpdateCommand) (entities.Agreement, error)
}
