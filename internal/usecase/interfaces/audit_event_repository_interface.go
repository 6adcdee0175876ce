package interfaces

import (
	"context"

	"quotelock/internal/domain/entities"
)

// IAuditEventRepository is the append-only store behind the audit log.
//
// Append fails with ErrNotFound when the agreement does not exist. The interface has no
// update or delete on purpose: stored events cannot be changed through this module.

type IAuditEventRepository interface {
	Append(ctx context.Context, e entities.AuditEvent) error
	// ListByAgreementID returns events in ascending created_at order. With limit > 0 only
	// the most recent limit events are returned, still ascending.
	ListByAgreementID(ctx context.Context, agreementID string, limit int) ([]entities.AuditEvent, error)
}
