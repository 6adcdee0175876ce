package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"quotelock/internal/domain/entities"
	"quotelock/internal/infrastructure/metrics"
	"quotelock/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// DisplayTimelineLimit caps the events loaded for the contractor detail view.
const DisplayTimelineLimit = 100

var (
	ErrAgreementNotFound  = errors.New("agreement not found")
	ErrInvalidAgreementID = errors.New("invalid agreement id")
	ErrInvalidActor       = errors.New("invalid audit actor")
	ErrInvalidEventType   = errors.New("invalid audit event type")
)

// IAuditLogUseCase is the append-only audit log.
//
// There is no way to change or remove an event once appended.
type IAuditLogUseCase interface {
	Append(ctx context.Context, agreementID string, actor entities.AuditActor, eventType entities.AuditEventType, metadata map[string]any, reqCtx *entities.RequestContext) (entities.AuditEvent, error)
	ListForAgreement(ctx context.Context, agreementID string, limit int) ([]entities.AuditEvent, error)
}

type AuditLogUseCase struct {
	repo interfaces.IAuditEventRepository
	now  func() time.Time
}

var _ IAuditLogUseCase = (*AuditLogUseCase)(nil)

func NewAuditLogUseCase(repo interfaces.IAuditEventRepository) *AuditLogUseCase {
	return &AuditLogUseCase{repo: repo, now: time.Now}
}

func (u *AuditLogUseCase) Append(
	ctx context.Context,
	agreementID string,
	actor entities.AuditActor,
	eventType entities.AuditEventType,
	metadata map[string]any,
	reqCtx *entities.RequestContext,
) (entities.AuditEvent, error) {
	agreementID = strings.TrimSpace(agreementID)
	if agreementID == "" {
		return entities.AuditEvent{}, ErrInvalidAgreementID
	}
	if !actor.IsValid() {
		return entities.AuditEvent{}, ErrInvalidActor
	}
	if strings.TrimSpace(string(eventType)) == "" {
		return entities.AuditEvent{}, ErrInvalidEventType
	}

	e := newAuditEvent(ctx, agreementID, actor, eventType, metadata, reqCtx, u.now().UTC())
	if err := u.repo.Append(ctx, e); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			log.Printf("[audit][usecase] append rejected agreement_id=%s type=%s: agreement not found", agreementID, eventType)
			return entities.AuditEvent{}, ErrAgreementNotFound
		}
		log.Printf("[audit][usecase] append failed agreement_id=%s type=%s err=%v", agreementID, eventType, err)
		return entities.AuditEvent{}, err
	}
	metrics.AuditEventsAppendedTotal.WithLabelValues(string(eventType)).Inc()
	log.Printf("[audit][usecase] appended agreement_id=%s event_id=%s type=%s actor=%s", agreementID, e.ID, eventType, actor)
	return e, nil
}

func (u *AuditLogUseCase) ListForAgreement(ctx context.Context, agreementID string, limit int) ([]entities.AuditEvent, error) {
	agreementID = strings.TrimSpace(agreementID)
	if agreementID == "" {
		return nil, ErrInvalidAgreementID
	}
	return u.repo.ListByAgreementID(ctx, agreementID, limit)
}

// newAuditEvent builds an event with a fresh id and the resolved request details.
// Metadata entries with nil values are dropped so the stored bag only holds facts.
func newAuditEvent(
	ctx context.Context,
	agreementID string,
	actor entities.AuditActor,
	eventType entities.AuditEventType,
	metadata map[string]any,
	reqCtx *entities.RequestContext,
	now time.Time,
) entities.AuditEvent {
	rc := resolveRequestContext(ctx, reqCtx)
	return entities.AuditEvent{
		ID:          uuid.NewString(),
		AgreementID: agreementID,
		Actor:       actor,
		Type:        eventType,
		Metadata:    compactMetadata(metadata),
		IPAddress:   rc.IPAddress,
		UserAgent:   rc.UserAgent,
		CreatedAt:   now,
	}
}

func compactMetadata(in map[string]any) map[string]any {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		switch t := v.(type) {
		case nil:
			continue
		case *string:
			if t == nil {
				continue
			}
			out[k] = *t
		case []string:
			if t == nil {
				continue
			}
			out[k] = t
		case map[string]any:
			if t == nil {
				continue
			}
			out[k] = t
		default:
			out[k] = v
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
