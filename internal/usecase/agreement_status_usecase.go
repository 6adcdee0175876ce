package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"quotelock/internal/domain/entities"
	"quotelock/internal/infrastructure/metrics"
	"quotelock/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidStatus       = errors.New("invalid agreement status")
	ErrInvalidRevertReason = errors.New("revert reason is required")
	ErrInvalidCorrection   = errors.New("invalid correction")
)

// CorrectionInput documents a mistake after the fact without touching the agreement.
type CorrectionInput struct {
	Type           entities.CorrectionType
	Description    string
	AffectedFields []string
	NewValues      map[string]any
}

// IAgreementStatusUseCase is the agreement status state machine.
//
// Every successful call stores the new status and exactly one audit event together.
// Business-rule rejections come back as *entities.TransitionError.
type IAgreementStatusUseCase interface {
	Transition(ctx context.Context, agreementID string, to entities.AgreementStatus, actor entities.AuditActor, metadata map[string]any) (entities.Agreement, error)
	Revert(ctx context.Context, agreementID string, to entities.AgreementStatus, actor entities.AuditActor, reason string) (entities.Agreement, error)
	RecordCorrection(ctx context.Context, agreementID string, actor entities.AuditActor, in CorrectionInput) (entities.AuditEvent, error)

	Send(ctx context.Context, agreementID string, actor entities.AuditActor) (entities.Agreement, error)
	Accept(ctx context.Context, agreementID string, actor entities.AuditActor, acknowledgedBy string, email *string) (entities.Agreement, error)
	MarkDepositSent(ctx context.Context, agreementID string, actor entities.AuditActor, amount *decimal.Decimal, transactionReference *string) (entities.Agreement, error)
	MarkDepositReceived(ctx context.Context, agreementID string, actor entities.AuditActor, amount *decimal.Decimal, transactionReference *string) (entities.Agreement, error)
	StartWork(ctx context.Context, agreementID string, actor entities.AuditActor) (entities.Agreement, error)
	Complete(ctx context.Context, agreementID string, actor entities.AuditActor) (entities.Agreement, error)
	Cancel(ctx context.Context, agreementID string, actor entities.AuditActor, reason *string) (entities.Agreement, error)
}

type AgreementStatusUseCase struct {
	repo  interfaces.IAgreementRepository
	audit IAuditLogUseCase
	now   func() time.Time
}

var _ IAgreementStatusUseCase = (*AgreementStatusUseCase)(nil)

func NewAgreementStatusUseCase(repo interfaces.IAgreementRepository, audit IAuditLogUseCase) *AgreementStatusUseCase {
	return &AgreementStatusUseCase{repo: repo, audit: audit, now: time.Now}
}

type transitionRequest struct {
	agreementID string
	to          entities.AgreementStatus
	actor       entities.AuditActor
	metadata    map[string]any
	revert      bool
	clientName  *string
	clientEmail *string
}

func (u *AgreementStatusUseCase) Transition(ctx context.Context, agreementID string, to entities.AgreementStatus, actor entities.AuditActor, metadata map[string]any) (entities.Agreement, error) {
	return u.apply(ctx, transitionRequest{agreementID: agreementID, to: to, actor: actor, metadata: metadata})
}

// Revert moves the agreement using the same legality table as Transition and records a
// STATUS_REVERTED event tagged with the reason.
func (u *AgreementStatusUseCase) Revert(ctx context.Context, agreementID string, to entities.AgreementStatus, actor entities.AuditActor, reason string) (entities.Agreement, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.Agreement{}, ErrInvalidRevertReason
	}
	return u.apply(ctx, transitionRequest{
		agreementID: agreementID,
		to:          to,
		actor:       actor,
		metadata:    map[string]any{"reason": reason},
		revert:      true,
	})
}

func (u *AgreementStatusUseCase) apply(ctx context.Context, req transitionRequest) (entities.Agreement, error) {
	agreementID := strings.TrimSpace(req.agreementID)
	if agreementID == "" {
		return entities.Agreement{}, ErrInvalidAgreementID
	}
	if !req.to.IsValid() {
		return entities.Agreement{}, ErrInvalidStatus
	}
	if !req.actor.IsValid() {
		return entities.Agreement{}, ErrInvalidActor
	}

	current, err := u.repo.GetByID(ctx, agreementID)
	if err != nil {
		log.Printf("[agreement][status] load failed agreement_id=%s err=%v", agreementID, err)
		return entities.Agreement{}, err
	}
	if current.ID == "" {
		return entities.Agreement{}, ErrAgreementNotFound
	}

	from := current.Status
	if !entities.IsValidTransition(from, req.to) {
		metrics.StatusTransitionsTotal.WithLabelValues(string(from), string(req.to), metrics.ResultRejected).Inc()
		log.Printf("[agreement][status] rejected agreement_id=%s from=%s to=%s revert=%t", agreementID, from, req.to, req.revert)
		return entities.Agreement{}, entities.NewTransitionError(from, req.to, req.revert)
	}

	now := u.now().UTC()
	eventType := entities.EventTypeForStatus(req.to)
	if req.revert {
		eventType = entities.AuditEventStatusReverted
	}

	metadata := make(map[string]any, len(req.metadata)+2)
	for k, v := range req.metadata {
		metadata[k] = v
	}
	metadata["fromStatus"] = string(from)
	metadata["toStatus"] = string(req.to)

	cmd := interfaces.TransitionCommand{
		AgreementID: agreementID,
		From:        from,
		To:          req.to,
		ClientName:  req.clientName,
		ClientEmail: req.clientEmail,
		Event:       newAuditEvent(ctx, agreementID, req.actor, eventType, metadata, nil, now),
		Now:         now,
	}
	if req.to == entities.AgreementStatusAccepted && from != entities.AgreementStatusAccepted {
		cmd.LockAt = &now
	}

	updated, err := u.repo.ApplyTransition(ctx, cmd)
	switch {
	case errors.Is(err, interfaces.ErrConflict):
		metrics.StatusTransitionsTotal.WithLabelValues(string(from), string(req.to), metrics.ResultConflict).Inc()
		return entities.Agreement{}, u.conflictError(ctx, agreementID, from, req)
	case errors.Is(err, interfaces.ErrRetryable):
		metrics.StatusTransitionsTotal.WithLabelValues(string(from), string(req.to), metrics.ResultConflict).Inc()
		log.Printf("[agreement][status] transient conflict agreement_id=%s from=%s to=%s err=%v", agreementID, from, req.to, err)
		return entities.Agreement{}, err
	case errors.Is(err, interfaces.ErrNotFound):
		return entities.Agreement{}, ErrAgreementNotFound
	case err != nil:
		metrics.StatusTransitionsTotal.WithLabelValues(string(from), string(req.to), metrics.ResultError).Inc()
		log.Printf("[agreement][status] apply failed agreement_id=%s from=%s to=%s err=%v", agreementID, from, req.to, err)
		return entities.Agreement{}, err
	}

	metrics.StatusTransitionsTotal.WithLabelValues(string(from), string(req.to), metrics.ResultSuccess).Inc()
	metrics.AuditEventsAppendedTotal.WithLabelValues(string(eventType)).Inc()
	log.Printf("[agreement][status] applied agreement_id=%s from=%s to=%s event=%s actor=%s", agreementID, from, req.to, eventType, req.actor)
	return updated, nil
}

// conflictError reports a lost race as an invalid transition from whatever status won.
// When the status did not move the write is reported as retryable.
func (u *AgreementStatusUseCase) conflictError(ctx context.Context, agreementID string, from entities.AgreementStatus, req transitionRequest) error {
	latest, err := u.repo.GetByID(ctx, agreementID)
	if err != nil {
		return err
	}
	if latest.ID == "" {
		return ErrAgreementNotFound
	}
	if latest.Status == from {
		return interfaces.ErrRetryable
	}
	log.Printf("[agreement][status] conflict agreement_id=%s to=%s now=%s", agreementID, req.to, latest.Status)
	return entities.NewTransitionError(latest.Status, req.to, req.revert)
}

func (u *AgreementStatusUseCase) RecordCorrection(ctx context.Context, agreementID string, actor entities.AuditActor, in CorrectionInput) (entities.AuditEvent, error) {
	description := strings.TrimSpace(in.Description)
	if !in.Type.IsValid() || description == "" || utf8.RuneCountInString(description) > entities.MaxCorrectionDescription {
		return entities.AuditEvent{}, ErrInvalidCorrection
	}

	metadata := map[string]any{
		"correctionType": string(in.Type),
		"description":    description,
	}
	if len(in.AffectedFields) > 0 {
		metadata["affectedFields"] = in.AffectedFields
	}
	if len(in.NewValues) > 0 {
		metadata["newValues"] = in.NewValues
	}
	return u.audit.Append(ctx, agreementID, actor, entities.AuditEventCorrection, metadata, nil)
}

func (u *AgreementStatusUseCase) Send(ctx context.Context, agreementID string, actor entities.AuditActor) (entities.Agreement, error) {
	return u.Transition(ctx, agreementID, entities.AgreementStatusSent, actor, nil)
}

// Accept records the client's acknowledgement and keeps their name and email on the agreement.
func (u *AgreementStatusUseCase) Accept(ctx context.Context, agreementID string, actor entities.AuditActor, acknowledgedBy string, email *string) (entities.Agreement, error) {
	req := transitionRequest{
		agreementID: agreementID,
		to:          entities.AgreementStatusAccepted,
		actor:       actor,
		metadata:    map[string]any{},
	}
	if name := strings.TrimSpace(acknowledgedBy); name != "" {
		req.metadata["acknowledgedBy"] = name
		req.clientName = &name
	}
	if email != nil && strings.TrimSpace(*email) != "" {
		e := strings.TrimSpace(*email)
		req.metadata["email"] = e
		req.clientEmail = &e
	}
	return u.apply(ctx, req)
}

func (u *AgreementStatusUseCase) MarkDepositSent(ctx context.Context, agreementID string, actor entities.AuditActor, amount *decimal.Decimal, transactionReference *string) (entities.Agreement, error) {
	return u.Transition(ctx, agreementID, entities.AgreementStatusDepositSent, actor, depositMetadata(amount, transactionReference))
}

func (u *AgreementStatusUseCase) MarkDepositReceived(ctx context.Context, agreementID string, actor entities.AuditActor, amount *decimal.Decimal, transactionReference *string) (entities.Agreement, error) {
	return u.Transition(ctx, agreementID, entities.AgreementStatusDepositReceived, actor, depositMetadata(amount, transactionReference))
}

func (u *AgreementStatusUseCase) StartWork(ctx context.Context, agreementID string, actor entities.AuditActor) (entities.Agreement, error) {
	return u.Transition(ctx, agreementID, entities.AgreementStatusInProgress, actor, nil)
}

func (u *AgreementStatusUseCase) Complete(ctx context.Context, agreementID string, actor entities.AuditActor) (entities.Agreement, error) {
	return u.Transition(ctx, agreementID, entities.AgreementStatusCompleted, actor, nil)
}

func (u *AgreementStatusUseCase) Cancel(ctx context.Context, agreementID string, actor entities.AuditActor, reason *string) (entities.Agreement, error) {
	return u.Transition(ctx, agreementID, entities.AgreementStatusCancelled, actor, map[string]any{"reason": reason})
}

// depositMetadata records the claimed amount as a string so no precision is lost in storage.
func depositMetadata(amount *decimal.Decimal, transactionReference *string) map[string]any {
	m := map[string]any{"transactionReference": transactionReference}
	if amount != nil {
		m["amount"] = amount.StringFixed(2)
	}
	return m
}
