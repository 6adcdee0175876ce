package entities

import (
	"errors"
	"fmt"
	"strings"
)

// AgreementStatus represents the lifecycle of an agreement.
//
// Domain notes:
//   - The transition table below is the only source of legality for status changes.
//   - CANCELLED is reachable from every non-terminal status.
type AgreementStatus string

const (
	AgreementStatusDraft           AgreementStatus = "DRAFT"
	AgreementStatusSent            AgreementStatus = "SENT"
	AgreementStatusAccepted        AgreementStatus = "ACCEPTED"
	AgreementStatusDepositSent     AgreementStatus = "DEPOSIT_SENT"
	AgreementStatusDepositReceived AgreementStatus = "DEPOSIT_RECEIVED"
	AgreementStatusInProgress      AgreementStatus = "IN_PROGRESS"
	AgreementStatusCompleted       AgreementStatus = "COMPLETED"
	AgreementStatusCancelled       AgreementStatus = "CANCELLED"
)

// AgreementStatuses lists every status in lifecycle order.
var AgreementStatuses = []AgreementStatus{
	AgreementStatusDraft,
	AgreementStatusSent,
	AgreementStatusAccepted,
	AgreementStatusDepositSent,
	AgreementStatusDepositReceived,
	AgreementStatusInProgress,
	AgreementStatusCompleted,
	AgreementStatusCancelled,
}

var validTransitions = map[AgreementStatus][]AgreementStatus{
	AgreementStatusDraft:           {AgreementStatusSent, AgreementStatusCancelled},
	AgreementStatusSent:            {AgreementStatusAccepted, AgreementStatusCancelled},
	AgreementStatusAccepted:        {AgreementStatusDepositSent, AgreementStatusCancelled},
	AgreementStatusDepositSent:     {AgreementStatusDepositReceived, AgreementStatusCancelled},
	AgreementStatusDepositReceived: {AgreementStatusInProgress, AgreementStatusCancelled},
	AgreementStatusInProgress:      {AgreementStatusCompleted, AgreementStatusCancelled},
	AgreementStatusCompleted:       {},
	AgreementStatusCancelled:       {},
}

var statusEventTypes = map[AgreementStatus]AuditEventType{
	AgreementStatusDraft:           AuditEventCreated,
	AgreementStatusSent:            AuditEventSent,
	AgreementStatusAccepted:        AuditEventAccepted,
	AgreementStatusDepositSent:     AuditEventDepositSent,
	AgreementStatusDepositReceived: AuditEventDepositReceived,
	AgreementStatusInProgress:      AuditEventInProgress,
	AgreementStatusCompleted:       AuditEventCompleted,
	AgreementStatusCancelled:       AuditEventCancelled,
}

func (s AgreementStatus) IsValid() bool {
	_, ok := validTransitions[s]
	return ok
}

// ParseAgreementStatus accepts any casing and surrounding whitespace.
func ParseAgreementStatus(raw string) (AgreementStatus, bool) {
	s := AgreementStatus(strings.ToUpper(strings.TrimSpace(raw)))
	return s, s.IsValid()
}

// IsTerminal reports whether no further transition can leave s.
func IsTerminal(s AgreementStatus) bool {
	return s == AgreementStatusCompleted || s == AgreementStatusCancelled
}

// IsValidTransition reports whether an agreement in from may move to to.
//
// The cancellation override is evaluated before the table so that any new non-terminal
// status is cancellable without editing its table entry.
func IsValidTransition(from, to AgreementStatus) bool {
	if !from.IsValid() || !to.IsValid() {
		return false
	}
	if to == AgreementStatusCancelled && !IsTerminal(from) {
		return true
	}
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// AllowedTransitions returns the statuses reachable from current, in table order.
func AllowedTransitions(current AgreementStatus) []AgreementStatus {
	table := validTransitions[current]
	allowed := make([]AgreementStatus, 0, len(table)+1)
	allowed = append(allowed, table...)
	if current.IsValid() && !IsTerminal(current) && !containsStatus(allowed, AgreementStatusCancelled) {
		allowed = append(allowed, AgreementStatusCancelled)
	}
	return allowed
}

// EventTypeForStatus maps a target status to the audit event recorded for it.
func EventTypeForStatus(s AgreementStatus) AuditEventType {
	return statusEventTypes[s]
}

func containsStatus(list []AgreementStatus, s AgreementStatus) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// ErrInvalidTransition is matched by every *TransitionError.
var ErrInvalidTransition = errors.New("invalid status transition")

// TransitionError describes a rejected status change and what would have been legal.
type TransitionError struct {
	From    AgreementStatus
	To      AgreementStatus
	Allowed []AgreementStatus
	Revert  bool
}

func NewTransitionError(from, to AgreementStatus, revert bool) *TransitionError {
	return &TransitionError{From: from, To: to, Allowed: AllowedTransitions(from), Revert: revert}
}

func (e *TransitionError) Error() string {
	allowed := make([]string, len(e.Allowed))
	for i, s := range e.Allowed {
		allowed[i] = string(s)
	}
	list := strings.Join(allowed, ", ")
	if list == "" {
		list = "none"
	}
	if e.Revert {
		return fmt.Sprintf("cannot revert from %s to %s. allowed transitions: %s", e.From, e.To, list)
	}
	return fmt.Sprintf("invalid status transition from %s to %s. allowed transitions: %s", e.From, e.To, list)
}

func (e *TransitionError) Is(target error) bool { return target == ErrInvalidTransition }
