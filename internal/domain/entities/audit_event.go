package entities

import "time"

// AuditActor identifies who performed an audited action.
type AuditActor string

const (
	AuditActorClient     AuditActor = "CLIENT"
	AuditActorContractor AuditActor = "CONTRACTOR"
	AuditActorSystem     AuditActor = "SYSTEM"
)

func (a AuditActor) IsValid() bool {
	switch a {
	case AuditActorClient, AuditActorContractor, AuditActorSystem:
		return true
	}
	return false
}

// AuditEventType is the kind of fact recorded on an agreement timeline.
type AuditEventType string

const (
	AuditEventCreated         AuditEventType = "CREATED"
	AuditEventUpdated         AuditEventType = "UPDATED"
	AuditEventSent            AuditEventType = "SENT"
	AuditEventViewed          AuditEventType = "VIEWED"
	AuditEventAccepted        AuditEventType = "ACCEPTED"
	AuditEventRejected        AuditEventType = "REJECTED"
	AuditEventExpired         AuditEventType = "EXPIRED"
	AuditEventDepositSent     AuditEventType = "DEPOSIT_SENT"
	AuditEventDepositReceived AuditEventType = "DEPOSIT_RECEIVED"
	AuditEventInProgress      AuditEventType = "IN_PROGRESS"
	AuditEventCompleted       AuditEventType = "COMPLETED"
	AuditEventCancelled       AuditEventType = "CANCELLED"
	AuditEventCorrection      AuditEventType = "CORRECTION"
	AuditEventStatusReverted  AuditEventType = "STATUS_REVERTED"
)

// AuditEvent is one immutable fact about an agreement.
//
// Storage model (DynamoDB):
//   - PK: agreement_id
//   - SK: sk (created_at#id), which keeps the timeline sorted ascending.
//
// Events are only ever inserted. Nothing in this module updates or deletes them.
type AuditEvent struct {
	ID          string         `json:"id"`
	AgreementID string         `json:"agreement_id"`
	Actor       AuditActor     `json:"actor"`
	Type        AuditEventType `json:"type"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	IPAddress   *string        `json:"ip_address,omitempty"`
	UserAgent   *string        `json:"user_agent,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

// RequestContext carries the client network details captured with an audit event.
type RequestContext struct {
	IPAddress *string
	UserAgent *string
}
