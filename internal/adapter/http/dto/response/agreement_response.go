package response

import (
	"time"

	"quotelock/internal/domain/entities"
	"quotelock/internal/usecase"
)

type AgreementResponse struct {
	ID                  string     `json:"id"`
	PublicSlug          string     `json:"public_slug"`
	Title               string     `json:"title"`
	ClientName          *string    `json:"client_name,omitempty"`
	ClientEmail         *string    `json:"client_email,omitempty"`
	WorkIncluded        string     `json:"work_included"`
	WorkExcluded        string     `json:"work_excluded"`
	TotalPrice          string     `json:"total_price"`
	DepositAmount       string     `json:"deposit_amount"`
	BalanceDue          string     `json:"balance_due"`
	Currency            string     `json:"currency"`
	ExpiresAt           *time.Time `json:"expires_at,omitempty"`
	PaymentInstructions string     `json:"payment_instructions"`
	ExternalPaymentLink *string    `json:"external_payment_link,omitempty"`
	CancellationTerms   string     `json:"cancellation_terms"`
	GoverningCountry    string     `json:"governing_country"`
	Status              string     `json:"status"`
	IsLocked            bool       `json:"is_locked"`
	LockedAt            *time.Time `json:"locked_at,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

type AuditEventResponse struct {
	ID        string         `json:"id"`
	Actor     string         `json:"actor"`
	Type      string         `json:"type"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	IPAddress *string        `json:"ip_address,omitempty"`
	UserAgent *string        `json:"user_agent,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

type AgreementResult struct {
	Success   bool              `json:"success"`
	Agreement AgreementResponse `json:"agreement"`
}

type AgreementListResponse struct {
	Success    bool                `json:"success"`
	Agreements []AgreementResponse `json:"agreements"`
}

type AgreementDetailResponse struct {
	Success            bool                 `json:"success"`
	Agreement          AgreementResponse    `json:"agreement"`
	AllowedTransitions []string             `json:"allowed_transitions"`
	Events             []AuditEventResponse `json:"events"`
}

type EventListResponse struct {
	Success bool                 `json:"success"`
	Events  []AuditEventResponse `json:"events"`
}

type EventResult struct {
	Success bool               `json:"success"`
	Event   AuditEventResponse `json:"event"`
}

// PublicAgreementResponse is what the client sees. Request details of other parties are
// left out of the events.
type PublicAgreementResponse struct {
	Success   bool                 `json:"success"`
	Agreement AgreementResponse    `json:"agreement"`
	Events    []AuditEventResponse `json:"events"`
}

type UsageResponse struct {
	Success bool   `json:"success"`
	Plan    string `json:"plan"`
	Period  string `json:"period"`
	Count   int64  `json:"count"`
	Limit   *int64 `json:"limit"`
}

type PingResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func FromAgreement(a entities.Agreement) AgreementResponse {
	return AgreementResponse{
		ID:                  a.ID,
		PublicSlug:          a.PublicSlug,
		Title:               a.Title,
		ClientName:          a.ClientName,
		ClientEmail:         a.ClientEmail,
		WorkIncluded:        a.WorkIncluded,
		WorkExcluded:        a.WorkExcluded,
		TotalPrice:          a.TotalPrice.StringFixed(2),
		DepositAmount:       a.DepositAmount.StringFixed(2),
		BalanceDue:          a.BalanceDue.StringFixed(2),
		Currency:            a.Currency,
		ExpiresAt:           a.ExpiresAt,
		PaymentInstructions: a.PaymentInstructions,
		ExternalPaymentLink: a.ExternalPaymentLink,
		CancellationTerms:   a.CancellationTerms,
		GoverningCountry:    a.GoverningCountry,
		Status:              string(a.Status),
		IsLocked:            entities.IsLocked(a),
		LockedAt:            a.LockedAt,
		CreatedAt:           a.CreatedAt,
		UpdatedAt:           a.UpdatedAt,
	}
}

func FromAgreements(list []entities.Agreement) []AgreementResponse {
	out := make([]AgreementResponse, 0, len(list))
	for _, a := range list {
		out = append(out, FromAgreement(a))
	}
	return out
}

func FromAuditEvent(e entities.AuditEvent) AuditEventResponse {
	return AuditEventResponse{
		ID:        e.ID,
		Actor:     string(e.Actor),
		Type:      string(e.Type),
		Metadata:  e.Metadata,
		IPAddress: e.IPAddress,
		UserAgent: e.UserAgent,
		CreatedAt: e.CreatedAt,
	}
}

func FromAuditEvents(list []entities.AuditEvent) []AuditEventResponse {
	out := make([]AuditEventResponse, 0, len(list))
	for _, e := range list {
		out = append(out, FromAuditEvent(e))
	}
	return out
}

func FromAllowedTransitions(s entities.AgreementStatus) []string {
	allowed := entities.AllowedTransitions(s)
	out := make([]string, len(allowed))
	for i, st := range allowed {
		out[i] = string(st)
	}
	return out
}

func FromPublicView(v usecase.PublicAgreementView) PublicAgreementResponse {
	events := FromAuditEvents(v.Events)
	for i := range events {
		events[i].IPAddress = nil
		events[i].UserAgent = nil
	}
	return PublicAgreementResponse{
		Success:   true,
		Agreement: FromAgreement(v.Agreement),
		Events:    events,
	}
}

func FromUsageSummary(u usecase.UsageSummary) UsageResponse {
	return UsageResponse{
		Success: true,
		Plan:    string(u.Plan),
		Period:  u.Period,
		Count:   u.Count,
		Limit:   u.Limit,
	}
}
