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
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidUserID   = errors.New("invalid user id")
	ErrNothingToUpdate = errors.New("no fields to update")
)

// DefaultCurrency is used when a new agreement does not name one.
const DefaultCurrency = "GBP"

// CreateAgreementInput is the contractor-provided content of a new quote.
type CreateAgreementInput struct {
	Title               string
	ClientName          *string
	ClientEmail         *string
	WorkIncluded        string
	WorkExcluded        string
	TotalPrice          decimal.Decimal
	DepositAmount       decimal.Decimal
	BalanceDue          decimal.Decimal
	Currency            string
	ExpiresAt           *time.Time
	PaymentInstructions string
	ExternalPaymentLink *string
	CancellationTerms   string
	GoverningCountry    string
	// Plan is the creator's subscription tier. Empty or unknown means DefaultUserPlan.
	Plan entities.UserPlan
}

// DefaultUserPlan applies when the caller's plan is unknown.
const DefaultUserPlan = entities.UserPlanFree

// UsageSummary is the contractor's agreement count for the current month.
type UsageSummary struct {
	Plan   entities.UserPlan
	Period string
	Count  int64
	// Limit is nil for unlimited plans.
	Limit *int64
}

// IAgreementUseCase covers the contractor side of the agreement lifecycle and the
// update gateway that guards locked commercial terms.
type IAgreementUseCase interface {
	Create(ctx context.Context, userID string, in CreateAgreementInput) (entities.Agreement, error)
	GetForOwner(ctx context.Context, userID, agreementID string) (entities.Agreement, error)
	ListForOwner(ctx context.Context, userID string, status entities.AgreementStatus) ([]entities.Agreement, error)
	UpdateSafely(ctx context.Context, agreementID string, changes entities.AgreementChanges, actor entities.AuditActor) (entities.Agreement, error)
	MonthlyUsage(ctx context.Context, userID string, plan entities.UserPlan) (UsageSummary, error)
}

type AgreementUseCase struct {
	repo  interfaces.IAgreementRepository
	usage interfaces.IUsageCounterRepository
	now   func() time.Time
}

var _ IAgreementUseCase = (*AgreementUseCase)(nil)

// NewAgreementUseCase builds the use case. A nil usage repository disables plan limits.
func NewAgreementUseCase(repo interfaces.IAgreementRepository, usage interfaces.IUsageCounterRepository) *AgreementUseCase {
	return &AgreementUseCase{repo: repo, usage: usage, now: time.Now}
}

func (u *AgreementUseCase) Create(ctx context.Context, userID string, in CreateAgreementInput) (entities.Agreement, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Agreement{}, ErrInvalidUserID
	}

	slug, err := GeneratePublicSlug()
	if err != nil {
		return entities.Agreement{}, err
	}

	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = DefaultCurrency
	}

	now := u.now().UTC()
	a := entities.Agreement{
		ID:                  uuid.NewString(),
		UserID:              userID,
		PublicSlug:          slug,
		Title:               strings.TrimSpace(in.Title),
		ClientName:          trimmedOrNil(in.ClientName),
		ClientEmail:         trimmedOrNil(in.ClientEmail),
		WorkIncluded:        strings.TrimSpace(in.WorkIncluded),
		WorkExcluded:        strings.TrimSpace(in.WorkExcluded),
		TotalPrice:          in.TotalPrice,
		DepositAmount:       in.DepositAmount,
		BalanceDue:          in.BalanceDue,
		Currency:            currency,
		PaymentInstructions: strings.TrimSpace(in.PaymentInstructions),
		ExternalPaymentLink: trimmedOrNil(in.ExternalPaymentLink),
		CancellationTerms:   strings.TrimSpace(in.CancellationTerms),
		GoverningCountry:    strings.TrimSpace(in.GoverningCountry),
		Status:              entities.AgreementStatusDraft,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if in.ExpiresAt != nil && !in.ExpiresAt.IsZero() {
		t := in.ExpiresAt.UTC()
		a.ExpiresAt = &t
	}

	if err := validateAgreement(a); err != nil {
		return entities.Agreement{}, err
	}

	period := entities.UsagePeriod(now)
	if err := u.enforcePlanLimit(ctx, userID, planOrDefault(in.Plan), period); err != nil {
		return entities.Agreement{}, err
	}

	created := newAuditEvent(ctx, a.ID, entities.AuditActorContractor, entities.AuditEventCreated, map[string]any{"title": a.Title}, nil, now)
	out, err := u.repo.Create(ctx, a, created)
	if err != nil {
		log.Printf("[agreement][usecase] create failed user_id=%s err=%v", userID, err)
		return entities.Agreement{}, err
	}
	metrics.AuditEventsAppendedTotal.WithLabelValues(string(entities.AuditEventCreated)).Inc()

	if u.usage != nil {
		// The agreement exists at this point, so a counter failure is only logged.
		if _, err := u.usage.Increment(ctx, userID, period); err != nil {
			log.Printf("[agreement][usecase] usage increment failed user_id=%s period=%s err=%v", userID, period, err)
		}
	}
	log.Printf("[agreement][usecase] created agreement_id=%s user_id=%s", out.ID, userID)
	return out, nil
}

func (u *AgreementUseCase) enforcePlanLimit(ctx context.Context, userID string, plan entities.UserPlan, period string) error {
	if u.usage == nil {
		return nil
	}
	limit, limited := plan.MonthlyLimit()
	if !limited {
		return nil
	}
	count, err := u.usage.Current(ctx, userID, period)
	if err != nil {
		log.Printf("[agreement][usecase] usage lookup failed user_id=%s period=%s err=%v", userID, period, err)
		return err
	}
	if count >= limit {
		log.Printf("[agreement][usecase] plan limit reached user_id=%s plan=%s count=%d", userID, plan, count)
		return &entities.PlanLimitError{Plan: plan, Limit: limit}
	}
	return nil
}

func (u *AgreementUseCase) MonthlyUsage(ctx context.Context, userID string, plan entities.UserPlan) (UsageSummary, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return UsageSummary{}, ErrInvalidUserID
	}
	plan = planOrDefault(plan)
	summary := UsageSummary{Plan: plan, Period: entities.UsagePeriod(u.now())}
	if limit, limited := plan.MonthlyLimit(); limited {
		summary.Limit = &limit
	}
	if u.usage == nil {
		return summary, nil
	}
	count, err := u.usage.Current(ctx, userID, summary.Period)
	if err != nil {
		return UsageSummary{}, err
	}
	summary.Count = count
	return summary, nil
}

// planOrDefault maps empty and unknown plans to DefaultUserPlan.
func planOrDefault(p entities.UserPlan) entities.UserPlan {
	if parsed, ok := entities.ParseUserPlan(string(p)); ok {
		return parsed
	}
	return DefaultUserPlan
}

// GetForOwner hides agreements of other contractors behind ErrAgreementNotFound.
func (u *AgreementUseCase) GetForOwner(ctx context.Context, userID, agreementID string) (entities.Agreement, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Agreement{}, ErrInvalidUserID
	}
	agreementID = strings.TrimSpace(agreementID)
	if agreementID == "" {
		return entities.Agreement{}, ErrInvalidAgreementID
	}

	a, err := u.repo.GetByID(ctx, agreementID)
	if err != nil {
		return entities.Agreement{}, err
	}
	if a.ID == "" || a.UserID != userID {
		return entities.Agreement{}, ErrAgreementNotFound
	}
	return a, nil
}

func (u *AgreementUseCase) ListForOwner(ctx context.Context, userID string, status entities.AgreementStatus) ([]entities.Agreement, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	if status != "" && !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return u.repo.ListByUserID(ctx, userID, status)
}

// UpdateSafely applies a partial update unless it touches locked commercial terms.
//
// The UPDATED audit event lists the changed field names only, never their values.
func (u *AgreementUseCase) UpdateSafely(ctx context.Context, agreementID string, changes entities.AgreementChanges, actor entities.AuditActor) (entities.Agreement, error) {
	agreementID = strings.TrimSpace(agreementID)
	if agreementID == "" {
		return entities.Agreement{}, ErrInvalidAgreementID
	}
	if !actor.IsValid() {
		return entities.Agreement{}, ErrInvalidActor
	}
	if changes.IsEmpty() {
		return entities.Agreement{}, ErrNothingToUpdate
	}
	if changes.Currency != nil {
		c := strings.ToUpper(strings.TrimSpace(*changes.Currency))
		changes.Currency = &c
	}

	current, err := u.repo.GetByID(ctx, agreementID)
	if err != nil {
		return entities.Agreement{}, err
	}
	if current.ID == "" {
		return entities.Agreement{}, ErrAgreementNotFound
	}

	if err := entities.ValidateUpdate(current, changes); err != nil {
		metrics.LockedFieldViolationsTotal.Inc()
		log.Printf("[agreement][usecase] update rejected agreement_id=%s err=%v", agreementID, err)
		return entities.Agreement{}, err
	}
	if err := validateAgreement(changes.Apply(current)); err != nil {
		return entities.Agreement{}, err
	}

	now := u.now().UTC()
	fields := changes.FieldNames()
	cmd := interfaces.UpdateCommand{
		AgreementID:    agreementID,
		ExpectedStatus: current.Status,
		ExpectedLocked: current.LockedAt != nil,
		Changes:        changes,
		Event:          newAuditEvent(ctx, agreementID, actor, entities.AuditEventUpdated, map[string]any{"updatedFields": fields}, nil, now),
		Now:            now,
	}

	updated, err := u.repo.ApplyUpdate(ctx, cmd)
	switch {
	case errors.Is(err, interfaces.ErrConflict):
		// Status or lock state moved since validation: validate again against the winner.
		latest, getErr := u.repo.GetByID(ctx, agreementID)
		if getErr != nil {
			return entities.Agreement{}, getErr
		}
		if latest.ID == "" {
			return entities.Agreement{}, ErrAgreementNotFound
		}
		if lockErr := entities.ValidateUpdate(latest, changes); lockErr != nil {
			metrics.LockedFieldViolationsTotal.Inc()
			return entities.Agreement{}, lockErr
		}
		return entities.Agreement{}, err
	case errors.Is(err, interfaces.ErrNotFound):
		return entities.Agreement{}, ErrAgreementNotFound
	case err != nil:
		log.Printf("[agreement][usecase] update failed agreement_id=%s err=%v", agreementID, err)
		return entities.Agreement{}, err
	}

	metrics.AuditEventsAppendedTotal.WithLabelValues(string(entities.AuditEventUpdated)).Inc()
	log.Printf("[agreement][usecase] updated agreement_id=%s fields=%s", agreementID, strings.Join(fields, ","))
	return updated, nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
