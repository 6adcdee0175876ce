package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"quotelock/internal/domain/entities"
	"quotelock/internal/usecase/interfaces"
)

var (
	ErrPublicActionNotAllowed = errors.New("public action not allowed")
	ErrInvalidSlug            = errors.New("invalid public slug")
)

// PublicActionError explains why a client-facing action was refused.
type PublicActionError struct {
	Reason string
}

func (e *PublicActionError) Error() string {
	return e.Reason
}

func (e *PublicActionError) Is(target error) bool {
	return target == ErrPublicActionNotAllowed
}

// PublicAgreementView is what an anonymous client sees behind a public slug.
type PublicAgreementView struct {
	Agreement entities.Agreement
	Events    []entities.AuditEvent
}

// IPublicAgreementUseCase serves clients who hold the public slug.
type IPublicAgreementUseCase interface {
	GetPublic(ctx context.Context, slug string) (PublicAgreementView, error)
	AcceptPublic(ctx context.Context, slug, acknowledgedBy string, email *string) (entities.Agreement, error)
	ConfirmDepositPublic(ctx context.Context, slug string, transactionReference *string) (entities.Agreement, error)
}

type PublicAgreementUseCase struct {
	repo   interfaces.IAgreementRepository
	audit  IAuditLogUseCase
	status IAgreementStatusUseCase
	now    func() time.Time
}

var _ IPublicAgreementUseCase = (*PublicAgreementUseCase)(nil)

func NewPublicAgreementUseCase(repo interfaces.IAgreementRepository, audit IAuditLogUseCase, status IAgreementStatusUseCase) *PublicAgreementUseCase {
	return &PublicAgreementUseCase{repo: repo, audit: audit, status: status, now: time.Now}
}

func (u *PublicAgreementUseCase) GetPublic(ctx context.Context, slug string) (PublicAgreementView, error) {
	a, err := u.load(ctx, slug)
	if err != nil {
		return PublicAgreementView{}, err
	}

	if _, err := u.audit.Append(ctx, a.ID, entities.AuditActorClient, entities.AuditEventViewed, map[string]any{"publicSlug": a.PublicSlug}, nil); err != nil {
		log.Printf("[agreement][public] view log failed agreement_id=%s err=%v", a.ID, err)
	}

	events, err := u.audit.ListForAgreement(ctx, a.ID, 0)
	if err != nil {
		return PublicAgreementView{}, err
	}
	return PublicAgreementView{Agreement: a, Events: events}, nil
}

func (u *PublicAgreementUseCase) AcceptPublic(ctx context.Context, slug, acknowledgedBy string, email *string) (entities.Agreement, error) {
	a, err := u.load(ctx, slug)
	if err != nil {
		return entities.Agreement{}, err
	}
	if err := u.guard(a, entities.AgreementStatusSent, "accepted"); err != nil {
		return entities.Agreement{}, err
	}
	return u.status.Accept(ctx, a.ID, entities.AuditActorClient, acknowledgedBy, email)
}

func (u *PublicAgreementUseCase) ConfirmDepositPublic(ctx context.Context, slug string, transactionReference *string) (entities.Agreement, error) {
	a, err := u.load(ctx, slug)
	if err != nil {
		return entities.Agreement{}, err
	}
	if err := u.guard(a, entities.AgreementStatusAccepted, "marked as deposit sent"); err != nil {
		return entities.Agreement{}, err
	}
	amount := a.DepositAmount
	return u.status.MarkDepositSent(ctx, a.ID, entities.AuditActorClient, &amount, trimmedOrNil(transactionReference))
}

func (u *PublicAgreementUseCase) load(ctx context.Context, slug string) (entities.Agreement, error) {
	slug = strings.TrimSpace(slug)
	if !IsValidPublicSlug(slug) {
		return entities.Agreement{}, ErrInvalidSlug
	}
	a, err := u.repo.GetByPublicSlug(ctx, slug)
	if err != nil {
		return entities.Agreement{}, err
	}
	if a.ID == "" {
		return entities.Agreement{}, ErrAgreementNotFound
	}
	return a, nil
}

func (u *PublicAgreementUseCase) guard(a entities.Agreement, required entities.AgreementStatus, action string) error {
	switch {
	case a.Status == entities.AgreementStatusCancelled:
		return &PublicActionError{Reason: "this agreement has been cancelled"}
	case a.Status == entities.AgreementStatusCompleted:
		return &PublicActionError{Reason: "this agreement has already been completed"}
	case a.IsExpired(u.now()):
		return &PublicActionError{Reason: "this agreement has expired"}
	case a.Status != required:
		return &PublicActionError{Reason: fmt.Sprintf("this agreement cannot be %s in status %s", action, a.Status)}
	}
	return nil
}
