package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"quotelock/internal/adapter/persistence/memory"
	"quotelock/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type lifecycleFixture struct {
	agreements *AgreementUseCase
	status     *AgreementStatusUseCase
	audit      *AuditLogUseCase
	public     *PublicAgreementUseCase
}

func newLifecycleFixture() lifecycleFixture {
	store := memory.NewStore()
	repo := memory.NewAgreementRepository(store)
	audit := NewAuditLogUseCase(memory.NewAuditEventRepository(store))
	status := NewAgreementStatusUseCase(repo, audit)
	return lifecycleFixture{
		agreements: NewAgreementUseCase(repo, memory.NewUsageCounterRepository(store)),
		status:     status,
		audit:      audit,
		public:     NewPublicAgreementUseCase(repo, audit, status),
	}
}

func validCreateInput() CreateAgreementInput {
	return CreateAgreementInput{
		Title:               "Kitchen refit",
		WorkIncluded:        "Units, worktops, fitting",
		WorkExcluded:        "Plastering",
		TotalPrice:          decimal.NewFromInt(100),
		DepositAmount:       decimal.NewFromInt(30),
		BalanceDue:          decimal.NewFromInt(70),
		Currency:            "gbp",
		PaymentInstructions: "Bank transfer",
		CancellationTerms:   "48h notice",
		GoverningCountry:    "United Kingdom",
	}
}

func (f lifecycleFixture) create(t *testing.T) entities.Agreement {
	t.Helper()
	a, err := f.agreements.Create(context.Background(), "user-1", validCreateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	return a
}

func TestLifecycle_HappyPathLocksAndLogs(t *testing.T) {
	ctx := context.Background()
	f := newLifecycleFixture()
	a := f.create(t)

	if a.Status != entities.AgreementStatusDraft || a.LockedAt != nil || a.Currency != "GBP" {
		t.Fatalf("unexpected new agreement: %+v", a)
	}

	a, err := f.status.Send(ctx, a.ID, entities.AuditActorContractor)
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if a.LockedAt != nil {
		t.Fatalf("SENT must not lock")
	}

	email := "client@example.com"
	a, err = f.status.Accept(ctx, a.ID, entities.AuditActorClient, "Jane Client", &email)
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if a.LockedAt == nil {
		t.Fatalf("ACCEPTED must set locked_at")
	}
	if a.ClientName == nil || *a.ClientName != "Jane Client" {
		t.Fatalf("expected client name recorded, got %v", a.ClientName)
	}
	lockedAt := *a.LockedAt

	deposit := decimal.NewFromInt(30)
	a, err = f.status.MarkDepositSent(ctx, a.ID, entities.AuditActorClient, &deposit, nil)
	if err != nil {
		t.Fatalf("deposit sent: %v", err)
	}
	if a.LockedAt == nil || !a.LockedAt.Equal(lockedAt) {
		t.Fatalf("locked_at must never change, got %v", a.LockedAt)
	}

	_, err = f.status.Complete(ctx, a.ID, entities.AuditActorContractor)
	var terr *entities.TransitionError
	if !errors.As(err, &terr) {
		t.Fatalf("expected TransitionError, got %v", err)
	}
	want := []entities.AgreementStatus{entities.AgreementStatusDepositReceived, entities.AgreementStatusCancelled}
	if fmt.Sprint(terr.Allowed) != fmt.Sprint(want) {
		t.Fatalf("expected allowed %v, got %v", want, terr.Allowed)
	}

	events, err := f.audit.ListForAgreement(ctx, a.ID, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	wantTypes := []entities.AuditEventType{
		entities.AuditEventCreated,
		entities.AuditEventSent,
		entities.AuditEventAccepted,
		entities.AuditEventDepositSent,
	}
	if len(events) != len(wantTypes) {
		t.Fatalf("expected %d events, got %d", len(wantTypes), len(events))
	}
	for i, e := range events {
		if e.Type != wantTypes[i] {
			t.Fatalf("event %d: expected %s, got %s", i, wantTypes[i], e.Type)
		}
		if i > 0 {
			if e.Metadata["fromStatus"] == nil || e.Metadata["toStatus"] == nil {
				t.Fatalf("event %d missing from/to: %+v", i, e.Metadata)
			}
		}
	}
}

func TestLifecycle_TerminalStatesRejectCancel(t *testing.T) {
	ctx := context.Background()
	f := newLifecycleFixture()
	a := f.create(t)

	steps := []func(string) (entities.Agreement, error){
		func(id string) (entities.Agreement, error) {
			return f.status.Send(ctx, id, entities.AuditActorContractor)
		},
		func(id string) (entities.Agreement, error) {
			return f.status.Accept(ctx, id, entities.AuditActorClient, "", nil)
		},
		func(id string) (entities.Agreement, error) {
			return f.status.MarkDepositSent(ctx, id, entities.AuditActorClient, nil, nil)
		},
		func(id string) (entities.Agreement, error) {
			return f.status.MarkDepositReceived(ctx, id, entities.AuditActorContractor, nil, nil)
		},
		func(id string) (entities.Agreement, error) {
			return f.status.StartWork(ctx, id, entities.AuditActorContractor)
		},
		func(id string) (entities.Agreement, error) {
			return f.status.Complete(ctx, id, entities.AuditActorContractor)
		},
	}
	for i, step := range steps {
		if _, err := step(a.ID); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}

	_, err := f.status.Cancel(ctx, a.ID, entities.AuditActorContractor, nil)
	if !errors.Is(err, entities.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition from COMPLETED, got %v", err)
	}

	b := f.create(t)
	reason := "client changed mind"
	if _, err := f.status.Cancel(ctx, b.ID, entities.AuditActorContractor, &reason); err != nil {
		t.Fatalf("cancel from DRAFT: %v", err)
	}
	if _, err := f.status.Cancel(ctx, b.ID, entities.AuditActorContractor, nil); !errors.Is(err, entities.ErrInvalidTransition) {
		t.Fatalf("expected CANCELLED to be terminal, got %v", err)
	}
}

func TestLifecycle_UpdateGateway(t *testing.T) {
	ctx := context.Background()
	f := newLifecycleFixture()
	a := f.create(t)

	t.Run("draft accepts money changes that keep the sum", func(t *testing.T) {
		total := decimal.NewFromInt(120)
		balance := decimal.NewFromInt(90)
		out, err := f.agreements.UpdateSafely(ctx, a.ID, entities.AgreementChanges{TotalPrice: &total, BalanceDue: &balance}, entities.AuditActorContractor)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !out.TotalPrice.Equal(total) {
			t.Fatalf("expected total %s, got %s", total, out.TotalPrice)
		}
	})

	t.Run("money changes that break the sum are rejected", func(t *testing.T) {
		total := decimal.NewFromInt(99)
		_, err := f.agreements.UpdateSafely(ctx, a.ID, entities.AgreementChanges{TotalPrice: &total}, entities.AuditActorContractor)
		if !errors.Is(err, entities.ErrInvalidTerms) {
			t.Fatalf("expected ErrInvalidTerms, got %v", err)
		}
	})

	if _, err := f.status.Send(ctx, a.ID, entities.AuditActorContractor); err != nil {
		t.Fatalf("send: %v", err)
	}
	if _, err := f.status.Accept(ctx, a.ID, entities.AuditActorClient, "Jane", nil); err != nil {
		t.Fatalf("accept: %v", err)
	}

	t.Run("locked price is rejected and nothing is written", func(t *testing.T) {
		before, _ := f.audit.ListForAgreement(ctx, a.ID, 0)
		price := decimal.NewFromInt(500)
		_, err := f.agreements.UpdateSafely(ctx, a.ID, entities.AgreementChanges{TotalPrice: &price}, entities.AuditActorContractor)
		var lerr *entities.LockedFieldError
		if !errors.As(err, &lerr) {
			t.Fatalf("expected LockedFieldError, got %v", err)
		}
		if len(lerr.Fields) != 1 || lerr.Fields[0] != entities.FieldTotalPrice {
			t.Fatalf("unexpected fields %v", lerr.Fields)
		}
		after, _ := f.audit.ListForAgreement(ctx, a.ID, 0)
		if len(after) != len(before) {
			t.Fatalf("rejected update must not append events")
		}
	})

	t.Run("unlocked field still updates and is audited by name", func(t *testing.T) {
		terms := "7 days notice"
		out, err := f.agreements.UpdateSafely(ctx, a.ID, entities.AgreementChanges{CancellationTerms: &terms}, entities.AuditActorContractor)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if out.CancellationTerms != terms {
			t.Fatalf("expected terms updated, got %q", out.CancellationTerms)
		}
		events, _ := f.audit.ListForAgreement(ctx, a.ID, 1)
		if len(events) != 1 || events[0].Type != entities.AuditEventUpdated {
			t.Fatalf("expected trailing UPDATED event, got %+v", events)
		}
		fields, _ := events[0].Metadata["updatedFields"].([]string)
		if len(fields) != 1 || fields[0] != entities.FieldCancellationTerms {
			t.Fatalf("unexpected updatedFields %v", events[0].Metadata["updatedFields"])
		}
	})
}

func TestLifecycle_AuditAppendOrdering(t *testing.T) {
	ctx := context.Background()
	f := newLifecycleFixture()
	a := f.create(t)

	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	f.audit.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}

	const n = 5
	for i := 0; i < n; i++ {
		if _, err := f.audit.Append(ctx, a.ID, entities.AuditActorSystem, entities.AuditEventViewed, map[string]any{"i": i}, nil); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, _ := f.audit.ListForAgreement(ctx, a.ID, 0)
	if len(events) != n+1 {
		t.Fatalf("expected %d events, got %d", n+1, len(events))
	}
	for i := 1; i < len(events); i++ {
		if events[i].CreatedAt.Before(events[i-1].CreatedAt) {
			t.Fatalf("events out of order at %d", i)
		}
	}

	if _, err := f.audit.Append(ctx, "missing", entities.AuditActorSystem, entities.AuditEventViewed, nil, nil); !errors.Is(err, ErrAgreementNotFound) {
		t.Fatalf("expected ErrAgreementNotFound, got %v", err)
	}
}

func TestLifecycle_ConcurrentTransitionsHaveOneWinner(t *testing.T) {
	ctx := context.Background()
	f := newLifecycleFixture()
	a := f.create(t)
	if _, err := f.status.Send(ctx, a.ID, entities.AuditActorContractor); err != nil {
		t.Fatalf("send: %v", err)
	}

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.status.Accept(ctx, a.ID, entities.AuditActorClient, "", nil)
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, entities.ErrInvalidTransition):
		default:
			t.Fatalf("unexpected err: %v", err)
		}
	}
	if wins != 1 {
		t.Fatalf("expected exactly one winner, got %d", wins)
	}

	events, _ := f.audit.ListForAgreement(ctx, a.ID, 0)
	accepted := 0
	for _, e := range events {
		if e.Type == entities.AuditEventAccepted {
			accepted++
		}
	}
	if accepted != 1 {
		t.Fatalf("expected one ACCEPTED event, got %d", accepted)
	}
}

func TestLifecycle_FreePlanMonthlyLimit(t *testing.T) {
	f := newLifecycleFixture()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		f.create(t)
	}
	_, err := f.agreements.Create(ctx, "user-1", validCreateInput())
	if !errors.Is(err, entities.ErrPlanLimitReached) {
		t.Fatalf("expected ErrPlanLimitReached, got %v", err)
	}

	if _, err := f.agreements.Create(ctx, "user-2", validCreateInput()); err != nil {
		t.Fatalf("other contractor: unexpected err: %v", err)
	}

	upgraded := validCreateInput()
	upgraded.Plan = entities.UserPlanSolo
	if _, err := f.agreements.Create(ctx, "user-1", upgraded); err != nil {
		t.Fatalf("after upgrade: unexpected err: %v", err)
	}

	list, err := f.agreements.ListForOwner(ctx, "user-1", "")
	if err != nil || len(list) != 4 {
		t.Fatalf("expected 4 agreements, got %d (err %v)", len(list), err)
	}
}
