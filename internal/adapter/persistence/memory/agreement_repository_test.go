package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"quotelock/internal/domain/entities"
	"quotelock/internal/usecase/interfaces"
)

func seed(t *testing.T, repo *AgreementRepository, id string, status entities.AgreementStatus) entities.Agreement {
	t.Helper()
	now := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	a := entities.Agreement{ID: id, UserID: "user-1", PublicSlug: "slug-" + id, Status: status, CreatedAt: now, UpdatedAt: now}
	created := entities.AuditEvent{ID: "ev-" + id, AgreementID: id, Actor: entities.AuditActorContractor, Type: entities.AuditEventCreated, CreatedAt: now}
	if _, err := repo.Create(context.Background(), a, created); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return a
}

func TestAgreementRepository_ApplyTransition(t *testing.T) {
	ctx := context.Background()

	t.Run("stale from status conflicts and stores nothing", func(t *testing.T) {
		store := NewStore()
		repo := NewAgreementRepository(store)
		events := NewAuditEventRepository(store)
		seed(t, repo, "a1", entities.AgreementStatusSent)

		_, err := repo.ApplyTransition(ctx, interfaces.TransitionCommand{
			AgreementID: "a1",
			From:        entities.AgreementStatusDraft,
			To:          entities.AgreementStatusSent,
			Event:       entities.AuditEvent{ID: "ev-2", AgreementID: "a1", Type: entities.AuditEventSent},
		})
		if !errors.Is(err, interfaces.ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
		list, _ := events.ListByAgreementID(ctx, "a1", 0)
		if len(list) != 1 {
			t.Fatalf("expected only the created event, got %d", len(list))
		}
	})

	t.Run("lock latch is never overwritten", func(t *testing.T) {
		store := NewStore()
		repo := NewAgreementRepository(store)
		seed(t, repo, "a1", entities.AgreementStatusSent)

		first := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
		out, err := repo.ApplyTransition(ctx, interfaces.TransitionCommand{
			AgreementID: "a1", From: entities.AgreementStatusSent, To: entities.AgreementStatusAccepted,
			LockAt: &first, Now: first,
			Event: entities.AuditEvent{ID: "ev-2", AgreementID: "a1", CreatedAt: first},
		})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if out.LockedAt == nil || !out.LockedAt.Equal(first) {
			t.Fatalf("expected locked_at %v, got %v", first, out.LockedAt)
		}

		second := first.Add(time.Hour)
		out, err = repo.ApplyTransition(ctx, interfaces.TransitionCommand{
			AgreementID: "a1", From: entities.AgreementStatusAccepted, To: entities.AgreementStatusAccepted,
			LockAt: &second, Now: second,
			Event: entities.AuditEvent{ID: "ev-3", AgreementID: "a1", CreatedAt: second},
		})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !out.LockedAt.Equal(first) {
			t.Fatalf("expected latch to keep %v, got %v", first, out.LockedAt)
		}
	})

	t.Run("missing agreement", func(t *testing.T) {
		repo := NewAgreementRepository(NewStore())
		_, err := repo.ApplyTransition(ctx, interfaces.TransitionCommand{AgreementID: "nope"})
		if !errors.Is(err, interfaces.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestAgreementRepository_ApplyUpdate_LockStateMoved(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := NewAgreementRepository(store)
	seed(t, repo, "a1", entities.AgreementStatusSent)

	title := "new title"
	_, err := repo.ApplyUpdate(ctx, interfaces.UpdateCommand{
		AgreementID:    "a1",
		ExpectedStatus: entities.AgreementStatusSent,
		ExpectedLocked: true,
		Changes:        entities.AgreementChanges{Title: &title},
	})
	if !errors.Is(err, interfaces.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestAgreementRepository_ListByUserID(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := NewAgreementRepository(store)
	seed(t, repo, "a1", entities.AgreementStatusDraft)
	seed(t, repo, "a2", entities.AgreementStatusSent)

	all, _ := repo.ListByUserID(ctx, "user-1", "")
	if len(all) != 2 {
		t.Fatalf("expected 2 agreements, got %d", len(all))
	}
	sent, _ := repo.ListByUserID(ctx, "user-1", entities.AgreementStatusSent)
	if len(sent) != 1 || sent[0].ID != "a2" {
		t.Fatalf("expected only a2, got %+v", sent)
	}
	other, _ := repo.ListByUserID(ctx, "user-2", "")
	if len(other) != 0 {
		t.Fatalf("expected none for another user, got %d", len(other))
	}
}

func TestAuditEventRepository_ListLimitKeepsMostRecent(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := NewAgreementRepository(store)
	events := NewAuditEventRepository(store)
	a := seed(t, repo, "a1", entities.AgreementStatusDraft)

	for i := 1; i <= 4; i++ {
		e := entities.AuditEvent{
			ID:          string(rune('a' + i)),
			AgreementID: a.ID,
			Type:        entities.AuditEventViewed,
			CreatedAt:   a.CreatedAt.Add(time.Duration(i) * time.Minute),
		}
		if err := events.Append(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	list, _ := events.ListByAgreementID(ctx, a.ID, 2)
	if len(list) != 2 {
		t.Fatalf("expected 2 events, got %d", len(list))
	}
	if !list[0].CreatedAt.Before(list[1].CreatedAt) {
		t.Fatalf("expected ascending order")
	}
	if !list[1].CreatedAt.Equal(a.CreatedAt.Add(4 * time.Minute)) {
		t.Fatalf("expected the most recent event last, got %v", list[1].CreatedAt)
	}

	if err := events.Append(ctx, entities.AuditEvent{ID: "x", AgreementID: "missing"}); !errors.Is(err, interfaces.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRateCounterRepository_Increment(t *testing.T) {
	ctx := context.Background()
	repo := NewRateCounterRepository(NewStore())
	exp := time.Now().Add(time.Minute)

	for want := int64(1); want <= 3; want++ {
		got, err := repo.Increment(ctx, "k", exp)
		if err != nil || got != want {
			t.Fatalf("expected %d, got %d (err %v)", want, got, err)
		}
	}
	if got, _ := repo.Increment(ctx, "other", exp); got != 1 {
		t.Fatalf("expected independent key to start at 1, got %d", got)
	}
}

func TestUsageCounterRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUsageCounterRepository(NewStore())

	if got, err := repo.Current(ctx, "u1", "2026-10"); err != nil || got != 0 {
		t.Fatalf("expected empty month, got %d (err %v)", got, err)
	}
	for want := int64(1); want <= 2; want++ {
		if got, _ := repo.Increment(ctx, "u1", "2026-10"); got != want {
			t.Fatalf("expected %d, got %d", want, got)
		}
	}
	if got, _ := repo.Current(ctx, "u1", "2026-10"); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
	if got, _ := repo.Current(ctx, "u1", "2026-11"); got != 0 {
		t.Fatalf("expected a new month to start at 0, got %d", got)
	}
	if got, _ := repo.Current(ctx, "u2", "2026-10"); got != 0 {
		t.Fatalf("expected another user to start at 0, got %d", got)
	}
}
