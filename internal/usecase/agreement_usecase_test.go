package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"quotelock/internal/domain/entities"
	"quotelock/internal/usecase/interfaces"
	mock_interfaces "quotelock/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestAgreementUseCase_Create(t *testing.T) {
	t.Run("invalid user", func(t *testing.T) {
		uc := NewAgreementUseCase(nil, nil)
		_, err := uc.Create(context.Background(), " ", validCreateInput())
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("terms mismatch", func(t *testing.T) {
		uc := NewAgreementUseCase(nil, nil)
		in := validCreateInput()
		in.BalanceDue = decimal.NewFromInt(69)
		_, err := uc.Create(context.Background(), "user-1", in)
		if !errors.Is(err, entities.ErrInvalidTerms) {
			t.Fatalf("expected ErrInvalidTerms, got %v", err)
		}
	})

	t.Run("missing fields are reported together", func(t *testing.T) {
		uc := NewAgreementUseCase(nil, nil)
		in := validCreateInput()
		in.Title = ""
		in.GoverningCountry = " "
		bad := "not-an-email"
		in.ClientEmail = &bad
		_, err := uc.Create(context.Background(), "user-1", in)
		var verr *entities.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		for _, f := range []string{entities.FieldTitle, entities.FieldGoverningCountry, entities.FieldClientEmail} {
			if _, ok := verr.Fields[f]; !ok {
				t.Fatalf("expected %s in %v", f, verr.Fields)
			}
		}
	})

	t.Run("invalid payment link", func(t *testing.T) {
		uc := NewAgreementUseCase(nil, nil)
		in := validCreateInput()
		link := "ftp://pay.example.com"
		in.ExternalPaymentLink = &link
		_, err := uc.Create(context.Background(), "user-1", in)
		if !errors.Is(err, entities.ErrInvalidAgreementInput) {
			t.Fatalf("expected ErrInvalidAgreementInput, got %v", err)
		}
	})

	t.Run("success stores draft with CREATED event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAgreementRepository(ctrl)
		uc := NewAgreementUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Agreement, ev entities.AuditEvent) (entities.Agreement, error) {
				if a.ID == "" || a.UserID != "user-1" || a.Status != entities.AgreementStatusDraft {
					t.Fatalf("unexpected agreement: %+v", a)
				}
				if !IsValidPublicSlug(a.PublicSlug) {
					t.Fatalf("invalid slug %q", a.PublicSlug)
				}
				if a.Currency != "GBP" {
					t.Fatalf("expected GBP, got %s", a.Currency)
				}
				if ev.Type != entities.AuditEventCreated || ev.AgreementID != a.ID || ev.Actor != entities.AuditActorContractor {
					t.Fatalf("unexpected event: %+v", ev)
				}
				if ev.Metadata["title"] != "Kitchen refit" {
					t.Fatalf("unexpected metadata: %+v", ev.Metadata)
				}
				return a, nil
			},
		)

		if _, err := uc.Create(context.Background(), "user-1", validCreateInput()); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})
}

func TestAgreementUseCase_CreatePlanLimits(t *testing.T) {
	now := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)

	t.Run("free plan at its monthly limit is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAgreementRepository(ctrl)
		usage := mock_interfaces.NewMockIUsageCounterRepository(ctrl)
		uc := NewAgreementUseCase(repo, usage)
		uc.now = func() time.Time { return now }

		usage.EXPECT().Current(gomock.Any(), "user-1", "2026-10").Return(int64(3), nil)

		_, err := uc.Create(context.Background(), "user-1", validCreateInput())
		var perr *entities.PlanLimitError
		if !errors.As(err, &perr) || !errors.Is(err, entities.ErrPlanLimitReached) {
			t.Fatalf("expected PlanLimitError, got %v", err)
		}
		if perr.Plan != entities.UserPlanFree || perr.Limit != 3 {
			t.Fatalf("unexpected limit error: %+v", perr)
		}
	})

	t.Run("solo plan below its limit creates and counts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAgreementRepository(ctrl)
		usage := mock_interfaces.NewMockIUsageCounterRepository(ctrl)
		uc := NewAgreementUseCase(repo, usage)
		uc.now = func() time.Time { return now }

		in := validCreateInput()
		in.Plan = entities.UserPlanSolo
		gomock.InOrder(
			usage.EXPECT().Current(gomock.Any(), "user-1", "2026-10").Return(int64(19), nil),
			repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, a entities.Agreement, _ entities.AuditEvent) (entities.Agreement, error) {
					return a, nil
				},
			),
			usage.EXPECT().Increment(gomock.Any(), "user-1", "2026-10").Return(int64(20), nil),
		)

		if _, err := uc.Create(context.Background(), "user-1", in); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})

	t.Run("business plan skips the lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAgreementRepository(ctrl)
		usage := mock_interfaces.NewMockIUsageCounterRepository(ctrl)
		uc := NewAgreementUseCase(repo, usage)
		uc.now = func() time.Time { return now }

		in := validCreateInput()
		in.Plan = entities.UserPlanBusiness
		repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Agreement, _ entities.AuditEvent) (entities.Agreement, error) {
				return a, nil
			},
		)
		usage.EXPECT().Increment(gomock.Any(), "user-1", "2026-10").Return(int64(250), nil)

		if _, err := uc.Create(context.Background(), "user-1", in); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})

	t.Run("unknown plan is treated as free", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		usage := mock_interfaces.NewMockIUsageCounterRepository(ctrl)
		uc := NewAgreementUseCase(nil, usage)
		uc.now = func() time.Time { return now }

		in := validCreateInput()
		in.Plan = entities.UserPlan("ENTERPRISE")
		usage.EXPECT().Current(gomock.Any(), "user-1", "2026-10").Return(int64(3), nil)

		if _, err := uc.Create(context.Background(), "user-1", in); !errors.Is(err, entities.ErrPlanLimitReached) {
			t.Fatalf("expected ErrPlanLimitReached, got %v", err)
		}
	})

	t.Run("usage lookup failure blocks creation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		usage := mock_interfaces.NewMockIUsageCounterRepository(ctrl)
		uc := NewAgreementUseCase(nil, usage)

		usage.EXPECT().Current(gomock.Any(), "user-1", gomock.Any()).Return(int64(0), errors.New("ddb down"))

		if _, err := uc.Create(context.Background(), "user-1", validCreateInput()); err == nil || err.Error() != "ddb down" {
			t.Fatalf("expected ddb down, got %v", err)
		}
	})

	t.Run("counter failure after create keeps the agreement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAgreementRepository(ctrl)
		usage := mock_interfaces.NewMockIUsageCounterRepository(ctrl)
		uc := NewAgreementUseCase(repo, usage)

		usage.EXPECT().Current(gomock.Any(), "user-1", gomock.Any()).Return(int64(0), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Agreement, _ entities.AuditEvent) (entities.Agreement, error) {
				return a, nil
			},
		)
		usage.EXPECT().Increment(gomock.Any(), "user-1", gomock.Any()).Return(int64(0), errors.New("ddb down"))

		out, err := uc.Create(context.Background(), "user-1", validCreateInput())
		if err != nil || out.ID == "" {
			t.Fatalf("expected created agreement, got %+v %v", out, err)
		}
	})
}

func TestAgreementUseCase_MonthlyUsage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	usage := mock_interfaces.NewMockIUsageCounterRepository(ctrl)
	uc := NewAgreementUseCase(nil, usage)
	uc.now = func() time.Time { return time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC) }

	usage.EXPECT().Current(gomock.Any(), "user-1", "2026-10").Return(int64(2), nil).Times(2)

	free, err := uc.MonthlyUsage(context.Background(), "user-1", "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if free.Plan != entities.UserPlanFree || free.Count != 2 || free.Limit == nil || *free.Limit != 3 || free.Period != "2026-10" {
		t.Fatalf("unexpected summary: %+v", free)
	}

	business, err := uc.MonthlyUsage(context.Background(), "user-1", entities.UserPlanBusiness)
	if err != nil || business.Limit != nil {
		t.Fatalf("expected unlimited summary, got %+v %v", business, err)
	}

	if _, err := uc.MonthlyUsage(context.Background(), " ", ""); !errors.Is(err, ErrInvalidUserID) {
		t.Fatalf("expected ErrInvalidUserID, got %v", err)
	}
}

func TestAgreementUseCase_GetForOwner(t *testing.T) {
	t.Run("other owner looks like not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAgreementRepository(ctrl)
		uc := NewAgreementUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "a1").Return(entities.Agreement{ID: "a1", UserID: "user-2"}, nil)

		_, err := uc.GetForOwner(context.Background(), "user-1", "a1")
		if !errors.Is(err, ErrAgreementNotFound) {
			t.Fatalf("expected ErrAgreementNotFound, got %v", err)
		}
	})

	t.Run("owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAgreementRepository(ctrl)
		uc := NewAgreementUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "a1").Return(entities.Agreement{ID: "a1", UserID: "user-1"}, nil)

		a, err := uc.GetForOwner(context.Background(), "user-1", "a1")
		if err != nil || a.ID != "a1" {
			t.Fatalf("unexpected result %+v err %v", a, err)
		}
	})
}

func TestAgreementUseCase_ListForOwner(t *testing.T) {
	t.Run("invalid status filter", func(t *testing.T) {
		uc := NewAgreementUseCase(nil, nil)
		_, err := uc.ListForOwner(context.Background(), "user-1", entities.AgreementStatus("NOPE"))
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("passes filter through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAgreementRepository(ctrl)
		uc := NewAgreementUseCase(repo, nil)

		repo.EXPECT().ListByUserID(gomock.Any(), "user-1", entities.AgreementStatusSent).Return([]entities.Agreement{{ID: "a1"}}, nil)

		list, err := uc.ListForOwner(context.Background(), "user-1", entities.AgreementStatusSent)
		if err != nil || len(list) != 1 {
			t.Fatalf("unexpected result %v err %v", list, err)
		}
	})
}

func lockedAgreement() entities.Agreement {
	now := fixedNow()
	return entities.Agreement{
		ID:                  "a1",
		UserID:              "user-1",
		Title:               "Kitchen refit",
		WorkIncluded:        "Units",
		WorkExcluded:        "Plastering",
		TotalPrice:          decimal.NewFromInt(100),
		DepositAmount:       decimal.NewFromInt(30),
		BalanceDue:          decimal.NewFromInt(70),
		Currency:            "GBP",
		PaymentInstructions: "Bank transfer",
		CancellationTerms:   "48h notice",
		GoverningCountry:    "UK",
		Status:              entities.AgreementStatusAccepted,
		LockedAt:            &now,
	}
}

func TestAgreementUseCase_UpdateSafely(t *testing.T) {
	t.Run("empty change set", func(t *testing.T) {
		uc := NewAgreementUseCase(nil, nil)
		_, err := uc.UpdateSafely(context.Background(), "a1", entities.AgreementChanges{}, entities.AuditActorContractor)
		if !errors.Is(err, ErrNothingToUpdate) {
			t.Fatalf("expected ErrNothingToUpdate, got %v", err)
		}
	})

	t.Run("locked fields rejected before any write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAgreementRepository(ctrl)
		uc := NewAgreementUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "a1").Return(lockedAgreement(), nil)

		currency := "EUR"
		scope := "Everything"
		_, err := uc.UpdateSafely(context.Background(), "a1", entities.AgreementChanges{Currency: &currency, WorkIncluded: &scope}, entities.AuditActorContractor)
		var lerr *entities.LockedFieldError
		if !errors.As(err, &lerr) {
			t.Fatalf("expected LockedFieldError, got %v", err)
		}
		if len(lerr.Fields) != 2 || lerr.Fields[0] != entities.FieldCurrency || lerr.Fields[1] != entities.FieldWorkIncluded {
			t.Fatalf("unexpected fields %v", lerr.Fields)
		}
	})

	t.Run("unlocked field persisted with UPDATED event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAgreementRepository(ctrl)
		uc := NewAgreementUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "a1").Return(lockedAgreement(), nil)
		repo.EXPECT().ApplyUpdate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cmd interfaces.UpdateCommand) (entities.Agreement, error) {
				if cmd.ExpectedStatus != entities.AgreementStatusAccepted || !cmd.ExpectedLocked {
					t.Fatalf("unexpected guard: %+v", cmd)
				}
				if cmd.Event.Type != entities.AuditEventUpdated {
					t.Fatalf("expected UPDATED, got %s", cmd.Event.Type)
				}
				fields, _ := cmd.Event.Metadata["updatedFields"].([]string)
				if len(fields) != 1 || fields[0] != entities.FieldCancellationTerms {
					t.Fatalf("unexpected fields: %v", cmd.Event.Metadata)
				}
				return cmd.Changes.Apply(lockedAgreement()), nil
			},
		)

		terms := "14 days notice"
		out, err := uc.UpdateSafely(context.Background(), "a1", entities.AgreementChanges{CancellationTerms: &terms}, entities.AuditActorContractor)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if out.CancellationTerms != terms {
			t.Fatalf("expected %q, got %q", terms, out.CancellationTerms)
		}
	})

	t.Run("lock raced in between validation and write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAgreementRepository(ctrl)
		uc := NewAgreementUseCase(repo, nil)

		draft := lockedAgreement()
		draft.Status = entities.AgreementStatusSent
		draft.LockedAt = nil

		gomock.InOrder(
			repo.EXPECT().GetByID(gomock.Any(), "a1").Return(draft, nil),
			repo.EXPECT().ApplyUpdate(gomock.Any(), gomock.Any()).Return(entities.Agreement{}, interfaces.ErrConflict),
			repo.EXPECT().GetByID(gomock.Any(), "a1").Return(lockedAgreement(), nil),
		)

		scope := "More"
		_, err := uc.UpdateSafely(context.Background(), "a1", entities.AgreementChanges{WorkIncluded: &scope}, entities.AuditActorContractor)
		if !errors.Is(err, entities.ErrLockedField) {
			t.Fatalf("expected ErrLockedField, got %v", err)
		}
	})
}
