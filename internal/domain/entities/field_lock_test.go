package entities

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func strPtr(s string) *string { return &s }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestIsLocked(t *testing.T) {
	now := time.Now()
	cases := []struct {
		name string
		a    Agreement
		want bool
	}{
		{name: "draft never locked", a: Agreement{Status: AgreementStatusDraft, LockedAt: &now}, want: false},
		{name: "sent without latch", a: Agreement{Status: AgreementStatusSent}, want: false},
		{name: "accepted with latch", a: Agreement{Status: AgreementStatusAccepted, LockedAt: &now}, want: true},
		{name: "cancelled after acceptance", a: Agreement{Status: AgreementStatusCancelled, LockedAt: &now}, want: true},
		{name: "cancelled before acceptance", a: Agreement{Status: AgreementStatusCancelled}, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsLocked(tc.a); got != tc.want {
				t.Fatalf("IsLocked = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestValidateUpdate(t *testing.T) {
	now := time.Now()
	locked := Agreement{Status: AgreementStatusAccepted, LockedAt: &now}

	t.Run("locked rejects total price", func(t *testing.T) {
		err := ValidateUpdate(locked, AgreementChanges{TotalPrice: decPtr("120.00")})
		var lfe *LockedFieldError
		if !errors.As(err, &lfe) {
			t.Fatalf("expected LockedFieldError, got %v", err)
		}
		if !reflect.DeepEqual(lfe.Fields, []string{"totalPrice"}) {
			t.Fatalf("unexpected fields: %v", lfe.Fields)
		}
		if !errors.Is(err, ErrLockedField) {
			t.Fatalf("expected errors.Is ErrLockedField")
		}
	})

	t.Run("locked lists every offending field in canonical order", func(t *testing.T) {
		err := ValidateUpdate(locked, AgreementChanges{
			WorkExcluded: strPtr("nothing"),
			Currency:     strPtr("EUR"),
			Title:        strPtr("New title"),
		})
		var lfe *LockedFieldError
		if !errors.As(err, &lfe) {
			t.Fatalf("expected LockedFieldError, got %v", err)
		}
		if !reflect.DeepEqual(lfe.Fields, []string{"currency", "workExcluded"}) {
			t.Fatalf("unexpected fields: %v", lfe.Fields)
		}
	})

	t.Run("locked allows non commercial fields", func(t *testing.T) {
		err := ValidateUpdate(locked, AgreementChanges{
			CancellationTerms:   strPtr("14 days notice"),
			ClientName:          strPtr("Ada"),
			PaymentInstructions: strPtr("IBAN ..."),
			ExpiresAt:           &now,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unlocked allows everything", func(t *testing.T) {
		draft := Agreement{Status: AgreementStatusDraft}
		if err := ValidateUpdate(draft, AgreementChanges{TotalPrice: decPtr("1"), Currency: strPtr("USD")}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestAgreementChanges_ApplyAndFieldNames(t *testing.T) {
	expires := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)
	a := Agreement{Title: "Old", ExternalPaymentLink: strPtr("https://pay.example"), ExpiresAt: &expires}

	zero := time.Time{}
	c := AgreementChanges{Title: strPtr("New"), ExternalPaymentLink: strPtr(""), ExpiresAt: &zero}
	if got := c.FieldNames(); !reflect.DeepEqual(got, []string{"title", "expiresAt", "externalPaymentLink"}) {
		t.Fatalf("unexpected field names: %v", got)
	}

	out := c.Apply(a)
	if out.Title != "New" || out.ExternalPaymentLink != nil || out.ExpiresAt != nil {
		t.Fatalf("unexpected apply result: %+v", out)
	}
	if a.Title != "Old" {
		t.Fatalf("apply must not mutate the input")
	}
	if !(AgreementChanges{}).IsEmpty() {
		t.Fatalf("expected empty change set")
	}
}
