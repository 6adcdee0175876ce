package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Agreement is a contractor quote shared with a client through its public slug.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (public_slug-index): public_slug
//   - GSI2 (user_id-index): user_id, created_at
//
// Monetary representation:
//   - amounts are decimals; DepositAmount + BalanceDue must equal TotalPrice (±0.01).
//
// Agreements are never deleted: they are kept as the legal record of what was agreed.
type Agreement struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	PublicSlug string `json:"public_slug"`

	Title       string  `json:"title"`
	ClientName  *string `json:"client_name,omitempty"`
	ClientEmail *string `json:"client_email,omitempty"`

	WorkIncluded  string          `json:"work_included"`
	WorkExcluded  string          `json:"work_excluded"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	DepositAmount decimal.Decimal `json:"deposit_amount"`
	BalanceDue    decimal.Decimal `json:"balance_due"`
	Currency      string          `json:"currency"`

	ExpiresAt           *time.Time `json:"expires_at,omitempty"`
	PaymentInstructions string     `json:"payment_instructions"`
	ExternalPaymentLink *string    `json:"external_payment_link,omitempty"`
	CancellationTerms   string     `json:"cancellation_terms"`
	GoverningCountry    string     `json:"governing_country"`

	Status   AgreementStatus `json:"status"`
	LockedAt *time.Time      `json:"locked_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsExpired reports whether the agreement had an expiry date before now.
func (a Agreement) IsExpired(now time.Time) bool {
	return a.ExpiresAt != nil && a.ExpiresAt.Before(now)
}

// Field names as exposed in audit metadata and lock violations.
const (
	FieldTitle               = "title"
	FieldClientName          = "clientName"
	FieldClientEmail         = "clientEmail"
	FieldWorkIncluded        = "workIncluded"
	FieldWorkExcluded        = "workExcluded"
	FieldTotalPrice          = "totalPrice"
	FieldDepositAmount       = "depositAmount"
	FieldBalanceDue          = "balanceDue"
	FieldCurrency            = "currency"
	FieldExpiresAt           = "expiresAt"
	FieldPaymentInstructions = "paymentInstructions"
	FieldExternalPaymentLink = "externalPaymentLink"
	FieldCancellationTerms   = "cancellationTerms"
	FieldGoverningCountry    = "governingCountry"
)

// AgreementChanges is a partial update. A nil field is left untouched.
//
// ExpiresAt set to the zero time and ExternalPaymentLink set to "" clear the stored value.
type AgreementChanges struct {
	Title               *string
	ClientName          *string
	ClientEmail         *string
	WorkIncluded        *string
	WorkExcluded        *string
	TotalPrice          *decimal.Decimal
	DepositAmount       *decimal.Decimal
	BalanceDue          *decimal.Decimal
	Currency            *string
	ExpiresAt           *time.Time
	PaymentInstructions *string
	ExternalPaymentLink *string
	CancellationTerms   *string
	GoverningCountry    *string
}

// FieldNames lists the fields present in the change set, in declaration order.
func (c AgreementChanges) FieldNames() []string {
	var names []string
	add := func(present bool, name string) {
		if present {
			names = append(names, name)
		}
	}
	add(c.Title != nil, FieldTitle)
	add(c.ClientName != nil, FieldClientName)
	add(c.ClientEmail != nil, FieldClientEmail)
	add(c.WorkIncluded != nil, FieldWorkIncluded)
	add(c.WorkExcluded != nil, FieldWorkExcluded)
	add(c.TotalPrice != nil, FieldTotalPrice)
	add(c.DepositAmount != nil, FieldDepositAmount)
	add(c.BalanceDue != nil, FieldBalanceDue)
	add(c.Currency != nil, FieldCurrency)
	add(c.ExpiresAt != nil, FieldExpiresAt)
	add(c.PaymentInstructions != nil, FieldPaymentInstructions)
	add(c.ExternalPaymentLink != nil, FieldExternalPaymentLink)
	add(c.CancellationTerms != nil, FieldCancellationTerms)
	add(c.GoverningCountry != nil, FieldGoverningCountry)
	return names
}

func (c AgreementChanges) IsEmpty() bool {
	return len(c.FieldNames()) == 0
}

// TouchesTerms reports whether any money field is part of the change set.
func (c AgreementChanges) TouchesTerms() bool {
	return c.TotalPrice != nil || c.DepositAmount != nil || c.BalanceDue != nil
}

// Apply returns a copy of a with the changes merged in.
func (c AgreementChanges) Apply(a Agreement) Agreement {
	if c.Title != nil {
		a.Title = *c.Title
	}
	if c.ClientName != nil {
		a.ClientName = nonEmpty(*c.ClientName)
	}
	if c.ClientEmail != nil {
		a.ClientEmail = nonEmpty(*c.ClientEmail)
	}
	if c.WorkIncluded != nil {
		a.WorkIncluded = *c.WorkIncluded
	}
	if c.WorkExcluded != nil {
		a.WorkExcluded = *c.WorkExcluded
	}
	if c.TotalPrice != nil {
		a.TotalPrice = *c.TotalPrice
	}
	if c.DepositAmount != nil {
		a.DepositAmount = *c.DepositAmount
	}
	if c.BalanceDue != nil {
		a.BalanceDue = *c.BalanceDue
	}
	if c.Currency != nil {
		a.Currency = *c.Currency
	}
	if c.ExpiresAt != nil {
		if c.ExpiresAt.IsZero() {
			a.ExpiresAt = nil
		} else {
			t := c.ExpiresAt.UTC()
			a.ExpiresAt = &t
		}
	}
	if c.PaymentInstructions != nil {
		a.PaymentInstructions = *c.PaymentInstructions
	}
	if c.ExternalPaymentLink != nil {
		a.ExternalPaymentLink = nonEmpty(*c.ExternalPaymentLink)
	}
	if c.CancellationTerms != nil {
		a.CancellationTerms = *c.CancellationTerms
	}
	if c.GoverningCountry != nil {
		a.GoverningCountry = *c.GoverningCountry
	}
	return a
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
