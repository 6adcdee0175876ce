package entities

import (
	"errors"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// TermsTolerance is the largest accepted gap between deposit + balance and the total.
var TermsTolerance = decimal.RequireFromString("0.01")

// MaxAmount is the largest amount storable as NUMERIC(12,2).
var MaxAmount = decimal.RequireFromString("9999999999.99")

// AmountPlaces is the number of decimal places amounts may carry.
const AmountPlaces = 2

var (
	ErrInvalidTerms          = errors.New("deposit amount + balance due must equal total price")
	ErrInvalidAgreementInput = errors.New("invalid agreement input")
)

// ValidationError collects per-field input problems.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = map[string]string{}
	}
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = message
	}
}

func (e *ValidationError) HasErrors() bool { return len(e.Fields) > 0 }

// OrErr returns e when it carries problems, nil otherwise.
func (e *ValidationError) OrErr() error {
	if e.HasErrors() {
		return e
	}
	return nil
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "invalid agreement input: " + strings.Join(parts, ", ")
}

func (e *ValidationError) Is(target error) bool {
	if target == ErrInvalidAgreementInput {
		return true
	}
	return target == ErrInvalidTerms && e.Fields[FieldBalanceDue] == ErrInvalidTerms.Error()
}

// ValidateTerms checks the money fields of an agreement.
//
// Total must be positive, deposit and balance non-negative, and their sum must match the
// total within TermsTolerance. Amounts carry at most AmountPlaces decimals and never exceed
// MaxAmount. Currency must be a 3-letter code.
func ValidateTerms(total, deposit, balance decimal.Decimal, currency string) error {
	var verr ValidationError
	if !total.IsPositive() {
		verr.Add(FieldTotalPrice, "total price must be positive")
	}
	if deposit.IsNegative() {
		verr.Add(FieldDepositAmount, "deposit amount cannot be negative")
	}
	if balance.IsNegative() {
		verr.Add(FieldBalanceDue, "balance due cannot be negative")
	}
	for field, amount := range map[string]decimal.Decimal{
		FieldTotalPrice:    total,
		FieldDepositAmount: deposit,
		FieldBalanceDue:    balance,
	} {
		switch {
		case !amount.Equal(amount.Truncate(AmountPlaces)):
			verr.Add(field, "amount cannot have more than 2 decimal places")
		case amount.GreaterThan(MaxAmount):
			verr.Add(field, "amount is too large")
		}
	}
	if !verr.HasErrors() && deposit.Add(balance).Sub(total).Abs().GreaterThanOrEqual(TermsTolerance) {
		verr.Add(FieldBalanceDue, ErrInvalidTerms.Error())
	}
	if len(strings.TrimSpace(currency)) != 3 {
		verr.Add(FieldCurrency, "currency must be 3 characters (e.g., GBP)")
	}
	return verr.OrErr()
}

// CorrectionType classifies a CORRECTION audit event.
type CorrectionType string

const (
	CorrectionPriceAdjustment CorrectionType = "PRICE_ADJUSTMENT"
	CorrectionScopeChange     CorrectionType = "SCOPE_CHANGE"
	CorrectionTermChange      CorrectionType = "TERM_CHANGE"
	CorrectionDateChange      CorrectionType = "DATE_CHANGE"
	CorrectionOther           CorrectionType = "OTHER"
)

const MaxCorrectionDescription = 2000

func (c CorrectionType) IsValid() bool {
	switch c {
	case CorrectionPriceAdjustment, CorrectionScopeChange, CorrectionTermChange, CorrectionDateChange, CorrectionOther:
		return true
	}
	return false
}
