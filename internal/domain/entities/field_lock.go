package entities

import (
	"errors"
	"fmt"
	"strings"
)

// LockedFields are the commercial terms a client relied upon when accepting.
var LockedFields = []string{
	FieldTotalPrice,
	FieldDepositAmount,
	FieldBalanceDue,
	FieldCurrency,
	FieldWorkIncluded,
	FieldWorkExcluded,
}

// ErrLockedField is matched by every *LockedFieldError.
var ErrLockedField = errors.New("locked commercial field")

// LockedFieldError lists the locked fields a rejected update tried to change.
type LockedFieldError struct {
	Fields []string
}

func (e *LockedFieldError) Error() string {
	return fmt.Sprintf("cannot modify locked commercial fields: %s. agreement was locked when accepted", strings.Join(e.Fields, ", "))
}

func (e *LockedFieldError) Is(target error) bool { return target == ErrLockedField }

// IsLocked reports whether the commercial terms of a are frozen.
func IsLocked(a Agreement) bool {
	return a.Status != AgreementStatusDraft && a.LockedAt != nil
}

// ValidateUpdate rejects changes to locked fields once the agreement is locked.
// Corrections to locked terms go through the CORRECTION audit event instead.
func ValidateUpdate(a Agreement, changes AgreementChanges) error {
	if !IsLocked(a) {
		return nil
	}
	present := changes.FieldNames()
	var offending []string
	for _, locked := range LockedFields {
		for _, name := range present {
			if name == locked {
				offending = append(offending, locked)
				break
			}
		}
	}
	if len(offending) > 0 {
		return &LockedFieldError{Fields: offending}
	}
	return nil
}
