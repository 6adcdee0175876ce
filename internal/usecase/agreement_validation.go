package usecase

import (
	"net/mail"
	"net/url"
	"strings"
	"unicode/utf8"

	"quotelock/internal/domain/entities"
)

const (
	maxTitleLength   = 255
	maxNameLength    = 255
	maxCountryLength = 100
)

// validateAgreement checks every field a stored agreement must satisfy.
func validateAgreement(a entities.Agreement) error {
	var verr entities.ValidationError

	if strings.TrimSpace(a.Title) == "" {
		verr.Add(entities.FieldTitle, "title is required")
	} else if utf8.RuneCountInString(a.Title) > maxTitleLength {
		verr.Add(entities.FieldTitle, "title is too long")
	}
	if a.ClientName != nil && utf8.RuneCountInString(*a.ClientName) > maxNameLength {
		verr.Add(entities.FieldClientName, "client name is too long")
	}
	if a.ClientEmail != nil {
		if _, err := mail.ParseAddress(*a.ClientEmail); err != nil {
			verr.Add(entities.FieldClientEmail, "invalid email address")
		}
	}
	if strings.TrimSpace(a.WorkIncluded) == "" {
		verr.Add(entities.FieldWorkIncluded, "work included is required")
	}
	if strings.TrimSpace(a.WorkExcluded) == "" {
		verr.Add(entities.FieldWorkExcluded, "work excluded is required")
	}
	if err := entities.ValidateTerms(a.TotalPrice, a.DepositAmount, a.BalanceDue, a.Currency); err != nil {
		if termsErr, ok := err.(*entities.ValidationError); ok {
			for field, msg := range termsErr.Fields {
				verr.Add(field, msg)
			}
		}
	}
	if strings.TrimSpace(a.PaymentInstructions) == "" {
		verr.Add(entities.FieldPaymentInstructions, "payment instructions are required")
	}
	if a.ExternalPaymentLink != nil {
		u, err := url.ParseRequestURI(*a.ExternalPaymentLink)
		if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
			verr.Add(entities.FieldExternalPaymentLink, "invalid URL format")
		}
	}
	if strings.TrimSpace(a.CancellationTerms) == "" {
		verr.Add(entities.FieldCancellationTerms, "cancellation terms are required")
	}
	if strings.TrimSpace(a.GoverningCountry) == "" {
		verr.Add(entities.FieldGoverningCountry, "governing country is required")
	} else if utf8.RuneCountInString(a.GoverningCountry) > maxCountryLength {
		verr.Add(entities.FieldGoverningCountry, "governing country is too long")
	}

	return verr.OrErr()
}
