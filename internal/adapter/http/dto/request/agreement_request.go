package request

import (
	"strings"
	"time"

	"quotelock/internal/domain/entities"
	"quotelock/internal/usecase"

	"github.com/shopspring/decimal"
)

// CreateAgreementRequest is the contractor's new quote. Amounts accept JSON numbers or strings.
type CreateAgreementRequest struct {
	Title               string          `json:"title" binding:"required"`
	ClientName          *string         `json:"client_name"`
	ClientEmail         *string         `json:"client_email"`
	WorkIncluded        string          `json:"work_included" binding:"required"`
	WorkExcluded        string          `json:"work_excluded" binding:"required"`
	TotalPrice          decimal.Decimal `json:"total_price"`
	DepositAmount       decimal.Decimal `json:"deposit_amount"`
	BalanceDue          decimal.Decimal `json:"balance_due"`
	Currency            string          `json:"currency"`
	ExpiresAt           *time.Time      `json:"expires_at"`
	PaymentInstructions string          `json:"payment_instructions" binding:"required"`
	ExternalPaymentLink *string         `json:"external_payment_link"`
	CancellationTerms   string          `json:"cancellation_terms" binding:"required"`
	GoverningCountry    string          `json:"governing_country" binding:"required"`
}

func (r CreateAgreementRequest) ToInput() usecase.CreateAgreementInput {
	return usecase.CreateAgreementInput{
		Title:               r.Title,
		ClientName:          r.ClientName,
		ClientEmail:         r.ClientEmail,
		WorkIncluded:        r.WorkIncluded,
		WorkExcluded:        r.WorkExcluded,
		TotalPrice:          r.TotalPrice,
		DepositAmount:       r.DepositAmount,
		BalanceDue:          r.BalanceDue,
		Currency:            r.Currency,
		ExpiresAt:           r.ExpiresAt,
		PaymentInstructions: r.PaymentInstructions,
		ExternalPaymentLink: r.ExternalPaymentLink,
		CancellationTerms:   r.CancellationTerms,
		GoverningCountry:    r.GoverningCountry,
	}
}

// UpdateAgreementRequest is a partial update: omitted fields are left untouched.
// An empty string clears client_name, client_email and external_payment_link;
// clear_expires_at removes the expiry date.
type UpdateAgreementRequest struct {
	Title               *string          `json:"title"`
	ClientName          *string          `json:"client_name"`
	ClientEmail         *string          `json:"client_email"`
	WorkIncluded        *string          `json:"work_included"`
	WorkExcluded        *string          `json:"work_excluded"`
	TotalPrice          *decimal.Decimal `json:"total_price"`
	DepositAmount       *decimal.Decimal `json:"deposit_amount"`
	BalanceDue          *decimal.Decimal `json:"balance_due"`
	Currency            *string          `json:"currency"`
	ExpiresAt           *time.Time       `json:"expires_at"`
	ClearExpiresAt      bool             `json:"clear_expires_at"`
	PaymentInstructions *string          `json:"payment_instructions"`
	ExternalPaymentLink *string          `json:"external_payment_link"`
	CancellationTerms   *string          `json:"cancellation_terms"`
	GoverningCountry    *string          `json:"governing_country"`
}

func (r UpdateAgreementRequest) ToChanges() entities.AgreementChanges {
	changes := entities.AgreementChanges{
		Title:               trimPtr(r.Title),
		ClientName:          trimPtr(r.ClientName),
		ClientEmail:         trimPtr(r.ClientEmail),
		WorkIncluded:        trimPtr(r.WorkIncluded),
		WorkExcluded:        trimPtr(r.WorkExcluded),
		TotalPrice:          r.TotalPrice,
		DepositAmount:       r.DepositAmount,
		BalanceDue:          r.BalanceDue,
		Currency:            trimPtr(r.Currency),
		ExpiresAt:           r.ExpiresAt,
		PaymentInstructions: trimPtr(r.PaymentInstructions),
		ExternalPaymentLink: trimPtr(r.ExternalPaymentLink),
		CancellationTerms:   trimPtr(r.CancellationTerms),
		GoverningCountry:    trimPtr(r.GoverningCountry),
	}
	if r.ClearExpiresAt {
		changes.ExpiresAt = &time.Time{}
	}
	return changes
}

type TransitionStatusRequest struct {
	Status   string         `json:"status" binding:"required"`
	Metadata map[string]any `json:"metadata"`
}

type RevertStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason" binding:"required"`
}

type CorrectionRequest struct {
	CorrectionType string         `json:"correction_type" binding:"required"`
	Description    string         `json:"description" binding:"required"`
	AffectedFields []string       `json:"affected_fields"`
	NewValues      map[string]any `json:"new_values"`
}

func (r CorrectionRequest) ToInput() usecase.CorrectionInput {
	return usecase.CorrectionInput{
		Type:           entities.CorrectionType(strings.ToUpper(strings.TrimSpace(r.CorrectionType))),
		Description:    r.Description,
		AffectedFields: r.AffectedFields,
		NewValues:      r.NewValues,
	}
}

type AcceptAgreementRequest struct {
	AcknowledgedBy string  `json:"acknowledged_by" binding:"required"`
	Email          *string `json:"email"`
}

type ConfirmDepositRequest struct {
	TransactionReference *string `json:"transaction_reference"`
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
