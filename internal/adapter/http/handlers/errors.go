package handlers

import (
	"errors"
	"net/http"

	"quotelock/internal/domain/entities"
	"quotelock/internal/usecase"
	"quotelock/internal/usecase/interfaces"
	"quotelock/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
	errInvalidStatus  = pkg.NewDomainErrorSimple("INVALID_STATUS", "Unknown agreement status", http.StatusBadRequest)
	errRateLimited    = pkg.NewDomainErrorSimple("RATE_LIMITED", "Too many requests. Please try again later.", http.StatusTooManyRequests)
)

func mapAgreementError(err error) *pkg.AppError {
	var (
		transitionErr *entities.TransitionError
		lockedErr     *entities.LockedFieldError
		validationErr *entities.ValidationError
		publicErr     *usecase.PublicActionError
		planErr       *entities.PlanLimitError
	)

	switch {
	case errors.As(err, &transitionErr):
		return pkg.NewDomainError("INVALID_TRANSITION", transitionErr.Error(), err, http.StatusConflict).
			WithDetails("current_status", string(transitionErr.From)).
			WithDetails("allowed_transitions", statusNames(transitionErr.Allowed))
	case errors.As(err, &lockedErr):
		return pkg.NewDomainError("LOCKED_FIELD_VIOLATION", lockedErr.Error(), err, http.StatusConflict).
			WithDetails("locked_fields", lockedErr.Fields)
	case errors.As(err, &validationErr):
		return pkg.NewDomainError("VALIDATION_ERROR", "Invalid agreement input", err, http.StatusBadRequest).
			WithDetails("fields", validationErr.Fields)
	case errors.As(err, &planErr):
		return pkg.NewDomainError("PLAN_LIMIT_REACHED", planErr.Error(), err, http.StatusForbidden).
			WithDetails("plan", string(planErr.Plan)).
			WithDetails("limit", planErr.Limit)
	case errors.As(err, &publicErr):
		return pkg.NewDomainError("ACTION_NOT_ALLOWED", publicErr.Reason, err, http.StatusConflict)
	case errors.Is(err, usecase.ErrAgreementNotFound):
		return pkg.NewDomainErrorSimple("AGREEMENT_NOT_FOUND", "Agreement not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRateLimited):
		return errRateLimited
	case errors.Is(err, interfaces.ErrRetryable):
		return pkg.NewDomainError("TRY_AGAIN", "The agreement is being changed by another request, try again", err, http.StatusServiceUnavailable)
	case errors.Is(err, interfaces.ErrConflict):
		return pkg.NewDomainError("CONCURRENT_MODIFICATION", "The agreement was changed by another request, reload and try again", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return errInvalidStatus
	case errors.Is(err, usecase.ErrInvalidCorrection):
		return pkg.NewDomainErrorSimple("INVALID_CORRECTION", "Invalid correction", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidRevertReason):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "A reason is required to revert a status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNothingToUpdate):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "No fields to update", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidAgreementID),
		errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, usecase.ErrInvalidSlug),
		errors.Is(err, entities.ErrInvalidAgreementInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, err error) {
	appErr := mapAgreementError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func statusNames(list []entities.AgreementStatus) []string {
	out := make([]string, len(list))
	for i, s := range list {
		out[i] = string(s)
	}
	return out
}
