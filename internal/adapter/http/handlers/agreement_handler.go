package handlers

import (
	"log"
	"net/http"
	"strings"

	request "quotelock/internal/adapter/http/dto/request"
	response "quotelock/internal/adapter/http/dto/response"
	"quotelock/internal/adapter/http/middleware"
	"quotelock/internal/domain/entities"
	"quotelock/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AgreementHandler serves the contractor's agreement routes. Every route expects the
// authenticated user id set by middleware.RequireUser.
type AgreementHandler struct {
	agreements usecase.IAgreementUseCase
	status     usecase.IAgreementStatusUseCase
	audit      usecase.IAuditLogUseCase
}

func NewAgreementHandler(agreements usecase.IAgreementUseCase, status usecase.IAgreementStatusUseCase, audit usecase.IAuditLogUseCase) *AgreementHandler {
	return &AgreementHandler{agreements: agreements, status: status, audit: audit}
}

// CreateAgreement godoc
// @Summary  Create a draft agreement
// @Tags     agreements
// @Accept   json
// @Produce  json
// @Param    X-User-ID header string true "Contractor id"
// @Param    body body request.CreateAgreementRequest true "Agreement"
// @Param    X-User-Plan header string false "FREE, SOLO or BUSINESS"
// @Success  201 {object} response.AgreementResult
// @Failure  400 {object} pkg.HTTPError
// @Failure  403 {object} pkg.HTTPError
// @Router   /agreements [post]
func (h *AgreementHandler) CreateAgreement(c *gin.Context) {
	var payload request.CreateAgreementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	in := payload.ToInput()
	in.Plan = middleware.UserPlan(c)
	agreement, err := h.agreements.Create(c.Request.Context(), middleware.UserID(c), in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.AgreementResult{Success: true, Agreement: response.FromAgreement(agreement)})
}

// ListAgreements godoc
// @Summary  List the contractor's agreements, newest first
// @Tags     agreements
// @Produce  json
// @Param    X-User-ID header string true "Contractor id"
// @Param    status query string false "Status filter"
// @Success  200 {object} response.AgreementListResponse
// @Router   /agreements [get]
func (h *AgreementHandler) ListAgreements(c *gin.Context) {
	var filter entities.AgreementStatus
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		s, ok := entities.ParseAgreementStatus(raw)
		if !ok {
			c.JSON(errInvalidStatus.HTTPStatus, errInvalidStatus.ToHTTPError())
			return
		}
		filter = s
	}

	list, err := h.agreements.ListForOwner(c.Request.Context(), middleware.UserID(c), filter)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.AgreementListResponse{Success: true, Agreements: response.FromAgreements(list)})
}

// GetAgreement godoc
// @Summary  Agreement detail with allowed transitions and recent timeline
// @Tags     agreements
// @Produce  json
// @Param    X-User-ID header string true "Contractor id"
// @Param    id path string true "Agreement id"
// @Success  200 {object} response.AgreementDetailResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /agreements/{id} [get]
func (h *AgreementHandler) GetAgreement(c *gin.Context) {
	agreement, ok := h.owned(c)
	if !ok {
		return
	}

	events, err := h.audit.ListForAgreement(c.Request.Context(), agreement.ID, usecase.DisplayTimelineLimit)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.AgreementDetailResponse{
		Success:            true,
		Agreement:          response.FromAgreement(agreement),
		AllowedTransitions: response.FromAllowedTransitions(agreement.Status),
		Events:             response.FromAuditEvents(events),
	})
}

// UpdateAgreement godoc
// @Summary  Update agreement fields; commercial terms are rejected once locked
// @Tags     agreements
// @Accept   json
// @Produce  json
// @Param    X-User-ID header string true "Contractor id"
// @Param    id path string true "Agreement id"
// @Param    body body request.UpdateAgreementRequest true "Changes"
// @Success  200 {object} response.AgreementResult
// @Failure  409 {object} pkg.HTTPError
// @Router   /agreements/{id} [patch]
func (h *AgreementHandler) UpdateAgreement(c *gin.Context) {
	var payload request.UpdateAgreementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	agreement, ok := h.owned(c)
	if !ok {
		return
	}

	updated, err := h.agreements.UpdateSafely(c.Request.Context(), agreement.ID, payload.ToChanges(), entities.AuditActorContractor)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.AgreementResult{Success: true, Agreement: response.FromAgreement(updated)})
}

// TransitionStatus godoc
// @Summary  Move the agreement to another status
// @Tags     agreements
// @Accept   json
// @Produce  json
// @Param    X-User-ID header string true "Contractor id"
// @Param    id path string true "Agreement id"
// @Param    body body request.TransitionStatusRequest true "Target status"
// @Success  200 {object} response.AgreementResult
// @Failure  409 {object} pkg.HTTPError
// @Router   /agreements/{id}/status [post]
func (h *AgreementHandler) TransitionStatus(c *gin.Context) {
	var payload request.TransitionStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	to, valid := entities.ParseAgreementStatus(payload.Status)
	if !valid {
		c.JSON(errInvalidStatus.HTTPStatus, errInvalidStatus.ToHTTPError())
		return
	}
	agreement, ok := h.owned(c)
	if !ok {
		return
	}

	updated, err := h.status.Transition(c.Request.Context(), agreement.ID, to, entities.AuditActorContractor, payload.Metadata)
	if err != nil {
		log.Printf("[agreement][handler] transition rejected agreement_id=%s to=%s err=%v", agreement.ID, to, err)
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.AgreementResult{Success: true, Agreement: response.FromAgreement(updated)})
}

// RevertStatus godoc
// @Summary  Step the agreement back one status with a reason
// @Tags     agreements
// @Accept   json
// @Produce  json
// @Param    X-User-ID header string true "Contractor id"
// @Param    id path string true "Agreement id"
// @Param    body body request.RevertStatusRequest true "Target status and reason"
// @Success  200 {object} response.AgreementResult
// @Failure  409 {object} pkg.HTTPError
// @Router   /agreements/{id}/revert [post]
func (h *AgreementHandler) RevertStatus(c *gin.Context) {
	var payload request.RevertStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	to, valid := entities.ParseAgreementStatus(payload.Status)
	if !valid {
		c.JSON(errInvalidStatus.HTTPStatus, errInvalidStatus.ToHTTPError())
		return
	}
	agreement, ok := h.owned(c)
	if !ok {
		return
	}

	updated, err := h.status.Revert(c.Request.Context(), agreement.ID, to, entities.AuditActorContractor, payload.Reason)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.AgreementResult{Success: true, Agreement: response.FromAgreement(updated)})
}

// RecordCorrection godoc
// @Summary  Record a correction note on the timeline
// @Tags     agreements
// @Accept   json
// @Produce  json
// @Param    X-User-ID header string true "Contractor id"
// @Param    id path string true "Agreement id"
// @Param    body body request.CorrectionRequest true "Correction"
// @Success  201 {object} response.EventResult
// @Router   /agreements/{id}/corrections [post]
func (h *AgreementHandler) RecordCorrection(c *gin.Context) {
	var payload request.CorrectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	agreement, ok := h.owned(c)
	if !ok {
		return
	}

	event, err := h.status.RecordCorrection(c.Request.Context(), agreement.ID, entities.AuditActorContractor, payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.EventResult{Success: true, Event: response.FromAuditEvent(event)})
}

// ListEvents godoc
// @Summary  Full agreement timeline, oldest first
// @Tags     agreements
// @Produce  json
// @Param    X-User-ID header string true "Contractor id"
// @Param    id path string true "Agreement id"
// @Success  200 {object} response.EventListResponse
// @Router   /agreements/{id}/events [get]
func (h *AgreementHandler) ListEvents(c *gin.Context) {
	agreement, ok := h.owned(c)
	if !ok {
		return
	}

	events, err := h.audit.ListForAgreement(c.Request.Context(), agreement.ID, 0)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.EventListResponse{Success: true, Events: response.FromAuditEvents(events)})
}

// GetUsage godoc
// @Summary  Agreements created this month against the plan limit
// @Tags     agreements
// @Produce  json
// @Param    X-User-ID header string true "Contractor id"
// @Param    X-User-Plan header string false "FREE, SOLO or BUSINESS"
// @Success  200 {object} response.UsageResponse
// @Router   /usage [get]
func (h *AgreementHandler) GetUsage(c *gin.Context) {
	summary, err := h.agreements.MonthlyUsage(c.Request.Context(), middleware.UserID(c), middleware.UserPlan(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromUsageSummary(summary))
}

// owned loads the agreement named in the path and writes the error response when the
// caller does not own it.
func (h *AgreementHandler) owned(c *gin.Context) (entities.Agreement, bool) {
	agreement, err := h.agreements.GetForOwner(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return entities.Agreement{}, false
	}
	return agreement, true
}
