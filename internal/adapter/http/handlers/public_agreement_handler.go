package handlers

import (
	"errors"
	"io"
	"net/http"

	request "quotelock/internal/adapter/http/dto/request"
	response "quotelock/internal/adapter/http/dto/response"
	"quotelock/internal/adapter/http/middleware"
	"quotelock/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	actionAccept  = "accept"
	actionDeposit = "deposit"
)

// PublicAgreementHandler serves the client-facing routes behind a public slug.
type PublicAgreementHandler struct {
	public  usecase.IPublicAgreementUseCase
	limiter usecase.IRateLimitUseCase
}

func NewPublicAgreementHandler(public usecase.IPublicAgreementUseCase, limiter usecase.IRateLimitUseCase) *PublicAgreementHandler {
	return &PublicAgreementHandler{public: public, limiter: limiter}
}

// GetPublicAgreement godoc
// @Summary  Client view of an agreement
// @Tags     public
// @Produce  json
// @Param    public_slug path string true "Public slug"
// @Success  200 {object} response.PublicAgreementResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /q/{public_slug} [get]
func (h *PublicAgreementHandler) GetPublicAgreement(c *gin.Context) {
	view, err := h.public.GetPublic(c.Request.Context(), c.Param("public_slug"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPublicView(view))
}

// AcceptAgreement godoc
// @Summary  Client accepts the agreement
// @Tags     public
// @Accept   json
// @Produce  json
// @Param    public_slug path string true "Public slug"
// @Param    body body request.AcceptAgreementRequest true "Acknowledgement"
// @Success  200 {object} response.AgreementResult
// @Failure  409 {object} pkg.HTTPError
// @Failure  429 {object} pkg.HTTPError
// @Router   /q/{public_slug}/accept [post]
func (h *PublicAgreementHandler) AcceptAgreement(c *gin.Context) {
	if !h.allow(c, actionAccept) {
		return
	}
	var payload request.AcceptAgreementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	agreement, err := h.public.AcceptPublic(c.Request.Context(), c.Param("public_slug"), payload.AcknowledgedBy, payload.Email)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.AgreementResult{Success: true, Agreement: response.FromAgreement(agreement)})
}

// ConfirmDeposit godoc
// @Summary  Client confirms the deposit was sent
// @Tags     public
// @Accept   json
// @Produce  json
// @Param    public_slug path string true "Public slug"
// @Param    body body request.ConfirmDepositRequest false "Transfer reference"
// @Success  200 {object} response.AgreementResult
// @Failure  409 {object} pkg.HTTPError
// @Failure  429 {object} pkg.HTTPError
// @Router   /q/{public_slug}/deposit [post]
func (h *PublicAgreementHandler) ConfirmDeposit(c *gin.Context) {
	if !h.allow(c, actionDeposit) {
		return
	}
	var payload request.ConfirmDepositRequest
	// The body is optional.
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	agreement, err := h.public.ConfirmDepositPublic(c.Request.Context(), c.Param("public_slug"), payload.TransactionReference)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.AgreementResult{Success: true, Agreement: response.FromAgreement(agreement)})
}

func (h *PublicAgreementHandler) allow(c *gin.Context, action string) bool {
	ip := middleware.ClientIP(c)
	if ip == "" {
		ip = "unknown"
	}
	if err := h.limiter.Allow(c.Request.Context(), ip, action); err != nil {
		writeError(c, err)
		return false
	}
	return true
}
