package routes

import (
	"quotelock/internal/adapter/http/handlers"
	"quotelock/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathAgreements = "/agreements"
	PathPublic     = "/q"
	PathUsage      = "/usage"
)

func addAgreementRoutes(rg *gin.RouterGroup, h *handlers.AgreementHandler, userIDHeader, planHeader string) {
	owner := []gin.HandlerFunc{middleware.RequireUser(userIDHeader), middleware.ResolvePlan(planHeader)}
	rg.GET(PathUsage, append(owner, h.GetUsage)...)

	agreements := rg.Group(PathAgreements, owner...)
	{
		agreements.POST("", h.CreateAgreement)
		agreements.GET("", h.ListAgreements)
		agreements.GET("/:id", h.GetAgreement)
		agreements.PATCH("/:id", h.UpdateAgreement)
		agreements.POST("/:id/status", h.TransitionStatus)
		agreements.POST("/:id/revert", h.RevertStatus)
		agreements.POST("/:id/corrections", h.RecordCorrection)
		agreements.GET("/:id/events", h.ListEvents)
	}
}

func addPublicRoutes(rg *gin.RouterGroup, h *handlers.PublicAgreementHandler) {
	public := rg.Group(PathPublic)
	{
		public.GET("/:public_slug", h.GetPublicAgreement)
		public.POST("/:public_slug/accept", h.AcceptAgreement)
		public.POST("/:public_slug/deposit", h.ConfirmDeposit)
	}
}
