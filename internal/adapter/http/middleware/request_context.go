package middleware

import (
	"log"
	"net/http"
	"strings"

	"quotelock/internal/domain/entities"
	"quotelock/internal/usecase"
	"quotelock/pkg"

	"github.com/gin-gonic/gin"
)

const (
	DefaultUserIDHeader   = "X-User-ID"
	DefaultUserPlanHeader = "X-User-Plan"
	userIDKey             = "quotelock.user_id"
	userPlanKey           = "quotelock.user_plan"
)

var errMissingUser = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)

// RequestContext stores the caller's IP and user agent on the request context so audit
// events can carry them.
func RequestContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		rc := entities.RequestContext{}
		if ip := ClientIP(c); ip != "" {
			rc.IPAddress = &ip
		}
		if ua := c.Request.UserAgent(); ua != "" {
			rc.UserAgent = &ua
		}
		c.Request = c.Request.WithContext(usecase.WithRequestContext(c.Request.Context(), rc))
		c.Next()
	}
}

// ClientIP resolves the caller's address through the engine's trusted proxies, falling
// back to the connection's remote address.
func ClientIP(c *gin.Context) string {
	return c.ClientIP()
}

// RequireUser rejects requests without an authenticated user id header.
func RequireUser(header string) gin.HandlerFunc {
	if header == "" {
		header = DefaultUserIDHeader
	}
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(header))
		if userID == "" {
			c.AbortWithStatusJSON(errMissingUser.HTTPStatus, errMissingUser.ToHTTPError())
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the id stored by RequireUser.
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

// ResolvePlan reads the caller's subscription plan set by the authenticating proxy.
// Missing or unknown values leave the plan empty so the use case applies its default.
func ResolvePlan(header string) gin.HandlerFunc {
	if header == "" {
		header = DefaultUserPlanHeader
	}
	return func(c *gin.Context) {
		if raw := c.GetHeader(header); raw != "" {
			if plan, ok := entities.ParseUserPlan(raw); ok {
				c.Set(userPlanKey, plan)
			} else {
				log.Printf("[http][middleware] unknown plan header=%s value=%q", header, raw)
			}
		}
		c.Next()
	}
}

// UserPlan returns the plan stored by ResolvePlan, or "" when none was sent.
func UserPlan(c *gin.Context) entities.UserPlan {
	if v, ok := c.Get(userPlanKey); ok {
		if plan, ok := v.(entities.UserPlan); ok {
			return plan
		}
	}
	return ""
}
