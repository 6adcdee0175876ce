package routes

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	_ "quotelock/docs"
	"quotelock/internal/adapter/http/handlers"
	"quotelock/internal/adapter/http/middleware"
	"quotelock/internal/adapter/persistence"
	"quotelock/internal/infrastructure/metrics"
	"quotelock/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

const DefaultPort = 8080

// Options configures the routes independently of the environment.
type Options struct {
	UserIDHeader    string
	UserPlanHeader  string
	RateLimitMax    int
	RateLimitWindow time.Duration
	// TrustedProxies limits which peers may set X-Forwarded-For. Empty keeps gin's default.
	TrustedProxies []string
}

// Run will start the server
func Run() {
	metrics.Register()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	repos, err := persistence.NewRepositories(context.Background(), getenvDefault("STORAGE_DRIVER", persistence.DriverDynamoDB))
	if err != nil {
		log.Fatalf("Failed to initialise storage: %v", err.Error())
	}
	Register(router, repos, OptionsFromEnv())

	port := getenvDefault("PORT", strconv.Itoa(DefaultPort))
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// Register wires use cases and handlers onto engine under /v1.
func Register(engine *gin.Engine, repos persistence.Repositories, opts Options) {
	if len(opts.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(opts.TrustedProxies); err != nil {
			log.Printf("[routes][config] ignoring trusted proxies %v: %v", opts.TrustedProxies, err)
		}
	}

	auditUseCase := usecase.NewAuditLogUseCase(repos.AuditEvents)
	statusUseCase := usecase.NewAgreementStatusUseCase(repos.Agreements, auditUseCase)
	agreementUseCase := usecase.NewAgreementUseCase(repos.Agreements, repos.Usage)
	publicUseCase := usecase.NewPublicAgreementUseCase(repos.Agreements, auditUseCase, statusUseCase)
	rateLimitUseCase := usecase.NewRateLimitUseCase(repos.RateCounters, opts.RateLimitMax, opts.RateLimitWindow)

	agreementHandler := handlers.NewAgreementHandler(agreementUseCase, statusUseCase, auditUseCase)
	publicHandler := handlers.NewPublicAgreementHandler(publicUseCase, rateLimitUseCase)

	v1 := engine.Group("/v1")
	v1.Use(middleware.RequestContext())
	addPingRoutes(v1)
	addAgreementRoutes(v1, agreementHandler, opts.UserIDHeader, opts.UserPlanHeader)
	addPublicRoutes(v1, publicHandler)
}

func OptionsFromEnv() Options {
	return Options{
		UserIDHeader:    getenvDefault("USER_ID_HEADER", middleware.DefaultUserIDHeader),
		UserPlanHeader:  getenvDefault("USER_PLAN_HEADER", middleware.DefaultUserPlanHeader),
		RateLimitMax:    getenvInt("RATE_LIMIT_MAX_REQUESTS", usecase.DefaultRateLimitMaxRequests),
		RateLimitWindow: time.Duration(getenvInt("RATE_LIMIT_WINDOW_SECONDS", int(usecase.DefaultRateLimitWindow/time.Second))) * time.Second,
		TrustedProxies:  getenvList("TRUSTED_PROXIES"),
	}
}

func setMiddlewares(engine *gin.Engine) {
	engine.Use(gin.Logger())
	engine.Use(middleware.Metrics())
	engine.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func getenvInt(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		log.Printf("[routes][config] ignoring invalid %s=%q", key, raw)
		return def
	}
	return n
}
