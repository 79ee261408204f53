package handler

import (
	"boltcard-gateway/internal/adapter/http/middleware"
	redisStore "boltcard-gateway/internal/adapter/storage/redis"
	"boltcard-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	WithdrawSvc     ports.WithdrawService
	RegistrationSvc ports.RegistrationService
	TopupSvc        ports.TopupService
	CardAdminSvc    ports.CardAdminService
	TokenSvc        ports.TokenService
	RateLimitStore  *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers  []ports.HealthChecker
	BaseURL         string
	Logger          zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string, lnurl bool) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, lnurl, deps.Logger)
	}

	// --- LNURL protocol routes (no auth; the SUN message is the credential) ---
	lnurlwHandler := NewLNURLWHandler(deps.WithdrawSvc, deps.BaseURL, deps.Logger)
	registrationHandler := NewRegistrationHandler(deps.RegistrationSvc)
	ln := r.Group("/ln")
	{
		ln.GET("/withdraw", rl("ln_withdraw", true), lnurlwHandler.Tap)
		ln.GET("/withdraw/cb", rl("ln_callback", true), lnurlwHandler.Callback)
		ln.POST("/registrations/:id", rl("ln_register", false), registrationHandler.Complete)
	}

	// --- JWT-authenticated routes (card owner API) ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	cardHandler := NewCardHandler(deps.CardAdminSvc, deps.TopupSvc)
	settlementHandler := NewSettlementHandler(deps.TopupSvc, deps.Logger)

	v1 := r.Group("/api/v1")

	registrations := v1.Group("/registrations", jwtAuth)
	{
		registrations.POST("", rl("owner_api_write", false), registrationHandler.Begin)
	}

	cards := v1.Group("/cards", jwtAuth)
	{
		cards.GET("/:id", rl("owner_api", false), cardHandler.Get)
		cards.GET("/:id/transactions", rl("owner_api", false), cardHandler.ListLedger)
		cards.POST("/:id/disable", rl("owner_api_write", false), cardHandler.Disable)
		cards.POST("/:id/wipe", rl("owner_api_write", false), cardHandler.Wipe)
		cards.POST("/:id/topups", rl("owner_api_write", false), cardHandler.CreateTopup)
	}

	// Settlement notifications come from the payment provider, not owners.
	v1.POST("/topups/settlement", rl("settlement", false), settlementHandler.Confirm)

	return r
}
