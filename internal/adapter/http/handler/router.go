package handler

import (
	"treasury-engine/internal/adapter/http/middleware"
	redisStore "treasury-engine/internal/adapter/storage/redis"
	"treasury-engine/internal/core/ports"
	"treasury-engine/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	LedgerSvc      ports.LedgerService
	LiabilitySvc   ports.LiabilityService
	AllocationSvc  ports.AllocationService
	ReconcilerSvc  ports.ReconcilerService
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Registry       *prometheus.Registry // nil = metrics endpoint disabled
	Logger         zerolog.Logger
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

	if deps.Registry != nil {
		r.GET("/metrics", gin.WrapH(metrics.Handler(deps.Registry)))
	}

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes, all service-token authenticated
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	v1 := r.Group("/api/v1", jwtAuth)

	ledgerHandler := NewLedgerHandler(deps.LedgerSvc)
	treasuryHandler := NewTreasuryHandler(deps.LiabilitySvc, deps.AllocationSvc)
	reconcileHandler := NewReconcileHandler(deps.ReconcilerSvc)

	v1.POST("/events", rl("events_write"), ledgerHandler.RecordEvent)

	users := v1.Group("/users/:user_id")
	{
		users.GET("/events", rl("reads"), ledgerHandler.ListEvents)
		users.GET("/liability", rl("reads"), treasuryHandler.GetLiability)
		users.GET("/allocation", rl("reads"), treasuryHandler.GetAllocation)
		users.POST("/allocation/confirm", rl("events_write"), treasuryHandler.ConfirmAllocation)
	}

	v1.POST("/reconcile", rl("reconcile"), reconcileHandler.TriggerRun)

	return r
}
