package handler

import (
	"fundme-simulator/config"
	"fundme-simulator/internal/adapter/http/middleware"
	"fundme-simulator/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	FundMeSvc      ports.FundMeService
	RateLimiter    middleware.Limiter // nil = rate limiting disabled
	RateLimit      config.RateLimitConfig
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	rules := middleware.RateLimitRules(deps.RateLimit)

	// rl returns the limiter for group, or a no-op when limiting is off.
	rl := func(group string) gin.HandlerFunc {
		rule, ok := rules[group]
		if deps.RateLimiter == nil || !ok || rule.Limit <= 0 {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimiter, group, rule, deps.Logger)
	}

	h := NewFundMeHandler(deps.FundMeSvc)
	fundme := r.Group("/api/v1/fundme")
	{
		fundme.GET("", rl(middleware.GroupRead), h.GetState)
		fundme.POST("/connect", rl(middleware.GroupWrite), h.Connect)
		fundme.PUT("/amount", rl(middleware.GroupWrite), h.SetAmount)
		fundme.POST("/fund", rl(middleware.GroupWrite), h.Fund)
		fundme.POST("/withdraw", rl(middleware.GroupWrite), h.Withdraw)
	}

	return r
}
