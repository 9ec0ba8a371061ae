package handler

import (
	"receipt-recovery-service/internal/adapter/http/middleware"
	"receipt-recovery-service/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	RecoverySvc    ports.RecoveryService
	HealthCheckers []ports.HealthChecker
	MaxPageSize    int
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

	// Health check (deep — verifies PostgreSQL, Redis and Kafka)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	recoveryHandler := NewRecoveryHandler(deps.RecoverySvc, deps.MaxPageSize)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/receipts/:event_id/recover", recoveryHandler.Recover)
		v1.POST("/recovery/batch", recoveryHandler.RecoverBatch)
	}

	return r
}
