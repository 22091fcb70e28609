package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"qrpay/internal/adapter/http/middleware"
	"qrpay/internal/core/ports"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	SessionSvc     ports.SessionService
	Queue          ports.TransactionQueue
	Balances       ports.BalanceCache
	Network        ports.ConnectivityMonitor
	HealthCheckers []ports.HealthChecker
	MaxBodyBytes   int64 // <= 0 falls back to 64 KiB
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	maxBody := deps.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = 64 << 10
	}

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(maxBody))

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	sessionHandler := NewSessionHandler(deps.SessionSvc)
	queueHandler := NewQueueHandler(deps.Queue)
	deviceHandler := NewDeviceHandler(deps.Balances, deps.Network)

	// API v1 routes
	v1 := r.Group("/api/v1")

	payments := v1.Group("/payments")
	{
		payments.POST("", sessionHandler.CreatePayment)
		payments.GET("/:id", sessionHandler.GetSession)
	}

	v1.POST("/scan", sessionHandler.Scan)

	queue := v1.Group("/queue")
	{
		queue.GET("", queueHandler.List)
		queue.POST("/drain", queueHandler.Drain)
		queue.POST("/clear", queueHandler.Clear)
	}

	v1.GET("/balance", deviceHandler.GetBalance)
	v1.PUT("/balance", deviceHandler.UpdateBalance)
	v1.GET("/connectivity", deviceHandler.GetConnectivity)
	v1.POST("/connectivity", deviceHandler.SetConnectivity)

	return r
}
