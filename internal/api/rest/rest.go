package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-airdrop/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Running an airdrop moves assets; it requires authentication
		v1.POST("/airdrops", middleware.Auth(authCfg), handler.RequestAirdrop)

		// Read endpoints (public read access)
		v1.GET("/airdrops/status/:address", handler.GetStatus)
		v1.GET("/airdrops/history", handler.GetHistory)
		v1.GET("/airdrops/stats", handler.GetStats)
	}
}
