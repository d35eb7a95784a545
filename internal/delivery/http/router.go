package http

import (
	"github.com/RomainBraquet/surfai-backend/internal/delivery/http/handler"
	"github.com/RomainBraquet/surfai-backend/internal/delivery/http/middleware"
	"github.com/gin-gonic/gin"
)

type Router struct {
	profileHandler   *handler.ProfileHandler
	recommendHandler *handler.RecommendHandler
	statsHandler     *handler.StatsHandler
	healthHandler    *handler.HealthHandler
	identity         *middleware.IdentityMiddleware
}

func NewRouter(
	profileHandler *handler.ProfileHandler,
	recommendHandler *handler.RecommendHandler,
	statsHandler *handler.StatsHandler,
	healthHandler *handler.HealthHandler,
	identity *middleware.IdentityMiddleware,
) *Router {
	return &Router{
		profileHandler:   profileHandler,
		recommendHandler: recommendHandler,
		statsHandler:     statsHandler,
		healthHandler:    healthHandler,
		identity:         identity,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.Default()

	// Health check (supports both GET and HEAD)
	router.GET("/health", r.healthHandler.Health)
	router.HEAD("/health", r.healthHandler.Health)

	// API v1
	v1 := router.Group("/api/v1")
	{
		// Profile creation carries its own id, no identity header needed
		v1.POST("/profiles", r.profileHandler.CreateProfile)

		protected := v1.Group("/profiles/me")
		protected.Use(r.identity.RequireUser())
		{
			protected.GET("", r.profileHandler.GetMyProfile)
			protected.PUT("", r.profileHandler.UpdateMyProfile)

			protected.POST("/sessions", r.profileHandler.AddSession)
			protected.GET("/sessions", r.profileHandler.ListSessions)

			protected.GET("/stats", r.statsHandler.GetStats)
			protected.POST("/recommendations", r.recommendHandler.Recommend)
		}
	}

	return router
}
