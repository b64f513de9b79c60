package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/stockgame-service/stockgame_service/internal/api/handlers"
	"github.com/stockgame-service/stockgame_service/internal/api/middleware"
	"github.com/stockgame-service/stockgame_service/internal/domain/services/dataset"
	"github.com/stockgame-service/stockgame_service/internal/infrastructure/config"
	"github.com/stockgame-service/stockgame_service/pkg/logger"
)

// SetupRoutes configures all application routes
func SetupRoutes(cfg *config.Config, log *logger.Logger, ds *dataset.Service) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware - order matters
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	router.Use(middleware.RateLimit(cfg.Server.RateLimitPerMin))
	router.Use(middleware.SecurityHeaders())

	h := handlers.New(ds, cfg, log)

	// Health checks and operational endpoints
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
	router.GET("/live", h.Live)
	router.GET("/version", h.Version)
	router.GET("/metrics", handlers.Metrics())

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/leaderboard", h.GetLeaderboard)
		v1.GET("/players", h.ListPlayers)
		v1.GET("/players/:slug", h.GetPlayer)
		v1.GET("/players/:slug/performance", h.GetPlayerPerformance)
		v1.GET("/performance", h.GetAllPerformance)
		v1.GET("/insights", h.GetInsights)

		charts := v1.Group("/charts")
		{
			charts.GET("/frontier", h.GetFrontier)
			charts.GET("/concentration", h.GetConcentration)
			charts.GET("/ranks", h.GetRankSeries)
		}
	}

	return router
}
