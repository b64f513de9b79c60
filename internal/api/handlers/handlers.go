package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/stockgame-service/stockgame_service/internal/domain/services/dataset"
	"github.com/stockgame-service/stockgame_service/internal/infrastructure/config"
	"github.com/stockgame-service/stockgame_service/pkg/logger"
)

// Handlers bundles the HTTP handlers with their dependencies.
type Handlers struct {
	dataset *dataset.Service
	config  *config.Config
	logger  *logger.Logger
}

// New creates the handler set.
func New(ds *dataset.Service, cfg *config.Config, log *logger.Logger) *Handlers {
	return &Handlers{
		dataset: ds,
		config:  cfg,
		logger:  log,
	}
}

// Metrics exposes Prometheus metrics
func Metrics() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
