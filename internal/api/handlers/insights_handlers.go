package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stockgame-service/stockgame_service/internal/domain/services/analytics"
)

// GetInsights returns cross-player records: best and worst days,
// streaks, activity, volatility extremes and peak reversals.
func (h *Handlers) GetInsights(c *gin.Context) {
	players, err := h.dataset.AllPlayersData(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, analytics.BuildInsights(players, h.dataset.Baseline()))
}
