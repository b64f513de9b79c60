package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	"github.com/stockgame-service/stockgame_service/internal/domain/services/analytics"
)

// GetFrontier returns the risk/return scatter with its efficient
// frontier and the most efficient player.
func (h *Handlers) GetFrontier(c *gin.Context) {
	players, err := h.dataset.AllPlayersData(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, analytics.Frontier(analytics.RiskReturn(players)))
}

// GetConcentration ranks players by their largest single holding.
func (h *Handlers) GetConcentration(c *gin.Context) {
	players, err := h.dataset.AllPlayersData(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": analytics.Concentration(players)})
}

// GetRankSeries returns the rank-over-time series for the bump chart.
// An optional max_points query parameter bounds the number of sampled
// dates; it defaults to the configured limit.
func (h *Handlers) GetRankSeries(c *gin.Context) {
	ctx := c.Request.Context()

	maxPoints := h.config.Game.BumpMaxPoints
	if raw := c.Query("max_points"); raw != "" {
		parsed, err := cast.ToIntE(raw)
		if err != nil || parsed < 1 {
			respondBadRequest(c, "max_points must be a positive integer",
				map[string]interface{}{"max_points": raw})
			return
		}
		maxPoints = parsed
	}

	players, err := h.dataset.Players(ctx)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	performance, err := h.dataset.AllPlayersPerformance(ctx)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"series":     analytics.RankSeries(players, performance, maxPoints),
		"max_points": maxPoints,
	})
}
