package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListPlayers returns the roster derived from the leaderboard.
func (h *Handlers) ListPlayers(c *gin.Context) {
	players, err := h.dataset.Players(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"players": players,
		"count":   len(players),
	})
}

// GetPlayer returns one player's full bundle: time series, holdings,
// transactions and derived statistics.
func (h *Handlers) GetPlayer(c *gin.Context) {
	ctx := c.Request.Context()
	slug := c.Param("slug")

	player, err := h.dataset.PlayerBySlug(ctx, slug)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	if player == nil {
		respondPlayerNotFound(c, slug)
		return
	}

	data, err := h.dataset.PlayerData(ctx, player.Name)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

// GetPlayerPerformance returns one player's net-worth time series.
func (h *Handlers) GetPlayerPerformance(c *gin.Context) {
	ctx := c.Request.Context()
	slug := c.Param("slug")

	player, err := h.dataset.PlayerBySlug(ctx, slug)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	if player == nil {
		respondPlayerNotFound(c, slug)
		return
	}

	points, err := h.dataset.PlayerPerformance(ctx, player.Name)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"player": player,
		"points": points,
	})
}

// GetAllPerformance returns every player's time series keyed by name.
func (h *Handlers) GetAllPerformance(c *gin.Context) {
	series, err := h.dataset.AllPlayersPerformance(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"series": series})
}
