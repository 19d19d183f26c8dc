package api

import (
	"net/http"

	"github.com/ericogr/laro-arcade/internal/constants"
	"github.com/ericogr/laro-arcade/internal/engine"
	"github.com/ericogr/laro-arcade/internal/logging"
	"github.com/ericogr/laro-arcade/internal/service"
	"github.com/gin-gonic/gin"
)

// ListGames returns the minigame catalog.
func (h *GameHandler) ListGames(c *gin.Context) {
	c.JSON(http.StatusOK, service.Catalog())
}

// ListLeaderboard returns the best run per player for one game.
func (h *GameHandler) ListLeaderboard(c *gin.Context) {
	kind, err := engine.ParseKind(c.Param("game"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrUnknownGame})
		return
	}
	limit := service.ClampLimit(parseLimit(c.Query("limit"), service.DefaultLeaderboardLimit))
	entries, err := service.Leaderboard(h.repo, kind, limit)
	if err != nil {
		logging.Error("leaderboard query failed", err, logging.Fields{constants.LogFieldGame: string(kind)})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchLeaderboard})
		return
	}
	c.JSON(http.StatusOK, gin.H{"game": kind, "entries": entries})
}

// GetPlayerStats returns the signed-in player's per-game aggregates.
func (h *GameHandler) GetPlayerStats(c *gin.Context) {
	stats, err := service.PlayerStats(h.repo, contextUID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchStats})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ListScores returns the signed-in player's latest runs.
func (h *GameHandler) ListScores(c *gin.Context) {
	limit := service.ClampLimit(parseLimit(c.Query("limit"), service.DefaultLeaderboardLimit))
	scores, err := h.repo.GetRecentScores(contextUID(c), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchScores})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(scores)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchScores})
		return
	}
	c.JSON(http.StatusOK, out)
}

// ListRooms returns the live play rooms.
func (h *GameHandler) ListRooms(c *gin.Context) {
	c.JSON(http.StatusOK, h.rooms.List())
}
