package handlers

import (
	"errors"
	"net/http"

	"nocslol/api/filters"
	statsservice "nocslol/api/services/stats"
	accountfetcher "nocslol/fetcher/data/account"
	summonerfetcher "nocslol/fetcher/data/summoner"

	"github.com/gin-gonic/gin"
)

// Stats handler.
type StatsHandler struct {
	statsService *statsservice.StatsService
}

type StatsHandlerDependencies struct {
	StatsService *statsservice.StatsService
}

// Create a new instance of the stats handler.
func NewStatsHandler(deps *StatsHandlerDependencies) *StatsHandler {
	return &StatsHandler{
		statsService: deps.StatsService,
	}
}

// Handler for the overlay stats preview.
func (h *StatsHandler) GetOverlayStats(c *gin.Context) {
	var qp filters.OverlayStatsQueryParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter, err := filters.NewOverlayStatsFilter(&qp)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stats, err := h.statsService.GetOverlayStats(c.Request.Context(), filter)
	if err != nil {
		// The player not existing is "no data", anything else is a
		// failed upstream lookup.
		if errors.Is(err, accountfetcher.ErrAccountNotFound) ||
			errors.Is(err, summonerfetcher.ErrSummonerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "summoner not found"})
			return
		}

		c.JSON(http.StatusBadGateway, gin.H{"error": "couldn't fetch the summoner stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
