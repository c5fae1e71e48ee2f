package handlers

import (
	"errors"
	"net/http"

	"nocslol/api/filters"
	historyservice "nocslol/api/services/history"
	livegameservice "nocslol/api/services/livegame"
	spectatorfetcher "nocslol/fetcher/data/spectator"
	"nocslol/pkg/regions"

	"github.com/gin-gonic/gin"
)

// Live game handler, also serving the low CS match history.
type LiveGameHandler struct {
	liveGameService *livegameservice.LiveGameService
	historyService  *historyservice.HistoryService
}

type LiveGameHandlerDependencies struct {
	LiveGameService *livegameservice.LiveGameService
	HistoryService  *historyservice.HistoryService
}

// Create a new instance of the live game handler.
func NewLiveGameHandler(deps *LiveGameHandlerDependencies) *LiveGameHandler {
	return &LiveGameHandler{
		liveGameService: deps.LiveGameService,
		historyService:  deps.HistoryService,
	}
}

// Handler for the live game lookup.
func (h *LiveGameHandler) GetLiveGame(c *gin.Context) {
	var qp filters.LiveGameQueryParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !regions.IsValidPlatform(qp.Region) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown region"})
		return
	}

	game, err := h.liveGameService.GetLiveGame(c.Request.Context(), qp.Region, qp.Puuid)
	if err != nil {
		if errors.Is(err, spectatorfetcher.ErrNoActiveGame) {
			c.JSON(http.StatusNotFound, gin.H{"error": "player is not in a game"})
			return
		}

		c.JSON(http.StatusBadGateway, gin.H{"error": "couldn't fetch the live game"})
		return
	}

	c.JSON(http.StatusOK, game)
}

// Handler for the low creep score match history.
func (h *LiveGameHandler) GetLowCSHistory(c *gin.Context) {
	var qp filters.LowCSHistoryQueryParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	history, err := h.historyService.GetLowCSHistory(c.Request.Context(), qp.Region, qp.Puuid)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "couldn't fetch the match history"})
		return
	}

	c.JSON(http.StatusOK, history)
}
