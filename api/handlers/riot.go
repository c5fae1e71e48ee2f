package handlers

import (
	"errors"
	"net/http"

	"nocslol/api/filters"
	riotservice "nocslol/api/services/riot"
	accountfetcher "nocslol/fetcher/data/account"
	summonerfetcher "nocslol/fetcher/data/summoner"
	"nocslol/pkg/regions"

	"github.com/gin-gonic/gin"
)

// Riot lookup handler: thin adapters over the typed riot clients for the
// site UI.
type RiotHandler struct {
	riotService *riotservice.RiotService
}

type RiotHandlerDependencies struct {
	RiotService *riotservice.RiotService
}

// Create a new instance of the riot lookup handler.
func NewRiotHandler(deps *RiotHandlerDependencies) *RiotHandler {
	return &RiotHandler{
		riotService: deps.RiotService,
	}
}

// Handler for the riot id account lookup.
func (h *RiotHandler) GetAccount(c *gin.Context) {
	var qp filters.RiotAccountQueryParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	gameName, tagLine, err := qp.RiotId()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, err := h.riotService.GetAccount(c.Request.Context(), gameName, tagLine)
	if err != nil {
		if errors.Is(err, accountfetcher.ErrAccountNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
			return
		}

		c.JSON(http.StatusBadGateway, gin.H{"error": "couldn't fetch the account"})
		return
	}

	c.JSON(http.StatusOK, account)
}

// Handler for the summoner lookup.
func (h *RiotHandler) GetSummoner(c *gin.Context) {
	var qp filters.RiotPlayerQueryParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !regions.IsValidPlatform(qp.Region) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown region"})
		return
	}

	summoner, err := h.riotService.GetSummoner(c.Request.Context(), qp.Region, qp.Puuid)
	if err != nil {
		if errors.Is(err, summonerfetcher.ErrSummonerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "summoner not found"})
			return
		}

		c.JSON(http.StatusBadGateway, gin.H{"error": "couldn't fetch the summoner"})
		return
	}

	c.JSON(http.StatusOK, summoner)
}

// Handler for the league entries lookup.
func (h *RiotHandler) GetLeagueEntries(c *gin.Context) {
	var qp filters.RiotLeagueQueryParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !regions.IsValidPlatform(qp.Region) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown region"})
		return
	}

	entries, err := h.riotService.GetLeagueEntries(c.Request.Context(), qp.Region, qp.SummonerId)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "couldn't fetch the league entries"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": entries})
}

// Handler for the top champion masteries lookup.
func (h *RiotHandler) GetTopMasteries(c *gin.Context) {
	var qp filters.RiotMasteryQueryParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !regions.IsValidPlatform(qp.Region) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown region"})
		return
	}

	masteries, err := h.riotService.GetTopMasteries(c.Request.Context(), qp.Region, qp.Puuid, qp.Count)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "couldn't fetch the masteries"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": masteries})
}

// Handler for the challenge progress lookup.
func (h *RiotHandler) GetChallenges(c *gin.Context) {
	var qp filters.RiotPlayerQueryParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !regions.IsValidPlatform(qp.Region) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown region"})
		return
	}

	challenges, err := h.riotService.GetChallenges(c.Request.Context(), qp.Region, qp.Puuid)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "couldn't fetch the challenges"})
		return
	}

	if challenges == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no challenge data"})
		return
	}

	c.JSON(http.StatusOK, challenges)
}
