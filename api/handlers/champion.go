package handlers

import (
	"errors"
	"net/http"

	"nocslol/api/filters"
	championrepo "nocslol/api/repositories/champion"
	championservice "nocslol/api/services/champion"
	triviaservice "nocslol/api/services/trivia"
	"nocslol/pkg/config"

	"github.com/gin-gonic/gin"
)

// Champion handler, also serving the daily trivia.
type ChampionHandler struct {
	championService *championservice.ChampionService
	triviaService   *triviaservice.TriviaService
}

type ChampionHandlerDependencies struct {
	ChampionService *championservice.ChampionService
	TriviaService   *triviaservice.TriviaService
}

// Create a new instance of the champion handler.
func NewChampionHandler(deps *ChampionHandlerDependencies) *ChampionHandler {
	return &ChampionHandler{
		championService: deps.ChampionService,
		triviaService:   deps.TriviaService,
	}
}

// Handler for listing the champion database.
func (h *ChampionHandler) GetChampions(c *gin.Context) {
	champions, err := h.championService.ListChampions(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "couldn't list the champions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": champions})
}

// Handler for one champion mechanics sheet.
func (h *ChampionHandler) GetChampion(c *gin.Context) {
	var up filters.ChampionURIParams
	if err := c.ShouldBindUri(&up); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	champion, err := h.championService.GetChampion(c.Request.Context(), up.ChampionId)
	if err != nil {
		if errors.Is(err, championrepo.ErrChampionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "champion not found"})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": "couldn't get the champion"})
		return
	}

	c.JSON(http.StatusOK, champion)
}

// Handler for the multi-champion danger analysis.
func (h *ChampionHandler) GetChampionAnalysis(c *gin.Context) {
	var qp filters.ChampionAnalysisQueryParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	names := qp.Names()
	if len(names) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no champion names provided"})
		return
	}

	analyses, err := h.championService.AnalyzeChampions(c.Request.Context(), names)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "couldn't analyze the champions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": analyses})
}

// Handler for moderator-applied ability annotation corrections.
// Disabled entirely when no admin token is configured.
func (h *ChampionHandler) PutChampionAbility(c *gin.Context) {
	if config.Admin.Token == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "ability corrections are disabled"})
		return
	}

	if c.GetHeader("X-Admin-Token") != config.Admin.Token {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid admin token"})
		return
	}

	var up filters.ChampionURIParams
	if err := c.ShouldBindUri(&up); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var form filters.AbilityCorrectionForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	champion, err := h.championService.UpsertAbility(c.Request.Context(), up.ChampionId, &form)
	if err != nil {
		if errors.Is(err, championrepo.ErrChampionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "champion not found"})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": "couldn't apply the correction"})
		return
	}

	c.JSON(http.StatusOK, champion)
}

// Handler for the daily trivia.
func (h *ChampionHandler) GetDailyTrivia(c *gin.Context) {
	trivia, err := h.triviaService.DailyTrivia(c.Request.Context())
	if err != nil {
		if errors.Is(err, triviaservice.ErrNoTriviaAvailable) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no trivia available"})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": "couldn't build the daily trivia"})
		return
	}

	c.JSON(http.StatusOK, trivia)
}
