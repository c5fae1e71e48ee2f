package handlers

import (
	"bytes"
	"errors"
	"net/http"

	"nocslol/api/filters"
	overlayrepo "nocslol/api/repositories/overlay"
	overlayservice "nocslol/api/services/overlay"
	statsservice "nocslol/api/services/stats"

	"github.com/gin-gonic/gin"
)

// Overlay handler for the stored configs and the OBS browser source page.
type OverlayHandler struct {
	overlayService *overlayservice.OverlayService
	statsService   *statsservice.StatsService
}

type OverlayHandlerDependencies struct {
	OverlayService *overlayservice.OverlayService
	StatsService   *statsservice.StatsService
}

// Create a new instance of the overlay handler.
func NewOverlayHandler(deps *OverlayHandlerDependencies) *OverlayHandler {
	return &OverlayHandler{
		overlayService: deps.OverlayService,
		statsService:   deps.StatsService,
	}
}

// Handler for creating or replacing an overlay configuration.
func (h *OverlayHandler) PutOverlayConfig(c *gin.Context) {
	var form filters.OverlayConfigForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	config, err := h.overlayService.UpsertConfig(c.Request.Context(), &form)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "couldn't save the overlay config"})
		return
	}

	c.JSON(http.StatusOK, config)
}

// Handler for listing every stored overlay configuration.
func (h *OverlayHandler) GetOverlayConfigs(c *gin.Context) {
	configs, err := h.overlayService.ListConfigs(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "couldn't list the overlay configs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": configs})
}

// Handler for reading one overlay configuration.
func (h *OverlayHandler) GetOverlayConfig(c *gin.Context) {
	var up filters.OverlayURIParams
	if err := c.ShouldBindUri(&up); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	config, err := h.overlayService.GetConfig(c.Request.Context(), up.OverlayId)
	if err != nil {
		if errors.Is(err, overlayrepo.ErrOverlayNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "overlay not found"})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": "couldn't get the overlay config"})
		return
	}

	c.JSON(http.StatusOK, config)
}

// Handler for the rendered overlay page used as an OBS browser source.
// The page always renders: when the stats lookup fails the placeholder
// payload keeps the stream overlay from going blank.
func (h *OverlayHandler) GetOverlayPage(c *gin.Context) {
	var up filters.OverlayURIParams
	if err := c.ShouldBindUri(&up); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	config, err := h.overlayService.GetConfig(c.Request.Context(), up.OverlayId)
	if err != nil {
		if errors.Is(err, overlayrepo.ErrOverlayNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "overlay not found"})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": "couldn't get the overlay config"})
		return
	}

	filter, err := filters.NewOverlayStatsFilter(&filters.OverlayStatsQueryParams{
		Summoner:   config.SummonerName,
		Region:     config.Region,
		TimeFilter: config.TimeFilter,
	})
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "stored summoner name is invalid"})
		return
	}

	stats, err := h.statsService.GetOverlayStats(c.Request.Context(), filter)
	if err != nil {
		stats = statsservice.EmptyOverlayStats(filter)
	}

	var page bytes.Buffer
	if err := h.overlayService.Render(&page, config, stats); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "couldn't render the overlay"})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", page.Bytes())
}
