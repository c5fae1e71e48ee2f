package modules

import (
	"nocslol/api/handlers"
	overlayservice "nocslol/api/services/overlay"
	statsservice "nocslol/api/services/stats"
)

func initializeOverlayHandler(deps *ModuleDependencies, statsService *statsservice.StatsService) *handlers.OverlayHandler {
	overlayService := overlayservice.NewOverlayService(deps.DB)

	return handlers.NewOverlayHandler(&handlers.OverlayHandlerDependencies{
		OverlayService: overlayService,
		StatsService:   statsService,
	})
}
