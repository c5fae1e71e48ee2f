package modules

import (
	"nocslol/api/handlers"
	historyservice "nocslol/api/services/history"
	livegameservice "nocslol/api/services/livegame"
	matchfetcher "nocslol/fetcher/data/match"
	spectatorfetcher "nocslol/fetcher/data/spectator"
	"nocslol/pkg/regions"
)

func initializeLiveGameHandler(deps *ModuleDependencies) *handlers.LiveGameHandler {
	liveGameService := livegameservice.NewLiveGameService(&livegameservice.LiveGameServiceDeps{
		DB:        deps.DB,
		Spectator: spectatorfetcher.CreateSpectatorFetcher(deps.Limiter),
	})

	historyService := historyservice.NewHistoryService(func(routing regions.Routing, puuid string) matchfetcher.Source {
		return matchfetcher.CreateRiotSource(deps.Limiter, routing, puuid)
	}, deps.Logger)

	return handlers.NewLiveGameHandler(&handlers.LiveGameHandlerDependencies{
		LiveGameService: liveGameService,
		HistoryService:  historyService,
	})
}
