package modules

import (
	"nocslol/api/handlers"
	championservice "nocslol/api/services/champion"
	triviaservice "nocslol/api/services/trivia"
)

func initializeChampionHandler(deps *ModuleDependencies) *handlers.ChampionHandler {
	championService := championservice.NewChampionService(&championservice.ChampionServiceDeps{
		DB:       deps.DB,
		MemCache: deps.MemCache,
		Versions: deps.Versions,
	})

	triviaService := triviaservice.NewTriviaService(&triviaservice.TriviaServiceDeps{
		DB:       deps.DB,
		MemCache: deps.MemCache,
	})

	return handlers.NewChampionHandler(&handlers.ChampionHandlerDependencies{
		ChampionService: championService,
		TriviaService:   triviaService,
	})
}
