package modules

import (
	"nocslol/api/handlers"
	riotservice "nocslol/api/services/riot"
	accountfetcher "nocslol/fetcher/data/account"
	challengesfetcher "nocslol/fetcher/data/challenges"
	leaguefetcher "nocslol/fetcher/data/league"
	masteryfetcher "nocslol/fetcher/data/mastery"
	summonerfetcher "nocslol/fetcher/data/summoner"
)

func initializeRiotHandler(deps *ModuleDependencies) *handlers.RiotHandler {
	riotService := riotservice.NewRiotService(&riotservice.RiotServiceDeps{
		Accounts:   accountfetcher.CreateAccountFetcher(deps.Limiter),
		Summoners:  summonerfetcher.CreateSummonerFetcher(deps.Limiter),
		Leagues:    leaguefetcher.CreateLeagueFetcher(deps.Limiter),
		Masteries:  masteryfetcher.CreateMasteryFetcher(deps.Limiter),
		Challenges: challengesfetcher.CreateChallengesFetcher(deps.Limiter),
	})

	return handlers.NewRiotHandler(&handlers.RiotHandlerDependencies{
		RiotService: riotService,
	})
}
