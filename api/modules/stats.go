package modules

import (
	"nocslol/api/cache"
	matchcacherepo "nocslol/api/repositories/matchcache"
	statsservice "nocslol/api/services/stats"
	accountfetcher "nocslol/fetcher/data/account"
	challengesfetcher "nocslol/fetcher/data/challenges"
	leaguefetcher "nocslol/fetcher/data/league"
	masteryfetcher "nocslol/fetcher/data/mastery"
	matchfetcher "nocslol/fetcher/data/match"
	summonerfetcher "nocslol/fetcher/data/summoner"
	"nocslol/pkg/config"
	"nocslol/pkg/regions"
)

func initializeStatsService(deps *ModuleDependencies) *statsservice.StatsService {
	return statsservice.NewStatsService(&statsservice.StatsServiceDeps{
		MatchCache: matchcacherepo.NewRepository(config.MatchCache.Dir),
		StatsCache: cache.NewStatsCache(deps.Redis),
		Accounts:   accountfetcher.CreateAccountFetcher(deps.Limiter),
		Summoners:  summonerfetcher.CreateSummonerFetcher(deps.Limiter),
		Leagues:    leaguefetcher.CreateLeagueFetcher(deps.Limiter),
		Masteries:  masteryfetcher.CreateMasteryFetcher(deps.Limiter),
		Challenges: challengesfetcher.CreateChallengesFetcher(deps.Limiter),
		NewSource: func(routing regions.Routing, puuid string) matchfetcher.Source {
			return matchfetcher.CreateRiotSource(deps.Limiter, routing, puuid)
		},
		Logger: deps.Logger,
	})
}
