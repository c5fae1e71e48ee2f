package riotservice

import (
	"context"

	accountfetcher "nocslol/fetcher/data/account"
	challengesfetcher "nocslol/fetcher/data/challenges"
	leaguefetcher "nocslol/fetcher/data/league"
	masteryfetcher "nocslol/fetcher/data/mastery"
	summonerfetcher "nocslol/fetcher/data/summoner"
)

// AccountResolver resolves a riot id into the stable PUUID.
type AccountResolver interface {
	GetByRiotId(ctx context.Context, gameName string, tagLine string) (*accountfetcher.RiotAccount, error)
}

// SummonerFetcher returns the summoner for a PUUID on a platform.
type SummonerFetcher interface {
	GetByPuuid(ctx context.Context, platform string, puuid string) (*summonerfetcher.Summoner, error)
}

// LeagueFetcher returns the league entries for a summoner.
type LeagueFetcher interface {
	GetEntries(ctx context.Context, platform string, summonerId string) ([]leaguefetcher.LeagueEntry, error)
}

// MasteryFetcher returns the top champion masteries for a player.
type MasteryFetcher interface {
	GetTopByPuuid(ctx context.Context, platform string, puuid string, count int) ([]masteryfetcher.MasteryEntry, error)
}

// ChallengesFetcher returns the challenge progress for a player.
type ChallengesFetcher interface {
	GetPlayerData(ctx context.Context, platform string, puuid string) (*challengesfetcher.PlayerChallenges, error)
}

// RiotService exposes the typed riot lookups the site UI consumes
// directly. Thin by design: the heavy lifting lives on the clients.
type RiotService struct {
	accounts   AccountResolver
	summoners  SummonerFetcher
	leagues    LeagueFetcher
	masteries  MasteryFetcher
	challenges ChallengesFetcher
}

// RiotServiceDeps is the dependency list for the riot lookup service.
type RiotServiceDeps struct {
	Accounts   AccountResolver
	Summoners  SummonerFetcher
	Leagues    LeagueFetcher
	Masteries  MasteryFetcher
	Challenges ChallengesFetcher
}

// NewRiotService creates the riot lookup service.
func NewRiotService(deps *RiotServiceDeps) *RiotService {
	return &RiotService{
		accounts:   deps.Accounts,
		summoners:  deps.Summoners,
		leagues:    deps.Leagues,
		masteries:  deps.Masteries,
		challenges: deps.Challenges,
	}
}

// GetAccount resolves a riot id into its account.
func (rs *RiotService) GetAccount(ctx context.Context, gameName string, tagLine string) (*accountfetcher.RiotAccount, error) {
	return rs.accounts.GetByRiotId(ctx, gameName, tagLine)
}

// GetSummoner returns the summoner for a PUUID on a platform.
func (rs *RiotService) GetSummoner(ctx context.Context, platform string, puuid string) (*summonerfetcher.Summoner, error) {
	return rs.summoners.GetByPuuid(ctx, platform, puuid)
}

// GetLeagueEntries returns the league entries for a summoner.
func (rs *RiotService) GetLeagueEntries(ctx context.Context, platform string, summonerId string) ([]leaguefetcher.LeagueEntry, error) {
	return rs.leagues.GetEntries(ctx, platform, summonerId)
}

// GetTopMasteries returns the top champion masteries for a player.
func (rs *RiotService) GetTopMasteries(ctx context.Context, platform string, puuid string, count int) ([]masteryfetcher.MasteryEntry, error) {
	return rs.masteries.GetTopByPuuid(ctx, platform, puuid, count)
}

// GetChallenges returns the challenge progress for a player.
func (rs *RiotService) GetChallenges(ctx context.Context, platform string, puuid string) (*challengesfetcher.PlayerChallenges, error) {
	return rs.challenges.GetPlayerData(ctx, platform, puuid)
}
