package statsservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"nocslol/api/cache"
	"nocslol/api/converters"
	"nocslol/api/dto"
	"nocslol/api/filters"
	matchcacherepo "nocslol/api/repositories/matchcache"
	accountfetcher "nocslol/fetcher/data/account"
	challengesfetcher "nocslol/fetcher/data/challenges"
	leaguefetcher "nocslol/fetcher/data/league"
	masteryfetcher "nocslol/fetcher/data/mastery"
	matchfetcher "nocslol/fetcher/data/match"
	summonerfetcher "nocslol/fetcher/data/summoner"
	"nocslol/pkg/logger"
	"nocslol/pkg/regions"
)

const (
	// Page size for the match id listing. Tunable, not correctness affecting.
	matchPageSize = 100

	// Single safety cap on the total paginated match ids. Bounds worst
	// case latency and cost; hitting it only limits recency coverage.
	maxFetchedMatchIds = 1000

	// Fan-out limit for the per-match detail fetches.
	detailFanOut = 5

	// How many top masteries the overlay shows.
	topMasteryCount = 3
)

// AccountResolver resolves a riot id into the stable PUUID.
type AccountResolver interface {
	GetByRiotId(ctx context.Context, gameName string, tagLine string) (*accountfetcher.RiotAccount, error)
}

// SummonerFetcher returns the summoner for a PUUID on a platform.
// FindPlatform scans the known platforms when the requested one is wrong.
type SummonerFetcher interface {
	GetByPuuid(ctx context.Context, platform string, puuid string) (*summonerfetcher.Summoner, error)
	FindPlatform(ctx context.Context, puuid string) (string, *summonerfetcher.Summoner, error)
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

// SourceFactory builds a match source scoped to a routing region and player.
type SourceFactory func(routing regions.Routing, puuid string) matchfetcher.Source

// StatsService orchestrates the match history aggregation: cache load,
// capped pagination, cached/new partition, bounded detail fetch, cache
// merge and the in-window fold.
type StatsService struct {
	matchCache matchcacherepo.Repository
	statsCache cache.StatsCache
	accounts   AccountResolver
	summoners  SummonerFetcher
	leagues    LeagueFetcher
	masteries  MasteryFetcher
	challenges ChallengesFetcher
	newSource  SourceFactory
	log        *logger.Logger
}

// StatsServiceDeps is the dependency list for the stats service.
type StatsServiceDeps struct {
	MatchCache matchcacherepo.Repository
	StatsCache cache.StatsCache
	Accounts   AccountResolver
	Summoners  SummonerFetcher
	Leagues    LeagueFetcher
	Masteries  MasteryFetcher
	Challenges ChallengesFetcher
	NewSource  SourceFactory
	Logger     *logger.Logger
}

// NewStatsService creates a stats service.
func NewStatsService(deps *StatsServiceDeps) *StatsService {
	return &StatsService{
		matchCache: deps.MatchCache,
		statsCache: deps.StatsCache,
		accounts:   deps.Accounts,
		summoners:  deps.Summoners,
		leagues:    deps.Leagues,
		masteries:  deps.Masteries,
		challenges: deps.Challenges,
		newSource:  deps.NewSource,
		log:        deps.Logger,
	}
}

// ResolveCutoff resolves the time window into its cutoff timestamp.
// Total for every input: unrecognized values default to the broadest
// window instead of rejecting the request.
func ResolveCutoff(timeFilter string, now time.Time) time.Time {
	switch timeFilter {
	case "today":
		return now.Add(-24 * time.Hour)
	case "7d":
		return now.AddDate(0, 0, -7)
	case "14d":
		return now.AddDate(0, 0, -14)
	case "30d":
		return now.AddDate(0, 0, -30)
	default:
		return time.Unix(0, 0)
	}
}

// Fold accumulates every record played at or after the cutoff.
// Commutative per match: the result doesn't depend on the record order.
func Fold(matches []matchfetcher.MatchRecord, cutoff time.Time) *dto.AggregateStats {
	agg := &dto.AggregateStats{}

	for i := range matches {
		match := &matches[i]
		if match.PlayedAt.Before(cutoff) {
			continue
		}

		agg.TotalCS += match.TotalCS()
		agg.MinionsSlain += match.MinionKills
		agg.JungleMonsters += match.NeutralMinionKills
		agg.WardsKilled += match.WardsKilled

		if match.Perfect() {
			agg.PerfectGames++
		}

		if match.Win {
			agg.Wins++
		} else {
			agg.Losses++
		}

		agg.GamesConsidered++
	}

	return agg
}

// EmptyOverlayStats builds the flagged placeholder payload for a filter
// without running a fetch cycle. The overlay page uses it to keep a
// stream overlay rendering when the stats lookup fails.
func EmptyOverlayStats(filter *filters.OverlayStatsFilter) *dto.OverlayStats {
	return converters.BuildOverlayStats(&dto.AggregateStats{}, &converters.OverlayMeta{
		SummonerName: filter.Summoner,
		Region:       filter.Region,
		TimeFilter:   filter.TimeFilter,
	})
}

// GetOverlayStats answers a (summoner, region, timeWindow) lookup.
func (s *StatsService) GetOverlayStats(ctx context.Context, filter *filters.OverlayStatsFilter) (*dto.OverlayStats, error) {
	// The identity must resolve; without it there is nothing to answer.
	account, err := s.accounts.GetByRiotId(ctx, filter.GameName, filter.TagLine)
	if err != nil {
		return nil, fmt.Errorf("couldn't resolve the riot id: %w", err)
	}

	if cached, err := s.statsCache.GetOverlayStats(ctx, account.Puuid, filter.Region, filter.TimeFilter); err == nil && cached != nil {
		return cached, nil
	}

	region := filter.Region
	summoner, err := s.summoners.GetByPuuid(ctx, region, account.Puuid)
	if errors.Is(err, summonerfetcher.ErrSummonerNotFound) {
		// The player exists but not on the requested platform: scan for
		// the right one before giving up.
		region, summoner, err = s.summoners.FindPlatform(ctx, account.Puuid)
	}
	if err != nil {
		return nil, fmt.Errorf("couldn't find the summoner on %s: %w", filter.Region, err)
	}

	// The enrichment calls are best effort: a league, mastery or
	// challenge failure never fails the preview.
	rank := s.resolveRank(ctx, region, summoner.Id)
	masteries := s.resolveMasteries(ctx, region, account.Puuid)
	challenges := s.resolveChallenges(ctx, region, account.Puuid)

	cutoff := ResolveCutoff(filter.TimeFilter, time.Now())
	agg, fetched := s.aggregate(ctx, account.Puuid, regions.RoutingForPlatform(region), cutoff)

	stats := converters.BuildOverlayStats(agg, &converters.OverlayMeta{
		SummonerName:   filter.Summoner,
		Region:         region,
		TimeFilter:     filter.TimeFilter,
		Level:          summoner.SummonerLevel,
		Rank:           rank,
		MatchesFetched: fetched,
		TopMasteries:   masteries,
		Challenges:     challenges,
	})

	if err := s.statsCache.SetOverlayStats(ctx, account.Puuid, filter.Region, filter.TimeFilter, stats); err != nil {
		s.log.Errorf("couldn't cache the overlay stats for %s: %v", account.Puuid, err)
	}

	return stats, nil
}

// aggregate runs one fetch cycle for the player and folds the full cache.
// Returns the accumulator and how many ids were enumerated remotely.
func (s *StatsService) aggregate(ctx context.Context, puuid string, routing regions.Routing, cutoff time.Time) (*dto.AggregateStats, int) {
	src := s.newSource(routing, puuid)

	entry := s.matchCache.Load(puuid)
	s.log.Infof("aggregation cycle for %s: %d cached matches", puuid, len(entry.Matches))

	matchIds := s.enumerateMatchIds(ctx, src, puuid)

	// Partition into already cached and new; details are fetched for new only.
	present := make(map[string]struct{}, len(entry.Matches))
	for i := range entry.Matches {
		present[entry.Matches[i].MatchId] = struct{}{}
	}

	newIds := make([]string, 0, len(matchIds))
	for _, matchId := range matchIds {
		if _, exists := present[matchId]; !exists {
			newIds = append(newIds, matchId)
		}
	}

	fetched := s.fetchDetails(ctx, src, newIds)
	s.log.Infof("aggregation cycle for %s: %d ids enumerated, %d new, %d details fetched",
		puuid, len(matchIds), len(newIds), len(fetched))

	// Merge even when nothing new was fetched, so lastFetched always
	// reflects the completed cycle.
	merged := s.matchCache.Merge(puuid, fetched, time.Now())

	s.shipCycleLog(puuid)

	return Fold(merged.Matches, cutoff), len(matchIds)
}

// shipCycleLog sends the accumulated cycle log to the configured bucket.
// No-op when no bucket is configured.
func (s *StatsService) shipCycleLog(puuid string) {
	objectKey := cycleLogKey(puuid, time.Now())
	if err := s.log.UploadToS3Bucket(objectKey); err != nil {
		s.log.Errorf("couldn't send the cycle log to s3: %v", err)

		// Clean the file in the case it was a S3 error and not a file error.
		s.log.CleanFile()
	}
}

// cycleLogKey builds the bucket object key for one aggregation cycle.
func cycleLogKey(puuid string, at time.Time) string {
	return fmt.Sprintf("cycles/%s/%s.log", puuid, at.Format("2006-01-02-15-04"))
}

// enumerateMatchIds pages through the id listing until a short or empty
// page, or the safety cap. A pagination failure aborts further paging but
// keeps the pages already retrieved.
func (s *StatsService) enumerateMatchIds(ctx context.Context, src matchfetcher.Source, puuid string) []string {
	var all []string

	for start := 0; len(all) < maxFetchedMatchIds; start += matchPageSize {
		page, err := src.ListMatchIds(ctx, start, matchPageSize)
		if err != nil {
			s.log.Errorf("pagination aborted for %s at offset %d: %v", puuid, start, err)
			break
		}

		all = append(all, page...)

		if len(page) < matchPageSize {
			break
		}
	}

	if len(all) > maxFetchedMatchIds {
		all = all[:maxFetchedMatchIds]
	}

	return all
}

// fetchDetails fetches the new match details with a bounded fan-out.
// Failures and absent matches are isolated per match.
func (s *StatsService) fetchDetails(ctx context.Context, src matchfetcher.Source, matchIds []string) []matchfetcher.MatchRecord {
	if len(matchIds) == 0 {
		return nil
	}

	sem := make(chan struct{}, detailFanOut)
	results := make(chan matchfetcher.MatchRecord, len(matchIds))

	var wg sync.WaitGroup
	for _, matchId := range matchIds {
		wg.Add(1)
		go func(matchId string) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			record, err := src.GetMatchDetail(ctx, matchId)
			if err != nil {
				s.log.Errorf("couldn't fetch the match %s: %v", matchId, err)
				return
			}
			if record == nil {
				// Remote reported the match as unavailable.
				return
			}

			results <- *record
		}(matchId)
	}

	wg.Wait()
	close(results)

	collected := make([]matchfetcher.MatchRecord, 0, len(matchIds))
	for record := range results {
		collected = append(collected, record)
	}

	return collected
}

// resolveRank formats the player rank, preferring the solo queue entry.
func (s *StatsService) resolveRank(ctx context.Context, platform string, summonerId string) string {
	entries, err := s.leagues.GetEntries(ctx, platform, summonerId)
	if err != nil {
		s.log.Errorf("couldn't fetch the league entries for %s: %v", summonerId, err)
		return "Unranked"
	}

	entry := leaguefetcher.SoloQueueEntry(entries)
	if entry == nil {
		return "Unranked"
	}

	return strings.TrimSpace(fmt.Sprintf("%s %s", entry.Tier, entry.Rank))
}

// resolveMasteries fetches the top champion masteries, best effort.
func (s *StatsService) resolveMasteries(ctx context.Context, platform string, puuid string) []dto.ChampionMastery {
	entries, err := s.masteries.GetTopByPuuid(ctx, platform, puuid, topMasteryCount)
	if err != nil {
		s.log.Errorf("couldn't fetch the masteries for %s: %v", puuid, err)
		return nil
	}

	masteries := make([]dto.ChampionMastery, 0, len(entries))
	for _, entry := range entries {
		masteries = append(masteries, dto.ChampionMastery{
			ChampionId: entry.ChampionId,
			Level:      entry.ChampionLevel,
			Points:     entry.ChampionPoints,
		})
	}

	return masteries
}

// resolveChallenges fetches the overall challenge score, best effort.
func (s *StatsService) resolveChallenges(ctx context.Context, platform string, puuid string) *dto.ChallengeSummary {
	data, err := s.challenges.GetPlayerData(ctx, platform, puuid)
	if err != nil {
		s.log.Errorf("couldn't fetch the challenges for %s: %v", puuid, err)
		return nil
	}
	if data == nil {
		return nil
	}

	return &dto.ChallengeSummary{
		Level:             data.TotalPoints.Level,
		Current:           data.TotalPoints.Current,
		Percentile:        data.TotalPoints.Percentile,
		ChallengesTracked: len(data.Challenges),
	}
}
