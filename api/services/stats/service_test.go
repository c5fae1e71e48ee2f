package statsservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"nocslol/api/dto"
	"nocslol/api/filters"
	accountfetcher "nocslol/fetcher/data/account"
	challengesfetcher "nocslol/fetcher/data/challenges"
	leaguefetcher "nocslol/fetcher/data/league"
	masteryfetcher "nocslol/fetcher/data/mastery"
	matchfetcher "nocslol/fetcher/data/match"
	summonerfetcher "nocslol/fetcher/data/summoner"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Default filter used across the overlay stats tests.
func defaultFilter(timeFilter string) *filters.OverlayStatsFilter {
	return &filters.OverlayStatsFilter{
		GameName:   "0 cs",
		TagLine:    "shen",
		Summoner:   "0 cs#shen",
		Region:     "na1",
		TimeFilter: timeFilter,
	}
}

// Wires the identity resolution and enrichment mocks for the happy path.
func (f *testFixture) expectIdentity(timeFilter string) {
	f.accounts.On("GetByRiotId", mock.Anything, "0 cs", "shen").
		Return(&accountfetcher.RiotAccount{Puuid: "puuid-1", GameName: "0 cs", TagLine: "shen"}, nil).Once()

	f.statsCache.On("GetOverlayStats", mock.Anything, "puuid-1", "na1", timeFilter).
		Return(nil, errors.New("cache miss")).Once()
	f.statsCache.On("SetOverlayStats", mock.Anything, "puuid-1", "na1", timeFilter, mock.Anything).
		Return(nil).Once()

	f.summoners.On("GetByPuuid", mock.Anything, "na1", "puuid-1").
		Return(&summonerfetcher.Summoner{Id: "summ-1", Puuid: "puuid-1", SummonerLevel: 156}, nil).Once()

	f.leagues.On("GetEntries", mock.Anything, "na1", "summ-1").
		Return([]leaguefetcher.LeagueEntry{
			{QueueType: leaguefetcher.RankedSoloQueue, Tier: "GOLD", Rank: "IV"},
		}, nil).Once()

	f.masteries.On("GetTopByPuuid", mock.Anything, "na1", "puuid-1", topMasteryCount).
		Return([]masteryfetcher.MasteryEntry{
			{ChampionId: 98, ChampionLevel: 7, ChampionPoints: 234567},
		}, nil).Once()

	f.challenges.On("GetPlayerData", mock.Anything, "na1", "puuid-1").
		Return(&challengesfetcher.PlayerChallenges{
			TotalPoints: challengesfetcher.ChallengePoints{Level: "GOLD", Current: 2450, Max: 28465, Percentile: 0.82},
			Challenges:  []challengesfetcher.ChallengeEntry{{ChallengeId: 101101, Level: "SILVER"}},
		}, nil).Once()
}

func TestResolveCutoff(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		timeFilter string
		expected   time.Time
	}{
		{name: "today", timeFilter: "today", expected: now.Add(-24 * time.Hour)},
		{name: "sevenDays", timeFilter: "7d", expected: now.AddDate(0, 0, -7)},
		{name: "fourteenDays", timeFilter: "14d", expected: now.AddDate(0, 0, -14)},
		{name: "thirtyDays", timeFilter: "30d", expected: now.AddDate(0, 0, -30)},
		{name: "all", timeFilter: "all", expected: time.Unix(0, 0)},
		{name: "unknownDefaultsToAll", timeFilter: "yesterday", expected: time.Unix(0, 0)},
		{name: "emptyDefaultsToAll", timeFilter: "", expected: time.Unix(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveCutoff(tt.timeFilter, now))
		})
	}
}

func TestCycleLogKey(t *testing.T) {
	at := time.Date(2025, 6, 15, 12, 30, 0, 0, time.UTC)

	assert.Equal(t, "cycles/puuid-1/2025-06-15-12-30.log", cycleLogKey("puuid-1", at))
}

func TestFoldAccumulatesOnlyWindowedMatches(t *testing.T) {
	now := time.Now()
	cutoff := now.AddDate(0, 0, -30)

	matches := []matchfetcher.MatchRecord{
		testRecord("NA1_1", now.Add(-1*time.Hour), 0, 0, true),
		testRecord("NA1_2", now.Add(-2*time.Hour), 2, 0, false),
		testRecord("NA1_3", now.AddDate(0, 0, -40), 150, 12, true),
	}

	agg := Fold(matches, cutoff)

	assert.Equal(t, 2, agg.GamesConsidered)
	assert.Equal(t, 2, agg.TotalCS)
	assert.Equal(t, 2, agg.MinionsSlain)
	assert.Equal(t, 0, agg.JungleMonsters)
	assert.Equal(t, 6, agg.WardsKilled)
	assert.Equal(t, 1, agg.PerfectGames)
	assert.Equal(t, 1, agg.Wins)
	assert.Equal(t, 1, agg.Losses)
}

func TestFoldIsOrderInsensitive(t *testing.T) {
	now := time.Now()
	cutoff := time.Unix(0, 0)

	matches := []matchfetcher.MatchRecord{
		testRecord("NA1_1", now.Add(-1*time.Hour), 0, 0, true),
		testRecord("NA1_2", now.Add(-2*time.Hour), 5, 3, false),
		testRecord("NA1_3", now.Add(-3*time.Hour), 0, 1, true),
	}
	reversed := []matchfetcher.MatchRecord{matches[2], matches[1], matches[0]}

	assert.Equal(t, Fold(matches, cutoff), Fold(reversed, cutoff))
}

func TestFoldBoundaryMatchIsIncluded(t *testing.T) {
	cutoff := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	matches := []matchfetcher.MatchRecord{
		testRecord("NA1_1", cutoff, 0, 0, true),
		testRecord("NA1_2", cutoff.Add(-time.Second), 0, 0, true),
	}

	agg := Fold(matches, cutoff)

	assert.Equal(t, 1, agg.GamesConsidered)
}

// Full aggregation cycle: empty cache, one short page of ids, all three
// details fetched, two inside the window, enrichment carried through.
func TestGetOverlayStatsAggregatesNewMatches(t *testing.T) {
	f := setupTestService(t)

	now := time.Now()
	f.expectIdentity("30d")

	f.source.On("ListMatchIds", mock.Anything, 0, matchPageSize).
		Return([]string{"NA1_1", "NA1_2", "NA1_3"}, nil).Once()

	perfect := testRecord("NA1_1", now.Add(-1*time.Hour), 0, 0, true)
	twoCS := testRecord("NA1_2", now.Add(-2*time.Hour), 2, 0, false)
	old := testRecord("NA1_3", now.AddDate(0, 0, -40), 150, 12, true)

	f.source.On("GetMatchDetail", mock.Anything, "NA1_1").Return(&perfect, nil).Once()
	f.source.On("GetMatchDetail", mock.Anything, "NA1_2").Return(&twoCS, nil).Once()
	f.source.On("GetMatchDetail", mock.Anything, "NA1_3").Return(&old, nil).Once()

	stats, err := f.service.GetOverlayStats(context.Background(), defaultFilter("30d"))

	assert.NoError(t, err)
	assert.False(t, stats.IsPlaceholder)
	assert.Equal(t, 2, stats.TotalGames)
	assert.Equal(t, 2, stats.TotalCS)
	assert.Equal(t, 1, stats.PerfectGames)
	assert.Equal(t, "50.0%", stats.WinRate)
	assert.Equal(t, "GOLD IV", stats.Rank)
	assert.Equal(t, 156, stats.Level)
	assert.Equal(t, 3, stats.TotalMatchesFetched)

	assert.Equal(t, []dto.ChampionMastery{{ChampionId: 98, Level: 7, Points: 234567}}, stats.TopMasteries)
	assert.Equal(t, &dto.ChallengeSummary{Level: "GOLD", Current: 2450, Percentile: 0.82, ChallengesTracked: 1}, stats.Challenges)

	// The cache keeps every fetched match, windowed or not, and the
	// cycle always stamps lastFetched.
	entry := f.matchCache.Load("puuid-1")
	assert.Len(t, entry.Matches, 3)
	assert.False(t, entry.LastFetched.IsZero())

	f.verifyMocks(t)
}

// Already cached matches must never be fetched again.
func TestGetOverlayStatsFetchesOnlyUncachedMatches(t *testing.T) {
	f := setupTestService(t)

	now := time.Now()
	f.matchCache.Merge("puuid-1", []matchfetcher.MatchRecord{
		testRecord("NA1_A", now.Add(-3*time.Hour), 0, 0, true),
		testRecord("NA1_B", now.Add(-2*time.Hour), 1, 0, false),
	}, now.Add(-time.Hour))

	f.expectIdentity("all")

	f.source.On("ListMatchIds", mock.Anything, 0, matchPageSize).
		Return([]string{"NA1_A", "NA1_B", "NA1_C"}, nil).Once()

	fresh := testRecord("NA1_C", now.Add(-1*time.Hour), 0, 0, true)
	f.source.On("GetMatchDetail", mock.Anything, "NA1_C").Return(&fresh, nil).Once()

	stats, err := f.service.GetOverlayStats(context.Background(), defaultFilter("all"))

	assert.NoError(t, err)
	assert.Equal(t, 3, stats.TotalGames)

	f.source.AssertNumberOfCalls(t, "GetMatchDetail", 1)
	f.verifyMocks(t)
}

// A cached payload short-circuits the whole cycle.
func TestGetOverlayStatsReturnsCachedPayload(t *testing.T) {
	f := setupTestService(t)

	f.accounts.On("GetByRiotId", mock.Anything, "0 cs", "shen").
		Return(&accountfetcher.RiotAccount{Puuid: "puuid-1"}, nil).Once()

	cached := &dto.OverlayStats{SummonerName: "0 cs#shen", TotalGames: 7, WinRate: "42.9%"}
	f.statsCache.On("GetOverlayStats", mock.Anything, "puuid-1", "na1", "7d").
		Return(cached, nil).Once()

	stats, err := f.service.GetOverlayStats(context.Background(), defaultFilter("7d"))

	assert.NoError(t, err)
	assert.Equal(t, cached, stats)

	f.source.AssertNotCalled(t, "ListMatchIds")
	f.verifyMocks(t)
}

// No matches inside the window produces the flagged placeholder payload,
// and the cycle still stamps lastFetched on the cache entry.
func TestGetOverlayStatsPlaceholderWhenNoMatches(t *testing.T) {
	f := setupTestService(t)

	f.expectIdentity("today")

	f.source.On("ListMatchIds", mock.Anything, 0, matchPageSize).
		Return([]string{}, nil).Once()

	stats, err := f.service.GetOverlayStats(context.Background(), defaultFilter("today"))

	assert.NoError(t, err)
	assert.True(t, stats.IsPlaceholder)
	assert.NotEmpty(t, stats.Note)
	assert.Equal(t, 0, stats.TotalMatchesFetched)

	entry := f.matchCache.Load("puuid-1")
	assert.Empty(t, entry.Matches)
	assert.False(t, entry.LastFetched.IsZero())

	f.verifyMocks(t)
}

// One failing match detail must not fail the cycle nor drop the others.
func TestGetOverlayStatsIsolatesDetailFailures(t *testing.T) {
	f := setupTestService(t)

	now := time.Now()
	f.expectIdentity("all")

	f.source.On("ListMatchIds", mock.Anything, 0, matchPageSize).
		Return([]string{"NA1_1", "NA1_2", "NA1_3"}, nil).Once()

	good := testRecord("NA1_2", now.Add(-2*time.Hour), 0, 0, true)
	f.source.On("GetMatchDetail", mock.Anything, "NA1_1").
		Return(nil, errors.New("riot 503")).Once()
	f.source.On("GetMatchDetail", mock.Anything, "NA1_2").Return(&good, nil).Once()
	// Remote reports NA1_3 as unavailable.
	f.source.On("GetMatchDetail", mock.Anything, "NA1_3").Return(nil, nil).Once()

	stats, err := f.service.GetOverlayStats(context.Background(), defaultFilter("all"))

	assert.NoError(t, err)
	assert.Equal(t, 1, stats.TotalGames)

	entry := f.matchCache.Load("puuid-1")
	assert.Len(t, entry.Matches, 1)
	assert.Equal(t, "NA1_2", entry.Matches[0].MatchId)

	f.verifyMocks(t)
}

// A failed riot id resolution is reportable, never a placeholder.
func TestGetOverlayStatsFailsWhenRiotIdDoesNotResolve(t *testing.T) {
	f := setupTestService(t)

	f.accounts.On("GetByRiotId", mock.Anything, "0 cs", "shen").
		Return(nil, accountfetcher.ErrAccountNotFound).Once()

	stats, err := f.service.GetOverlayStats(context.Background(), defaultFilter("all"))

	assert.Error(t, err)
	assert.ErrorIs(t, err, accountfetcher.ErrAccountNotFound)
	assert.Nil(t, stats)

	f.verifyMocks(t)
}

// A league failure degrades the rank display, never the payload.
func TestGetOverlayStatsDegradesRankOnLeagueFailure(t *testing.T) {
	f := setupTestService(t)

	now := time.Now()
	f.accounts.On("GetByRiotId", mock.Anything, "0 cs", "shen").
		Return(&accountfetcher.RiotAccount{Puuid: "puuid-1"}, nil).Once()
	f.statsCache.On("GetOverlayStats", mock.Anything, "puuid-1", "na1", "all").
		Return(nil, errors.New("cache miss")).Once()
	f.statsCache.On("SetOverlayStats", mock.Anything, "puuid-1", "na1", "all", mock.Anything).
		Return(nil).Once()
	f.summoners.On("GetByPuuid", mock.Anything, "na1", "puuid-1").
		Return(&summonerfetcher.Summoner{Id: "summ-1", SummonerLevel: 30}, nil).Once()
	f.leagues.On("GetEntries", mock.Anything, "na1", "summ-1").
		Return(nil, errors.New("riot 500")).Once()
	f.masteries.On("GetTopByPuuid", mock.Anything, "na1", "puuid-1", topMasteryCount).
		Return([]masteryfetcher.MasteryEntry{}, nil).Once()
	f.challenges.On("GetPlayerData", mock.Anything, "na1", "puuid-1").
		Return(nil, nil).Once()

	record := testRecord("NA1_1", now.Add(-time.Hour), 0, 0, true)
	f.source.On("ListMatchIds", mock.Anything, 0, matchPageSize).
		Return([]string{"NA1_1"}, nil).Once()
	f.source.On("GetMatchDetail", mock.Anything, "NA1_1").Return(&record, nil).Once()

	stats, err := f.service.GetOverlayStats(context.Background(), defaultFilter("all"))

	assert.NoError(t, err)
	assert.Equal(t, "Unranked", stats.Rank)
	assert.Equal(t, 1, stats.TotalGames)

	f.verifyMocks(t)
}

// Mastery and challenge failures only drop their fields, never the payload.
func TestGetOverlayStatsDegradesEnrichmentOnFailure(t *testing.T) {
	f := setupTestService(t)

	now := time.Now()
	f.accounts.On("GetByRiotId", mock.Anything, "0 cs", "shen").
		Return(&accountfetcher.RiotAccount{Puuid: "puuid-1"}, nil).Once()
	f.statsCache.On("GetOverlayStats", mock.Anything, "puuid-1", "na1", "all").
		Return(nil, errors.New("cache miss")).Once()
	f.statsCache.On("SetOverlayStats", mock.Anything, "puuid-1", "na1", "all", mock.Anything).
		Return(nil).Once()
	f.summoners.On("GetByPuuid", mock.Anything, "na1", "puuid-1").
		Return(&summonerfetcher.Summoner{Id: "summ-1", SummonerLevel: 30}, nil).Once()
	f.leagues.On("GetEntries", mock.Anything, "na1", "summ-1").
		Return([]leaguefetcher.LeagueEntry{}, nil).Once()
	f.masteries.On("GetTopByPuuid", mock.Anything, "na1", "puuid-1", topMasteryCount).
		Return(nil, errors.New("riot 403")).Once()
	f.challenges.On("GetPlayerData", mock.Anything, "na1", "puuid-1").
		Return(nil, errors.New("riot 503")).Once()

	record := testRecord("NA1_1", now.Add(-time.Hour), 0, 0, true)
	f.source.On("ListMatchIds", mock.Anything, 0, matchPageSize).
		Return([]string{"NA1_1"}, nil).Once()
	f.source.On("GetMatchDetail", mock.Anything, "NA1_1").Return(&record, nil).Once()

	stats, err := f.service.GetOverlayStats(context.Background(), defaultFilter("all"))

	assert.NoError(t, err)
	assert.Equal(t, 1, stats.TotalGames)
	assert.Empty(t, stats.TopMasteries)
	assert.Nil(t, stats.Challenges)

	f.verifyMocks(t)
}

// A summoner missing on the requested platform triggers the platform
// scan, and the payload reports the platform that resolved.
func TestGetOverlayStatsScansPlatformsWhenRegionIsWrong(t *testing.T) {
	f := setupTestService(t)

	now := time.Now()
	f.accounts.On("GetByRiotId", mock.Anything, "0 cs", "shen").
		Return(&accountfetcher.RiotAccount{Puuid: "puuid-1"}, nil).Once()
	f.statsCache.On("GetOverlayStats", mock.Anything, "puuid-1", "na1", "all").
		Return(nil, errors.New("cache miss")).Once()
	f.statsCache.On("SetOverlayStats", mock.Anything, "puuid-1", "na1", "all", mock.Anything).
		Return(nil).Once()

	f.summoners.On("GetByPuuid", mock.Anything, "na1", "puuid-1").
		Return(nil, summonerfetcher.ErrSummonerNotFound).Once()
	f.summoners.On("FindPlatform", mock.Anything, "puuid-1").
		Return("euw1", &summonerfetcher.Summoner{Id: "summ-1", SummonerLevel: 203}, nil).Once()

	f.leagues.On("GetEntries", mock.Anything, "euw1", "summ-1").
		Return([]leaguefetcher.LeagueEntry{}, nil).Once()
	f.masteries.On("GetTopByPuuid", mock.Anything, "euw1", "puuid-1", topMasteryCount).
		Return([]masteryfetcher.MasteryEntry{}, nil).Once()
	f.challenges.On("GetPlayerData", mock.Anything, "euw1", "puuid-1").
		Return(nil, nil).Once()

	record := testRecord("EUW1_1", now.Add(-time.Hour), 0, 0, true)
	f.source.On("ListMatchIds", mock.Anything, 0, matchPageSize).
		Return([]string{"EUW1_1"}, nil).Once()
	f.source.On("GetMatchDetail", mock.Anything, "EUW1_1").Return(&record, nil).Once()

	stats, err := f.service.GetOverlayStats(context.Background(), defaultFilter("all"))

	assert.NoError(t, err)
	assert.Equal(t, "euw1", stats.Region)
	assert.Equal(t, 203, stats.Level)
	assert.Equal(t, 1, stats.TotalGames)

	f.verifyMocks(t)
}

// The scan failing too makes the lookup reportable.
func TestGetOverlayStatsFailsWhenNoPlatformResolves(t *testing.T) {
	f := setupTestService(t)

	f.accounts.On("GetByRiotId", mock.Anything, "0 cs", "shen").
		Return(&accountfetcher.RiotAccount{Puuid: "puuid-1"}, nil).Once()
	f.statsCache.On("GetOverlayStats", mock.Anything, "puuid-1", "na1", "all").
		Return(nil, errors.New("cache miss")).Once()

	f.summoners.On("GetByPuuid", mock.Anything, "na1", "puuid-1").
		Return(nil, summonerfetcher.ErrSummonerNotFound).Once()
	f.summoners.On("FindPlatform", mock.Anything, "puuid-1").
		Return("", nil, summonerfetcher.ErrSummonerNotFound).Once()

	stats, err := f.service.GetOverlayStats(context.Background(), defaultFilter("all"))

	assert.ErrorIs(t, err, summonerfetcher.ErrSummonerNotFound)
	assert.Nil(t, stats)

	f.verifyMocks(t)
}

// Pagination stops on the first short page.
func TestEnumerateMatchIdsStopsOnShortPage(t *testing.T) {
	f := setupTestService(t)

	f.source.On("ListMatchIds", mock.Anything, 0, matchPageSize).
		Return(testIds("NA1", 0, matchPageSize), nil).Once()
	f.source.On("ListMatchIds", mock.Anything, matchPageSize, matchPageSize).
		Return(testIds("NA1", matchPageSize, 3), nil).Once()

	ids := f.service.enumerateMatchIds(context.Background(), f.source, "puuid-1")

	assert.Len(t, ids, matchPageSize+3)
	f.source.AssertNumberOfCalls(t, "ListMatchIds", 2)
}

// Pagination never exceeds the safety cap.
func TestEnumerateMatchIdsHonorsCap(t *testing.T) {
	f := setupTestService(t)

	for start := 0; start < maxFetchedMatchIds; start += matchPageSize {
		f.source.On("ListMatchIds", mock.Anything, start, matchPageSize).
			Return(testIds("NA1", start, matchPageSize), nil).Once()
	}

	ids := f.service.enumerateMatchIds(context.Background(), f.source, "puuid-1")

	assert.Len(t, ids, maxFetchedMatchIds)
	f.source.AssertNumberOfCalls(t, "ListMatchIds", maxFetchedMatchIds/matchPageSize)
}

// A pagination failure keeps the pages already retrieved.
func TestEnumerateMatchIdsKeepsPartialPagesOnError(t *testing.T) {
	f := setupTestService(t)

	f.source.On("ListMatchIds", mock.Anything, 0, matchPageSize).
		Return(testIds("NA1", 0, matchPageSize), nil).Once()
	f.source.On("ListMatchIds", mock.Anything, matchPageSize, matchPageSize).
		Return(nil, errors.New("riot 429")).Once()

	ids := f.service.enumerateMatchIds(context.Background(), f.source, "puuid-1")

	assert.Len(t, ids, matchPageSize)
	f.verifyMocks(t)
}
