package statsservice

import (
	"fmt"
	"testing"
	"time"

	matchcacherepo "nocslol/api/repositories/matchcache"
	"nocslol/api/services/testutil"
	matchfetcher "nocslol/fetcher/data/match"
	"nocslol/pkg/logger"
	"nocslol/pkg/regions"
)

// Bundle with the service under test and its collaborators.
type testFixture struct {
	service    *StatsService
	matchCache matchcacherepo.Repository
	statsCache *testutil.MockStatsCache
	accounts   *testutil.MockAccountFetcher
	summoners  *testutil.MockSummonerFetcher
	leagues    *testutil.MockLeagueFetcher
	masteries  *testutil.MockMasteryFetcher
	challenges *testutil.MockChallengesFetcher
	source     *testutil.MockSource
}

// Helper to initialize the mocks. The match cache is the real file backed
// repository rooted at a test temp dir, so the merge semantics are exercised
// end to end instead of being mocked away.
func setupTestService(t *testing.T) *testFixture {
	t.Helper()

	f := &testFixture{
		matchCache: matchcacherepo.NewRepository(t.TempDir()),
		statsCache: new(testutil.MockStatsCache),
		accounts:   new(testutil.MockAccountFetcher),
		summoners:  new(testutil.MockSummonerFetcher),
		leagues:    new(testutil.MockLeagueFetcher),
		masteries:  new(testutil.MockMasteryFetcher),
		challenges: new(testutil.MockChallengesFetcher),
		source:     new(testutil.MockSource),
	}

	log, err := logger.CreateLogger()
	if err != nil {
		t.Fatalf("couldn't create the test logger: %v", err)
	}

	f.service = NewStatsService(&StatsServiceDeps{
		MatchCache: f.matchCache,
		StatsCache: f.statsCache,
		Accounts:   f.accounts,
		Summoners:  f.summoners,
		Leagues:    f.leagues,
		Masteries:  f.masteries,
		Challenges: f.challenges,
		NewSource: func(routing regions.Routing, puuid string) matchfetcher.Source {
			return f.source
		},
		Logger: log,
	})

	return f
}

// verifyMocks asserts the expectations of every fixture mock.
func (f *testFixture) verifyMocks(t *testing.T) {
	t.Helper()
	testutil.VerifyAllMocks(t, f.statsCache, f.accounts, f.summoners, f.leagues, f.masteries, f.challenges, f.source)
}

// Helper to build a match record for a given creep score split.
func testRecord(matchId string, playedAt time.Time, minions int, neutral int, win bool) matchfetcher.MatchRecord {
	return matchfetcher.MatchRecord{
		MatchId:            matchId,
		PlayedAt:           playedAt,
		GameMode:           "CLASSIC",
		GameDuration:       1800,
		ChampionName:       "Shen",
		TeamPosition:       "TOP",
		Kills:              2,
		Deaths:             4,
		Assists:            11,
		MinionKills:        minions,
		NeutralMinionKills: neutral,
		WardsKilled:        3,
		Win:                win,
	}
}

// Helper to build a full page of sequential match ids.
func testIds(prefix string, start int, count int) []string {
	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		ids = append(ids, fmt.Sprintf("%s_%d", prefix, start+i))
	}
	return ids
}
