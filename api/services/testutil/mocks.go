package testutil

import (
	"context"
	"testing"
	"time"

	"nocslol/api/dto"
	matchcacherepo "nocslol/api/repositories/matchcache"
	accountfetcher "nocslol/fetcher/data/account"
	challengesfetcher "nocslol/fetcher/data/challenges"
	leaguefetcher "nocslol/fetcher/data/league"
	masteryfetcher "nocslol/fetcher/data/mastery"
	matchfetcher "nocslol/fetcher/data/match"
	spectatorfetcher "nocslol/fetcher/data/spectator"
	summonerfetcher "nocslol/fetcher/data/summoner"
	"nocslol/pkg/database/models"
	"nocslol/pkg/discord"

	"github.com/stretchr/testify/mock"
)

// Assert the expectations of all mocks.
func VerifyAllMocks(t *testing.T, mocks ...any) {
	t.Helper()

	for _, m := range mocks {
		if mockObj, ok := m.(interface{ AssertExpectations(*testing.T) bool }); ok {
			mockObj.AssertExpectations(t)
		}
	}
}

// ============================================================================
// Mock Implementations used on the Stats service tests.
// ============================================================================

// Match source mock implementation.
type MockSource struct {
	mock.Mock
}

func (m *MockSource) ListMatchIds(ctx context.Context, start int, count int) ([]string, error) {
	args := m.Called(ctx, start, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockSource) GetMatchDetail(ctx context.Context, matchId string) (*matchfetcher.MatchRecord, error) {
	args := m.Called(ctx, matchId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*matchfetcher.MatchRecord), args.Error(1)
}

// Match cache repository mock implementation.
type MockMatchCacheRepository struct {
	mock.Mock
}

func (m *MockMatchCacheRepository) Load(puuid string) *matchcacherepo.CacheEntry {
	args := m.Called(puuid)
	return args.Get(0).(*matchcacherepo.CacheEntry)
}

func (m *MockMatchCacheRepository) Merge(puuid string, newMatches []matchfetcher.MatchRecord, fetchedAt time.Time) *matchcacherepo.CacheEntry {
	args := m.Called(puuid, newMatches, fetchedAt)
	return args.Get(0).(*matchcacherepo.CacheEntry)
}

// Stats cache mock implementation.
type MockStatsCache struct {
	mock.Mock
}

func (m *MockStatsCache) GetOverlayStats(ctx context.Context, puuid string, region string, timeFilter string) (*dto.OverlayStats, error) {
	args := m.Called(ctx, puuid, region, timeFilter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.OverlayStats), args.Error(1)
}

func (m *MockStatsCache) SetOverlayStats(ctx context.Context, puuid string, region string, timeFilter string, stats *dto.OverlayStats) error {
	args := m.Called(ctx, puuid, region, timeFilter, stats)
	return args.Error(0)
}

// Account fetcher mock implementation.
type MockAccountFetcher struct {
	mock.Mock
}

func (m *MockAccountFetcher) GetByRiotId(ctx context.Context, gameName string, tagLine string) (*accountfetcher.RiotAccount, error) {
	args := m.Called(ctx, gameName, tagLine)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accountfetcher.RiotAccount), args.Error(1)
}

// Summoner fetcher mock implementation.
type MockSummonerFetcher struct {
	mock.Mock
}

func (m *MockSummonerFetcher) GetByPuuid(ctx context.Context, platform string, puuid string) (*summonerfetcher.Summoner, error) {
	args := m.Called(ctx, platform, puuid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*summonerfetcher.Summoner), args.Error(1)
}

func (m *MockSummonerFetcher) FindPlatform(ctx context.Context, puuid string) (string, *summonerfetcher.Summoner, error) {
	args := m.Called(ctx, puuid)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*summonerfetcher.Summoner), args.Error(2)
}

// League fetcher mock implementation.
type MockLeagueFetcher struct {
	mock.Mock
}

func (m *MockLeagueFetcher) GetEntries(ctx context.Context, platform string, summonerId string) ([]leaguefetcher.LeagueEntry, error) {
	args := m.Called(ctx, platform, summonerId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]leaguefetcher.LeagueEntry), args.Error(1)
}

// Mastery fetcher mock implementation.
type MockMasteryFetcher struct {
	mock.Mock
}

func (m *MockMasteryFetcher) GetTopByPuuid(ctx context.Context, platform string, puuid string, count int) ([]masteryfetcher.MasteryEntry, error) {
	args := m.Called(ctx, platform, puuid, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]masteryfetcher.MasteryEntry), args.Error(1)
}

// Challenges fetcher mock implementation.
type MockChallengesFetcher struct {
	mock.Mock
}

func (m *MockChallengesFetcher) GetPlayerData(ctx context.Context, platform string, puuid string) (*challengesfetcher.PlayerChallenges, error) {
	args := m.Called(ctx, platform, puuid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*challengesfetcher.PlayerChallenges), args.Error(1)
}

// ============================================================================
// Mock Implementations used on the Champion and Trivia service tests.
// ============================================================================

// Champion repository mock implementation.
type MockChampionRepository struct {
	mock.Mock
}

func (m *MockChampionRepository) ListChampions(ctx context.Context) ([]models.Champion, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Champion), args.Error(1)
}

func (m *MockChampionRepository) GetChampionById(ctx context.Context, championId string) (*models.Champion, error) {
	args := m.Called(ctx, championId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Champion), args.Error(1)
}

func (m *MockChampionRepository) GetChampionByName(ctx context.Context, name string) (*models.Champion, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Champion), args.Error(1)
}

func (m *MockChampionRepository) GetChampionByKey(ctx context.Context, key int) (*models.Champion, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Champion), args.Error(1)
}

func (m *MockChampionRepository) UpsertAbility(ctx context.Context, ability *models.ChampionAbility) error {
	args := m.Called(ctx, ability)
	return args.Error(0)
}

func (m *MockChampionRepository) CountChampions(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockChampionRepository) CreateChampions(ctx context.Context, champions []models.Champion) error {
	args := m.Called(ctx, champions)
	return args.Error(0)
}

// Version resolver mock implementation.
type MockVersionResolver struct {
	mock.Mock
}

func (m *MockVersionResolver) LatestVersion(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// MemCache mock implementation.
type MockMemCache struct {
	mock.Mock
}

func (m *MockMemCache) Get(key string) any {
	args := m.Called(key)
	return args.Get(0)
}

func (m *MockMemCache) Set(key string, value any, ttl time.Duration) {
	m.Called(key, value, ttl)
}

func (m *MockMemCache) Close() {
	m.Called()
}

// ============================================================================
// Mock Implementations used on the Live Game service tests.
// ============================================================================

// Spectator fetcher mock implementation.
type MockSpectatorFetcher struct {
	mock.Mock
}

func (m *MockSpectatorFetcher) GetActiveGame(ctx context.Context, platform string, puuid string) (*spectatorfetcher.ActiveGame, error) {
	args := m.Called(ctx, platform, puuid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*spectatorfetcher.ActiveGame), args.Error(1)
}

// ============================================================================
// Mock Implementations used on the Submission service tests.
// ============================================================================

// Webhook sender mock implementation.
type MockWebhookSender struct {
	mock.Mock
}

func (m *MockWebhookSender) Send(ctx context.Context, payload discord.WebhookPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func (m *MockWebhookSender) Configured() bool {
	args := m.Called()
	return args.Bool(0)
}

// ============================================================================
// Mock Implementations used on the Overlay service tests.
// ============================================================================

// Overlay repository mock implementation.
type MockOverlayRepository struct {
	mock.Mock
}

func (m *MockOverlayRepository) Upsert(ctx context.Context, config *models.OverlayConfig) error {
	args := m.Called(ctx, config)
	return args.Error(0)
}

func (m *MockOverlayRepository) GetById(ctx context.Context, overlayId string) (*models.OverlayConfig, error) {
	args := m.Called(ctx, overlayId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OverlayConfig), args.Error(1)
}

func (m *MockOverlayRepository) List(ctx context.Context) ([]models.OverlayConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.OverlayConfig), args.Error(1)
}
