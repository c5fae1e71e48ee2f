package riotservice

import (
	"context"
	"testing"

	"nocslol/api/services/testutil"
	accountfetcher "nocslol/fetcher/data/account"
	challengesfetcher "nocslol/fetcher/data/challenges"
	masteryfetcher "nocslol/fetcher/data/mastery"
	summonerfetcher "nocslol/fetcher/data/summoner"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Helper to initialize the mocks.
func setupTestService() (
	*RiotService,
	*testutil.MockAccountFetcher,
	*testutil.MockSummonerFetcher,
	*testutil.MockMasteryFetcher,
	*testutil.MockChallengesFetcher,
) {
	mockAccounts := new(testutil.MockAccountFetcher)
	mockSummoners := new(testutil.MockSummonerFetcher)
	mockMasteries := new(testutil.MockMasteryFetcher)
	mockChallenges := new(testutil.MockChallengesFetcher)

	service := NewRiotService(&RiotServiceDeps{
		Accounts:   mockAccounts,
		Summoners:  mockSummoners,
		Leagues:    new(testutil.MockLeagueFetcher),
		Masteries:  mockMasteries,
		Challenges: mockChallenges,
	})

	return service, mockAccounts, mockSummoners, mockMasteries, mockChallenges
}

func TestGetAccountResolvesRiotId(t *testing.T) {
	service, mockAccounts, _, _, _ := setupTestService()

	mockAccounts.On("GetByRiotId", mock.Anything, "0 cs", "shen").
		Return(&accountfetcher.RiotAccount{Puuid: "puuid-1", GameName: "0 cs", TagLine: "shen"}, nil).Once()

	account, err := service.GetAccount(context.Background(), "0 cs", "shen")

	assert.NoError(t, err)
	assert.Equal(t, "puuid-1", account.Puuid)

	testutil.VerifyAllMocks(t, mockAccounts)
}

func TestGetSummonerPassesNotFoundThrough(t *testing.T) {
	service, _, mockSummoners, _, _ := setupTestService()

	mockSummoners.On("GetByPuuid", mock.Anything, "na1", "puuid-1").
		Return(nil, summonerfetcher.ErrSummonerNotFound).Once()

	summoner, err := service.GetSummoner(context.Background(), "na1", "puuid-1")

	assert.Nil(t, summoner)
	assert.ErrorIs(t, err, summonerfetcher.ErrSummonerNotFound)

	testutil.VerifyAllMocks(t, mockSummoners)
}

func TestGetTopMasteriesForwardsCount(t *testing.T) {
	service, _, _, mockMasteries, _ := setupTestService()

	mockMasteries.On("GetTopByPuuid", mock.Anything, "na1", "puuid-1", 5).
		Return([]masteryfetcher.MasteryEntry{{ChampionId: 98, ChampionLevel: 7}}, nil).Once()

	masteries, err := service.GetTopMasteries(context.Background(), "na1", "puuid-1", 5)

	assert.NoError(t, err)
	assert.Len(t, masteries, 1)
	assert.Equal(t, 98, masteries[0].ChampionId)

	testutil.VerifyAllMocks(t, mockMasteries)
}

func TestGetChallengesReturnsPlayerData(t *testing.T) {
	service, _, _, _, mockChallenges := setupTestService()

	mockChallenges.On("GetPlayerData", mock.Anything, "na1", "puuid-1").
		Return(&challengesfetcher.PlayerChallenges{
			TotalPoints: challengesfetcher.ChallengePoints{Level: "GOLD", Current: 2450},
		}, nil).Once()

	challenges, err := service.GetChallenges(context.Background(), "na1", "puuid-1")

	assert.NoError(t, err)
	assert.Equal(t, "GOLD", challenges.TotalPoints.Level)

	testutil.VerifyAllMocks(t, mockChallenges)
}
