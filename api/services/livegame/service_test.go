package livegameservice

import (
	"context"
	"testing"

	championrepo "nocslol/api/repositories/champion"
	"nocslol/api/services/testutil"
	spectatorfetcher "nocslol/fetcher/data/spectator"
	"nocslol/pkg/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Helper to initialize the mocks.
func setupTestService() (*LiveGameService, *testutil.MockChampionRepository, *testutil.MockSpectatorFetcher) {
	mockRepo := new(testutil.MockChampionRepository)
	mockSpectator := new(testutil.MockSpectatorFetcher)

	service := &LiveGameService{
		ChampionRepository: mockRepo,
		spectator:          mockSpectator,
	}

	return service, mockRepo, mockSpectator
}

func testActiveGame() *spectatorfetcher.ActiveGame {
	game := &spectatorfetcher.ActiveGame{
		GameId:     42,
		GameMode:   "CLASSIC",
		GameType:   "MATCHED",
		MapId:      11,
		GameLength: 900,
		PlatformId: "NA1",
		Participants: []spectatorfetcher.GameParticipant{
			{Puuid: "puuid-1", SummonerName: "0 cs#shen", ChampionId: 98, TeamId: 100, SummonerLevel: 156},
			{Puuid: "puuid-2", SummonerName: "enemy#na1", ChampionId: 412, TeamId: 200, SummonerLevel: 99},
		},
	}
	game.Participants[0].Perks.PerkIds = []int64{8437, 8446}

	return game
}

func TestGetLiveGameCrossReferencesChampions(t *testing.T) {
	service, mockRepo, mockSpectator := setupTestService()

	mockSpectator.On("GetActiveGame", mock.Anything, "na1", "puuid-1").
		Return(testActiveGame(), nil).Once()

	mockRepo.On("GetChampionByKey", mock.Anything, 98).
		Return(&models.Champion{
			ID:   "Shen",
			Key:  98,
			Name: "Shen",
			Abilities: []models.ChampionAbility{
				{Key: "Q", Name: "Twilight Assault", GivesCS: true},
			},
		}, nil).Once()
	mockRepo.On("GetChampionByKey", mock.Anything, 412).
		Return(&models.Champion{ID: "Thresh", Key: 412, Name: "Thresh"}, nil).Once()

	live, err := service.GetLiveGame(context.Background(), "na1", "puuid-1")

	assert.NoError(t, err)
	assert.Equal(t, int64(42), live.GameId)
	assert.Len(t, live.Participants, 2)

	shen := live.Participants[0]
	assert.Equal(t, "Shen", shen.ChampionName)
	assert.Equal(t, []int64{8437, 8446}, shen.Runes)
	assert.NotNil(t, shen.Analysis)
	assert.True(t, shen.Analysis.IsDangerous)

	thresh := live.Participants[1]
	assert.Equal(t, "Thresh", thresh.ChampionName)
	assert.False(t, thresh.Analysis.IsDangerous)

	testutil.VerifyAllMocks(t, mockRepo, mockSpectator)
}

func TestGetLiveGameUnknownChampionGetsCautiousVerdict(t *testing.T) {
	service, mockRepo, mockSpectator := setupTestService()

	game := testActiveGame()
	game.Participants = game.Participants[:1]

	mockSpectator.On("GetActiveGame", mock.Anything, "na1", "puuid-1").
		Return(game, nil).Once()
	mockRepo.On("GetChampionByKey", mock.Anything, 98).
		Return(nil, championrepo.ErrChampionNotFound).Once()

	live, err := service.GetLiveGame(context.Background(), "na1", "puuid-1")

	assert.NoError(t, err)
	assert.Equal(t, "Champion 98", live.Participants[0].ChampionName)
	assert.True(t, live.Participants[0].Analysis.IsDangerous)

	testutil.VerifyAllMocks(t, mockRepo, mockSpectator)
}

func TestGetLiveGamePassesThroughNoActiveGame(t *testing.T) {
	service, _, mockSpectator := setupTestService()

	mockSpectator.On("GetActiveGame", mock.Anything, "na1", "puuid-1").
		Return(nil, spectatorfetcher.ErrNoActiveGame).Once()

	live, err := service.GetLiveGame(context.Background(), "na1", "puuid-1")

	assert.Nil(t, live)
	assert.ErrorIs(t, err, spectatorfetcher.ErrNoActiveGame)

	testutil.VerifyAllMocks(t, mockSpectator)
}
