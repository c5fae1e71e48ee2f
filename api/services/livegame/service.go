package livegameservice

import (
	"context"
	"fmt"

	"nocslol/api/dto"
	championrepo "nocslol/api/repositories/champion"
	championservice "nocslol/api/services/champion"
	spectatorfetcher "nocslol/fetcher/data/spectator"

	"gorm.io/gorm"
)

// SpectatorSource is the capability interface over the live game lookup.
type SpectatorSource interface {
	GetActiveGame(ctx context.Context, platform string, puuid string) (*spectatorfetcher.ActiveGame, error)
}

// LiveGameService reshapes the active game feed and cross-references every
// participant champion against the CS mechanics database.
type LiveGameService struct {
	ChampionRepository championrepo.ChampionRepository
	spectator          SpectatorSource
}

// LiveGameServiceDeps is the dependency list for the live game service.
type LiveGameServiceDeps struct {
	DB        *gorm.DB
	Spectator SpectatorSource
}

// NewLiveGameService creates the live game service.
func NewLiveGameService(deps *LiveGameServiceDeps) *LiveGameService {
	return &LiveGameService{
		ChampionRepository: championrepo.NewChampionRepository(deps.DB),
		spectator:          deps.Spectator,
	}
}

// GetLiveGame returns the current game for a player with the danger
// analysis attached to every participant.
// spectatorfetcher.ErrNoActiveGame passes through untouched, so handlers
// can answer "not in game" instead of a lookup failure.
func (ls *LiveGameService) GetLiveGame(ctx context.Context, platform string, puuid string) (*dto.LiveGame, error) {
	game, err := ls.spectator.GetActiveGame(ctx, platform, puuid)
	if err != nil {
		return nil, err
	}

	live := &dto.LiveGame{
		GameId:       game.GameId,
		GameMode:     game.GameMode,
		GameType:     game.GameType,
		MapId:        game.MapId,
		GameLength:   game.GameLength,
		PlatformId:   game.PlatformId,
		Participants: make([]dto.LiveGameParticipant, 0, len(game.Participants)),
	}

	for i := range game.Participants {
		live.Participants = append(live.Participants, ls.mapParticipant(ctx, &game.Participants[i]))
	}

	return live, nil
}

// mapParticipant reshapes one spectator participant, resolving the champion
// by its numeric key. An unknown key gets the cautious verdict.
func (ls *LiveGameService) mapParticipant(ctx context.Context, participant *spectatorfetcher.GameParticipant) dto.LiveGameParticipant {
	mapped := dto.LiveGameParticipant{
		SummonerName: participant.SummonerName,
		ChampionId:   participant.ChampionId,
		TeamId:       participant.TeamId,
		Spell1Id:     participant.Spell1Id,
		Spell2Id:     participant.Spell2Id,
		Runes:        participant.Perks.PerkIds,
		Level:        participant.SummonerLevel,
	}

	champion, err := ls.ChampionRepository.GetChampionByKey(ctx, participant.ChampionId)
	if err != nil {
		name := fmt.Sprintf("Champion %d", participant.ChampionId)
		mapped.ChampionName = name
		mapped.Analysis = &dto.ChampionAnalysis{
			Name:        name,
			IsDangerous: true,
			Notes:       "Unknown champion, assume its abilities can kill minions",
		}
		return mapped
	}

	mapped.ChampionName = champion.Name
	mapped.Analysis = championservice.Analyze(champion)

	return mapped
}
