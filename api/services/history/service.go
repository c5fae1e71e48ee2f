package historyservice

import (
	"context"
	"fmt"

	"nocslol/api/dto"
	matchfetcher "nocslol/fetcher/data/match"
	"nocslol/pkg/logger"
	"nocslol/pkg/regions"
)

const (
	// The listing only looks at the most recent games.
	historyFetchCount = 20

	// A match qualifies as a low creep score run below this threshold.
	lowCSThreshold = 9
)

// SourceFactory builds a match source scoped to a routing region and player.
type SourceFactory func(routing regions.Routing, puuid string) matchfetcher.Source

// HistoryService serves the filtered low creep score match listing.
type HistoryService struct {
	newSource SourceFactory
	log       *logger.Logger
}

// NewHistoryService creates the history service.
func NewHistoryService(newSource SourceFactory, log *logger.Logger) *HistoryService {
	return &HistoryService{
		newSource: newSource,
		log:       log,
	}
}

// GetLowCSHistory returns the recent matches where the player kept the
// creep score at or below the threshold, newest first.
func (hs *HistoryService) GetLowCSHistory(ctx context.Context, platform string, puuid string) (*dto.LowCSMatchHistory, error) {
	src := hs.newSource(regions.RoutingForPlatform(platform), puuid)

	matchIds, err := src.ListMatchIds(ctx, 0, historyFetchCount)
	if err != nil {
		return nil, fmt.Errorf("couldn't list the recent matches: %w", err)
	}

	history := &dto.LowCSMatchHistory{
		Matches:      make([]dto.LowCSMatch, 0, len(matchIds)),
		TotalFetched: len(matchIds),
	}

	// Fetched in listing order so the payload stays newest first.
	for _, matchId := range matchIds {
		record, err := src.GetMatchDetail(ctx, matchId)
		if err != nil {
			hs.log.Errorf("couldn't fetch the match %s: %v", matchId, err)
			continue
		}
		if record == nil {
			continue
		}

		if record.TotalCS() > lowCSThreshold {
			continue
		}

		history.Matches = append(history.Matches, dto.LowCSMatch{
			MatchId:      record.MatchId,
			PlayedAt:     record.PlayedAt,
			GameMode:     record.GameMode,
			GameDuration: record.GameDuration,
			ChampionName: record.ChampionName,
			TeamPosition: record.TeamPosition,
			Kills:        record.Kills,
			Deaths:       record.Deaths,
			Assists:      record.Assists,
			TotalCS:      record.TotalCS(),
			WardsKilled:  record.WardsKilled,
			Win:          record.Win,
			Perfect:      record.Perfect(),
		})
	}

	history.TotalQualified = len(history.Matches)

	return history, nil
}
