package spectatorfetcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"nocslol/fetcher/requests"
)

// ErrNoActiveGame is returned when the player is not currently in a game.
// Callers must treat it as "no data", not as a lookup failure.
var ErrNoActiveGame = errors.New("no active game found")

// The spectator fetcher with it's limiter.
type SpectatorFetcher struct {
	limiter *requests.RateLimiter
}

// Create a instance of the spectator fetcher.
func CreateSpectatorFetcher(limiter *requests.RateLimiter) *SpectatorFetcher {
	return &SpectatorFetcher{
		limiter: limiter,
	}
}

// ActiveGame is the spectator-v5 response.
type ActiveGame struct {
	GameId       int64             `json:"gameId"`
	GameMode     string            `json:"gameMode"`
	GameType     string            `json:"gameType"`
	MapId        int               `json:"mapId"`
	GameLength   int64             `json:"gameLength"`
	PlatformId   string            `json:"platformId"`
	Participants []GameParticipant `json:"participants"`
}

// GameParticipant is one player inside an active game.
type GameParticipant struct {
	Puuid         string `json:"puuid"`
	SummonerName  string `json:"riotId"`
	ChampionId    int    `json:"championId"`
	TeamId        int    `json:"teamId"`
	Spell1Id      int    `json:"spell1Id"`
	Spell2Id      int    `json:"spell2Id"`
	SummonerLevel int    `json:"summonerLevel"`
	Perks         struct {
		PerkIds []int64 `json:"perkIds"`
	} `json:"perks"`
}

// GetActiveGame returns the live game the player is in, if any.
func (s *SpectatorFetcher) GetActiveGame(ctx context.Context, platform string, puuid string) (*ActiveGame, error) {
	s.limiter.Wait()

	reqURL := fmt.Sprintf("https://%s.api.riotgames.com/lol/spectator/v5/active-games/by-summoner/%s", platform, puuid)

	resp, err := requests.AuthRequest(ctx, reqURL, "GET")
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNoActiveGame
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status code %d", resp.StatusCode)
	}

	var game ActiveGame
	if err := json.NewDecoder(resp.Body).Decode(&game); err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}

	return &game, nil
}
