package masteryfetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"nocslol/fetcher/requests"
)

// The mastery fetcher with it's limiter.
type MasteryFetcher struct {
	limiter *requests.RateLimiter
}

// Create a instance of the mastery fetcher.
func CreateMasteryFetcher(limiter *requests.RateLimiter) *MasteryFetcher {
	return &MasteryFetcher{
		limiter: limiter,
	}
}

// MasteryEntry is a single champion-mastery-v4 entry.
type MasteryEntry struct {
	ChampionId     int   `json:"championId"`
	ChampionLevel  int   `json:"championLevel"`
	ChampionPoints int   `json:"championPoints"`
	LastPlayTime   int64 `json:"lastPlayTime"`
}

// GetTopByPuuid returns the top champion masteries for a player on a
// given platform. A player without mastery data resolves to an empty list.
func (m *MasteryFetcher) GetTopByPuuid(ctx context.Context, platform string, puuid string, count int) ([]MasteryEntry, error) {
	m.limiter.Wait()

	reqURL := fmt.Sprintf(
		"https://%s.api.riotgames.com/lol/champion-mastery/v4/champion-masteries/by-puuid/%s/top?count=%d",
		platform, puuid, count,
	)

	resp, err := requests.AuthRequest(ctx, reqURL, "GET")
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status code %d", resp.StatusCode)
	}

	var entries []MasteryEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}

	return entries, nil
}
