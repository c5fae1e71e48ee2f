package challengesfetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"nocslol/fetcher/requests"
)

// The challenges fetcher with it's limiter.
type ChallengesFetcher struct {
	limiter *requests.RateLimiter
}

// Create a instance of the challenges fetcher.
func CreateChallengesFetcher(limiter *requests.RateLimiter) *ChallengesFetcher {
	return &ChallengesFetcher{
		limiter: limiter,
	}
}

// ChallengePoints is the overall challenge score of a player.
type ChallengePoints struct {
	Level      string  `json:"level"`
	Current    int     `json:"current"`
	Max        int     `json:"max"`
	Percentile float64 `json:"percentile"`
}

// ChallengeEntry is a single challenge progress entry.
type ChallengeEntry struct {
	ChallengeId int64   `json:"challengeId"`
	Level       string  `json:"level"`
	Value       float64 `json:"value"`
	Percentile  float64 `json:"percentile"`
}

// PlayerChallenges is the challenges-v1 player-data response, narrowed to
// the fields the overlay shows.
type PlayerChallenges struct {
	TotalPoints ChallengePoints  `json:"totalPoints"`
	Challenges  []ChallengeEntry `json:"challenges"`
}

// GetPlayerData returns the challenge progress for a player on a given
// platform. A player without challenge data resolves to nil.
func (c *ChallengesFetcher) GetPlayerData(ctx context.Context, platform string, puuid string) (*PlayerChallenges, error) {
	c.limiter.Wait()

	reqURL := fmt.Sprintf("https://%s.api.riotgames.com/lol/challenges/v1/player-data/%s", platform, puuid)

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

	var challenges PlayerChallenges
	if err := json.NewDecoder(resp.Body).Decode(&challenges); err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}

	return &challenges, nil
}
