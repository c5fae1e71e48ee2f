package leaguefetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"nocslol/fetcher/requests"
)

// Queue type used for the preferred rank display.
const RankedSoloQueue = "RANKED_SOLO_5x5"

// The league fetcher with it's limiter.
type LeagueFetcher struct {
	limiter *requests.RateLimiter
}

// Create a instance of the league fetcher.
func CreateLeagueFetcher(limiter *requests.RateLimiter) *LeagueFetcher {
	return &LeagueFetcher{
		limiter: limiter,
	}
}

// LeagueEntry is a single league-v4 entry.
type LeagueEntry struct {
	QueueType    string `json:"queueType"`
	Tier         string `json:"tier"`
	Rank         string `json:"rank"`
	LeaguePoints int    `json:"leaguePoints"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
}

// GetEntries returns all league entries for a summoner on a given platform.
func (l *LeagueFetcher) GetEntries(ctx context.Context, platform string, summonerId string) ([]LeagueEntry, error) {
	l.limiter.Wait()

	reqURL := fmt.Sprintf("https://%s.api.riotgames.com/lol/league/v4/entries/by-summoner/%s", platform, summonerId)

	resp, err := requests.AuthRequest(ctx, reqURL, "GET")
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status code %d", resp.StatusCode)
	}

	var entries []LeagueEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}

	return entries, nil
}

// SoloQueueEntry picks the ranked solo queue entry, falling back to the
// first available queue when the player never played solo queue.
func SoloQueueEntry(entries []LeagueEntry) *LeagueEntry {
	for i := range entries {
		if entries[i].QueueType == RankedSoloQueue {
			return &entries[i]
		}
	}

	if len(entries) > 0 {
		return &entries[0]
	}

	return nil
}
