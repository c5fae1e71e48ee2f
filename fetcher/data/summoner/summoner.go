package summonerfetcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"nocslol/fetcher/requests"
	"nocslol/pkg/regions"
)

// ErrSummonerNotFound is returned when the PUUID has no summoner on the platform.
var ErrSummonerNotFound = errors.New("summoner not found")

// The summoner fetcher with it's limiter.
type SummonerFetcher struct {
	limiter *requests.RateLimiter
}

// Create a instance of the summoner fetcher.
func CreateSummonerFetcher(limiter *requests.RateLimiter) *SummonerFetcher {
	return &SummonerFetcher{
		limiter: limiter,
	}
}

// Summoner is the summoner-v4 response.
type Summoner struct {
	Id            string `json:"id"`
	AccountId     string `json:"accountId"`
	Puuid         string `json:"puuid"`
	ProfileIconId int    `json:"profileIconId"`
	RevisionDate  int64  `json:"revisionDate"`
	SummonerLevel int    `json:"summonerLevel"`
}

// GetByPuuid returns the summoner for the PUUID on a given platform.
func (s *SummonerFetcher) GetByPuuid(ctx context.Context, platform string, puuid string) (*Summoner, error) {
	s.limiter.Wait()

	reqURL := fmt.Sprintf("https://%s.api.riotgames.com/lol/summoner/v4/summoners/by-puuid/%s", platform, puuid)

	resp, err := requests.AuthRequest(ctx, reqURL, "GET")
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrSummonerNotFound
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status code %d", resp.StatusCode)
	}

	var summoner Summoner
	if err := json.NewDecoder(resp.Body).Decode(&summoner); err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}

	return &summoner, nil
}

// FindPlatform scans the known platforms in a fixed order until one
// resolves the PUUID. Used when the caller doesn't know the player region.
// Each platform is a resolution strategy; the first success wins.
func (s *SummonerFetcher) FindPlatform(ctx context.Context, puuid string) (string, *Summoner, error) {
	for _, platform := range regions.ScanOrder {
		summoner, err := s.GetByPuuid(ctx, string(platform), puuid)
		if err != nil {
			continue
		}
		return string(platform), summoner, nil
	}

	return "", nil, ErrSummonerNotFound
}
