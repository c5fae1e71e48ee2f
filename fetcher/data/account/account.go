package accountfetcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"nocslol/fetcher/requests"
)

// ErrAccountNotFound is returned when the riot id doesn't resolve to an account.
var ErrAccountNotFound = errors.New("account not found")

// The account fetcher with it's limiter.
// Account lookups always go through the americas routing.
type AccountFetcher struct {
	limiter *requests.RateLimiter
}

// Create a instance of the account fetcher.
func CreateAccountFetcher(limiter *requests.RateLimiter) *AccountFetcher {
	return &AccountFetcher{
		limiter: limiter,
	}
}

// RiotAccount is the account-v1 response.
type RiotAccount struct {
	Puuid    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

// GetByRiotId resolves a riot id (game name + tagline) into the stable PUUID.
func (a *AccountFetcher) GetByRiotId(ctx context.Context, gameName string, tagLine string) (*RiotAccount, error) {
	a.limiter.Wait()

	reqURL := fmt.Sprintf(
		"https://americas.api.riotgames.com/riot/account/v1/accounts/by-riot-id/%s/%s",
		url.PathEscape(gameName),
		url.PathEscape(tagLine),
	)

	resp, err := requests.AuthRequest(ctx, reqURL, "GET")
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrAccountNotFound
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status code %d", resp.StatusCode)
	}

	var account RiotAccount
	if err := json.NewDecoder(resp.Body).Decode(&account); err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}

	return &account, nil
}
