package requests

import (
	"context"
	"errors"
	"net/http"
	"nocslol/pkg/config"
	"time"
)

// Shared client for every Riot request, reusing connections.
var client = &http.Client{
	Timeout: 15 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        20,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	},
}

// Do a authenticated request to the Riot API.
// Return the response.
func AuthRequest(ctx context.Context, url string, method string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, err
	}

	if config.Riot.ApiKey == "" {
		return nil, errors.New("can't do a authenticated request without the API key")
	}

	// Add the token from the .env
	req.Header.Set("X-Riot-Token", config.Riot.ApiKey)
	return client.Do(req)
}

// Create a simple unauthenticated request and return it.
func Request(ctx context.Context, url string, method string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, err
	}
	return client.Do(req)
}
