package assets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"nocslol/fetcher/requests"
	"nocslol/pkg/redis"
	"time"
)

const (
	ddragon    = "https://ddragon.leagueoflegends.com/"
	versionKey = "ddragon:version:latest"
	versionTTL = 6 * time.Hour

	// Pinned version used when both the cache and ddragon are unavailable.
	fallbackVersion = "14.24.1"
)

// versionStrategy is one way of resolving the data dragon version.
// Strategies are tried in order; the first success wins.
type versionStrategy struct {
	name    string
	resolve func(ctx context.Context) (string, error)
}

// VersionResolver resolves the latest data dragon version through an
// explicit ordered strategy list: redis cache, live ddragon, pinned fallback.
type VersionResolver struct {
	redis      *redis.RedisClient
	strategies []versionStrategy
}

// NewVersionResolver creates the resolver with its default strategy order.
func NewVersionResolver(redisClient *redis.RedisClient) *VersionResolver {
	vr := &VersionResolver{redis: redisClient}

	vr.strategies = []versionStrategy{
		{name: "cache", resolve: vr.fromCache},
		{name: "ddragon", resolve: vr.fromDDragon},
		{name: "pinned", resolve: vr.fromPinned},
	}

	return vr
}

// LatestVersion returns the first version a strategy resolves.
// The pinned fallback makes it total; it never returns an error in practice.
func (vr *VersionResolver) LatestVersion(ctx context.Context) (string, error) {
	var lastErr error
	for _, strategy := range vr.strategies {
		version, err := strategy.resolve(ctx)
		if err == nil && version != "" {
			return version, nil
		}
		lastErr = err
	}

	return "", fmt.Errorf("no version strategy succeeded: %w", lastErr)
}

// Try to find the latest version in the redis cache.
func (vr *VersionResolver) fromCache(ctx context.Context) (string, error) {
	if vr.redis == nil {
		return "", errors.New("redis not available")
	}
	return vr.redis.Get(ctx, versionKey)
}

// Fetch all the versions from the ddragon and cache the latest.
func (vr *VersionResolver) fromDDragon(ctx context.Context) (string, error) {
	url := fmt.Sprint(ddragon, "api/versions.json")
	resp, err := requests.Request(ctx, url, "GET")
	if err != nil {
		return "", fmt.Errorf("couldn't get the current version: %v", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("versions endpoint returned status code %d", resp.StatusCode)
	}

	// Read the version json/array into the version.
	var versions []string
	if err := json.NewDecoder(resp.Body).Decode(&versions); err != nil {
		return "", fmt.Errorf("couldn't convert the body to json: %v", err)
	}

	if len(versions) == 0 {
		return "", errors.New("no versions available")
	}

	if vr.redis != nil {
		vr.redis.Set(ctx, versionKey, versions[0], versionTTL)
	}

	return versions[0], nil
}

// Last resort pinned version.
func (vr *VersionResolver) fromPinned(ctx context.Context) (string, error) {
	return fallbackVersion, nil
}
