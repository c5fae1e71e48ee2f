package matchfetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"nocslol/fetcher/requests"
	"nocslol/pkg/regions"
	"time"
)

// MatchRecord is one played match as seen by one player, narrowed at the
// boundary to the fields the aggregation actually reads. It is the unit
// persisted by the match cache; MatchId is globally unique.
type MatchRecord struct {
	MatchId            string    `json:"matchId"`
	PlayedAt           time.Time `json:"playedAt"`
	GameMode           string    `json:"gameMode"`
	GameDuration       int       `json:"gameDuration"`
	ChampionName       string    `json:"championName"`
	TeamPosition       string    `json:"teamPosition"`
	Kills              int       `json:"kills"`
	Deaths             int       `json:"deaths"`
	Assists            int       `json:"assists"`
	MinionKills        int       `json:"minionKills"`
	NeutralMinionKills int       `json:"neutralMinionKills"`
	WardsKilled        int       `json:"wardsKilled"`
	Win                bool      `json:"win"`
}

// TotalCS is the creep score credited to the player on this match.
func (m *MatchRecord) TotalCS() int {
	return m.MinionKills + m.NeutralMinionKills
}

// Perfect reports whether the match is a perfect NoCS game.
func (m *MatchRecord) Perfect() bool {
	return m.MinionKills == 0 && m.NeutralMinionKills == 0
}

// Source is the capability interface over the remote match listing service.
// ListMatchIds returns up to count ids starting at start, newest first; a
// short or empty page means there are no more pages. GetMatchDetail returns
// (nil, nil) when the match is reported missing, so one unavailable match
// never fails a batch.
type Source interface {
	ListMatchIds(ctx context.Context, start int, count int) ([]string, error)
	GetMatchDetail(ctx context.Context, matchId string) (*MatchRecord, error)
}

// The riot match source with it's limiter, routing region and the player
// the details are mapped for.
type RiotSource struct {
	limiter *requests.RateLimiter
	routing regions.Routing
	puuid   string
}

// Create a riot match source for a given player on a routing region.
func CreateRiotSource(limiter *requests.RateLimiter, routing regions.Routing, puuid string) *RiotSource {
	return &RiotSource{
		limiter: limiter,
		routing: routing,
		puuid:   puuid,
	}
}

// ListMatchIds returns one page of match ids for the player, newest first.
func (m *RiotSource) ListMatchIds(ctx context.Context, start int, count int) ([]string, error) {
	m.limiter.Wait()

	reqURL := fmt.Sprintf(
		"https://%s.api.riotgames.com/lol/match/v5/matches/by-puuid/%s/ids?start=%d&count=%d",
		m.routing, m.puuid, start, count,
	)

	resp, err := requests.AuthRequest(ctx, reqURL, "GET")
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status code %d", resp.StatusCode)
	}

	var matchIds []string
	if err := json.NewDecoder(resp.Body).Decode(&matchIds); err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}

	return matchIds, nil
}

// GetMatchDetail fetches one match and maps it to the player's record.
// A 404 from the remote is treated as absent, not as an error.
func (m *RiotSource) GetMatchDetail(ctx context.Context, matchId string) (*MatchRecord, error) {
	m.limiter.Wait()

	reqURL := fmt.Sprintf("https://%s.api.riotgames.com/lol/match/v5/matches/%s", m.routing, matchId)

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

	var match matchData
	if err := json.NewDecoder(resp.Body).Decode(&match); err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}

	return mapRecord(&match, m.puuid), nil
}

// mapRecord narrows the riot payload to the player's MatchRecord.
// Returns nil when the player is not part of the match.
func mapRecord(match *matchData, puuid string) *MatchRecord {
	var player *matchParticipant
	for i := range match.Info.Participants {
		if match.Info.Participants[i].Puuid == puuid {
			player = &match.Info.Participants[i]
			break
		}
	}

	if player == nil {
		return nil
	}

	return &MatchRecord{
		MatchId:            match.Metadata.MatchId,
		PlayedAt:           match.Info.GameCreation.Time(),
		GameMode:           match.Info.GameMode,
		GameDuration:       match.Info.GameDuration,
		ChampionName:       player.ChampionName,
		TeamPosition:       player.TeamPosition,
		Kills:              player.Kills,
		Deaths:             player.Deaths,
		Assists:            player.Assists,
		MinionKills:        player.TotalMinionsKilled,
		NeutralMinionKills: player.NeutralMinionsKilled,
		WardsKilled:        player.WardsKilled,
		Win:                player.Win,
	}
}
