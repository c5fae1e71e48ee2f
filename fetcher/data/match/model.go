package matchfetcher

import (
	"encoding/json"
	"time"
)

// Handle the conversion of the int timestamps from riot.
type RiotTime time.Time

// Add the riot time UnmarshalJSON.
func (rt *RiotTime) UnmarshalJSON(b []byte) error {
	var timestamp int64
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}

	// Convert milliseconds to time.Time
	*rt = RiotTime(time.UnixMilli(timestamp))
	return nil
}

// Get the true time.
func (rt RiotTime) Time() time.Time {
	return time.Time(rt)
}

// Return type from the match_v5 endpoint.
// Only the fields the boundary mapping reads are declared.
type matchData struct {
	Metadata matchMetadata `json:"metadata"`
	Info     matchInfo     `json:"info"`
}

type matchMetadata struct {
	MatchId      string   `json:"matchId"`
	Participants []string `json:"participants"`
}

type matchInfo struct {
	GameCreation RiotTime           `json:"gameCreation"`
	GameDuration int                `json:"gameDuration"`
	GameMode     string             `json:"gameMode"`
	Participants []matchParticipant `json:"participants"`
}

type matchParticipant struct {
	Puuid                string `json:"puuid"`
	ChampionName         string `json:"championName"`
	Kills                int    `json:"kills"`
	Deaths               int    `json:"deaths"`
	Assists              int    `json:"assists"`
	TotalMinionsKilled   int    `json:"totalMinionsKilled"`
	NeutralMinionsKilled int    `json:"neutralMinionsKilled"`
	WardsKilled          int    `json:"wardsKilled"`
	TeamPosition         string `json:"teamPosition"`
	Win                  bool   `json:"win"`
}
