package dto

import "time"

// LowCSMatch is one low creep score match in the history listing.
type LowCSMatch struct {
	MatchId      string    `json:"matchId"`
	PlayedAt     time.Time `json:"playedAt"`
	GameMode     string    `json:"gameMode"`
	GameDuration int       `json:"gameDuration"`
	ChampionName string    `json:"championName"`
	TeamPosition string    `json:"teamPosition"`
	Kills        int       `json:"kills"`
	Deaths       int       `json:"deaths"`
	Assists      int       `json:"assists"`
	TotalCS      int       `json:"totalCS"`
	WardsKilled  int       `json:"wardsKilled"`
	Win          bool      `json:"win"`
	Perfect      bool      `json:"perfect"`
}

// LowCSMatchHistory is the filtered history payload.
type LowCSMatchHistory struct {
	Matches        []LowCSMatch `json:"matches"`
	TotalFetched   int          `json:"totalFetched"`
	TotalQualified int          `json:"totalQualified"`
}
