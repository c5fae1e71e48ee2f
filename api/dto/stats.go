package dto

import "time"

// AggregateStats is the accumulator produced by folding every in-window
// match record. Derived on each request, never persisted.
type AggregateStats struct {
	TotalCS         int `json:"totalCS"`
	MinionsSlain    int `json:"minionsSlain"`
	JungleMonsters  int `json:"jungleMonsters"`
	WardsKilled     int `json:"wardsKilled"`
	PerfectGames    int `json:"perfectGames"`
	Wins            int `json:"wins"`
	Losses          int `json:"losses"`
	GamesConsidered int `json:"gamesConsidered"`
}

// ChampionMastery is one top mastery entry carried on the overlay payload.
type ChampionMastery struct {
	ChampionId int `json:"championId"`
	Level      int `json:"level"`
	Points     int `json:"points"`
}

// ChallengeSummary is the overall challenge score carried on the overlay
// payload.
type ChallengeSummary struct {
	Level             string  `json:"level"`
	Current           int     `json:"current"`
	Percentile        float64 `json:"percentile"`
	ChallengesTracked int     `json:"challengesTracked"`
}

// OverlayStats is the externally visible overlay payload.
// IsPlaceholder marks synthetic sample data so consumers can show
// "no data" instead of implying a real 0 CS streak.
type OverlayStats struct {
	SummonerName        string `json:"summonerName"`
	Region              string `json:"region"`
	TimeFilter          string `json:"timeFilter"`
	Level               int    `json:"level"`
	Rank                string `json:"rank"`
	WinRate             string `json:"winRate"`
	TotalGames          int    `json:"totalGames"`
	PerfectGames        int    `json:"perfectGames"`
	TotalCS             int    `json:"totalCS"`
	MinionsSlain        int    `json:"minionsSlain"`
	JungleMonsters      int    `json:"jungleMonsters"`
	WardsKilled         int    `json:"wardsKilled"`
	TotalMatchesFetched int    `json:"totalMatchesFetched"`

	// Best effort enrichment: absent when the lookups fail.
	TopMasteries []ChampionMastery `json:"topMasteries,omitempty"`
	Challenges   *ChallengeSummary `json:"challenges,omitempty"`

	IsPlaceholder bool      `json:"isPlaceholder"`
	Note          string    `json:"note,omitempty"`
	LastUpdated   time.Time `json:"lastUpdated"`
}
