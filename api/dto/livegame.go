package dto

// LiveGame is the reshaped active game payload with the danger
// cross-reference applied to every participant.
type LiveGame struct {
	GameId       int64                 `json:"gameId"`
	GameMode     string                `json:"gameMode"`
	GameType     string                `json:"gameType"`
	MapId        int                   `json:"mapId"`
	GameLength   int64                 `json:"gameLength"`
	PlatformId   string                `json:"platformId"`
	Participants []LiveGameParticipant `json:"participants"`
}

// LiveGameParticipant is one player in a live game.
type LiveGameParticipant struct {
	SummonerName string            `json:"summonerName"`
	ChampionId   int               `json:"championId"`
	ChampionName string            `json:"championName"`
	TeamId       int               `json:"teamId"`
	Spell1Id     int               `json:"spell1Id"`
	Spell2Id     int               `json:"spell2Id"`
	Runes        []int64           `json:"runes"`
	Level        int               `json:"level"`
	Analysis     *ChampionAnalysis `json:"analysis,omitempty"`
}
