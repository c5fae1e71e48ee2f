package filters

import "strings"

// Query parameters for the account lookup adapter.
type RiotAccountQueryParams struct {
	Summoner string `form:"summoner" binding:"required"`
}

// RiotId splits the summoner param into game name and tag line.
func (q *RiotAccountQueryParams) RiotId() (string, string, error) {
	parts := strings.Split(q.Summoner, "#")
	if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" || strings.TrimSpace(parts[1]) == "" {
		return "", "", ErrInvalidRiotId
	}

	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), nil
}

// Query parameters for the PUUID scoped lookup adapters.
type RiotPlayerQueryParams struct {
	Region string `form:"region" binding:"required"`
	Puuid  string `form:"puuid" binding:"required"`
}

// Query parameters for the mastery lookup adapter.
type RiotMasteryQueryParams struct {
	Region string `form:"region" binding:"required"`
	Puuid  string `form:"puuid" binding:"required"`
	Count  int    `form:"count,default=3" binding:"omitempty,min=1,max=10"`
}

// Query parameters for the league entries adapter.
type RiotLeagueQueryParams struct {
	Region     string `form:"region" binding:"required"`
	SummonerId string `form:"summonerId" binding:"required"`
}
