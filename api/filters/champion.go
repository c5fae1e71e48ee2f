package filters

import "strings"

// URI params for the champion endpoints.
type ChampionURIParams struct {
	ChampionId string `uri:"championId" binding:"required"`
}

// Query parameters for the champion analysis endpoint.
type ChampionAnalysisQueryParams struct {
	Champions string `form:"champions" binding:"required"`
}

// Body for a moderator-applied ability annotation correction.
type AbilityCorrectionForm struct {
	Key         string `json:"key" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Notes       string `json:"notes"`
	GivesCS     bool   `json:"givesCS"`
}

// Names returns the trimmed, non-empty champion names.
func (q *ChampionAnalysisQueryParams) Names() []string {
	raw := strings.Split(q.Champions, ",")
	names := make([]string, 0, len(raw))
	for _, name := range raw {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	return names
}
