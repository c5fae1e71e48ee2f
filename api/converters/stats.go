package converters

import (
	"fmt"
	"nocslol/api/dto"
	"time"
)

// Placeholder sample values shown when no matches fall inside the window.
// Clearly flagged through IsPlaceholder so consumers never mistake them
// for a real 0 CS streak.
const (
	placeholderNote         = "Sample NoCS data - no matches found in the selected window"
	placeholderGames        = 15
	placeholderPerfectGames = 8
	placeholderWardsKilled  = 45
	placeholderWinRate      = "8/15"
)

// OverlayMeta is the request scoped context the projection needs besides
// the accumulator itself.
type OverlayMeta struct {
	SummonerName   string
	Region         string
	TimeFilter     string
	Level          int
	Rank           string
	MatchesFetched int
	TopMasteries   []dto.ChampionMastery
	Challenges     *dto.ChallengeSummary
}

// FormatWinRate formats wins/(wins+losses) as a percentage with one
// decimal place. Defined as "0.0%" when no games were played.
func FormatWinRate(wins int, losses int) string {
	total := wins + losses
	if total == 0 {
		return "0.0%"
	}

	return fmt.Sprintf("%.1f%%", float64(wins)/float64(total)*100)
}

// BuildOverlayStats projects the accumulator into the external payload.
// Pure: never touches the cache or the remote source.
func BuildOverlayStats(agg *dto.AggregateStats, meta *OverlayMeta) *dto.OverlayStats {
	stats := &dto.OverlayStats{
		SummonerName:        meta.SummonerName,
		Region:              meta.Region,
		TimeFilter:          meta.TimeFilter,
		Level:               meta.Level,
		Rank:                meta.Rank,
		TotalMatchesFetched: meta.MatchesFetched,
		TopMasteries:        meta.TopMasteries,
		Challenges:          meta.Challenges,
		LastUpdated:         time.Now().UTC(),
	}

	if agg.GamesConsidered == 0 {
		stats.IsPlaceholder = true
		stats.Note = placeholderNote
		stats.TotalGames = placeholderGames
		stats.PerfectGames = placeholderPerfectGames
		stats.WardsKilled = placeholderWardsKilled
		stats.WinRate = placeholderWinRate
		return stats
	}

	stats.TotalGames = agg.GamesConsidered
	stats.PerfectGames = agg.PerfectGames
	stats.TotalCS = agg.TotalCS
	stats.MinionsSlain = agg.MinionsSlain
	stats.JungleMonsters = agg.JungleMonsters
	stats.WardsKilled = agg.WardsKilled
	stats.WinRate = FormatWinRate(agg.Wins, agg.Losses)

	return stats
}
