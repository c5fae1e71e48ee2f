package converters

import (
	"nocslol/api/dto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatWinRate(t *testing.T) {
	tests := []struct {
		name     string
		wins     int
		losses   int
		expected string
	}{
		{name: "mixedRecord", wins: 8, losses: 7, expected: "53.3%"},
		{name: "noGames", wins: 0, losses: 0, expected: "0.0%"},
		{name: "allWins", wins: 10, losses: 0, expected: "100.0%"},
		{name: "allLosses", wins: 0, losses: 4, expected: "0.0%"},
		{name: "exactHalf", wins: 5, losses: 5, expected: "50.0%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatWinRate(tt.wins, tt.losses))
		})
	}
}

func TestBuildOverlayStatsProjectsAccumulator(t *testing.T) {
	agg := &dto.AggregateStats{
		TotalCS:         2,
		MinionsSlain:    2,
		JungleMonsters:  0,
		WardsKilled:     12,
		PerfectGames:    1,
		Wins:            8,
		Losses:          7,
		GamesConsidered: 15,
	}
	meta := &OverlayMeta{
		SummonerName:   "0 cs#shen",
		Region:         "na1",
		TimeFilter:     "7d",
		Level:          156,
		Rank:           "GOLD IV",
		MatchesFetched: 20,
	}

	stats := BuildOverlayStats(agg, meta)

	assert.False(t, stats.IsPlaceholder)
	assert.Empty(t, stats.Note)
	assert.Equal(t, "53.3%", stats.WinRate)
	assert.Equal(t, 15, stats.TotalGames)
	assert.Equal(t, 1, stats.PerfectGames)
	assert.Equal(t, 2, stats.TotalCS)
	assert.Equal(t, 12, stats.WardsKilled)
	assert.Equal(t, "GOLD IV", stats.Rank)
	assert.Equal(t, 20, stats.TotalMatchesFetched)
}

func TestBuildOverlayStatsFlagsPlaceholder(t *testing.T) {
	stats := BuildOverlayStats(&dto.AggregateStats{}, &OverlayMeta{
		SummonerName: "0 cs#shen",
		Region:       "na1",
		TimeFilter:   "today",
	})

	assert.True(t, stats.IsPlaceholder)
	assert.NotEmpty(t, stats.Note)
	// Placeholder must not claim a real 0% win rate.
	assert.NotEqual(t, "0.0%", stats.WinRate)
	assert.Equal(t, 0, stats.TotalCS)
}
