package filters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewOverlayStatsFilter(t *testing.T) {
	tests := []struct {
		name             string
		summoner         string
		region           string
		expectedError    error
		expectedGameName string
		expectedTagLine  string
	}{
		{
			name:             "validRiotId",
			summoner:         "0 cs#shen",
			region:           "na1",
			expectedGameName: "0 cs",
			expectedTagLine:  "shen",
		},
		{
			name:             "trimsWhitespace",
			summoner:         " 0 cs # shen ",
			region:           "NA1",
			expectedGameName: "0 cs",
			expectedTagLine:  "shen",
		},
		{
			name:          "missingTagline",
			summoner:      "0 cs",
			region:        "na1",
			expectedError: ErrInvalidRiotId,
		},
		{
			name:          "emptyGameName",
			summoner:      "#shen",
			region:        "na1",
			expectedError: ErrInvalidRiotId,
		},
		{
			name:          "doubleSeparator",
			summoner:      "0#cs#shen",
			region:        "na1",
			expectedError: ErrInvalidRiotId,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := NewOverlayStatsFilter(&OverlayStatsQueryParams{
				Summoner:   tt.summoner,
				Region:     tt.region,
				TimeFilter: "all",
			})

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, filter)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedGameName, filter.GameName)
			assert.Equal(t, tt.expectedTagLine, filter.TagLine)
			assert.Equal(t, "na1", filter.Region)
		})
	}
}
