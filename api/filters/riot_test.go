package filters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRiotAccountQueryParamsRiotId(t *testing.T) {
	tests := []struct {
		name     string
		summoner string
		gameName string
		tagLine  string
		wantErr  bool
	}{
		{name: "valid", summoner: "0 cs#shen", gameName: "0 cs", tagLine: "shen"},
		{name: "trimsWhitespace", summoner: " 0 cs # shen ", gameName: "0 cs", tagLine: "shen"},
		{name: "missingTagline", summoner: "0 cs", wantErr: true},
		{name: "emptyGameName", summoner: "#shen", wantErr: true},
		{name: "doubleSeparator", summoner: "0#cs#shen", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qp := &RiotAccountQueryParams{Summoner: tt.summoner}
			gameName, tagLine, err := qp.RiotId()

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRiotId)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.gameName, gameName)
			assert.Equal(t, tt.tagLine, tagLine)
		})
	}
}
