package matchfetcher

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRiotTimeUnmarshalsMilliseconds(t *testing.T) {
	var decoded struct {
		GameCreation RiotTime `json:"gameCreation"`
	}

	err := json.Unmarshal([]byte(`{"gameCreation": 1749988800000}`), &decoded)

	assert.NoError(t, err)
	assert.Equal(t, time.UnixMilli(1749988800000), decoded.GameCreation.Time())
}

func TestMapRecordNarrowsToPlayer(t *testing.T) {
	match := &matchData{
		Metadata: matchMetadata{
			MatchId:      "NA1_1",
			Participants: []string{"puuid-1", "puuid-2"},
		},
		Info: matchInfo{
			GameCreation: RiotTime(time.UnixMilli(1749988800000)),
			GameDuration: 1800,
			GameMode:     "CLASSIC",
			Participants: []matchParticipant{
				{
					Puuid:                "puuid-1",
					ChampionName:         "Shen",
					Kills:                2,
					Deaths:               4,
					Assists:              11,
					TotalMinionsKilled:   0,
					NeutralMinionsKilled: 0,
					WardsKilled:          3,
					TeamPosition:         "TOP",
					Win:                  true,
				},
				{
					Puuid:              "puuid-2",
					ChampionName:       "Zed",
					TotalMinionsKilled: 220,
				},
			},
		},
	}

	record := mapRecord(match, "puuid-1")

	assert.NotNil(t, record)
	assert.Equal(t, "NA1_1", record.MatchId)
	assert.Equal(t, "Shen", record.ChampionName)
	assert.Equal(t, 0, record.MinionKills)
	assert.Equal(t, 3, record.WardsKilled)
	assert.True(t, record.Win)
	assert.True(t, record.Perfect())
	assert.Equal(t, time.UnixMilli(1749988800000), record.PlayedAt)
}

func TestMapRecordReturnsNilForAbsentPlayer(t *testing.T) {
	match := &matchData{
		Metadata: matchMetadata{MatchId: "NA1_1"},
		Info: matchInfo{
			Participants: []matchParticipant{{Puuid: "puuid-2"}},
		},
	}

	assert.Nil(t, mapRecord(match, "puuid-1"))
}

func TestMatchRecordCreepScore(t *testing.T) {
	record := &MatchRecord{MinionKills: 3, NeutralMinionKills: 4}

	assert.Equal(t, 7, record.TotalCS())
	assert.False(t, record.Perfect())

	zero := &MatchRecord{}
	assert.Equal(t, 0, zero.TotalCS())
	assert.True(t, zero.Perfect())
}
