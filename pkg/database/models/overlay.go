package models

import "time"

// Database model for a stream overlay configuration.
type OverlayConfig struct {
	ID               string `gorm:"primaryKey;type:varchar(64)" json:"id"`
	SummonerName     string `gorm:"not null;type:varchar(100)" json:"summonerName"`
	Region           string `gorm:"not null;type:varchar(10)" json:"region"`
	TimeFilter       string `gorm:"type:varchar(10);default:all" json:"timeFilter"`
	Theme            string `gorm:"type:varchar(20);default:dark" json:"theme"`
	ShowRank         bool   `gorm:"default:true" json:"showRank"`
	ShowWinRate      bool   `gorm:"default:true" json:"showWinRate"`
	ShowPerfectGames bool   `gorm:"default:true" json:"showPerfectGames"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
