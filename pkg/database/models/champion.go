package models

// Database model for a champion and its CS mechanics summary.
type Champion struct {
	ID                 string `gorm:"primaryKey;type:varchar(50)" json:"id"`
	Key                int    `gorm:"uniqueIndex" json:"key"`
	Name               string `gorm:"uniqueIndex;type:varchar(50)" json:"name"`
	Title              string `gorm:"type:varchar(100)" json:"title"`
	Image              string `gorm:"type:varchar(100)" json:"image"`
	Strategy           string `gorm:"type:text" json:"strategy"`
	BasicAttacksGiveCS bool   `json:"basicAttacksGiveCS"`

	Abilities []ChampionAbility `gorm:"foreignKey:ChampionID;constraint:OnDelete:CASCADE" json:"abilities"`
}

// Database model for a single champion ability annotation.
// GivesCS marks abilities that can accidentally credit creep score.
type ChampionAbility struct {
	ID          uint   `gorm:"primaryKey" json:"-"`
	ChampionID  string `gorm:"not null;index:idx_champion_ability,unique;type:varchar(50)" json:"-"`
	Key         string `gorm:"not null;index:idx_champion_ability,unique;type:varchar(10)" json:"key"`
	Name        string `gorm:"type:varchar(100)" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Notes       string `gorm:"type:text" json:"notes"`
	GivesCS     bool   `json:"givesCS"`
}
