package dto

// ChampionSummary is one champion in the database listing.
type ChampionSummary struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Title              string `json:"title"`
	ImageURL           string `json:"imageUrl"`
	BasicAttacksGiveCS bool   `json:"basicAttacksGiveCS"`
	DangerousAbilities int    `json:"dangerousAbilities"`
}

// ChampionDetail is the full CS mechanics sheet for one champion.
type ChampionDetail struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Title              string          `json:"title"`
	ImageURL           string          `json:"imageUrl"`
	Strategy           string          `json:"strategy"`
	BasicAttacksGiveCS bool           `json:"basicAttacksGiveCS"`
	Abilities          []AbilitySheet `json:"abilities"`
}

// AbilitySheet is one annotated ability on the detail sheet.
type AbilitySheet struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Notes       string `json:"notes"`
	GivesCS     bool   `json:"givesCS"`
}

// AbilityDetail is one CS-dangerous ability in an analysis result.
type AbilityDetail struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Notes string `json:"notes"`
}

// ChampionAnalysis is the danger verdict for a single champion.
type ChampionAnalysis struct {
	Name                  string          `json:"name"`
	IsDangerous           bool            `json:"isDangerous"`
	DangerousAbilities    []string        `json:"dangerousAbilities"`
	AbilityDetails        []AbilityDetail `json:"abilityDetails"`
	Notes                 string          `json:"notes"`
	BasicAttacksDangerous bool            `json:"basicAttacksDangerous"`
}

// DailyTrivia is the day-seeded trivia payload.
type DailyTrivia struct {
	ChampionId    string `json:"championId"`
	ChampionName  string `json:"championName"`
	ChampionTitle string `json:"championTitle"`
	ChampionImage string `json:"championImage"`
	AbilityKey    string `json:"abilityKey"`
	AbilityName   string `json:"abilityName"`
	AbilityNotes  string `json:"abilityNotes"`
	GivesCS       bool   `json:"givesCS"`
	Date          string `json:"date"`
}
