package filters

// SubmissionForm is a community submission of a champion ability annotation.
type SubmissionForm struct {
	ChampionName     string `json:"championName" binding:"required"`
	AbilityName      string `json:"abilityName" binding:"required"`
	GivesCS          bool   `json:"givesCS"`
	Description      string `json:"description" binding:"required"`
	Proof            string `json:"proof" binding:"required"`
	ProofType        string `json:"proofType" binding:"omitempty,oneof=text link file"`
	AdditionalNotes  string `json:"additionalNotes"`
	SubmitterName    string `json:"submitterName" binding:"required"`
	SubmitterDiscord string `json:"submitterDiscord"`
}

// ContactForm is a contact form message.
type ContactForm struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}
