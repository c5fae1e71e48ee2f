package filters

// URI params for the overlay config endpoints.
type OverlayURIParams struct {
	OverlayId string `uri:"overlayId" binding:"required"`
}

// OverlayConfigForm is the overlay configuration upsert body.
type OverlayConfigForm struct {
	Id               string `json:"id" binding:"required"`
	SummonerName     string `json:"summonerName" binding:"required"`
	Region           string `json:"region" binding:"required"`
	TimeFilter       string `json:"timeFilter"`
	Theme            string `json:"theme"`
	ShowRank         *bool  `json:"showRank"`
	ShowWinRate      *bool  `json:"showWinRate"`
	ShowPerfectGames *bool  `json:"showPerfectGames"`
}
