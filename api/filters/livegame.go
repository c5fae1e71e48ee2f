package filters

// Query parameters for the live game lookup.
type LiveGameQueryParams struct {
	Puuid  string `form:"puuid" binding:"required"`
	Region string `form:"region" binding:"required"`
}

// Query parameters for the low CS match history.
type LowCSHistoryQueryParams struct {
	Puuid  string `form:"puuid" binding:"required"`
	Region string `form:"region" binding:"required"`
}
