package filters

import (
	"errors"
	"strings"
)

// ErrInvalidRiotId is returned when the summoner param is not "GameName#Tagline".
var ErrInvalidRiotId = errors.New("invalid riot id format, use GameName#Tagline")

// Query parameters for the overlay stats preview.
type OverlayStatsQueryParams struct {
	Summoner   string `form:"summoner" binding:"required"`
	Region     string `form:"region" binding:"required"`
	TimeFilter string `form:"timeFilter,default=all"`
}

// OverlayStatsFilter is the resolved filter handed to the stats service.
type OverlayStatsFilter struct {
	GameName   string
	TagLine    string
	Summoner   string
	Region     string
	TimeFilter string
}

// NewOverlayStatsFilter splits the riot id and builds the service filter.
func NewOverlayStatsFilter(qp *OverlayStatsQueryParams) (*OverlayStatsFilter, error) {
	parts := strings.Split(qp.Summoner, "#")
	if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" || strings.TrimSpace(parts[1]) == "" {
		return nil, ErrInvalidRiotId
	}

	return &OverlayStatsFilter{
		GameName:   strings.TrimSpace(parts[0]),
		TagLine:    strings.TrimSpace(parts[1]),
		Summoner:   qp.Summoner,
		Region:     strings.ToLower(strings.TrimSpace(qp.Region)),
		TimeFilter: qp.TimeFilter,
	}, nil
}
