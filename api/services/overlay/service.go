package overlayservice

import (
	"context"
	"html/template"
	"io"
	"strings"

	"nocslol/api/dto"
	"nocslol/api/filters"
	overlayrepo "nocslol/api/repositories/overlay"
	"nocslol/pkg/database/models"

	"gorm.io/gorm"
)

// overlayTemplate is the browser source page rendered for OBS overlays.
// Kept minimal: the stream capture only needs the stat line.
const overlayTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta http-equiv="refresh" content="120">
<title>NoCS Overlay</title>
<style>
body { margin: 0; font-family: "Segoe UI", sans-serif; background: transparent; }
.overlay { display: inline-flex; gap: 14px; align-items: center; padding: 10px 16px; border-radius: 10px; }
.overlay.dark { background: rgba(16, 18, 26, 0.85); color: #e8e8ef; }
.overlay.light { background: rgba(245, 245, 250, 0.9); color: #1c1c28; }
.stat { text-align: center; }
.stat .value { font-size: 22px; font-weight: 700; }
.stat .label { font-size: 11px; text-transform: uppercase; opacity: 0.7; }
.placeholder { font-size: 12px; opacity: 0.6; }
</style>
</head>
<body>
<div class="overlay {{.Theme}}">
  <div class="stat"><div class="value">{{.Stats.SummonerName}}</div><div class="label">{{.Stats.Region}}</div></div>
  {{if .Config.ShowRank}}<div class="stat"><div class="value">{{.Stats.Rank}}</div><div class="label">Rank</div></div>{{end}}
  <div class="stat"><div class="value">{{.Stats.TotalGames}}</div><div class="label">Games</div></div>
  {{if .Config.ShowPerfectGames}}<div class="stat"><div class="value">{{.Stats.PerfectGames}}</div><div class="label">Perfect</div></div>{{end}}
  <div class="stat"><div class="value">{{.Stats.TotalCS}}</div><div class="label">Total CS</div></div>
  {{if .Config.ShowWinRate}}<div class="stat"><div class="value">{{.Stats.WinRate}}</div><div class="label">Win Rate</div></div>{{end}}
  {{if .Stats.IsPlaceholder}}<div class="placeholder">{{.Stats.Note}}</div>{{end}}
</div>
</body>
</html>`

// OverlayService manages the stored overlay configurations and renders
// the OBS browser source page.
type OverlayService struct {
	OverlayRepository overlayrepo.OverlayRepository
	template          *template.Template
}

// NewOverlayService creates the overlay service.
func NewOverlayService(db *gorm.DB) *OverlayService {
	return &OverlayService{
		OverlayRepository: overlayrepo.NewOverlayRepository(db),
		template:          template.Must(template.New("overlay").Parse(overlayTemplate)),
	}
}

// UpsertConfig stores an overlay configuration, applying the defaults the
// form left out. The display toggles default to on.
func (ov *OverlayService) UpsertConfig(ctx context.Context, form *filters.OverlayConfigForm) (*models.OverlayConfig, error) {
	config := &models.OverlayConfig{
		ID:               form.Id,
		SummonerName:     form.SummonerName,
		Region:           strings.ToLower(form.Region),
		TimeFilter:       defaultString(form.TimeFilter, "all"),
		Theme:            defaultString(form.Theme, "dark"),
		ShowRank:         defaultBool(form.ShowRank),
		ShowWinRate:      defaultBool(form.ShowWinRate),
		ShowPerfectGames: defaultBool(form.ShowPerfectGames),
	}

	if err := ov.OverlayRepository.Upsert(ctx, config); err != nil {
		return nil, err
	}

	return config, nil
}

// GetConfig returns one stored overlay configuration.
func (ov *OverlayService) GetConfig(ctx context.Context, overlayId string) (*models.OverlayConfig, error) {
	return ov.OverlayRepository.GetById(ctx, overlayId)
}

// ListConfigs returns every stored overlay configuration.
func (ov *OverlayService) ListConfigs(ctx context.Context) ([]models.OverlayConfig, error) {
	return ov.OverlayRepository.List(ctx)
}

// Render writes the overlay page for a configuration and its stats payload.
func (ov *OverlayService) Render(w io.Writer, config *models.OverlayConfig, stats *dto.OverlayStats) error {
	theme := config.Theme
	if theme != "light" {
		theme = "dark"
	}

	return ov.template.Execute(w, struct {
		Theme  string
		Config *models.OverlayConfig
		Stats  *dto.OverlayStats
	}{
		Theme:  theme,
		Config: config,
		Stats:  stats,
	})
}

func defaultString(value string, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func defaultBool(value *bool) bool {
	if value == nil {
		return true
	}
	return *value
}
