package overlayrepo

import (
	"context"
	"errors"
	"fmt"
	"nocslol/pkg/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrOverlayNotFound is returned when the overlay id doesn't exist.
var ErrOverlayNotFound = errors.New("overlay configuration not found")

// OverlayRepository is the public interface for the overlay config storage.
type OverlayRepository interface {
	Upsert(ctx context.Context, config *models.OverlayConfig) error
	GetById(ctx context.Context, overlayId string) (*models.OverlayConfig, error)
	List(ctx context.Context) ([]models.OverlayConfig, error)
}

// overlayRepository repository structure.
type overlayRepository struct {
	db *gorm.DB
}

// NewOverlayRepository creates a overlay repository.
func NewOverlayRepository(db *gorm.DB) OverlayRepository {
	return &overlayRepository{db: db}
}

// Upsert atomically creates or replaces the configuration by id.
func (or *overlayRepository) Upsert(ctx context.Context, config *models.OverlayConfig) error {
	err := or.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"summoner_name", "region", "time_filter", "theme",
				"show_rank", "show_win_rate", "show_perfect_games", "updated_at",
			}),
		}).
		Create(config).Error
	if err != nil {
		return fmt.Errorf("couldn't upsert the overlay config %s: %w", config.ID, err)
	}

	return nil
}

// GetById returns one configuration.
func (or *overlayRepository) GetById(ctx context.Context, overlayId string) (*models.OverlayConfig, error) {
	var config models.OverlayConfig

	err := or.db.WithContext(ctx).Where("id = ?", overlayId).First(&config).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOverlayNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("couldn't get the overlay config %s: %w", overlayId, err)
	}

	return &config, nil
}

// List returns every stored configuration.
func (or *overlayRepository) List(ctx context.Context) ([]models.OverlayConfig, error) {
	var configs []models.OverlayConfig

	if err := or.db.WithContext(ctx).Order("updated_at DESC").Find(&configs).Error; err != nil {
		return nil, fmt.Errorf("couldn't list the overlay configs: %w", err)
	}

	return configs, nil
}
