package championrepo

import (
	"context"
	"errors"
	"fmt"
	"nocslol/pkg/database/models"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrChampionNotFound is returned when no champion matches the lookup.
var ErrChampionNotFound = errors.New("champion not found")

// ChampionRepository is the public interface for accessing the champion database.
type ChampionRepository interface {
	ListChampions(ctx context.Context) ([]models.Champion, error)
	GetChampionById(ctx context.Context, championId string) (*models.Champion, error)
	GetChampionByName(ctx context.Context, name string) (*models.Champion, error)
	GetChampionByKey(ctx context.Context, key int) (*models.Champion, error)
	UpsertAbility(ctx context.Context, ability *models.ChampionAbility) error
	CountChampions(ctx context.Context) (int64, error)
	CreateChampions(ctx context.Context, champions []models.Champion) error
}

// championRepository repository structure.
type championRepository struct {
	db *gorm.DB
}

// NewChampionRepository creates a champion repository.
func NewChampionRepository(db *gorm.DB) ChampionRepository {
	return &championRepository{db: db}
}

// ListChampions returns every champion with its abilities preloaded.
func (cr *championRepository) ListChampions(ctx context.Context) ([]models.Champion, error) {
	var champions []models.Champion

	err := cr.db.WithContext(ctx).
		Preload("Abilities").
		Order("name ASC").
		Find(&champions).Error
	if err != nil {
		return nil, fmt.Errorf("couldn't list the champions: %w", err)
	}

	return champions, nil
}

// GetChampionById returns a single champion by its ddragon id.
func (cr *championRepository) GetChampionById(ctx context.Context, championId string) (*models.Champion, error) {
	var champion models.Champion

	err := cr.db.WithContext(ctx).
		Preload("Abilities").
		Where("id = ?", championId).
		First(&champion).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrChampionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("couldn't get the champion %s: %w", championId, err)
	}

	return &champion, nil
}

// GetChampionByName returns a single champion by name, case insensitive.
func (cr *championRepository) GetChampionByName(ctx context.Context, name string) (*models.Champion, error) {
	var champion models.Champion

	err := cr.db.WithContext(ctx).
		Preload("Abilities").
		Where("LOWER(name) = ?", strings.ToLower(name)).
		First(&champion).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrChampionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("couldn't get the champion %s: %w", name, err)
	}

	return &champion, nil
}

// GetChampionByKey returns a single champion by its numeric riot key.
// The spectator feed only carries the numeric key.
func (cr *championRepository) GetChampionByKey(ctx context.Context, key int) (*models.Champion, error) {
	var champion models.Champion

	err := cr.db.WithContext(ctx).
		Preload("Abilities").
		Where("key = ?", key).
		First(&champion).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrChampionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("couldn't get the champion with key %d: %w", key, err)
	}

	return &champion, nil
}

// UpsertAbility overwrites a champion ability annotation by (champion, key).
func (cr *championRepository) UpsertAbility(ctx context.Context, ability *models.ChampionAbility) error {
	err := cr.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "champion_id"}, {Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "description", "notes", "gives_cs"}),
		}).
		Create(ability).Error
	if err != nil {
		return fmt.Errorf("couldn't upsert the ability %s/%s: %w", ability.ChampionID, ability.Key, err)
	}

	return nil
}

// CountChampions returns how many champions are stored.
func (cr *championRepository) CountChampions(ctx context.Context) (int64, error) {
	var count int64
	if err := cr.db.WithContext(ctx).Model(&models.Champion{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("couldn't count the champions: %w", err)
	}
	return count, nil
}

// CreateChampions inserts a batch of champions with their abilities.
func (cr *championRepository) CreateChampions(ctx context.Context, champions []models.Champion) error {
	if len(champions) == 0 {
		return nil
	}

	if err := cr.db.WithContext(ctx).Create(&champions).Error; err != nil {
		return fmt.Errorf("couldn't create the champions: %w", err)
	}

	return nil
}
