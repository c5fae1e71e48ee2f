package championrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"nocslol/pkg/database/models"
	"os"
)

// championsFile mirrors the curated champions.json layout.
type championsFile struct {
	Champions []championSeed `json:"champions"`
}

type championSeed struct {
	Id          string `json:"id"`
	Key         int    `json:"key"`
	Name        string `json:"name"`
	Title       string `json:"title"`
	Image       string `json:"image"`
	CsMechanics struct {
		Strategy     string `json:"strategy"`
		BasicAttacks struct {
			GivesCS bool `json:"givesCS"`
		} `json:"basicAttacks"`
		Abilities []abilitySeed `json:"abilities"`
	} `json:"csMechanics"`
}

type abilitySeed struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Notes       string `json:"notes"`
	GivesCS     bool   `json:"givesCS"`
}

// SeedFromFile loads the curated champion database into postgres when the
// table is still empty. Reruns are no-ops, so it is safe on every startup.
func SeedFromFile(ctx context.Context, repo ChampionRepository, path string) error {
	count, err := repo.CountChampions(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("couldn't read the champions seed file: %w", err)
	}

	var file championsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("couldn't parse the champions seed file: %w", err)
	}

	champions := make([]models.Champion, 0, len(file.Champions))
	for _, seed := range file.Champions {
		champion := models.Champion{
			ID:                 seed.Id,
			Key:                seed.Key,
			Name:               seed.Name,
			Title:              seed.Title,
			Image:              seed.Image,
			Strategy:           seed.CsMechanics.Strategy,
			BasicAttacksGiveCS: seed.CsMechanics.BasicAttacks.GivesCS,
		}

		for _, ability := range seed.CsMechanics.Abilities {
			champion.Abilities = append(champion.Abilities, models.ChampionAbility{
				ChampionID:  seed.Id,
				Key:         ability.Key,
				Name:        ability.Name,
				Description: ability.Description,
				Notes:       ability.Notes,
				GivesCS:     ability.GivesCS,
			})
		}

		champions = append(champions, champion)
	}

	return repo.CreateChampions(ctx, champions)
}
