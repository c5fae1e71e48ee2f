package championservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"nocslol/api/cache"
	"nocslol/api/dto"
	"nocslol/api/filters"
	championrepo "nocslol/api/repositories/champion"
	"nocslol/pkg/database/models"

	"gorm.io/gorm"
)

// TTL for the per-champion analysis entries on the memory cache.
const analysisCacheTTL = 10 * time.Minute

// VersionResolver resolves the current data dragon version for image URLs.
type VersionResolver interface {
	LatestVersion(ctx context.Context) (string, error)
}

// ChampionService serves the champion CS mechanics database and the
// danger analysis used by the live game overlay.
type ChampionService struct {
	ChampionRepository championrepo.ChampionRepository
	memCache           cache.MemCache
	versions           VersionResolver
}

// ChampionServiceDeps is the dependency list for the champion service.
type ChampionServiceDeps struct {
	DB       *gorm.DB
	MemCache cache.MemCache
	Versions VersionResolver
}

// NewChampionService creates the champion service.
func NewChampionService(deps *ChampionServiceDeps) *ChampionService {
	return &ChampionService{
		ChampionRepository: championrepo.NewChampionRepository(deps.DB),
		memCache:           deps.MemCache,
		versions:           deps.Versions,
	}
}

// ListChampions returns the champion database listing.
func (cs *ChampionService) ListChampions(ctx context.Context) ([]dto.ChampionSummary, error) {
	champions, err := cs.ChampionRepository.ListChampions(ctx)
	if err != nil {
		return nil, err
	}

	version := cs.currentVersion(ctx)

	summaries := make([]dto.ChampionSummary, 0, len(champions))
	for i := range champions {
		champion := &champions[i]

		dangerous := 0
		for _, ability := range champion.Abilities {
			if ability.GivesCS {
				dangerous++
			}
		}

		summaries = append(summaries, dto.ChampionSummary{
			ID:                 champion.ID,
			Name:               champion.Name,
			Title:              champion.Title,
			ImageURL:           imageURL(version, champion.Image),
			BasicAttacksGiveCS: champion.BasicAttacksGiveCS,
			DangerousAbilities: dangerous,
		})
	}

	return summaries, nil
}

// GetChampion returns the full mechanics sheet for one champion.
func (cs *ChampionService) GetChampion(ctx context.Context, championId string) (*dto.ChampionDetail, error) {
	champion, err := cs.ChampionRepository.GetChampionById(ctx, championId)
	if err != nil {
		return nil, err
	}

	return cs.detail(ctx, champion), nil
}

// UpsertAbility applies an accepted community correction to one ability
// annotation and refreshes the cached danger verdict.
func (cs *ChampionService) UpsertAbility(ctx context.Context, championId string, form *filters.AbilityCorrectionForm) (*dto.ChampionDetail, error) {
	champion, err := cs.ChampionRepository.GetChampionById(ctx, championId)
	if err != nil {
		return nil, err
	}

	ability := &models.ChampionAbility{
		ChampionID:  champion.ID,
		Key:         strings.ToUpper(strings.TrimSpace(form.Key)),
		Name:        form.Name,
		Description: form.Description,
		Notes:       form.Notes,
		GivesCS:     form.GivesCS,
	}
	if err := cs.ChampionRepository.UpsertAbility(ctx, ability); err != nil {
		return nil, err
	}

	// Re-read so the response and the cached verdict carry the correction.
	updated, err := cs.ChampionRepository.GetChampionById(ctx, championId)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("champion:analysis:%s", strings.ToLower(updated.Name))
	cs.memCache.Set(cacheKey, Analyze(updated), analysisCacheTTL)

	return cs.detail(ctx, updated), nil
}

// detail maps a champion model into the full mechanics sheet.
func (cs *ChampionService) detail(ctx context.Context, champion *models.Champion) *dto.ChampionDetail {
	detail := &dto.ChampionDetail{
		ID:                 champion.ID,
		Name:               champion.Name,
		Title:              champion.Title,
		ImageURL:           imageURL(cs.currentVersion(ctx), champion.Image),
		Strategy:           champion.Strategy,
		BasicAttacksGiveCS: champion.BasicAttacksGiveCS,
	}

	for _, ability := range champion.Abilities {
		detail.Abilities = append(detail.Abilities, dto.AbilitySheet{
			Key:         ability.Key,
			Name:        ability.Name,
			Description: ability.Description,
			Notes:       ability.Notes,
			GivesCS:     ability.GivesCS,
		})
	}

	return detail
}

// AnalyzeChampions returns the danger verdict for each requested champion
// name, resolving through the memory cache first.
func (cs *ChampionService) AnalyzeChampions(ctx context.Context, names []string) ([]dto.ChampionAnalysis, error) {
	analyses := make([]dto.ChampionAnalysis, 0, len(names))
	for _, name := range names {
		analyses = append(analyses, *cs.analyzeByName(ctx, name))
	}

	return analyses, nil
}

// analyzeByName resolves one champion verdict, caching the result.
func (cs *ChampionService) analyzeByName(ctx context.Context, name string) *dto.ChampionAnalysis {
	cacheKey := fmt.Sprintf("champion:analysis:%s", strings.ToLower(name))
	if analysis, ok := cache.Lookup[*dto.ChampionAnalysis](cs.memCache, cacheKey); ok {
		return analysis
	}

	champion, err := cs.ChampionRepository.GetChampionByName(ctx, name)
	if err != nil {
		// Unknown champions get the cautious verdict: assume the kit
		// can credit creep score until the database says otherwise.
		return &dto.ChampionAnalysis{
			Name:        name,
			IsDangerous: true,
			Notes:       "Unknown champion, assume its abilities can kill minions",
		}
	}

	analysis := Analyze(champion)
	cs.memCache.Set(cacheKey, analysis, analysisCacheTTL)

	return analysis
}

// Analyze builds the danger verdict from a champion sheet.
// A champion is dangerous when any ability or its basic attacks can
// credit creep score while playing for zero CS.
func Analyze(champion *models.Champion) *dto.ChampionAnalysis {
	analysis := &dto.ChampionAnalysis{
		Name:                  champion.Name,
		Notes:                 champion.Strategy,
		BasicAttacksDangerous: champion.BasicAttacksGiveCS,
	}

	for _, ability := range champion.Abilities {
		if !ability.GivesCS {
			continue
		}

		analysis.DangerousAbilities = append(analysis.DangerousAbilities, ability.Key)
		analysis.AbilityDetails = append(analysis.AbilityDetails, dto.AbilityDetail{
			Key:   ability.Key,
			Name:  ability.Name,
			Notes: ability.Notes,
		})
	}

	analysis.IsDangerous = len(analysis.DangerousAbilities) > 0 || champion.BasicAttacksGiveCS

	return analysis
}

// currentVersion resolves the ddragon version, degrading to an empty
// version segment when even the pinned fallback fails.
func (cs *ChampionService) currentVersion(ctx context.Context) string {
	version, err := cs.versions.LatestVersion(ctx)
	if err != nil {
		return ""
	}
	return version
}

// imageURL builds the ddragon square asset URL for a champion image.
func imageURL(version string, image string) string {
	if image == "" {
		return ""
	}
	return fmt.Sprintf("https://ddragon.leagueoflegends.com/cdn/%s/img/champion/%s", version, image)
}
