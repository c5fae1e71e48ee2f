package triviaservice

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"time"

	"nocslol/api/cache"
	"nocslol/api/dto"
	championrepo "nocslol/api/repositories/champion"
	"nocslol/pkg/database/models"

	"gorm.io/gorm"
)

// The trivia rotates on UTC days, so the cache entry lives one day at most.
const triviaCacheTTL = time.Hour

// ErrNoTriviaAvailable is returned when the champion database has no
// annotated ability to build trivia from.
var ErrNoTriviaAvailable = errors.New("no trivia available")

// TriviaService serves the deterministic daily ability trivia.
type TriviaService struct {
	ChampionRepository championrepo.ChampionRepository
	memCache           cache.MemCache
}

// TriviaServiceDeps is the dependency list for the trivia service.
type TriviaServiceDeps struct {
	DB       *gorm.DB
	MemCache cache.MemCache
}

// NewTriviaService creates the trivia service.
func NewTriviaService(deps *TriviaServiceDeps) *TriviaService {
	return &TriviaService{
		ChampionRepository: championrepo.NewChampionRepository(deps.DB),
		memCache:           deps.MemCache,
	}
}

// triviaCandidate is one (champion, ability) pair eligible for trivia.
type triviaCandidate struct {
	champion *models.Champion
	ability  *models.ChampionAbility
}

// DailyTrivia returns the trivia for the current UTC day.
func (ts *TriviaService) DailyTrivia(ctx context.Context) (*dto.DailyTrivia, error) {
	return ts.TriviaForDate(ctx, time.Now().UTC().Format("2006-01-02"))
}

// TriviaForDate returns the trivia for a given UTC date string.
// Deterministic: the same date always picks the same candidate, for every
// instance, so the whole fleet agrees on the trivia of the day.
func (ts *TriviaService) TriviaForDate(ctx context.Context, date string) (*dto.DailyTrivia, error) {
	cacheKey := fmt.Sprintf("trivia:daily:%s", date)
	if trivia, ok := cache.Lookup[*dto.DailyTrivia](ts.memCache, cacheKey); ok {
		return trivia, nil
	}

	champions, err := ts.ChampionRepository.ListChampions(ctx)
	if err != nil {
		return nil, err
	}

	candidates := eligibleCandidates(champions)
	if len(candidates) == 0 {
		return nil, ErrNoTriviaAvailable
	}

	picked := candidates[dateSeed(date)%uint32(len(candidates))]

	trivia := &dto.DailyTrivia{
		ChampionId:    picked.champion.ID,
		ChampionName:  picked.champion.Name,
		ChampionTitle: picked.champion.Title,
		ChampionImage: picked.champion.Image,
		AbilityKey:    picked.ability.Key,
		AbilityName:   picked.ability.Name,
		AbilityNotes:  picked.ability.Notes,
		GivesCS:       picked.ability.GivesCS,
		Date:          date,
	}

	ts.memCache.Set(cacheKey, trivia, triviaCacheTTL)

	return trivia, nil
}

// eligibleCandidates keeps the abilities interesting for trivia: the ones
// that credit creep score or carry a curated note.
func eligibleCandidates(champions []models.Champion) []triviaCandidate {
	var candidates []triviaCandidate
	for i := range champions {
		for j := range champions[i].Abilities {
			ability := &champions[i].Abilities[j]
			if ability.GivesCS || ability.Notes != "" {
				candidates = append(candidates, triviaCandidate{
					champion: &champions[i],
					ability:  ability,
				})
			}
		}
	}

	return candidates
}

// dateSeed hashes the date string into the candidate index seed.
func dateSeed(date string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(date))
	return h.Sum32()
}
