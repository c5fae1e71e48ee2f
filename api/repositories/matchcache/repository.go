package matchcacherepo

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	matchfetcher "nocslol/fetcher/data/match"
)

// CacheEntry is the durable record for one player identity.
// Matches is an append-only ordered set keyed by MatchId.
type CacheEntry struct {
	Puuid       string                     `json:"puuid"`
	LastFetched time.Time                  `json:"lastFetched"`
	Matches     []matchfetcher.MatchRecord `json:"matches"`
}

// Contains reports whether a match id is already present in the entry.
func (e *CacheEntry) Contains(matchId string) bool {
	for i := range e.Matches {
		if e.Matches[i].MatchId == matchId {
			return true
		}
	}
	return false
}

// Repository is the public interface for the persistent match cache.
// Load never fails: a missing or corrupt backing file degrades to an
// empty entry so the caller simply refetches. Merge is idempotent:
// reapplying a match that is already present is a no-op.
type Repository interface {
	Load(puuid string) *CacheEntry
	Merge(puuid string, newMatches []matchfetcher.MatchRecord, fetchedAt time.Time) *CacheEntry
}

// fileRepository stores one JSON file per identity under dir, so a crash
// during one player's save can never corrupt another player's data.
type fileRepository struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewRepository creates a file backed match cache rooted at dir.
func NewRepository(dir string) Repository {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Printf("match cache: couldn't create cache dir %s: %v", dir, err)
	}

	return &fileRepository{
		dir:   dir,
		locks: make(map[string]*sync.Mutex),
	}
}

// identityLock returns the per-identity mutex, creating it on first use.
// Two concurrent merges for the same identity must not interleave the
// read-modify-write, or matches could be lost.
func (r *fileRepository) identityLock(puuid string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()

	lock, exists := r.locks[puuid]
	if !exists {
		lock = &sync.Mutex{}
		r.locks[puuid] = lock
	}
	return lock
}

// Load returns the cached entry for the identity, or an empty entry.
func (r *fileRepository) Load(puuid string) *CacheEntry {
	lock := r.identityLock(puuid)
	lock.Lock()
	defer lock.Unlock()

	return r.loadLocked(puuid)
}

func (r *fileRepository) loadLocked(puuid string) *CacheEntry {
	empty := &CacheEntry{Puuid: puuid}

	data, err := os.ReadFile(r.entryPath(puuid))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("match cache: couldn't read entry for %s: %v", puuid, err)
		}
		return empty
	}

	var entry CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		// Corrupt file: treat as uncached rather than failing the request.
		log.Printf("match cache: corrupt entry for %s: %v", puuid, err)
		return empty
	}

	entry.Puuid = puuid
	return &entry
}

// Merge appends the records whose MatchId is not yet present, preserving
// arrival order, stamps LastFetched and persists the entry atomically.
// Persistence failures are logged and the merged entry is still returned,
// degrading to always-refetch instead of failing the request.
func (r *fileRepository) Merge(puuid string, newMatches []matchfetcher.MatchRecord, fetchedAt time.Time) *CacheEntry {
	lock := r.identityLock(puuid)
	lock.Lock()
	defer lock.Unlock()

	entry := r.loadLocked(puuid)

	present := make(map[string]struct{}, len(entry.Matches))
	for i := range entry.Matches {
		present[entry.Matches[i].MatchId] = struct{}{}
	}

	for _, match := range newMatches {
		if _, exists := present[match.MatchId]; exists {
			continue
		}
		present[match.MatchId] = struct{}{}
		entry.Matches = append(entry.Matches, match)
	}

	entry.LastFetched = fetchedAt

	if err := r.save(entry); err != nil {
		log.Printf("match cache: couldn't persist entry for %s: %v", puuid, err)
	}

	return entry
}

// save writes the entry to a temp file and renames it over the target,
// so a crash mid-write leaves the prior persisted state intact.
func (r *fileRepository) save(entry *CacheEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(r.dir, "entry-*.tmp")
	if err != nil {
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), r.entryPath(entry.Puuid))
}

// entryPath builds the per-identity file path, sanitizing the PUUID.
func (r *fileRepository) entryPath(puuid string) string {
	sanitized := strings.Map(func(c rune) rune {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
			return c
		default:
			return '_'
		}
	}, puuid)

	return filepath.Join(r.dir, sanitized+".json")
}
