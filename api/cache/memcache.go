package cache

import (
	"context"
	"sync"
	"time"
)

// How often the sweep worker drops the expired entries.
const sweepInterval = 2 * time.Minute

// MemCache is a in-memory TTL cache fronting the champion database
// lookups (analysis verdicts and the daily trivia).
type MemCache interface {
	Get(key string) any
	Set(key string, value any, ttl time.Duration)
	Close()
}

// Lookup resolves a cache entry into its concrete payload type.
// A miss and a payload of the wrong type both read as a miss.
func Lookup[T any](c MemCache, key string) (T, bool) {
	value, ok := c.Get(key).(T)
	return value, ok
}

// memCache is the sync.Map backed implementation with a sweep worker.
type memCache struct {
	entries sync.Map
	sweeper *time.Ticker
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// Single cache entry with its expiration.
type memCacheEntry struct {
	value     any
	expiresAt time.Time
}

// NewMemCache creates a new memory cache and starts its sweep worker.
func NewMemCache() MemCache {
	ctx, cancel := context.WithCancel(context.Background())
	mc := &memCache{
		sweeper: time.NewTicker(sweepInterval),
		ctx:     ctx,
		cancel:  cancel,
	}

	mc.wg.Add(1)
	go func() {
		defer mc.wg.Done()
		for {
			select {
			case <-mc.sweeper.C:
				mc.sweep()
			case <-mc.ctx.Done():
				return
			}
		}
	}()

	return mc
}

// sweep drops every expired entry.
func (mc *memCache) sweep() {
	now := time.Now()
	mc.entries.Range(func(key, value any) bool {
		if now.After(value.(*memCacheEntry).expiresAt) {
			mc.entries.Delete(key)
		}
		return true
	})
}

// Close shuts the sweep worker down.
func (mc *memCache) Close() {
	mc.cancel()
	mc.sweeper.Stop()
	mc.wg.Wait()
}

// Get returns the value for a key, dropping it when already expired.
func (mc *memCache) Get(key string) any {
	value, exists := mc.entries.Load(key)
	if !exists {
		return nil
	}

	entry := value.(*memCacheEntry)
	if time.Now().After(entry.expiresAt) {
		mc.entries.Delete(key)
		return nil
	}

	return entry.value
}

// Set stores a value under a key with the given TTL.
func (mc *memCache) Set(key string, value any, ttl time.Duration) {
	mc.entries.Store(key, &memCacheEntry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	})
}
