package requests

import (
	"nocslol/pkg/config"
	"sync"
	"time"
)

// Single riot rate limiting window.
type riotLimit struct {
	limit         int
	resetInterval time.Duration
	count         int
	lastReset     time.Time
}

// Full riot rate limit, containing all the window constraints.
type RateLimiter struct {
	windows []*riotLimit
	mu      sync.Mutex
}

// Create a instance of the rate limiter from the configured windows.
func CreateRateLimiter() *RateLimiter {
	return &RateLimiter{
		windows: []*riotLimit{
			{
				limit:         config.Limits.Lower.Count,
				resetInterval: config.Limits.Lower.ResetInterval,
				lastReset:     time.Now(),
			},
			{
				limit:         config.Limits.Higher.Count,
				resetInterval: config.Limits.Higher.ResetInterval,
				lastReset:     time.Now(),
			},
		},
	}
}

// Reset the count of any window whose interval has elapsed.
func (r *RateLimiter) resetCounts() {
	now := time.Now()
	for _, window := range r.windows {
		if now.Sub(window.lastReset) >= window.resetInterval {
			window.count = 0
			window.lastReset = now
		}
	}
}

// Check if all windows still have budget.
func (r *RateLimiter) checkLimits() bool {
	for _, window := range r.windows {
		if window.count >= window.limit {
			return false
		}
	}
	return true
}

// Loop through each window and increment the counter.
func (r *RateLimiter) incrementCounts() {
	for _, window := range r.windows {
		window.count++
	}
}

// Wait blocks until a request slot is available on every window.
func (r *RateLimiter) Wait() {
	for {
		if r.tryAcquire() {
			return
		}
		r.waitWindowsReset()
	}
}

// Try to consume one slot from every window.
func (r *RateLimiter) tryAcquire() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.resetCounts()

	if !r.checkLimits() {
		return false
	}

	r.incrementCounts()
	return true
}

// Wait until the most restrictive exhausted window resets.
func (r *RateLimiter) waitWindowsReset() {
	r.mu.Lock()

	var waitTime time.Duration
	for _, window := range r.windows {
		// If it's not this window that is limited, just continue.
		if window.count < window.limit {
			continue
		}

		elapsed := time.Since(window.lastReset)
		waitTill := window.resetInterval - elapsed
		if waitTill > waitTime {
			waitTime = waitTill
		}
	}
	r.mu.Unlock()

	if waitTime > 0 {
		time.Sleep(waitTime)
	}
}
