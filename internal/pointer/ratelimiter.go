package pointer

import (
	"fmt"
	"sync"
	"time"

	config "github.com/inference-gateway/deskcast/config"
)

// RateLimiter limits button actions over a sliding window
type RateLimiter struct {
	cfg         config.RateLimitConfig
	actionTimes []time.Time
	mu          sync.Mutex
	now         func() time.Time
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		cfg:         cfg,
		actionTimes: make([]time.Time, 0),
		now:         time.Now,
	}
}

// CheckAndRecord checks if the action is within rate limits and records it.
// Returns an error wrapping ErrRateLimited if the limit is exceeded.
func (rl *RateLimiter) CheckAndRecord(action EventType) error {
	if !rl.cfg.Enabled {
		return nil
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.prune(now)

	if len(rl.actionTimes) >= rl.cfg.MaxActions {
		return fmt.Errorf("%w: %s rejected, maximum %d actions per %d seconds",
			ErrRateLimited, action, rl.cfg.MaxActions, rl.cfg.WindowSeconds)
	}

	rl.actionTimes = append(rl.actionTimes, now)
	return nil
}

// CurrentCount returns the number of actions in the current window
func (rl *RateLimiter) CurrentCount() int {
	if !rl.cfg.Enabled {
		return 0
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.prune(rl.now())
	return len(rl.actionTimes)
}

// Reset clears all recorded actions
func (rl *RateLimiter) Reset() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.actionTimes = make([]time.Time, 0)
}

func (rl *RateLimiter) prune(now time.Time) {
	windowStart := now.Add(-time.Duration(rl.cfg.WindowSeconds) * time.Second)

	valid := rl.actionTimes[:0]
	for _, t := range rl.actionTimes {
		if t.After(windowStart) {
			valid = append(valid, t)
		}
	}
	rl.actionTimes = valid
}
