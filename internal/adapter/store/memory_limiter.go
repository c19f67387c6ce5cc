package store

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// MemoryLimiter is the single-process counterpart of RedisLimiter, used when
// no Redis address is configured.
type MemoryLimiter struct {
	counts *cache.Cache
	limit  int
	window time.Duration
}

func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		counts: cache.New(window, 2*window),
		limit:  limit,
		window: window,
	}
}

func (m *MemoryLimiter) Allow(_ context.Context, clientID string) (bool, error) {
	if m.limit <= 0 {
		return true, nil
	}
	// Add only succeeds for the first query of a window.
	if err := m.counts.Add(clientID, 1, m.window); err == nil {
		return true, nil
	}
	n, err := m.counts.IncrementInt(clientID, 1)
	if err != nil {
		// Entry expired between Add and Increment; start a new window.
		m.counts.Set(clientID, 1, m.window)
		return true, nil
	}
	return n <= m.limit, nil
}

func (m *MemoryLimiter) Window() time.Duration { return m.window }
