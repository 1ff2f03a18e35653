package cache

import (
	"context"
	"sync"
	"time"
)

// InMemoryRateLimiter keeps a per-key log of request times in process memory.
// Counters are not shared between instances.
type InMemoryRateLimiter struct {
	mu     sync.Mutex
	hits   map[string][]time.Time
	limit  int
	window time.Duration
	now    func() time.Time
	done   chan struct{}
	once   sync.Once
}

// NewInMemoryRateLimiter creates a limiter and starts its cleanup loop
func NewInMemoryRateLimiter(limit int, window time.Duration) *InMemoryRateLimiter {
	l := &InMemoryRateLimiter{
		hits:   make(map[string][]time.Time),
		limit:  limit,
		window: window,
		now:    time.Now,
		done:   make(chan struct{}),
	}
	go l.cleanup(window * 2)
	return l
}

// Limit returns the configured number of requests per window
func (l *InMemoryRateLimiter) Limit() int {
	return l.limit
}

// Allow records a request for key and reports whether it fits in the window
func (l *InMemoryRateLimiter) Allow(_ context.Context, key string) (*RateLimitResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	hits := l.trim(l.hits[key], now)

	if len(hits) >= l.limit {
		l.hits[key] = hits
		resetAt := now.Add(l.window)
		if len(hits) > 0 {
			resetAt = hits[0].Add(l.window)
		}
		return &RateLimitResult{Allowed: false, Limit: l.limit, Remaining: 0, ResetAt: resetAt}, nil
	}

	hits = append(hits, now)
	l.hits[key] = hits

	return &RateLimitResult{
		Allowed:   true,
		Limit:     l.limit,
		Remaining: l.limit - len(hits),
		ResetAt:   hits[0].Add(l.window),
	}, nil
}

// Reset clears the window for key
func (l *InMemoryRateLimiter) Reset(_ context.Context, key string) error {
	l.mu.Lock()
	delete(l.hits, key)
	l.mu.Unlock()
	return nil
}

// Close stops the cleanup loop
func (l *InMemoryRateLimiter) Close() {
	l.once.Do(func() { close(l.done) })
}

// trim drops entries older than the window; hits are kept in arrival order
func (l *InMemoryRateLimiter) trim(hits []time.Time, now time.Time) []time.Time {
	cutoff := now.Add(-l.window)
	i := 0
	for i < len(hits) && !hits[i].After(cutoff) {
		i++
	}
	return hits[i:]
}

func (l *InMemoryRateLimiter) cleanup(every time.Duration) {
	if every <= 0 {
		return
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-l.done:
			return
		case <-ticker.C:
			l.mu.Lock()
			now := l.now()
			for key, hits := range l.hits {
				if remaining := l.trim(hits, now); len(remaining) == 0 {
					delete(l.hits, key)
				} else {
					l.hits[key] = remaining
				}
			}
			l.mu.Unlock()
		}
	}
}
