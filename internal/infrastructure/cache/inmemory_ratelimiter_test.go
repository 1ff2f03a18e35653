package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newTestLimiter(t *testing.T, limit int, window time.Duration) (*InMemoryRateLimiter, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	l := NewInMemoryRateLimiter(limit, window)
	l.now = clock.Now
	t.Cleanup(l.Close)
	return l, clock
}

func TestInMemoryRateLimiter_Allow(t *testing.T) {
	ctx := context.Background()

	t.Run("counts down remaining within the window", func(t *testing.T) {
		l, _ := newTestLimiter(t, 3, time.Minute)

		for want := 2; want >= 0; want-- {
			res, err := l.Allow(ctx, "user-1")
			require.NoError(t, err)
			assert.True(t, res.Allowed)
			assert.Equal(t, 3, res.Limit)
			assert.Equal(t, want, res.Remaining)
		}

		res, err := l.Allow(ctx, "user-1")
		require.NoError(t, err)
		assert.False(t, res.Allowed)
		assert.Equal(t, 0, res.Remaining)
	})

	t.Run("keys are independent", func(t *testing.T) {
		l, _ := newTestLimiter(t, 1, time.Minute)

		res, err := l.Allow(ctx, "a")
		require.NoError(t, err)
		assert.True(t, res.Allowed)

		res, err = l.Allow(ctx, "b")
		require.NoError(t, err)
		assert.True(t, res.Allowed)

		res, err = l.Allow(ctx, "a")
		require.NoError(t, err)
		assert.False(t, res.Allowed)
	})

	t.Run("window slides instead of resetting", func(t *testing.T) {
		l, clock := newTestLimiter(t, 2, time.Minute)

		_, _ = l.Allow(ctx, "k")
		clock.Advance(30 * time.Second)
		_, _ = l.Allow(ctx, "k")

		res, _ := l.Allow(ctx, "k")
		assert.False(t, res.Allowed)
		assert.Equal(t, clock.Now().Add(30*time.Second), res.ResetAt)

		// first hit leaves the window
		clock.Advance(31 * time.Second)
		res, _ = l.Allow(ctx, "k")
		assert.True(t, res.Allowed)
		assert.Equal(t, 0, res.Remaining)

		res, _ = l.Allow(ctx, "k")
		assert.False(t, res.Allowed)
	})

	t.Run("rejected requests are not recorded", func(t *testing.T) {
		l, clock := newTestLimiter(t, 1, time.Minute)

		_, _ = l.Allow(ctx, "k")
		for i := 0; i < 5; i++ {
			clock.Advance(10 * time.Second)
			res, _ := l.Allow(ctx, "k")
			assert.False(t, res.Allowed)
		}

		clock.Advance(11 * time.Second)
		res, _ := l.Allow(ctx, "k")
		assert.True(t, res.Allowed)
	})
}

func TestInMemoryRateLimiter_Reset(t *testing.T) {
	ctx := context.Background()
	l, _ := newTestLimiter(t, 1, time.Minute)

	_, _ = l.Allow(ctx, "k")
	res, _ := l.Allow(ctx, "k")
	require.False(t, res.Allowed)

	require.NoError(t, l.Reset(ctx, "k"))

	res, _ = l.Allow(ctx, "k")
	assert.True(t, res.Allowed)
}

func TestInMemoryRateLimiter_Concurrent(t *testing.T) {
	ctx := context.Background()
	l := NewInMemoryRateLimiter(50, time.Minute)
	defer l.Close()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := l.Allow(ctx, "shared")
			if err == nil && res.Allowed {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, allowed)
}

func TestInMemoryRateLimiter_CloseIsIdempotent(t *testing.T) {
	l := NewInMemoryRateLimiter(1, time.Minute)
	l.Close()
	assert.NotPanics(t, l.Close)
}
