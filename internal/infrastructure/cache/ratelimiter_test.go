package cache

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shoplytics/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// requires Redis on localhost:6379, skipped otherwise
const testRedisAddr = "localhost:6379"

func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{Addr: testRedisAddr})
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		t.Skipf("Redis not available at %s: %v", testRedisAddr, err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisRateLimiter_Allow(t *testing.T) {
	client := setupTestRedis(t)
	ctx := context.Background()

	l := NewRedisRateLimiter(client, 3, time.Minute)
	key := "test:" + uuid.NewString()
	t.Cleanup(func() { _ = l.Reset(ctx, key) })

	for want := 2; want >= 0; want-- {
		res, err := l.Allow(ctx, key)
		require.NoError(t, err)
		assert.True(t, res.Allowed)
		assert.Equal(t, want, res.Remaining)
		assert.Equal(t, 3, res.Limit)
	}

	res, err := l.Allow(ctx, key)
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Equal(t, 0, res.Remaining)
	assert.True(t, res.ResetAt.After(time.Now()))

	require.NoError(t, l.Reset(ctx, key))
	res, err = l.Allow(ctx, key)
	require.NoError(t, err)
	assert.True(t, res.Allowed)
}

func TestRedisRateLimiter_WindowExpires(t *testing.T) {
	client := setupTestRedis(t)
	ctx := context.Background()

	l := NewRedisRateLimiter(client, 1, 200*time.Millisecond)
	key := "test:" + uuid.NewString()
	t.Cleanup(func() { _ = l.Reset(ctx, key) })

	res, err := l.Allow(ctx, key)
	require.NoError(t, err)
	require.True(t, res.Allowed)

	res, err = l.Allow(ctx, key)
	require.NoError(t, err)
	require.False(t, res.Allowed)

	time.Sleep(250 * time.Millisecond)

	res, err = l.Allow(ctx, key)
	require.NoError(t, err)
	assert.True(t, res.Allowed)
}

func TestRedisRateLimiter_ClientClosed(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: testRedisAddr})
	require.NoError(t, client.Close())

	l := NewRedisRateLimiter(client, 1, time.Minute)
	_, err := l.Allow(context.Background(), "k")
	assert.Error(t, err)
}

func TestRateLimiterFactory_Create(t *testing.T) {
	base := config.HTTPConfig{RateLimitRequests: 60, RateLimitWindow: time.Minute}

	t.Run("memory backend", func(t *testing.T) {
		cfg := base
		cfg.RateLimitBackend = config.RateLimitBackendMemory

		limiter, err := NewRateLimiterFactory(cfg).Create(nil)
		require.NoError(t, err)
		mem, ok := limiter.(*InMemoryRateLimiter)
		require.True(t, ok)
		defer mem.Close()
		assert.Equal(t, 60, limiter.Limit())
	})

	t.Run("redis backend with client", func(t *testing.T) {
		cfg := base
		cfg.RateLimitBackend = config.RateLimitBackendRedis
		client := redis.NewClient(&redis.Options{Addr: testRedisAddr})
		defer client.Close()

		limiter, err := NewRateLimiterFactory(cfg).Create(client)
		require.NoError(t, err)
		assert.IsType(t, &RedisRateLimiter{}, limiter)
	})

	t.Run("redis backend falls back without client", func(t *testing.T) {
		cfg := base
		cfg.RateLimitBackend = config.RateLimitBackendRedis
		core, logs := observer.New(zap.WarnLevel)

		limiter, err := NewRateLimiterFactory(cfg, WithLogger(zap.New(core))).Create(nil)
		require.NoError(t, err)
		mem, ok := limiter.(*InMemoryRateLimiter)
		require.True(t, ok)
		defer mem.Close()
		assert.Equal(t, 1, logs.FilterMessage("Redis unavailable, falling back to in-memory rate limiter").Len())
	})

	t.Run("redis backend without fallback fails", func(t *testing.T) {
		cfg := base
		cfg.RateLimitBackend = config.RateLimitBackendRedis

		limiter, err := NewRateLimiterFactory(cfg, WithInMemoryFallback(false)).Create(nil)
		assert.Error(t, err)
		assert.Nil(t, limiter)
	})
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	client, err := NewRedisClient(ctx, config.RedisConfig{Host: "127.0.0.1", Port: 1})
	assert.Error(t, err)
	assert.Nil(t, client)
}
