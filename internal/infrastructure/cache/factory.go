package cache

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shoplytics/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// RateLimiterFactory picks a limiter backend from HTTP configuration
type RateLimiterFactory struct {
	httpConfig            config.HTTPConfig
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// RateLimiterFactoryOption is a functional option for configuring the factory
type RateLimiterFactoryOption func(*RateLimiterFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) RateLimiterFactoryOption {
	return func(f *RateLimiterFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether a missing Redis client degrades to the in-memory limiter
func WithInMemoryFallback(allow bool) RateLimiterFactoryOption {
	return func(f *RateLimiterFactory) {
		f.allowInMemoryFallback = allow
	}
}

// NewRateLimiterFactory creates a new factory
func NewRateLimiterFactory(cfg config.HTTPConfig, opts ...RateLimiterFactoryOption) *RateLimiterFactory {
	f := &RateLimiterFactory{
		httpConfig:            cfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Create returns the limiter for the configured backend. client may be nil
// when Redis is disabled or unreachable.
func (f *RateLimiterFactory) Create(client *redis.Client) (RateLimiter, error) {
	limit := f.httpConfig.RateLimitRequests
	window := f.httpConfig.RateLimitWindow

	if f.httpConfig.RateLimitBackend != config.RateLimitBackendRedis {
		f.logger.Info("Using in-memory rate limiter",
			zap.Int("limit", limit),
			zap.Duration("window", window))
		return NewInMemoryRateLimiter(limit, window), nil
	}

	if client == nil {
		if !f.allowInMemoryFallback {
			return nil, fmt.Errorf("redis rate limiter requested but no Redis client is available")
		}
		f.logger.Warn("Redis unavailable, falling back to in-memory rate limiter",
			zap.Int("limit", limit),
			zap.Duration("window", window))
		return NewInMemoryRateLimiter(limit, window), nil
	}

	f.logger.Info("Using Redis rate limiter",
		zap.Int("limit", limit),
		zap.Duration("window", window))
	return NewRedisRateLimiter(client, limit, window), nil
}
