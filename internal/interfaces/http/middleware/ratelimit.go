package middleware

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shoplytics/backend/internal/infrastructure/cache"
	"github.com/shoplytics/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// Rate limit response headers
const (
	RateLimitLimitHeader     = "X-RateLimit-Limit"
	RateLimitRemainingHeader = "X-RateLimit-Remaining"
	RateLimitResetHeader     = "X-RateLimit-Reset"
	RetryAfterHeader         = "Retry-After"
)

// RateLimitKeyFunc derives the bucket a request is counted against
type RateLimitKeyFunc func(c *gin.Context) string

// PrincipalKey counts authenticated requests per user and anonymous ones per client IP
func PrincipalKey(c *gin.Context) string {
	if userID := GetJWTUserID(c); userID != "" {
		return "user:" + userID
	}
	return "ip:" + c.ClientIP()
}

// RateLimit rejects requests over the limiter's quota with 429.
// Every counted response carries X-RateLimit-Limit and X-RateLimit-Remaining.
// Limiter errors are logged and the request is let through.
func RateLimit(limiter cache.RateLimiter, keyFunc RateLimitKeyFunc, log *zap.Logger) gin.HandlerFunc {
	if keyFunc == nil {
		keyFunc = PrincipalKey
	}
	if log == nil {
		log = zap.NewNop()
	}

	return func(c *gin.Context) {
		key := keyFunc(c)
		result, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			log.Error("Rate limiter unavailable", zap.String("key", key), zap.Error(err))
			c.Next()
			return
		}

		c.Header(RateLimitLimitHeader, strconv.Itoa(result.Limit))
		c.Header(RateLimitRemainingHeader, strconv.Itoa(result.Remaining))

		if !result.Allowed {
			retryAfter := int(math.Ceil(time.Until(result.ResetAt).Seconds()))
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header(RetryAfterHeader, strconv.Itoa(retryAfter))
			c.Header(RateLimitResetHeader, strconv.FormatInt(result.ResetAt.Unix(), 10))

			log.Warn("Rate limit exceeded", zap.String("key", key), zap.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.MessageResponse{
				Status:  dto.StatusError,
				Message: dto.MsgTooManyAttempts,
			})
			return
		}

		c.Next()
	}
}
