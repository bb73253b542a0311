// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	domainerror "github.com/biz-manager/backend/internal/domain/error"
	"github.com/biz-manager/backend/internal/integration/entrypoint/dto"
)

const (
	// defaultMaxAttempts is the default number of allowed attempts per window.
	defaultMaxAttempts = 5
	// defaultWindowDuration is the default time window for rate limiting.
	defaultWindowDuration = 1 * time.Minute
)

// RateLimiter provides IP-based rate limiting backed by Redis, so the limit
// holds across multiple API instances.
type RateLimiter struct {
	client         *redis.Client
	keyPrefix      string
	maxAttempts    int
	windowDuration time.Duration
}

// NewRateLimiter creates a new rate limiter with default settings.
func NewRateLimiter(client *redis.Client, keyPrefix string) *RateLimiter {
	return NewRateLimiterWithConfig(client, keyPrefix, defaultMaxAttempts, defaultWindowDuration)
}

// NewRateLimiterWithConfig creates a new rate limiter with custom settings.
func NewRateLimiterWithConfig(client *redis.Client, keyPrefix string, maxAttempts int, windowDuration time.Duration) *RateLimiter {
	return &RateLimiter{
		client:         client,
		keyPrefix:      keyPrefix,
		maxAttempts:    maxAttempts,
		windowDuration: windowDuration,
	}
}

// Middleware returns a Gin middleware handler that enforces rate limiting.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		allowed, err := rl.allow(c, clientIP)
		if err != nil {
			// Redis being down must not take the endpoint down with it.
			slog.Warn("Rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}

		if !allowed {
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// allow counts the request against the key's current window.
func (rl *RateLimiter) allow(c *gin.Context, key string) (bool, error) {
	ctx := c.Request.Context()
	redisKey := fmt.Sprintf("%s:%s", rl.keyPrefix, key)

	attempts, err := rl.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, err
	}

	// First hit opens the window.
	if attempts == 1 {
		if err := rl.client.Expire(ctx, redisKey, rl.windowDuration).Err(); err != nil {
			return false, err
		}
	}

	return attempts <= int64(rl.maxAttempts), nil
}
