// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	domainerror "github.com/goal-planner/backend/internal/domain/error"
	"github.com/goal-planner/backend/internal/integration/entrypoint/dto"
)

const (
	// defaultMaxAttempts is the default number of allowed attempts per window.
	defaultMaxAttempts = 5
	// defaultWindowDuration is the default time window for rate limiting.
	defaultWindowDuration = 15 * time.Minute

	redisKeyPrefix = "ratelimit:login:"
)

// RateLimitStore counts attempts per key within a fixed window.
type RateLimitStore interface {
	// Allow records one attempt for key and reports whether it is within the limit.
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimiter provides IP-based rate limiting functionality.
type RateLimiter struct {
	store    RateLimitStore
	disabled bool
}

// NewRateLimiter creates a rate limiter backed by store. A disabled limiter lets every request through.
func NewRateLimiter(store RateLimitStore, disabled bool) *RateLimiter {
	return &RateLimiter{
		store:    store,
		disabled: disabled,
	}
}

// Middleware returns a Gin middleware handler that enforces rate limiting.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.disabled {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		allowed, err := rl.store.Allow(c.Request.Context(), clientIP)
		if err != nil {
			// A broken counter store must not lock every user out.
			slog.Error("Rate limit store failed", "error", err)
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

// rateLimitEntry tracks rate limit data for a single key.
type rateLimitEntry struct {
	attempts  int
	resetTime time.Time
}

// MemoryStore keeps counters in process memory.
type MemoryStore struct {
	mu             sync.Mutex
	entries        map[string]*rateLimitEntry
	maxAttempts    int
	windowDuration time.Duration
	now            func() time.Time
}

// NewMemoryStore creates an in-process store. Non-positive settings use the defaults.
func NewMemoryStore(maxAttempts int, windowDuration time.Duration) *MemoryStore {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if windowDuration <= 0 {
		windowDuration = defaultWindowDuration
	}
	return &MemoryStore{
		entries:        make(map[string]*rateLimitEntry),
		maxAttempts:    maxAttempts,
		windowDuration: windowDuration,
		now:            time.Now,
	}
}

// Allow checks if a request from the given key should be allowed.
func (s *MemoryStore) Allow(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	entry, exists := s.entries[key]
	if !exists || now.After(entry.resetTime) {
		s.entries[key] = &rateLimitEntry{
			attempts:  1,
			resetTime: now.Add(s.windowDuration),
		}
		return true, nil
	}

	if entry.attempts < s.maxAttempts {
		entry.attempts++
		return true, nil
	}

	return false, nil
}

// Reset clears the store state.
func (s *MemoryStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]*rateLimitEntry)
}

// Cleanup removes expired entries.
func (s *MemoryStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for key, entry := range s.entries {
		if now.After(entry.resetTime) {
			delete(s.entries, key)
		}
	}
}

// RedisStore keeps counters in Redis so every instance shares them.
type RedisStore struct {
	client         redis.Cmdable
	maxAttempts    int
	windowDuration time.Duration
}

// NewRedisStore creates a Redis-backed store. Non-positive settings use the defaults.
func NewRedisStore(client redis.Cmdable, maxAttempts int, windowDuration time.Duration) *RedisStore {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if windowDuration <= 0 {
		windowDuration = defaultWindowDuration
	}
	return &RedisStore{
		client:         client,
		maxAttempts:    maxAttempts,
		windowDuration: windowDuration,
	}
}

// Allow increments the counter for key; the first hit in a window starts its expiry.
func (s *RedisStore) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := redisKeyPrefix + key

	count, err := s.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}
	if count == 1 {
		if err := s.client.Expire(ctx, redisKey, s.windowDuration).Err(); err != nil {
			return false, fmt.Errorf("failed to set rate limit window: %w", err)
		}
	}

	return count <= int64(s.maxAttempts), nil
}
