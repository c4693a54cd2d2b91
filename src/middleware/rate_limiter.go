package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// limiterEntry holds a rate limiter with last used timestamp
type limiterEntry struct {
	limiter  *rate.Limiter
	lastUsed time.Time
}

// keyRateLimiter manages per-key rate limiters with automatic cleanup
type keyRateLimiter struct {
	limiters map[string]*limiterEntry
	mu       sync.RWMutex
	limit    rate.Limit
	burst    int
	stopCh   chan struct{}
}

func newKeyRateLimiter(limit rate.Limit, burst int) *keyRateLimiter {
	k := &keyRateLimiter{
		limiters: make(map[string]*limiterEntry),
		limit:    limit,
		burst:    burst,
		stopCh:   make(chan struct{}),
	}
	go k.cleanupLoop()
	return k
}

func (k *keyRateLimiter) getLimiter(key string) *rate.Limiter {
	k.mu.RLock()
	entry, ok := k.limiters[key]
	k.mu.RUnlock()
	if ok {
		k.mu.Lock()
		entry.lastUsed = time.Now()
		k.mu.Unlock()
		return entry.limiter
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	// Double-check under write lock
	if entry, ok = k.limiters[key]; ok {
		entry.lastUsed = time.Now()
		return entry.limiter
	}
	limiter := rate.NewLimiter(k.limit, k.burst)
	k.limiters[key] = &limiterEntry{
		limiter:  limiter,
		lastUsed: time.Now(),
	}
	return limiter
}

// cleanupLoop removes stale entries every 5 minutes
func (k *keyRateLimiter) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			k.cleanup()
		case <-k.stopCh:
			return
		}
	}
}

// cleanup removes entries not used in the last 10 minutes
func (k *keyRateLimiter) cleanup() {
	k.mu.Lock()
	defer k.mu.Unlock()

	cutoff := time.Now().Add(-10 * time.Minute)
	for key, entry := range k.limiters {
		if entry.lastUsed.Before(cutoff) {
			delete(k.limiters, key)
		}
	}
}

// Stop terminates the cleanup goroutine
func (k *keyRateLimiter) Stop() {
	close(k.stopCh)
}

// RateLimitConfig defines configuration for the rate limiting middleware
type RateLimitConfig struct {
	RequestsPerMinute int
	Burst             int
}

// NewIPRateLimitingMiddleware creates a Gin middleware that enforces per-IP limits
func NewIPRateLimitingMiddleware(cfg RateLimitConfig) gin.HandlerFunc {
	if cfg.RequestsPerMinute <= 0 {
		cfg.RequestsPerMinute = 100
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 20
	}

	limit := rate.Every(time.Minute / time.Duration(cfg.RequestsPerMinute))
	limiter := newKeyRateLimiter(limit, cfg.Burst)

	return func(c *gin.Context) {
		l := limiter.getLimiter(c.ClientIP())
		if !l.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"ok":    false,
				"error": "Too many requests. Please try again later.",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// LoginRateLimitMiddleware throttles credential guessing on the login endpoint.
// Allows 5 attempts per minute per IP address.
func LoginRateLimitMiddleware() gin.HandlerFunc {
	return NewIPRateLimitingMiddleware(RateLimitConfig{
		RequestsPerMinute: 5,
		Burst:             3,
	})
}

// ContactRateLimitMiddleware throttles the public contact form endpoints
func ContactRateLimitMiddleware() gin.HandlerFunc {
	return NewIPRateLimitingMiddleware(RateLimitConfig{
		RequestsPerMinute: 10,
		Burst:             5,
	})
}
