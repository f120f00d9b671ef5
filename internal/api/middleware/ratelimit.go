package middleware

import (
	"fmt"
	"math"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nexconsult/cnpj-toolkit/internal/config"
	"github.com/nexconsult/cnpj-toolkit/internal/models"
	"github.com/nexconsult/cnpj-toolkit/internal/services"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// RateLimiter limits requests per client IP.
//
// Without a shared store each client gets a token bucket. With a shared store the limit is
// a per-minute window counted across all replicas, falling back to the token bucket when
// the store fails.
type RateLimiter struct {
	config   config.RateLimitConfig
	shared   services.RateStoreInterface
	rejected prometheus.Counter
	logger   *logrus.Logger

	clients  map[string]*rate.Limiter
	lastSeen map[string]time.Time
	mu       sync.Mutex

	stop     chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter creates a new rate limiter; shared and rejected may be nil
func NewRateLimiter(cfg config.RateLimitConfig, shared services.RateStoreInterface, rejected prometheus.Counter, logger *logrus.Logger) *RateLimiter {
	rl := &RateLimiter{
		config:   cfg,
		shared:   shared,
		rejected: rejected,
		logger:   logger,
		clients:  make(map[string]*rate.Limiter),
		lastSeen: make(map[string]time.Time),
		stop:     make(chan struct{}),
	}

	go rl.cleanupClients()

	return rl
}

// Middleware returns the rate limiting middleware
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID := c.ClientIP()

		allowed, remaining, resetAt := rl.allow(c, clientID)

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", rl.config.RequestsPerMinute))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", resetAt.Unix()))

		if !allowed {
			retryAfter := time.Until(resetAt)
			if retryAfter < time.Second {
				retryAfter = time.Second
			}
			c.Header("Retry-After", fmt.Sprintf("%.0f", math.Ceil(retryAfter.Seconds())))

			if rl.rejected != nil {
				rl.rejected.Inc()
			}

			c.AbortWithStatusJSON(http.StatusTooManyRequests, models.ErrorResponse{
				Error:     "Rate limit exceeded",
				Message:   fmt.Sprintf("Too many requests. Try again in %v", retryAfter.Round(time.Second)),
				Code:      models.ErrorCodeRateLimit,
				Timestamp: time.Now(),
				Path:      c.Request.URL.Path,
			})
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) allow(c *gin.Context, clientID string) (bool, int, time.Time) {
	if rl.shared != nil {
		count, resetAt, err := rl.shared.Hit(c.Request.Context(), clientID, time.Minute)
		if err == nil {
			remaining := int64(rl.config.RequestsPerMinute) - count
			if remaining < 0 {
				remaining = 0
			}
			return count <= int64(rl.config.RequestsPerMinute), int(remaining), resetAt
		}
		rl.logger.WithFields(logrus.Fields{
			"client": clientID,
			"error":  err.Error(),
		}).Warn("Shared rate limit unavailable, using local limiter")
	}

	limiter := rl.getLimiter(clientID)
	now := time.Now()
	if !limiter.AllowN(now, 1) {
		return false, 0, now.Add(rl.tokenInterval())
	}
	remaining := int(math.Floor(limiter.TokensAt(now)))
	if remaining < 0 {
		remaining = 0
	}
	return true, remaining, now.Add(rl.tokenInterval())
}

// getLimiter gets or creates a rate limiter for a client
func (rl *RateLimiter) getLimiter(clientID string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.lastSeen[clientID] = time.Now()

	if limiter, exists := rl.clients[clientID]; exists {
		return limiter
	}

	// requests per minute to requests per second
	rps := rate.Limit(float64(rl.config.RequestsPerMinute) / 60.0)
	limiter := rate.NewLimiter(rps, rl.config.BurstSize)
	rl.clients[clientID] = limiter

	return limiter
}

// tokenInterval is the time it takes for one token to become available
func (rl *RateLimiter) tokenInterval() time.Duration {
	tokensPerSecond := float64(rl.config.RequestsPerMinute) / 60.0
	if tokensPerSecond <= 0 {
		return time.Minute
	}
	return time.Duration(float64(time.Second) / tokensPerSecond)
}

// cleanupClients removes old client limiters to prevent memory leaks
func (rl *RateLimiter) cleanupClients() {
	ticker := time.NewTicker(rl.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.sweep(time.Now().Add(-rl.config.CleanupInterval * 2))
		}
	}
}

func (rl *RateLimiter) sweep(cutoff time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for clientID, lastSeen := range rl.lastSeen {
		if lastSeen.Before(cutoff) {
			delete(rl.clients, clientID)
			delete(rl.lastSeen, clientID)
		}
	}
}

// Close stops the cleanup goroutine
func (rl *RateLimiter) Close() {
	rl.stopOnce.Do(func() {
		close(rl.stop)
	})
}

// GetStats returns rate limiter statistics
func (rl *RateLimiter) GetStats() map[string]interface{} {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	return map[string]interface{}{
		"active_clients":      len(rl.clients),
		"requests_per_minute": rl.config.RequestsPerMinute,
		"burst_size":          rl.config.BurstSize,
		"cleanup_interval":    rl.config.CleanupInterval.String(),
		"shared":              rl.shared != nil,
	}
}
