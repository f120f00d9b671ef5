package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const rateKeyPrefix = "cnpj:ratelimit:"

// ErrRateStoreUnavailable is returned by Hit when no Redis client is configured
var ErrRateStoreUnavailable = errors.New("shared rate store unavailable")

// RateStore counts requests in fixed windows kept in Redis, so that every replica sees the
// same totals. Hit returns an error whenever Redis cannot answer; callers fall back to
// their own limiter.
type RateStore struct {
	client *redis.Client
	logger *logrus.Logger
	now    func() time.Time
}

// NewRateStore creates a new rate store; client may be nil
func NewRateStore(client *redis.Client, logger *logrus.Logger) *RateStore {
	return &RateStore{
		client: client,
		logger: logger,
		now:    time.Now,
	}
}

// Hit increments the counter of key for the current window
func (r *RateStore) Hit(ctx context.Context, key string, window time.Duration) (int64, time.Time, error) {
	if r.client == nil {
		return 0, time.Time{}, ErrRateStoreUnavailable
	}
	if window <= 0 {
		window = time.Minute
	}

	bucketKey, resetAt := windowKey(key, r.now(), window)

	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, bucketKey)
	pipe.Expire(ctx, bucketKey, 2*window)
	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.WithFields(logrus.Fields{
			"key":   key,
			"error": err.Error(),
		}).Debug("Redis rate counter error")
		return 0, time.Time{}, fmt.Errorf("failed to count %s: %w", key, err)
	}

	return incr.Val(), resetAt, nil
}

// windowKey returns the Redis key of the window containing now and when that window ends
func windowKey(key string, now time.Time, window time.Duration) (string, time.Time) {
	bucket := now.UnixNano() / int64(window)
	resetAt := time.Unix(0, (bucket+1)*int64(window))
	return rateKeyPrefix + key + ":" + strconv.FormatInt(bucket, 10), resetAt
}

// Shared reports whether a Redis client is configured
func (r *RateStore) Shared() bool {
	return r.client != nil
}

// Health returns rate store health status
func (r *RateStore) Health() map[string]interface{} {
	if r.client == nil {
		return map[string]interface{}{
			"status":  "healthy",
			"backend": "memory",
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := r.client.Ping(ctx).Err(); err != nil {
		return map[string]interface{}{
			"status":  "degraded",
			"backend": "redis",
			"error":   err.Error(),
		}
	}
	return map[string]interface{}{
		"status":  "healthy",
		"backend": "redis",
	}
}

var _ RateStoreInterface = (*RateStore)(nil)
