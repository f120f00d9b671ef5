package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nexconsult/cnpj-toolkit/internal/logger"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unreachableClient points at a port nothing listens on
func unreachableClient(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestWindowKey(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 30, 15, 0, time.UTC)

	var testCases = []struct {
		description string
		key         string
		now         time.Time
		sameAs      time.Time
		resetAt     time.Time
	}{
		{
			description: "same minute shares a window",
			key:         "10.0.0.1",
			now:         now,
			sameAs:      now.Add(40 * time.Second),
			resetAt:     time.Date(2024, 1, 15, 10, 31, 0, 0, time.UTC),
		},
		{
			description: "start of a minute",
			key:         "10.0.0.1",
			now:         time.Date(2024, 1, 15, 10, 31, 0, 0, time.UTC),
			sameAs:      time.Date(2024, 1, 15, 10, 31, 59, 0, time.UTC),
			resetAt:     time.Date(2024, 1, 15, 10, 32, 0, 0, time.UTC),
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			key, resetAt := windowKey(testCase.key, testCase.now, time.Minute)
			other, _ := windowKey(testCase.key, testCase.sameAs, time.Minute)

			assert.Equal(t, key, other)
			assert.Contains(t, key, rateKeyPrefix+testCase.key+":")
			assert.Equal(t, testCase.resetAt, resetAt.UTC())
		})
	}

	first, _ := windowKey("10.0.0.1", now, time.Minute)
	next, _ := windowKey("10.0.0.1", now.Add(time.Minute), time.Minute)
	assert.NotEqual(t, first, next, "a new minute starts a new window")

	otherClient, _ := windowKey("10.0.0.2", now, time.Minute)
	assert.NotEqual(t, first, otherClient, "keys are counted separately")
}

func TestRateStore_WithoutClient(t *testing.T) {
	store := NewRateStore(nil, logger.Discard())

	_, _, err := store.Hit(context.Background(), "10.0.0.1", time.Minute)
	assert.ErrorIs(t, err, ErrRateStoreUnavailable)
	assert.False(t, store.Shared())
	assert.Equal(t, map[string]interface{}{"status": "healthy", "backend": "memory"}, store.Health())
}

func TestRateStore_RedisDown(t *testing.T) {
	store := NewRateStore(unreachableClient(t), logger.Discard())
	require.True(t, store.Shared())

	for i := 0; i < 3; i++ {
		count, resetAt, err := store.Hit(context.Background(), "10.0.0.1", time.Minute)
		require.Error(t, err, "hit %d", i)
		assert.False(t, errors.Is(err, ErrRateStoreUnavailable))
		assert.Contains(t, err.Error(), "10.0.0.1")
		assert.Zero(t, count)
		assert.True(t, resetAt.IsZero())
	}

	health := store.Health()
	assert.Equal(t, "degraded", health["status"])
	assert.Equal(t, "redis", health["backend"])
	assert.NotEmpty(t, health["error"])
}
