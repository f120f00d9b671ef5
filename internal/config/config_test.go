package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.False(t, cfg.IsProduction())
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
	assert.Equal(t, 100, cfg.CNPJ.MaxBatchSize)
	assert.Equal(t, 50, cfg.CNPJ.MaxGenerate)
	assert.Equal(t, time.Minute, cfg.Security.RateLimit.CleanupInterval)
	assert.Equal(t, []string{"*"}, cfg.Security.CORS.AllowedOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("CNPJ_MAX_BATCH_SIZE", "10")
	t.Setenv("CNPJ_RANDOM_BRANCH", "1")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("RATE_LIMIT_RPM", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr())
	assert.Equal(t, 10, cfg.CNPJ.MaxBatchSize)
	assert.True(t, cfg.CNPJ.RandomBranch)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Security.CORS.AllowedOrigins)
	assert.Equal(t, 600, cfg.Security.RateLimit.RequestsPerMinute, "unparsable values fall back to defaults")
}

func TestLoad_Invalid(t *testing.T) {
	var testCases = []struct {
		description string
		key         string
		value       string
	}{
		{description: "port too large", key: "PORT", value: "70000"},
		{description: "zero batch", key: "CNPJ_MAX_BATCH_SIZE", value: "0"},
		{description: "negative generate", key: "CNPJ_MAX_GENERATE", value: "-1"},
		{description: "zero burst", key: "RATE_LIMIT_BURST", value: "0"},
		{description: "zero cleanup", key: "RATE_LIMIT_CLEANUP", value: "0"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			t.Setenv(testCase.key, testCase.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
