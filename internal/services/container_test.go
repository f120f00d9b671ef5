package services

import (
	"testing"

	"github.com/nexconsult/cnpj-toolkit/internal/config"
	"github.com/nexconsult/cnpj-toolkit/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContainer_WithoutRedis(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	cfg.Redis.Enabled = false

	container, err := NewContainer(cfg, logger.Discard())
	require.NoError(t, err)
	defer container.Close()

	assert.NotNil(t, container.CNPJService)
	assert.NotNil(t, container.Registry)
	assert.False(t, container.RateStore.Shared())

	health := container.Health()
	assert.Contains(t, health, "cnpj")
	assert.Contains(t, health, "rate_store")

	families, err := container.Registry.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, family := range families {
		names = append(names, family.GetName())
	}
	assert.Contains(t, names, "cnpj_validations_total")
}
