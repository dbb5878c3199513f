package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "./data/items.json", cfg.DataFile)
	assert.Equal(t, "admin", cfg.AdminUser)
	assert.NotEmpty(t, cfg.JWTSecret)
	assert.NotEmpty(t, cfg.AdminPassword)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("STOCKROOM_ADDR", ":9090")
	t.Setenv("STOCKROOM_DATA_FILE", "/tmp/catalog.json")
	t.Setenv("STOCKROOM_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "/tmp/catalog.json", cfg.DataFile)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadProductionRequiresSecrets(t *testing.T) {
	t.Setenv("STOCKROOM_ENV", "production")

	_, err := Load()
	require.Error(t, err)

	t.Setenv("STOCKROOM_JWT_SECRET", "s3cret")
	t.Setenv("STOCKROOM_ADMIN_PASSWORD", "hunter2")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
}

func TestLoadRejectsBadRateLimit(t *testing.T) {
	t.Setenv("STOCKROOM_RATE_LIMIT_RPS", "0")

	_, err := Load()
	assert.Error(t, err)
}
