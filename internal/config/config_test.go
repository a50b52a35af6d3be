package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.Server.Address)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URI)
	assert.Equal(t, "exercise_tracker", cfg.Database.Name)
	assert.Equal(t, 0, cfg.LogQuery.DefaultLimit)
	assert.Equal(t, "exercise.logged", cfg.Kafka.Topic)
	assert.Equal(t, 15*time.Minute, cfg.S3.URLExpiry)
	assert.Empty(t, cfg.Redis.Addr)
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte("server:\n  address: \":9000\"\nlogquery:\n  default_limit: 30\nredis:\n  ttl: 5m\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o600))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.Address)
	assert.Equal(t, 30, cfg.LogQuery.DefaultLimit)
	assert.Equal(t, 5*time.Minute, cfg.Redis.TTL)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("database:\n  name: fromfile\n"), 0o600))
	t.Setenv("DATABASE_NAME", "fromenv")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "fromenv", cfg.Database.Name)
}

func TestLoadConfigClampsNegativeLimit(t *testing.T) {
	t.Setenv("LOGQUERY_DEFAULT_LIMIT", "-5")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.LogQuery.DefaultLimit)
}

func TestLoadConfigRejectsBrokenFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server: [unterminated\n"), 0o600))

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}
