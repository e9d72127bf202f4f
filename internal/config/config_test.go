package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "training_periodization", cfg.Database.Name)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.False(t, cfg.Export.Enabled)
	assert.Equal(t, 15*time.Minute, cfg.Export.PresignExpiry)
	assert.Equal(t, "block", cfg.Periodization.DefaultType)
	assert.True(t, cfg.Periodization.DefaultIncludeNutrition)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  address: ":9090"
database:
  name: plans
export:
  enabled: true
  bucket_name: exports
  presign_expiry: 1h
periodization:
  default_include_nutrition: false
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, "plans", cfg.Database.Name)
	assert.True(t, cfg.Export.Enabled)
	assert.Equal(t, "exports", cfg.Export.BucketName)
	assert.Equal(t, time.Hour, cfg.Export.PresignExpiry)
	assert.False(t, cfg.Periodization.DefaultIncludeNutrition)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server: [unclosed"), 0o600))

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}
