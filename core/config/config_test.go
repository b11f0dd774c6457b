package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"vehicle-reconciler/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 30, cfg.Database.TimeoutSeconds)
	assert.Equal(t, "vehicle-data", cfg.Storage.Bucket)
	assert.Equal(t, "vehicles", cfg.Storage.Prefix)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 4, cfg.Reconcile.Workers)
	assert.True(t, cfg.Reconcile.Archive)
	assert.False(t, cfg.Reconcile.RequireCheckDigit)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("RECONCILE_WORKERS", "16")
	t.Setenv("RECONCILE_ARCHIVE", "false")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 16, cfg.Reconcile.Workers)
	assert.False(t, cfg.Reconcile.Archive)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("STORAGE_BUCKET=from-dotenv\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("STORAGE_BUCKET") })

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.Storage.Bucket)
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	yaml := "server:\n  port: \"7070\"\nreconcile:\n  workers: 2\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, 2, cfg.Reconcile.Workers)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "postgres")

	_, err := config.LoadConfig(t.TempDir())
	assert.ErrorContains(t, err, "database.driver")
}

func TestConfig_Validate(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	cfg.Reconcile.Workers = 0
	assert.ErrorContains(t, cfg.Validate(), "reconcile.workers")

	cfg.Reconcile.Workers = 1
	cfg.Log.Format = "xml"
	assert.ErrorContains(t, cfg.Validate(), "log.format")
}
