package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "07:00", cfg.Notify.At)
	assert.True(t, cfg.Notify.Detailed)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, filepath.Join(dir, ".zodi", "content.yaml"), cfg.Catalog.Path)
	assert.Equal(t, filepath.Join(dir, ".zodi", "daily.db"), cfg.Cache.Path)
	assert.Equal(t, filepath.Join(dir, ".zodi", "profile.enc"), cfg.Profile.Path)
	assert.Equal(t, filepath.Join(dir, ".zodi", ".key"), cfg.Profile.KeyPath)
}

func TestLoad_ReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(ConfigDir(dir), 0o755))
	content := `
catalog:
  path: /srv/zodi/content.yaml
notify:
  at: "09:30"
  detailed: false
log_level: debug
`
	require.NoError(t, os.WriteFile(ConfigFilePath(dir), []byte(content), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "/srv/zodi/content.yaml", cfg.Catalog.Path)
	assert.Equal(t, "09:30", cfg.Notify.At)
	assert.False(t, cfg.Notify.Detailed)
	assert.Equal(t, "debug", cfg.LogLevel)
	// Unset paths still get defaults.
	assert.Equal(t, filepath.Join(dir, ".zodi", "daily.db"), cfg.Cache.Path)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(ConfigDir(dir), 0o755))
	require.NoError(t, os.WriteFile(ConfigFilePath(dir), []byte("notify: [broken"), 0o644))

	_, err := Load(dir)
	assert.ErrorContains(t, err, "parsing config file")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ZODI_NOTIFY_AT", "21:15")
	t.Setenv("ZODI_LOG_LEVEL", "error")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "21:15", cfg.Notify.At)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestWriteDefault(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, WriteDefault(dir))
	assert.True(t, Exists(dir))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "07:00", cfg.Notify.At)
	assert.True(t, cfg.Notify.Detailed)

	// A second init must not clobber an existing config.
	err = WriteDefault(dir)
	assert.ErrorContains(t, err, "already exists")
}

func TestWrite_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	cfg := Default()
	cfg.Notify.At = "08:45"
	cfg.LogLevel = "warn"
	require.NoError(t, Write(dir, cfg))

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "08:45", loaded.Notify.At)
	assert.Equal(t, "warn", loaded.LogLevel)
}
