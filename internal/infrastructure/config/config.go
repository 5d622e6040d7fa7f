// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for zodi configuration and data.
	DefaultConfigDir = ".zodi"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultCatalogFile is the default content catalog file name.
	DefaultCatalogFile = "content.yaml"
	// DefaultCacheFile is the daily prediction cache database file name.
	DefaultCacheFile = "daily.db"
	// DefaultProfileFile is the encrypted profile file name.
	DefaultProfileFile = "profile.enc"
	// DefaultKeyFile is the profile encryption key file name.
	DefaultKeyFile = ".key"
)

// Config holds static infrastructure configuration (read-only after init).
type Config struct {
	Catalog CatalogConfig `yaml:"catalog,omitempty"`
	Cache   CacheConfig   `yaml:"cache,omitempty"`
	Profile ProfileConfig `yaml:"profile,omitempty"`
	Notify  NotifyConfig  `yaml:"notify,omitempty"`
	// LogLevel controls daemon logging: debug, info, warn, error.
	LogLevel string `yaml:"log_level,omitempty"`
}

// CatalogConfig holds configuration for the content catalog.
type CatalogConfig struct {
	// Path is the content catalog YAML file. Empty means the default
	// location under the config directory; a missing file falls back to
	// the built-in content.
	Path string `yaml:"path,omitempty"`
}

// CacheConfig holds configuration for the daily prediction cache.
type CacheConfig struct {
	// Path is the file path to the SQLite cache database.
	Path string `yaml:"path,omitempty"`
}

// ProfileConfig holds configuration for the encrypted profile store.
type ProfileConfig struct {
	Path    string `yaml:"path,omitempty"`
	KeyPath string `yaml:"key_path,omitempty"`
}

// NotifyConfig holds the daily notification settings.
type NotifyConfig struct {
	// At is the local delivery time in HH:MM.
	At string `yaml:"at,omitempty"`
	// Detailed includes love/career/finance lines in the body.
	Detailed bool `yaml:"detailed"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Notify: NotifyConfig{
			At:       "07:00",
			Detailed: true,
		},
		LogLevel: "info",
	}
}

// Load loads configuration from the .zodi directory in the given path.
// A missing config file yields the defaults: every command must work
// without prior setup.
func Load(basePath string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(ConfigFilePath(basePath))
	if os.IsNotExist(err) {
		cfg.applyPathDefaults(basePath)
		cfg.applyEnvOverrides()
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyPathDefaults(basePath)
	cfg.applyEnvOverrides()

	return cfg, nil
}

// applyPathDefaults fills unset paths with their default locations under
// the config directory.
func (c *Config) applyPathDefaults(basePath string) {
	dir := ConfigDir(basePath)
	if c.Catalog.Path == "" {
		c.Catalog.Path = filepath.Join(dir, DefaultCatalogFile)
	}
	if c.Cache.Path == "" {
		c.Cache.Path = filepath.Join(dir, DefaultCacheFile)
	}
	if c.Profile.Path == "" {
		c.Profile.Path = filepath.Join(dir, DefaultProfileFile)
	}
	if c.Profile.KeyPath == "" {
		c.Profile.KeyPath = filepath.Join(dir, DefaultKeyFile)
	}
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if at := os.Getenv("ZODI_NOTIFY_AT"); at != "" {
		c.Notify.At = at
	}
	if level := os.Getenv("ZODI_LOG_LEVEL"); level != "" {
		c.LogLevel = level
	}
}

// ConfigDir returns the path to the .zodi config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// Exists checks if a zodi config exists in the given path.
func Exists(basePath string) bool {
	_, err := os.Stat(ConfigFilePath(basePath))
	return err == nil
}
