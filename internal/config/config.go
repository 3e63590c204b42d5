// ABOUTME: Settings persistence for bplog.
// ABOUTME: Remembers the database location between invocations in a TOML file.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/harperreed/bplog/internal/storage"
)

// Config stores bplog settings.
type Config struct {
	// Database holds the database location remembered from earlier runs.
	Database DatabaseConfig `toml:"database"`
}

// DatabaseConfig holds the database location.
type DatabaseConfig struct {
	// Path is the SQLite file holding the measurement log. Supports ~
	// expansion. Empty means the default XDG data path.
	Path string `toml:"path,omitempty"`
}

// GetDBPath returns the configured database path with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDBPath() string {
	if c.Database.Path == "" {
		return storage.DefaultDBPath()
	}
	return ExpandPath(c.Database.Path)
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "bplog", "config.toml")
}

// Load reads config from disk. A missing file yields defaults.
func Load() (*Config, error) {
	path := GetConfigPath()
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// Reset removes the config file, forgetting the remembered database path.
// A missing file is not an error.
func Reset() error {
	err := os.Remove(GetConfigPath())
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reset config: %w", err)
	}
	return nil
}

// Remember persists dbPath as the database location for later runs. It
// only writes when the path actually changed.
func Remember(dbPath string) error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	if cfg.Database.Path == dbPath {
		return nil
	}
	cfg.Database.Path = dbPath
	return cfg.Save()
}
