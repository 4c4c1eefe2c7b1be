// ABOUTME: Nosh configuration management with environment overrides.
// ABOUTME: JSON config file plus NOSH_* env vars parsed via caarlos0/env.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/harperreed/nosh/internal/storage"
)

// Config stores nosh configuration. File values are overridden by the
// corresponding NOSH_* environment variables.
type Config struct {
	// DataDir is the root directory for data storage; nosh.db lives here.
	// Supports ~ expansion. Defaults to ~/.local/share/nosh.
	DataDir string `json:"data_dir,omitempty" env:"NOSH_DATA_DIR"`

	// DBPath overrides the full database path, ignoring DataDir.
	DBPath string `json:"db_path,omitempty" env:"NOSH_DB_PATH"`
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetDBPath returns the database path.
func (c *Config) GetDBPath() string {
	if c.DBPath != "" {
		return ExpandPath(c.DBPath)
	}
	return filepath.Join(c.GetDataDir(), "nosh.db")
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

// OpenStorage opens the SQLite repository at the configured path.
func (c *Config) OpenStorage() (*storage.DB, error) {
	return storage.Open(c.GetDBPath())
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "nosh", "config.json")
}

// Load reads config from disk and applies environment overrides.
func Load() (*Config, error) {
	path := GetConfigPath()
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	} else if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
