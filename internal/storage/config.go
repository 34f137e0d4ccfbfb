package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Storage backends selectable in the config file.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config holds application configuration.
type Config struct {
	Identity          string `json:"identity"`          // logged-in node identity, scopes the folder list
	Backend           string `json:"backend"`           // "json", "sqlite" or empty for auto-detect
	GroupsFile        string `json:"groupsFile"`        // group snapshot exported by the node
	LogFile           string `json:"logFile"`           // TUI log output
	SkipDeleteConfirm bool   `json:"skipDeleteConfirm"` // delete non-empty folders without asking
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Identity:   "local",
		GroupsFile: "groups.json",
		LogFile:    "rum.log",
	}
}

// LoadConfig reads config from the JSON file.
// Creates the file with defaults if it doesn't exist.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			config := DefaultConfig()
			// Non-fatal: return defaults even if save fails
			_ = SaveConfig(path, &config)
			config.resolve(filepath.Dir(path))
			return &config, nil
		}
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// Apply defaults for missing fields
	defaults := DefaultConfig()
	if config.Identity == "" {
		config.Identity = defaults.Identity
	}
	if config.GroupsFile == "" {
		config.GroupsFile = defaults.GroupsFile
	}
	if config.LogFile == "" {
		config.LogFile = defaults.LogFile
	}

	config.resolve(filepath.Dir(path))
	return &config, nil
}

// resolve makes relative file paths relative to the config directory.
func (c *Config) resolve(dir string) {
	if !filepath.IsAbs(c.GroupsFile) {
		c.GroupsFile = filepath.Join(dir, c.GroupsFile)
	}
	if !filepath.IsAbs(c.LogFile) {
		c.LogFile = filepath.Join(dir, c.LogFile)
	}
}

// SaveConfig writes config to the JSON file.
// Creates the directory if it doesn't exist.
func SaveConfig(path string, config *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfigFilePath returns the default config path: ~/.config/rum/config.json
func DefaultConfigFilePath() (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}
