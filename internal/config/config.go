// Package config loads the settings for the plateplanner binary from an
// optional YAML file with environment overrides. Library consumers do
// not need this package; they pass collaborators in directly.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the binary's runtime settings.
type Config struct {
	Database struct {
		// Path is the SQLite database file location.
		Path string `yaml:"path"`
	} `yaml:"database"`

	Log struct {
		// Level is one of debug, info, warn, error.
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// Load reads path if it exists, applies env overrides (DB_PATH,
// LOG_LEVEL), and fills in defaults. A missing file is not an error;
// a malformed one is.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.Database.Path = "./data/plateplanner.db"
	cfg.Log.Level = "info"

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	if v := os.Getenv("DB_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}

	return cfg, nil
}
