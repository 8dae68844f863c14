// Package config handles configuration loading and validation for tada.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/Makepad-fr/tada/internal/store"
)

// Storage backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config holds the application configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Export  ExportConfig  `yaml:"export"`
	TUI     TUIConfig     `yaml:"tui"`
	DataDir string        `yaml:"-" validate:"required"` // set by caller, not from config file
}

// StorageConfig selects where the todo list lives.
type StorageConfig struct {
	Backend string `yaml:"backend" validate:"oneof=json sqlite memory"`
	Key     string `yaml:"key" validate:"required,excludesall=/\\"`
}

// ExportConfig controls exported documents.
type ExportConfig struct {
	Dir string `yaml:"dir"` // empty = working directory
}

// TUIConfig holds interactive view settings.
type TUIConfig struct {
	Theme string `yaml:"theme" validate:"oneof=classic neon mono"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Storage: StorageConfig{
			Backend: BackendJSON,
			Key:     store.DefaultKey,
		},
		TUI: TUIConfig{
			Theme: "classic",
		},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate performs structural validation of the configuration.
func (c *Config) Validate() error {
	return validate.Struct(c)
}
