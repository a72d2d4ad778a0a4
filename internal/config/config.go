package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// EnvConfigPath overrides the default config file location
const EnvConfigPath = "FUZZ_CONFIG"

// ErrInvalidHeight is returned when the visible window is smaller than one row
var ErrInvalidHeight = errors.New("height must be at least 1")

// Config represents the application configuration
type Config struct {
	Version              int         `toml:"version"`
	Height               int         `toml:"height"` // visible candidate rows
	Prompt               string      `toml:"prompt"`
	ResetSelectionOnEdit bool        `toml:"reset_selection_on_edit"`
	LegacyKeys           bool        `toml:"legacy_keys"` // type unrecognised control keys into the query
	ShowScores           bool        `toml:"show_scores"`
	ShowHelp             bool        `toml:"show_help"`
	Fullscreen           bool        `toml:"fullscreen"`
	Log                  LogSettings `toml:"log"`
}

// LogSettings represents logging configuration
type LogSettings struct {
	File  string `toml:"file"` // empty disables logging
	Level string `toml:"level"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service for the default location:
// $FUZZ_CONFIG, else <user config dir>/fuzz/config.toml
func NewConfigService() ConfigService {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return NewConfigServiceAt(p)
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return NewConfigServiceAt(filepath.Join(configDir, "fuzz", "config.toml"))
}

// NewConfigServiceAt creates a config service for an explicit file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// Path returns the config file this service reads
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, returning defaults if the file does not exist
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	// Ensure config directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks values that cannot be clamped silently
func (c *Config) Validate() error {
	if c.Height < 1 {
		return fmt.Errorf("%w, got %d", ErrInvalidHeight, c.Height)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:              1,
		Height:               10,
		Prompt:               " > ",
		ResetSelectionOnEdit: true,
		Fullscreen:           true,
		Log: LogSettings{
			Level: "info",
		},
	}
}
