// Package config handles the stack-builder configuration file.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const (
	// DefaultOutputFormat is the default output format.
	DefaultOutputFormat = "dict"
)

// Config represents the CLI configuration.
type Config struct {
	OutputFormat string `json:"output_format"`
}

func defaults() *Config {
	return &Config{OutputFormat: DefaultOutputFormat}
}

// configDir returns the path to the ~/.stack-builder directory.
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".stack-builder"), nil
}

// ensureConfigDir creates the config directory if it doesn't exist.
func ensureConfigDir() error {
	dir, err := configDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0700)
}

// Path returns the path to the config file.
func Path() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadConfig loads the configuration from disk, returning defaults if the
// file does not exist.
func LoadConfig() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return defaults(), nil
	}
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// Apply defaults for missing fields
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = DefaultOutputFormat
	}

	return &cfg, nil
}

// SaveConfig saves the configuration to disk.
func SaveConfig(cfg *Config) error {
	if err := ensureConfigDir(); err != nil {
		return err
	}

	path, err := Path()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// GetOutputFormat returns the output format from config.
func GetOutputFormat() string {
	cfg, err := LoadConfig()
	if err != nil {
		return DefaultOutputFormat
	}
	return cfg.OutputFormat
}

// SetOutputFormat updates the output format in config.
func SetOutputFormat(format string) error {
	cfg, err := LoadConfig()
	if err != nil {
		cfg = defaults()
	}
	cfg.OutputFormat = format
	return SaveConfig(cfg)
}
