// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Input     string `json:"input,omitempty"`      // Path to a résumé text file
	InputDir  string `json:"input_dir,omitempty"`  // Directory of résumé text files (batch mode)
	OutputDir string `json:"output_dir,omitempty"` // Directory for generated PDFs
	Style     string `json:"style,omitempty"`      // Path to a style profile JSON file

	// Behavior
	Workers     int    `json:"workers,omitempty"`      // Parallel conversions in batch mode
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed conversion information
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL URL for conversion history
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Input != "" && c.InputDir != "" {
		return fmt.Errorf("config error: 'input' and 'input_dir' are mutually exclusive")
	}
	if c.Workers < 0 {
		return fmt.Errorf("config error: 'workers' must be non-negative")
	}

	if c.Input != "" {
		if _, err := os.Stat(c.Input); os.IsNotExist(err) {
			return fmt.Errorf("config error: input file not found: %s", c.Input)
		}
	}
	if c.InputDir != "" {
		if _, err := os.Stat(c.InputDir); os.IsNotExist(err) {
			return fmt.Errorf("config error: input directory not found: %s", c.InputDir)
		}
	}
	if c.Style != "" {
		if _, err := os.Stat(c.Style); os.IsNotExist(err) {
			return fmt.Errorf("config error: style file not found: %s", c.Style)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Input == "" {
		result.Input = defaults.Input
	}
	if result.InputDir == "" {
		result.InputDir = defaults.InputDir
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.Style == "" {
		result.Style = defaults.Style
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
