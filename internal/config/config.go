// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Output formats accepted by the render commands.
const (
	FormatHTML = "html"
	FormatPDF  = "pdf"
	FormatTree = "tree"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Paths
	Resume string `json:"resume,omitempty"` // Path to resume document JSON file
	Out    string `json:"out,omitempty"`    // Path to output file

	// Rendering
	Template string `json:"template,omitempty"` // Template id (classic, modern, ...)
	Format   string `json:"format,omitempty"`   // Output format: html, pdf or tree

	// Behavior
	Verbose             bool `json:"verbose,omitempty"`               // Print detailed pipeline information
	PrintTimeoutSeconds int  `json:"print_timeout_seconds,omitempty"` // Headless browser budget for PDF output
	Port                int  `json:"port,omitempty"`                  // HTTP port for the serve command
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

// Validate checks that the configuration has valid values. Template ids are
// deliberately not checked here: an unknown id falls back to the default
// template at render time rather than failing.
func (c *Config) Validate() error {
	switch c.Format {
	case "", FormatHTML, FormatPDF, FormatTree:
	default:
		return fmt.Errorf("config error: 'format' must be one of html, pdf, tree")
	}

	if c.PrintTimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'print_timeout_seconds' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid port number")
	}

	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Out == "" {
		result.Out = defaults.Out
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.Format == "" {
		result.Format = defaults.Format
	}

	if result.PrintTimeoutSeconds == 0 {
		result.PrintTimeoutSeconds = defaults.PrintTimeoutSeconds
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
