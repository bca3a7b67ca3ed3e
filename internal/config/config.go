// =============================================================================
// Cart Parser - Configuration Module
// =============================================================================
//
// This module loads the application configuration from a YAML file. The file
// is optional: when the default path does not exist, built-in defaults are
// used so that single-file commands work without any setup.
//
// EXAMPLE:
//   input_dir: ./input
//   output_dir: ./output
//   input_archive_dir: ./input_archive
//   output_format: json
//   output_name_format: "{original}_{uuid}"
//   id_strategy: uuid
//   log_level: info
//   log_format: console
//   max_concurrency: 4
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// MAIN CONFIGURATION STRUCTURE
// =============================================================================

// MainConfig holds the global application configuration.
type MainConfig struct {
	// =========================================================================
	// DIRECTORY SETTINGS
	// =========================================================================

	// InputDir is scanned by the process command for cart files.
	// Default: "./input"
	InputDir string `yaml:"input_dir"`

	// OutputDir receives the rendered carts, error logs and summaries.
	// Default: "./output"
	OutputDir string `yaml:"output_dir"`

	// InputArchiveDir receives input files after they were parsed
	// successfully.
	// Default: "./input_archive"
	InputArchiveDir string `yaml:"input_archive_dir"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogLevel is one of "debug", "info", "warn", "error".
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// LogFormat is "console" for humans or "json" for log shippers.
	// Default: "console"
	LogFormat string `yaml:"log_format"`

	// =========================================================================
	// OUTPUT SETTINGS
	// =========================================================================

	// OutputFormat is "json" or "xml".
	// Default: "json"
	OutputFormat string `yaml:"output_format"`

	// OutputNameFormat names the files written by the process command.
	// Placeholders: {uuid}, {timestamp}, {date}, {original}.
	// The extension of OutputFormat is appended when missing.
	// Default: "{original}_{uuid}"
	OutputNameFormat string `yaml:"output_name_format"`

	// =========================================================================
	// ITEM IDS
	// =========================================================================

	// IDStrategy is "uuid" or "sequential".
	// Default: "uuid"
	IDStrategy string `yaml:"id_strategy"`

	// IDPrefix is prepended to sequential ids.
	IDPrefix string `yaml:"id_prefix"`

	// =========================================================================
	// PROCESSING SETTINGS
	// =========================================================================

	// MaxConcurrency is the maximum number of files processed at once.
	// Default: 4
	MaxConcurrency int `yaml:"max_concurrency"`

	// ContinueOnError keeps the process command going after a file fails.
	// Default: true
	ContinueOnError *bool `yaml:"continue_on_error"`

	// ArchiveOnSuccess moves parsed inputs to InputArchiveDir.
	// Default: true
	ArchiveOnSuccess *bool `yaml:"archive_on_success"`

	// MaxFileBytes rejects input files larger than this. Zero disables it.
	MaxFileBytes int64 `yaml:"max_file_bytes"`
}

// ShouldContinueOnError reports the effective ContinueOnError value.
func (c *MainConfig) ShouldContinueOnError() bool {
	return c.ContinueOnError == nil || *c.ContinueOnError
}

// ShouldArchive reports the effective ArchiveOnSuccess value.
func (c *MainConfig) ShouldArchive() bool {
	return c.ArchiveOnSuccess == nil || *c.ArchiveOnSuccess
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Default returns a configuration with every default applied.
func Default() *MainConfig {
	config := &MainConfig{}
	applyMainConfigDefaults(config)
	return config
}

// LoadMainConfig loads the main configuration from a YAML file.
func LoadMainConfig(configPath string) (*MainConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config MainConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyMainConfigDefaults(&config)

	if err := validateMainConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// LoadOrDefault behaves like LoadMainConfig but returns Default() when the
// file does not exist.
func LoadOrDefault(configPath string) (*MainConfig, error) {
	config, err := LoadMainConfig(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return config, err
}

// applyMainConfigDefaults sets default values for any unset configuration options.
func applyMainConfigDefaults(config *MainConfig) {
	if config.InputDir == "" {
		config.InputDir = "./input"
	}
	if config.OutputDir == "" {
		config.OutputDir = "./output"
	}
	if config.InputArchiveDir == "" {
		config.InputArchiveDir = "./input_archive"
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if config.LogFormat == "" {
		config.LogFormat = "console"
	}
	if config.OutputFormat == "" {
		config.OutputFormat = "json"
	}
	if config.OutputNameFormat == "" {
		config.OutputNameFormat = "{original}_{uuid}"
	}
	if config.IDStrategy == "" {
		config.IDStrategy = "uuid"
	}
	if config.MaxConcurrency == 0 {
		config.MaxConcurrency = 4
	}

	config.LogLevel = strings.ToLower(config.LogLevel)
	config.LogFormat = strings.ToLower(config.LogFormat)
	config.OutputFormat = strings.ToLower(config.OutputFormat)
	config.IDStrategy = strings.ToLower(config.IDStrategy)
}

// validateMainConfig checks that every enumerated setting has a known value.
func validateMainConfig(config *MainConfig) error {
	if !oneOf(config.LogLevel, "debug", "info", "warn", "error") {
		return fmt.Errorf("log_level must be debug, info, warn or error, got %q", config.LogLevel)
	}
	if !oneOf(config.LogFormat, "console", "json") {
		return fmt.Errorf("log_format must be console or json, got %q", config.LogFormat)
	}
	if !oneOf(config.OutputFormat, "json", "xml") {
		return fmt.Errorf("output_format must be json or xml, got %q", config.OutputFormat)
	}
	if !oneOf(config.IDStrategy, "uuid", "sequential") {
		return fmt.Errorf("id_strategy must be uuid or sequential, got %q", config.IDStrategy)
	}
	if config.MaxConcurrency < 1 {
		return fmt.Errorf("max_concurrency must be at least 1, got %d", config.MaxConcurrency)
	}
	if config.MaxFileBytes < 0 {
		return fmt.Errorf("max_file_bytes must not be negative")
	}

	return nil
}

func oneOf(value string, allowed ...string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
