/*
PURPOSE:
  Defines the configuration structure and loading logic for reroot.
  Adheres to "Config IS Code" philosophy.

REQUIREMENTS:
  User-specified:
  - Output goes to <input>_rerooted.tre unless told otherwise.

  Implementation-discovered:
  - Needs to support YAML parsing.
  - Needs to support Environment variable overrides (REROOT_...).
  - Logging destination and run reports are configurable.

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli, internal/engine, internal/output
  - Dependencies: gopkg.in/yaml.v3 (standard for Go config)

ERROR HANDLING:
  - Returns explicit error if config file is invalid.
  - A missing default config file is not an error (falls back to defaults).

IMPLEMENTATION RULES:
  - Config struct tags should support yaml.
  - Precedence: defaults < file < environment < flags (flags applied in cli).

USAGE:
  cfg, err := config.Load("reroot.yaml")

SELF-HEALING INSTRUCTIONS:
  - If new fields are needed, add to Config struct, DefaultConfig() and Validate().

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - Update when adding new tuning parameters.
*/

package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultSuffix is appended to the input path to name the output file.
const DefaultSuffix = "_rerooted.tre"

// Config represents the full configuration for reroot.
type Config struct {
	OutputSuffix string `yaml:"output_suffix"`
	// ReportFile receives one record per rerooted tree; .csv selects CSV,
	// anything else JSON Lines. Empty disables the report.
	ReportFile string `yaml:"report_file"`

	LogLevel      string `yaml:"log_level"`
	LogFormat     string `yaml:"log_format"`
	LogFile       string `yaml:"log_file"`
	LogMaxSizeMB  int    `yaml:"log_max_size_mb"`
	LogMaxBackups int    `yaml:"log_max_backups"`
	LogMaxAgeDays int    `yaml:"log_max_age_days"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		OutputSuffix:  DefaultSuffix,
		LogLevel:      "info",
		LogFormat:     "text",
		LogMaxSizeMB:  1,
		LogMaxBackups: 2,
		LogMaxAgeDays: 30,
	}
}

// DefaultFiles are searched, in order, when no config path is given.
var DefaultFiles = []string{"reroot.yaml", ".reroot.yaml"}

// Load reads configuration from a file.
// If path is specified, it attempts to load that file.
// If path is empty, it searches DefaultFiles in order.
// If no file found, returns default config.
// Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		for _, name := range DefaultFiles {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name // record which file we loaded
				break
			}
		}
	}

	if path != "" {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("REROOT_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("REROOT_LOG_FILE"); v != "" {
		c.LogFile = v
	}
	if v := os.Getenv("REROOT_OUTPUT_SUFFIX"); v != "" {
		c.OutputSuffix = v
	}
}

// Validate rejects settings the rest of the program cannot act on.
func (c *Config) Validate() error {
	if c.OutputSuffix == "" {
		return fmt.Errorf("invalid config: output_suffix must not be empty")
	}
	if strings.ContainsAny(c.OutputSuffix, `/\`) {
		return fmt.Errorf("invalid config: output_suffix %q must not contain a path separator", c.OutputSuffix)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid config: unknown log_level %q", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid config: unknown log_format %q", c.LogFormat)
	}
	return nil
}
