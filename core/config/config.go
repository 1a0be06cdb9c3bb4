// File: config.go
// Title: Configuration Loading
// Description: Implements configuration for the fault demo CLI: logger level,
//              format and name, plus fetch retry settings. Files are loaded by
//              extension (TOML or YAML) on top of defaults, environment
//              variables override file values, and validation produces a
//              Validation failure with per-field messages.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-09
// Modified: 2025-03-09
//
// Change History:
// - 2025-03-09 v0.1.0: Initial implementation with TOML and YAML support

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/msto63/fault/core/failure"
	"github.com/msto63/fault/core/log"
	"github.com/msto63/fault/core/validate"
)

// Failure codes for configuration problems; Application-kind with explicit codes
const (
	// CodeConfigRead marks an unreadable configuration file
	CodeConfigRead failure.Code = "CONFIG_READ"

	// CodeConfigParse marks an unparseable configuration file
	CodeConfigParse failure.Code = "CONFIG_PARSE"
)

// Environment variable names recognized by ApplyEnv
const (
	EnvLogLevel     = "FAULT_LOG_LEVEL"
	EnvLogFormat    = "FAULT_LOG_FORMAT"
	EnvFetchRetries = "FAULT_FETCH_RETRIES"
)

// Config holds the complete configuration for the demo CLI
type Config struct {
	Log   LogConfig   `toml:"log" yaml:"log"`
	Fetch FetchConfig `toml:"fetch" yaml:"fetch"`
}

// LogConfig configures the logging sink
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
	Name   string `toml:"name" yaml:"name"`
}

// FetchConfig configures the demo fetch client
type FetchConfig struct {
	// Retries is the number of attempts for server failures with status 500
	Retries int `toml:"retries" yaml:"retries"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "json",
			Name:   "fault",
		},
		Fetch: FetchConfig{
			Retries: 3,
		},
	}
}

// Load reads a configuration file on top of the defaults. The format is
// chosen by extension: .toml, .yaml or .yml.
func Load(path string) (*Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, failure.NewApplication(
			fmt.Sprintf("cannot read config file %s: %v", path, err),
			failure.WithCode(CodeConfigRead),
			failure.WithCause(err),
		)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(raw, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, cfg)
	default:
		return nil, failure.NewValidation(
			fmt.Sprintf("unsupported config format %q", filepath.Ext(path)),
			failure.WithFieldErrors(map[string]string{
				"path": "extension must be .toml, .yaml or .yml",
			}),
		)
	}

	if err != nil {
		return nil, failure.NewApplication(
			fmt.Sprintf("cannot parse config file %s: %v", path, err),
			failure.WithCode(CodeConfigParse),
			failure.WithCause(err),
		)
	}

	return cfg, nil
}

// ApplyEnv overrides configuration values from the environment
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Log.Format = v
	}
	if v := os.Getenv(EnvFetchRetries); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Fetch.Retries = n
		}
	}
}

// Validate checks the configuration and returns a Validation failure with
// per-field messages, or nil if the configuration is usable
func (c *Config) Validate() error {
	chain := validate.NewChain("config").
		Add(validate.OneOf("log.level", "trace", "debug", "info", "warn", "error", "fatal")).
		Add(validate.OneOf("log.format", "json", "text", "console")).
		Add(validate.PositiveInt("fetch.retries"))

	f := chain.Validate(map[string]string{
		"log.level":     strings.ToLower(c.Log.Level),
		"log.format":    strings.ToLower(c.Log.Format),
		"fetch.retries": strconv.Itoa(c.Fetch.Retries),
	})
	if f != nil {
		return f
	}
	return nil
}

// LoggerConfig translates the validated configuration into a logger config
func (c *Config) LoggerConfig() (log.Config, error) {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.Config{}, err
	}

	format, err := log.ParseFormat(c.Log.Format)
	if err != nil {
		return log.Config{}, err
	}

	return log.Config{
		Level:  level,
		Format: format,
		Name:   c.Log.Name,
	}, nil
}
