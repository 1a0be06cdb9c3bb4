// Package config provides configuration loading for the fault demo CLI.
//
// Package: config
// Title: fault Configuration
// Description: Loads TOML or YAML configuration files on top of defaults,
//              applies environment overrides, and validates the result into
//              taxonomy failures so configuration problems flow through the
//              same dispatch path as every other failure.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-09
// Modified: 2025-03-09
//
// Change History:
// - 2025-03-09 v0.1.0: Initial implementation
//
// Usage:
//   cfg, err := config.Load("configs/fault.toml")
//   if err != nil { ... }
//   cfg.ApplyEnv()
//   if err := cfg.Validate(); err != nil { ... }
package config
