// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package config loads the tasks service configuration from an optional
// YAML file plus environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// configValidate is the shared validator instance for ServerConfig.
var configValidate = validator.New()

// Load builds a ServerConfig from defaults, an optional YAML file, and
// environment variables.
//
// # Description
//
// Layering order (later wins):
//  1. DefaultConfig()
//  2. The YAML file at path, if path is non-empty. A missing file is an
//     error; pass "" to skip file loading entirely.
//  3. Environment variables: TASKS_PORT, GIN_MODE, TASKS_LOG_LEVEL,
//     TASKS_LOG_DIR, OTEL_EXPORTER_OTLP_ENDPOINT
//
// The merged result is validated before being returned.
//
// # Outputs
//
//   - ServerConfig: The merged, validated configuration
//   - error: Non-nil on read, parse, or validation failure
func Load(path string) (ServerConfig, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read the config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse the config file: %w", err)
		}
	}

	applyEnvOverrides(&cfg)

	if err := configValidate.Struct(cfg); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// applyEnvOverrides replaces config fields from environment variables.
func applyEnvOverrides(cfg *ServerConfig) {
	if v := os.Getenv("TASKS_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	if v := os.Getenv("GIN_MODE"); v != "" {
		cfg.GinMode = v
	}
	if v := os.Getenv("TASKS_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TASKS_LOG_DIR"); v != "" {
		cfg.LogDir = v
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); v != "" {
		cfg.OTelEndpoint = v
	}
}
