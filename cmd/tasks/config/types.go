// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package config

// ServerConfig holds the deployable configuration for the tasks service.
//
// Values come from three layers, later layers winning:
//  1. Built-in defaults (DefaultConfig)
//  2. An optional YAML file
//  3. Environment variables
type ServerConfig struct {
	// Port is the HTTP listen port.
	Port int `yaml:"port" validate:"required,min=1,max=65535"`

	// GinMode selects the Gin framework mode.
	GinMode string `yaml:"gin_mode" validate:"omitempty,oneof=debug release test"`

	// LogLevel is the minimum log severity.
	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`

	// LogDir enables file logging when set.
	LogDir string `yaml:"log_dir"`

	// OTelEndpoint is the OpenTelemetry collector address.
	OTelEndpoint string `yaml:"otel_endpoint" validate:"required"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() ServerConfig {
	return ServerConfig{
		Port:         8080,
		GinMode:      "release",
		LogLevel:     "info",
		OTelEndpoint: "aleutian-otel-collector:4317",
	}
}
