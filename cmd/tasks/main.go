// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Command tasks starts the tasks HTTP server.
//
// This is the main entry point for the containerized tasks service. It
// reads configuration from an optional YAML file and environment
// variables, then starts the server.
//
// # Environment Variables
//
//   - TASKS_CONFIG: Path to a YAML config file (optional)
//   - TASKS_PORT: HTTP server port (default: 8080)
//   - GIN_MODE: Gin framework mode - debug, release, test (default: release)
//   - TASKS_LOG_LEVEL: Minimum log level - debug, info, warn, error (default: info)
//   - TASKS_LOG_DIR: Directory for JSON log files (optional)
//   - OTEL_EXPORTER_OTLP_ENDPOINT: OpenTelemetry collector (default: aleutian-otel-collector:4317)
//
// # Usage
//
//	# Build
//	go build -o tasks ./cmd/tasks
//
//	# Run
//	./tasks
//
//	# Or via container
//	podman-compose up tasks
package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/AleutianAI/AleutianTasks/cmd/tasks/config"
	"github.com/AleutianAI/AleutianTasks/pkg/logging"
	"github.com/AleutianAI/AleutianTasks/services/tasks"
)

func main() {
	cfg, err := config.Load(os.Getenv("TASKS_CONFIG"))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Setup structured logging
	logger := logging.New(logging.Config{
		Level:   logging.ParseLevel(cfg.LogLevel),
		LogDir:  cfg.LogDir,
		Service: "tasks",
		JSON:    true,
	})
	defer logger.Close()
	slog.SetDefault(logger.Slog())

	slog.Info("Starting tasks service",
		"port", cfg.Port,
		"gin_mode", cfg.GinMode,
		"otel_endpoint", cfg.OTelEndpoint,
	)

	svc, err := tasks.New(tasks.Config{
		Port:         cfg.Port,
		GinMode:      cfg.GinMode,
		OTelEndpoint: cfg.OTelEndpoint,
	})
	if err != nil {
		log.Fatalf("Failed to create tasks service: %v", err)
	}

	// Run the server (blocks until shutdown)
	if err := svc.Run(); err != nil {
		log.Fatalf("Tasks service error: %v", err)
	}
}
