// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package tasks provides the core tasks service.
//
// This package contains the main Service type that coordinates all
// components of the service: HTTP routing, the in-memory task store,
// and observability infrastructure (metrics, tracing).
//
// # Usage
//
//	cfg := tasks.Config{Port: 8080}
//	svc, err := tasks.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	log.Fatal(svc.Run())
package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/AleutianAI/AleutianTasks/services/tasks/middleware"
	"github.com/AleutianAI/AleutianTasks/services/tasks/observability"
	"github.com/AleutianAI/AleutianTasks/services/tasks/routes"
	"github.com/AleutianAI/AleutianTasks/services/tasks/store"
)

// serviceName identifies this service in traces and logs.
const serviceName = "tasks-service"

// =============================================================================
// Interface Definition
// =============================================================================

// Service defines the contract for the tasks service.
//
// # Description
//
// Service abstracts the service lifecycle, enabling testing and alternative
// implementations. Run() blocks and should only be called once per instance.
//
// # Thread Safety
//
// Implementations must be safe for concurrent use.
type Service interface {
	// Run starts the HTTP server and blocks until shutdown or error.
	Run() error

	// Router returns the underlying Gin engine for testing.
	// Callers must not modify the router after construction.
	Router() *gin.Engine

	// Store returns the task store, primarily for tests that need to
	// inspect state without going through HTTP.
	Store() *store.Store
}

// =============================================================================
// Configuration
// =============================================================================

// Config holds tasks service configuration options.
//
// All fields are optional; zero values use defaults applied by New().
// The Disable* flags invert so that the zero-value Config produces a fully
// instrumented service.
type Config struct {
	// Port is the HTTP server port. Default: 8080
	Port int

	// GinMode sets the Gin framework mode.
	// Valid values: "debug", "release", "test"
	// Default: uses GIN_MODE env var or "debug"
	GinMode string

	// OTelEndpoint is the OpenTelemetry collector endpoint.
	// Default: "aleutian-otel-collector:4317"
	OTelEndpoint string

	// DisableMetrics skips Prometheus metric registration.
	// Used by tests to avoid duplicate registry entries.
	DisableMetrics bool

	// DisableTracing skips OpenTelemetry tracer installation.
	DisableTracing bool
}

// =============================================================================
// Implementation
// =============================================================================

// service implements Service for production use.
//
// # Fields
//
//   - config: Service configuration
//   - router: Gin HTTP engine
//   - store: The in-memory task store, seeded at construction
//   - tracerCleanup: Function to shut down the tracer on exit
//
// # Thread Safety
//
// Thread-safe after construction. All fields are read-only after New()
// returns; the store carries its own lock.
type service struct {
	config        Config
	router        *gin.Engine
	store         *store.Store
	tracerCleanup func(context.Context)
}

// New creates a new tasks Service with the given configuration.
//
// # Description
//
// New initializes all service components:
//  1. Applies default configuration for missing values
//  2. Initializes OpenTelemetry tracing (unless disabled)
//  3. Initializes Prometheus metrics (unless disabled)
//  4. Seeds the in-memory task store with the starter records
//  5. Sets up HTTP routes
//
// # Outputs
//
//   - Service: Ready-to-run tasks service
//   - error: Non-nil if initialization fails
func New(cfg Config) (Service, error) {
	s := &service{
		config: applyConfigDefaults(cfg),
	}

	if !s.config.DisableTracing {
		cleanup, err := s.initTracer()
		if err != nil {
			return nil, fmt.Errorf("failed to initialize tracer: %w", err)
		}
		s.tracerCleanup = cleanup
	}

	s.store = store.NewSeeded()

	if !s.config.DisableMetrics {
		observability.InitMetrics()
		observability.SetTaskCount(s.store.Len())
		slog.Info("Initialized Prometheus metrics for task operations")
	}

	s.initRouter()

	return s, nil
}

// =============================================================================
// Service Interface Methods
// =============================================================================

// Run starts the HTTP server and blocks until shutdown or error.
func (s *service) Run() error {
	defer s.cleanup()

	addr := fmt.Sprintf(":%d", s.config.Port)
	slog.Info("Starting tasks server", "port", s.config.Port)

	return s.router.Run(addr)
}

// Router returns the underlying Gin engine for testing.
func (s *service) Router() *gin.Engine {
	return s.router
}

// Store returns the task store.
func (s *service) Store() *store.Store {
	return s.store
}

// =============================================================================
// Private Initialization Methods
// =============================================================================

// applyConfigDefaults fills in missing configuration values.
func applyConfigDefaults(cfg Config) Config {
	if cfg.Port == 0 {
		cfg.Port = 8080
	}
	if cfg.OTelEndpoint == "" {
		cfg.OTelEndpoint = "aleutian-otel-collector:4317"
	}
	return cfg
}

// initTracer initializes OpenTelemetry distributed tracing.
//
// Sets up an OTLP trace exporter sending spans to the configured collector
// over an insecure gRPC connection (appropriate for internal networks).
// Returns a cleanup function to call on shutdown.
func (s *service) initTracer() (func(context.Context), error) {
	ctx := context.Background()

	conn, err := grpc.NewClient(s.config.OTelEndpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC connection: %w", err)
	}

	traceExporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(conn))
	if err != nil {
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceNameKey.String(serviceName)))
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	bsp := sdktrace.NewBatchSpanProcessor(traceExporter)
	traceProvider := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(res),
		sdktrace.WithSpanProcessor(bsp))

	otel.SetTracerProvider(traceProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{}))

	cleanup := func(ctx context.Context) {
		ctx, cancel := context.WithTimeout(ctx, time.Second*5)
		defer cancel()
		if err := traceExporter.Shutdown(ctx); err != nil {
			slog.Error("failed to shutdown OTLP exporter", "error", err)
		}
	}

	return cleanup, nil
}

// initRouter sets up the Gin HTTP router with all routes.
func (s *service) initRouter() {
	if s.config.GinMode != "" {
		gin.SetMode(s.config.GinMode)
	}

	s.router = gin.Default()
	s.router.Use(middleware.RequestID())
	if !s.config.DisableTracing {
		s.router.Use(otelgin.Middleware(serviceName))
	}

	routes.SetupRoutes(s.router, s.store)
}

// cleanup releases all resources held by the service.
func (s *service) cleanup() {
	if s.tracerCleanup != nil {
		s.tracerCleanup(context.Background())
	}
}

// =============================================================================
// Compile-time Interface Compliance
// =============================================================================

var _ Service = (*service)(nil)
