// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package observability provides metrics and instrumentation for the tasks service.
//
// # Description
//
// This package implements Prometheus metrics for monitoring store operations.
// Metrics include:
//   - Operation counters (by operation and outcome)
//   - A gauge of tasks currently held in the store
//
// # Integration
//
// Metrics are exposed via the /metrics endpoint. Use with Prometheus +
// Grafana for dashboards and alerting.
//
// # Thread Safety
//
// All metric operations are thread-safe via Prometheus's internal locking.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all metrics
const metricsNamespace = "aleutian"

// Subsystem for task store metrics
const tasksSubsystem = "tasks"

// TaskMetrics holds all Prometheus metrics for task store operations.
//
// # Description
//
// Provides counters and gauges for monitoring store usage. Initialize once
// at startup via InitMetrics().
//
// # Thread Safety
//
// All operations are thread-safe.
type TaskMetrics struct {
	// OperationsTotal counts store operations by operation and outcome.
	// Labels: operation (list, get, create, update, delete),
	// outcome (ok, not_found, validation_error)
	OperationsTotal *prometheus.CounterVec

	// TasksInStore tracks the number of tasks currently held in the store.
	TasksInStore prometheus.Gauge
}

// DefaultMetrics is the singleton instance of TaskMetrics.
// Initialized by InitMetrics(). Nil until then; recording helpers no-op
// while it is nil so handler tests can run without a registry.
var DefaultMetrics *TaskMetrics

// InitMetrics initializes the default metrics instance.
//
// # Description
//
// Creates and registers all Prometheus metrics. Should be called once at
// application startup, after the Prometheus registry is available.
//
// # Outputs
//
//   - *TaskMetrics: The initialized metrics instance.
//
// # Limitations
//
//   - Panics if called twice (duplicate registration).
func InitMetrics() *TaskMetrics {
	DefaultMetrics = &TaskMetrics{
		OperationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: tasksSubsystem,
				Name:      "operations_total",
				Help:      "Total store operations by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),

		TasksInStore: promauto.NewGauge(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Subsystem: tasksSubsystem,
				Name:      "in_store",
				Help:      "Number of tasks currently held in the store",
			},
		),
	}

	return DefaultMetrics
}

// =============================================================================
// Operations and Outcomes
// =============================================================================

// Operation identifies a store operation for metrics labeling.
type Operation string

const (
	OpList   Operation = "list"
	OpGet    Operation = "get"
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// Outcome is the tri-state result classification of a store operation.
type Outcome string

const (
	// OutcomeOK indicates the operation succeeded.
	OutcomeOK Outcome = "ok"

	// OutcomeNotFound indicates no task had the requested id.
	OutcomeNotFound Outcome = "not_found"

	// OutcomeValidationError indicates the request payload was unusable.
	OutcomeValidationError Outcome = "validation_error"
)

// =============================================================================
// Recording Helpers
// =============================================================================

// RecordOperation increments the operation counter.
// Safe to call before InitMetrics; it no-ops until metrics exist.
func RecordOperation(op Operation, outcome Outcome) {
	if DefaultMetrics == nil {
		return
	}
	DefaultMetrics.OperationsTotal.WithLabelValues(string(op), string(outcome)).Inc()
}

// SetTaskCount updates the in-store gauge.
// Safe to call before InitMetrics; it no-ops until metrics exist.
func SetTaskCount(n int) {
	if DefaultMetrics == nil {
		return
	}
	DefaultMetrics.TasksInStore.Set(float64(n))
}
