// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

// ============================================================================
// Test Helper: Create isolated metrics for testing
// ============================================================================

// newTestMetrics creates a TaskMetrics instance with a custom registry.
// This avoids conflicts with the global Prometheus registry and allows
// parallel testing.
func newTestMetrics(t *testing.T) *TaskMetrics {
	t.Helper()

	reg := prometheus.NewRegistry()

	operationsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: tasksSubsystem,
			Name:      "operations_total",
			Help:      "Total store operations by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	tasksInStore := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: tasksSubsystem,
			Name:      "in_store",
			Help:      "Number of tasks currently held in the store",
		},
	)

	reg.MustRegister(operationsTotal, tasksInStore)

	return &TaskMetrics{
		OperationsTotal: operationsTotal,
		TasksInStore:    tasksInStore,
	}
}

func TestOperationsTotal_IncrementsByLabels(t *testing.T) {
	m := newTestMetrics(t)

	m.OperationsTotal.WithLabelValues(string(OpCreate), string(OutcomeOK)).Inc()
	m.OperationsTotal.WithLabelValues(string(OpCreate), string(OutcomeOK)).Inc()
	m.OperationsTotal.WithLabelValues(string(OpGet), string(OutcomeNotFound)).Inc()

	assert.Equal(t, float64(2), testutil.ToFloat64(
		m.OperationsTotal.WithLabelValues("create", "ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(
		m.OperationsTotal.WithLabelValues("get", "not_found")))
	assert.Equal(t, float64(0), testutil.ToFloat64(
		m.OperationsTotal.WithLabelValues("delete", "ok")))
}

func TestTasksInStore_GaugeTracksValue(t *testing.T) {
	m := newTestMetrics(t)

	m.TasksInStore.Set(2)
	assert.Equal(t, float64(2), testutil.ToFloat64(m.TasksInStore))

	m.TasksInStore.Set(0)
	assert.Equal(t, float64(0), testutil.ToFloat64(m.TasksInStore))
}

func TestRecordingHelpers_NoOpWithoutInit(t *testing.T) {
	// DefaultMetrics is nil in tests; the helpers must not panic.
	prev := DefaultMetrics
	DefaultMetrics = nil
	defer func() { DefaultMetrics = prev }()

	assert.NotPanics(t, func() {
		RecordOperation(OpList, OutcomeOK)
		SetTaskCount(3)
	})
}
