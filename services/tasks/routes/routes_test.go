// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/AleutianTasks/services/tasks/store"
)

// ============================================================================
// Test Setup
// ============================================================================

func init() {
	// Set Gin to test mode to reduce noise in test output
	gin.SetMode(gin.TestMode)
}

func TestSetupRoutes_RegistersAllRoutes(t *testing.T) {
	router := gin.New()
	SetupRoutes(router, store.NewSeeded())

	expected := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/metrics"},
		{"GET", "/apidocs"},
		{"GET", "/tasks"},
		{"POST", "/tasks"},
		{"GET", "/tasks/:id"},
		{"PUT", "/tasks/:id"},
		{"DELETE", "/tasks/:id"},
	}

	routes := router.Routes()
	for _, want := range expected {
		found := false
		for _, r := range routes {
			if r.Method == want.method && r.Path == want.path {
				found = true
				break
			}
		}
		assert.True(t, found, "route %s %s not registered", want.method, want.path)
	}
}

func TestSetupRoutes_HealthResponds(t *testing.T) {
	router := gin.New()
	SetupRoutes(router, store.NewSeeded())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSetupRoutes_APIDocsResponds(t *testing.T) {
	router := gin.New()
	SetupRoutes(router, store.NewSeeded())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/apidocs", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Tasks API")
}

func TestSetupRoutes_MetricsResponds(t *testing.T) {
	router := gin.New()
	SetupRoutes(router, store.NewSeeded())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/metrics", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSetupRoutes_UnknownRouteIs404(t *testing.T) {
	router := gin.New()
	SetupRoutes(router, store.NewSeeded())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/nope", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
