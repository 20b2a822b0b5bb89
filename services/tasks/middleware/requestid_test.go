// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRequestIDRouter(captured *string) *gin.Engine {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/ping", func(c *gin.Context) {
		*captured = GetRequestID(c)
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func TestRequestID_GeneratesUUID(t *testing.T) {
	var seen string
	router := newRequestIDRouter(&seen)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/ping", nil)
	router.ServeHTTP(w, req)

	header := w.Header().Get(RequestIDHeader)
	require.NotEmpty(t, header)
	assert.NoError(t, uuid.Validate(header))
	assert.Equal(t, header, seen, "context id must match response header")
}

func TestRequestID_KeepsValidClientID(t *testing.T) {
	var seen string
	router := newRequestIDRouter(&seen)

	clientID := uuid.NewString()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/ping", nil)
	req.Header.Set(RequestIDHeader, clientID)
	router.ServeHTTP(w, req)

	assert.Equal(t, clientID, w.Header().Get(RequestIDHeader))
	assert.Equal(t, clientID, seen)
}

func TestRequestID_ReplacesInvalidClientID(t *testing.T) {
	var seen string
	router := newRequestIDRouter(&seen)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/ping", nil)
	req.Header.Set(RequestIDHeader, "not-a-uuid")
	router.ServeHTTP(w, req)

	header := w.Header().Get(RequestIDHeader)
	assert.NotEqual(t, "not-a-uuid", header)
	assert.NoError(t, uuid.Validate(header))
}

func TestGetRequestID_WithoutMiddleware(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Empty(t, GetRequestID(c))
}
