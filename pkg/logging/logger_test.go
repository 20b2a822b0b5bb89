// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package logging

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "INFO", LevelInfo.String())
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "UNKNOWN", Level(42).String())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelWarn, ParseLevel("WARN"))
	assert.Equal(t, LevelError, ParseLevel("error"))
	assert.Equal(t, LevelInfo, ParseLevel("info"))
	assert.Equal(t, LevelInfo, ParseLevel("bogus"), "unknown names fall back to info")
}

func TestNew_FileLogging(t *testing.T) {
	tempDir := t.TempDir()

	logger := New(Config{
		Level:   LevelInfo,
		LogDir:  tempDir,
		Service: "tasks-test",
		Quiet:   true,
	})
	logger.Info("created task", "task_id", 1)
	require.NoError(t, logger.Close())

	entries, err := os.ReadDir(tempDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasPrefix(entries[0].Name(), "tasks-test_"))

	data, err := os.ReadFile(filepath.Join(tempDir, entries[0].Name()))
	require.NoError(t, err)

	// File logs are JSON, one object per line.
	var entry map[string]any
	require.NoError(t, json.Unmarshal(data, &entry))
	assert.Equal(t, "created task", entry["msg"])
	assert.Equal(t, "tasks-test", entry["service"])
	assert.Equal(t, float64(1), entry["task_id"])
}

func TestNew_LevelFiltering(t *testing.T) {
	tempDir := t.TempDir()

	logger := New(Config{
		Level:   LevelWarn,
		LogDir:  tempDir,
		Service: "tasks-test",
		Quiet:   true,
	})
	logger.Debug("dropped")
	logger.Info("also dropped")
	logger.Warn("kept")
	require.NoError(t, logger.Close())

	entries, err := os.ReadDir(tempDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(tempDir, entries[0].Name()))
	require.NoError(t, err)

	content := string(data)
	assert.NotContains(t, content, "dropped")
	assert.Contains(t, content, "kept")
}

func TestWith_AddsAttributes(t *testing.T) {
	tempDir := t.TempDir()

	logger := New(Config{
		LogDir:  tempDir,
		Service: "tasks-test",
		Quiet:   true,
	})
	reqLogger := logger.With("request_id", "abc-123")
	reqLogger.Info("processing")
	require.NoError(t, logger.Close())

	entries, err := os.ReadDir(tempDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(tempDir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), "abc-123")
}

func TestClose_WithoutFileIsNoOp(t *testing.T) {
	logger := Default()
	assert.NoError(t, logger.Close())
}

func TestSlog_ReturnsUsableLogger(t *testing.T) {
	logger := Default()
	var sl *slog.Logger = logger.Slog()
	assert.NotNil(t, sl)
}
