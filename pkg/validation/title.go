// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package validation provides input validation utilities for user-supplied values.
//
// This package contains validators for request fields before they reach the
// task store. Centralizing the rules here keeps the store and the HTTP
// handlers in agreement about what a usable value looks like.
package validation

import (
	"fmt"
	"strings"
)

// NormalizeTitle strips surrounding whitespace from a task title.
//
// The stored form of every title is the normalized form; callers must
// normalize before comparing against stored values.
func NormalizeTitle(title string) string {
	return strings.TrimSpace(title)
}

// ValidateTitle validates a task title.
//
// A valid title is non-empty after trimming surrounding whitespace.
// Returns an error describing the problem if the title is unusable.
//
// Example:
//
//	if err := validation.ValidateTitle(title); err != nil {
//	    return store.NewValidationError(err.Error())
//	}
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title must be a non-empty string")
	}
	return nil
}

// SanitizeTitle normalizes and validates a task title.
// Returns the trimmed title if valid, or an error if invalid.
//
// Use this when you need both validation and normalization:
//
//	clean, err := validation.SanitizeTitle(userInput)
//	if err != nil {
//	    return Task{}, NewValidationError(err.Error())
//	}
func SanitizeTitle(title string) (string, error) {
	clean := NormalizeTitle(title)
	if err := ValidateTitle(clean); err != nil {
		return "", err
	}
	return clean, nil
}
