// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package store

import "errors"

// Sentinel errors for store operations.
var (
	// ErrTaskNotFound is returned when no task exists with the requested id.
	// Handlers map this to HTTP 404.
	ErrTaskNotFound = errors.New("task not found")
)

// ValidationError indicates the caller supplied an unusable value.
//
// Handlers map this to HTTP 400. The Reason is safe to return to clients;
// it never contains request payload contents.
type ValidationError struct {
	// Reason is a human-readable description of the failed rule.
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Reason
}

// NewValidationError creates a ValidationError with the given reason.
func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
