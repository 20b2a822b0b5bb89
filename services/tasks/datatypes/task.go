// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package datatypes provides request and response types for the tasks service.
//
// Request bodies are decoded leniently: the store distinguishes "field
// absent" from "field present but invalid", so the decoding layer must not
// reject bodies the store could still act on. A body that fails to parse is
// treated as supplying no fields at all, matching the service's documented
// partial-update semantics.
package datatypes

import (
	"encoding/json"
	"io"

	"github.com/AleutianAI/AleutianTasks/services/tasks/store"
)

// Body field names accepted by the task endpoints.
const (
	// FieldTitle is the task title key in create and update bodies.
	FieldTitle = "title"

	// FieldDone is the completion flag key in update bodies.
	FieldDone = "done"
)

// ErrorResponse is the JSON shape of every task API error.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the JSON shape of the delete confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// DecodeObject decodes r as a JSON object into an untyped key/value mapping.
//
// Returns an empty (non-nil) map when the body is empty, is not valid JSON,
// or is valid JSON but not an object. Callers treat that as "no fields
// supplied"; whether that is an error is the caller's decision.
func DecodeObject(r io.Reader) map[string]any {
	if r == nil {
		return map[string]any{}
	}
	var body map[string]any
	if err := json.NewDecoder(r).Decode(&body); err != nil || body == nil {
		return map[string]any{}
	}
	return body
}

// RawTitle extracts the raw title value from a decoded body.
//
// Returns nil when the title key is absent, which the store rejects the
// same way it rejects a non-string title.
func RawTitle(body map[string]any) any {
	return body[FieldTitle]
}

// PatchFrom builds a store.TaskPatch from a decoded body.
//
// Only presence is recorded here; validity of each value is decided by the
// store when the patch is applied.
func PatchFrom(body map[string]any) store.TaskPatch {
	patch := store.TaskPatch{}
	if v, ok := body[FieldTitle]; ok {
		patch.Title = v
		patch.HasTitle = true
	}
	if v, ok := body[FieldDone]; ok {
		patch.Done = v
		patch.HasDone = true
	}
	return patch
}
