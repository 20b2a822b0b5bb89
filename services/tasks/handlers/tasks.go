// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package handlers provides the Gin handlers for the tasks service.
//
// Each handler is a thin translation layer: it decodes the request, hands
// the store an untyped value or a typed patch, and maps the store's outcome
// to a status code. All validation and mutation decisions live in the store.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AleutianAI/AleutianTasks/services/tasks/datatypes"
	"github.com/AleutianAI/AleutianTasks/services/tasks/middleware"
	"github.com/AleutianAI/AleutianTasks/services/tasks/observability"
	"github.com/AleutianAI/AleutianTasks/services/tasks/store"
)

// Client-facing messages. Kept as constants so tests and the OpenAPI
// document stay in agreement with the handlers.
const (
	msgTaskNotFound   = "task not found"
	msgBodyMustBeJSON = "request body must be JSON"
	msgTaskDeleted    = "task deleted"
)

// taskID parses the :id path segment.
//
// Non-integer and negative segments do not name a task; callers answer 404
// without touching the store, mirroring a typed route converter.
func taskID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}

// isJSONContent reports whether the request declares a JSON body.
// Accepts application/json and any +json suffixed media type.
func isJSONContent(c *gin.Context) bool {
	ct := c.ContentType()
	return ct == "application/json" || strings.HasSuffix(ct, "+json")
}

// ListTasks returns the full ordered task list.
func ListTasks(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		tasks := s.List()

		observability.RecordOperation(observability.OpList, observability.OutcomeOK)
		c.JSON(http.StatusOK, tasks)
	}
}

// GetTask returns a single task by id.
func GetTask(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := taskID(c)
		if !ok {
			c.JSON(http.StatusNotFound, datatypes.ErrorResponse{Error: msgTaskNotFound})
			return
		}

		task, err := s.Get(id)
		if err != nil {
			observability.RecordOperation(observability.OpGet, observability.OutcomeNotFound)
			c.JSON(http.StatusNotFound, datatypes.ErrorResponse{Error: msgTaskNotFound})
			return
		}

		observability.RecordOperation(observability.OpGet, observability.OutcomeOK)
		c.JSON(http.StatusOK, task)
	}
}

// CreateTask validates the request body and appends a new task.
//
// A non-JSON Content-Type is rejected with 415 before the body is read.
// A body that fails to parse supplies no fields, which the store rejects
// the same way it rejects a missing title.
func CreateTask(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isJSONContent(c) {
			c.JSON(http.StatusUnsupportedMediaType,
				datatypes.ErrorResponse{Error: msgBodyMustBeJSON})
			return
		}

		body := datatypes.DecodeObject(c.Request.Body)

		task, err := s.Create(datatypes.RawTitle(body))
		if err != nil {
			var ve *store.ValidationError
			if errors.As(err, &ve) {
				observability.RecordOperation(observability.OpCreate,
					observability.OutcomeValidationError)
				c.JSON(http.StatusBadRequest, datatypes.ErrorResponse{Error: ve.Reason})
				return
			}
			slog.Error("create task failed", "request_id", middleware.GetRequestID(c), "error", err)
			c.JSON(http.StatusInternalServerError,
				datatypes.ErrorResponse{Error: "failed to create task"})
			return
		}

		slog.Info("created task",
			"request_id", middleware.GetRequestID(c),
			"task_id", task.ID,
		)
		observability.RecordOperation(observability.OpCreate, observability.OutcomeOK)
		observability.SetTaskCount(s.Len())
		c.JSON(http.StatusCreated, task)
	}
}

// UpdateTask applies a partial update to a task.
//
// An unparseable body degenerates to an empty patch; the update still
// succeeds as a field-wise no-op when the id exists.
func UpdateTask(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := taskID(c)
		if !ok {
			c.JSON(http.StatusNotFound, datatypes.ErrorResponse{Error: msgTaskNotFound})
			return
		}

		patch := datatypes.PatchFrom(datatypes.DecodeObject(c.Request.Body))

		task, err := s.Update(id, patch)
		if err != nil {
			observability.RecordOperation(observability.OpUpdate, observability.OutcomeNotFound)
			c.JSON(http.StatusNotFound, datatypes.ErrorResponse{Error: msgTaskNotFound})
			return
		}

		slog.Info("updated task",
			"request_id", middleware.GetRequestID(c),
			"task_id", task.ID,
		)
		observability.RecordOperation(observability.OpUpdate, observability.OutcomeOK)
		c.JSON(http.StatusOK, task)
	}
}

// DeleteTask removes a task by id.
func DeleteTask(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := taskID(c)
		if !ok {
			c.JSON(http.StatusNotFound, datatypes.ErrorResponse{Error: msgTaskNotFound})
			return
		}

		if err := s.Delete(id); err != nil {
			observability.RecordOperation(observability.OpDelete, observability.OutcomeNotFound)
			c.JSON(http.StatusNotFound, datatypes.ErrorResponse{Error: msgTaskNotFound})
			return
		}

		slog.Info("deleted task",
			"request_id", middleware.GetRequestID(c),
			"task_id", id,
		)
		observability.RecordOperation(observability.OpDelete, observability.OutcomeOK)
		observability.SetTaskCount(s.Len())
		c.JSON(http.StatusOK, datatypes.MessageResponse{Message: msgTaskDeleted})
	}
}
