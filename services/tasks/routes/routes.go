// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package routes

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AleutianAI/AleutianTasks/services/tasks/docs"
	"github.com/AleutianAI/AleutianTasks/services/tasks/handlers"
	"github.com/AleutianAI/AleutianTasks/services/tasks/store"
)

// SetupRoutes registers every route of the tasks service.
func SetupRoutes(router *gin.Engine, s *store.Store) {
	router.GET("/health", handlers.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/apidocs", serveAPIDocs)

	// Task collection routes
	tasks := router.Group("/tasks")
	{
		tasks.GET("", handlers.ListTasks(s))
		tasks.POST("", handlers.CreateTask(s))
		tasks.GET("/:id", handlers.GetTask(s))
		tasks.PUT("/:id", handlers.UpdateTask(s))
		tasks.DELETE("/:id", handlers.DeleteTask(s))
	}
}

// serveAPIDocs returns the OpenAPI document as JSON.
func serveAPIDocs(c *gin.Context) {
	doc, err := docs.Document()
	if err != nil {
		slog.Error("failed to load the API documentation", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "documentation unavailable"})
		return
	}
	c.JSON(http.StatusOK, doc)
}
