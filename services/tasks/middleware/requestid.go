// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package middleware provides HTTP middleware for the tasks service.
//
// # Request Identification
//
// The request-id middleware assigns every request a UUID v4, echoed back in
// the X-Request-ID response header and stored in the Gin context for
// handlers to attach to their logs. A client-supplied X-Request-ID is kept
// when it is a valid UUID, so upstream proxies can correlate traces.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader is the header carrying the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// requestIDKey is the context key for storing the request id.
// Using a namespaced key prevents collisions with other context values.
const requestIDKey = "aleutian_request_id"

// RequestID returns middleware that ensures every request has a request id.
//
// A valid client-supplied X-Request-ID is reused; anything else is replaced
// with a fresh UUID v4. The id is set on the response before the handler
// runs so error paths carry it too.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if uuid.Validate(id) != nil {
			id = uuid.NewString()
		}

		c.Set(requestIDKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)

		c.Next()
	}
}

// GetRequestID retrieves the request id stored by RequestID.
//
// Returns an empty string when the middleware did not run, so callers can
// log it unconditionally.
func GetRequestID(c *gin.Context) string {
	if id, ok := c.Get(requestIDKey); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}
