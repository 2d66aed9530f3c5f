// Package handler provides HTTP handlers for platform-level endpoints.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
)

// checkTimeout bounds each dependency check.
const checkTimeout = 2 * time.Second

// Check tests one dependency. A nil error means healthy.
type Check func(ctx context.Context) error

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string   `json:"status"`
	Failed []string `json:"failed,omitempty"`
}

// Health returns the /healthz handler. Every check runs on GET and HEAD;
// any failure turns the response into 503. OPTIONS answers 204 without
// probing. Responses are never cached.
func Health(checks map[string]Check) gin.HandlerFunc {
	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)

	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")

		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		var failed []string
		for _, name := range names {
			ctx, cancel := context.WithTimeout(c.Request.Context(), checkTimeout)
			err := checks[name](ctx)
			cancel()
			if err != nil {
				slog.Warn("health check failed", "check", name, "error", err)
				failed = append(failed, name)
			}
		}

		status := http.StatusOK
		body := HealthResponse{Status: "ok"}
		if len(failed) > 0 {
			status = http.StatusServiceUnavailable
			body = HealthResponse{Status: "unavailable", Failed: failed}
		}

		if c.Request.Method == http.MethodHead {
			c.Status(status)
			return
		}
		c.JSON(status, body)
	}
}
