package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"exercise_tracker/internal/platform/http/respond"
)

// Recovery turns a panic into a plain-text 500 and logs it.
func Recovery(log *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		log.Error("panic recovered", "error", recovered, "method", c.Request.Method, "path", c.Request.URL.Path)
		c.String(http.StatusInternalServerError, respond.InternalErrorText)
		c.Abort()
	})
}
