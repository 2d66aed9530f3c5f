// Package respond maps domain errors onto HTTP responses.
package respond

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"exercise_tracker/internal/platform/apperr"
)

// ErrorResponse is the JSON body for client errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// InternalErrorText is the plain-text body for unexpected failures.
const InternalErrorText = "Internal Server Error"

// Error writes the response for err:
//
//	*apperr.ValidationError     400 JSON
//	*apperr.ConstraintError     400 plain text
//	apperr.ErrConflict          409 JSON
//	apperr.ErrNotFound          404 JSON
//	anything else               500 plain text
func Error(c *gin.Context, err error) {
	var (
		verr *apperr.ValidationError
		cerr *apperr.ConstraintError
	)
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: verr.Message})
	case errors.As(err, &cerr):
		c.String(http.StatusBadRequest, cerr.Message)
	case errors.Is(err, apperr.ErrConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: message(err)})
	case errors.Is(err, apperr.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: message(err)})
	default:
		slog.Error("request failed", "error", err, "method", c.Request.Method, "path", c.Request.URL.Path)
		c.String(http.StatusInternalServerError, InternalErrorText)
	}
}

// BadRequest writes a 400 JSON error with a fixed message. Used when the
// request body cannot be decoded at all.
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

// message prefers the client-facing text of a kinded error over the full
// wrapped chain.
func message(err error) string {
	var e *apperr.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
