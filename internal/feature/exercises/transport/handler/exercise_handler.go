// Package handler provides HTTP handlers for the exercises feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"exercise_tracker/internal/feature/exercises/domain/entity"
	"exercise_tracker/internal/feature/exercises/transport/http/dto"
	"exercise_tracker/internal/platform/http/respond"
)

// ExerciseUsecase defines the entry operations the handler depends on.
type ExerciseUsecase interface {
	AddExercise(ctx context.Context, userID string, in entity.EntryInput) (entity.AddedExercise, error)
	GetLog(ctx context.Context, userID string, p entity.LogParams) (entity.Log, error)
}

// ExerciseHandler handles HTTP requests for appending entries and reading logs.
type ExerciseHandler struct {
	exercises ExerciseUsecase
}

// NewExerciseHandler creates a new ExerciseHandler with the given usecase.
func NewExerciseHandler(exercises ExerciseUsecase) *ExerciseHandler {
	return &ExerciseHandler{exercises: exercises}
}

// Add handles POST /api/users/:id/exercises.
func (h *ExerciseHandler) Add(c *gin.Context) {
	var req dto.AddExerciseReq
	if err := c.ShouldBind(&req); err != nil {
		slog.Warn("add exercise bind failed", "error", err, "remote_addr", c.ClientIP())
		respond.BadRequest(c, "invalid request")
		return
	}

	userID := c.Param("id")
	added, err := h.exercises.AddExercise(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		slog.Warn("add exercise failed", "error", err, "user_id", userID, "remote_addr", c.ClientIP())
		respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromAdded(added))
}

// Log handles GET /api/users/:id/logs and its /exercises alias. Both routes
// read from, to and limit from the query string.
func (h *ExerciseHandler) Log(c *gin.Context) {
	var req dto.LogReq
	if err := c.ShouldBindQuery(&req); err != nil {
		respond.BadRequest(c, "invalid request")
		return
	}

	userID := c.Param("id")
	log, err := h.exercises.GetLog(c.Request.Context(), userID, req.ToParams())
	if err != nil {
		slog.Warn("get log failed", "error", err, "user_id", userID, "remote_addr", c.ClientIP())
		respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromLog(log))
}
