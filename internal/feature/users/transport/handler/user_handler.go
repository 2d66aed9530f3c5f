// Package handler provides HTTP handlers for the users feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"exercise_tracker/internal/feature/users/domain/entity"
	"exercise_tracker/internal/feature/users/transport/http/dto"
	"exercise_tracker/internal/platform/http/respond"
)

// UserUsecase defines the user operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type UserUsecase interface {
	Register(ctx context.Context, username string) (entity.User, error)
	ListUsers(ctx context.Context) ([]entity.User, error)
}

// UserHandler handles HTTP requests for registration and user listing.
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler creates a new UserHandler with the given usecase.
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// Register handles POST /api/users.
// - binds username from a form or JSON body
// - 400 when the username is missing
// - 409 when the username is taken
// - 200 with {_id, username} on success
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBind(&req); err != nil {
		slog.Warn("register bind failed", "error", err, "remote_addr", c.ClientIP())
		respond.BadRequest(c, "invalid request")
		return
	}

	user, err := h.users.Register(c.Request.Context(), req.Username)
	if err != nil {
		slog.Warn("register failed", "error", err, "username", req.Username, "remote_addr", c.ClientIP())
		respond.Error(c, err)
		return
	}

	slog.Info("user registered", "user_id", user.ID, "username", user.Username)
	c.JSON(http.StatusOK, dto.FromEntity(user))
}

// List handles GET /api/users.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.ListUsers(c.Request.Context())
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromEntities(users))
}
