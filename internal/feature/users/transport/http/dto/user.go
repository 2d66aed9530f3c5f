// Package dto defines data transfer objects for the users feature's HTTP transport layer.
package dto

import "exercise_tracker/internal/feature/users/domain/entity"

// RegisterReq is the body of POST /api/users. It binds from a form or JSON.
// Presence is checked by the usecase.
type RegisterReq struct {
	Username string `form:"username" json:"username"`
}

// UserResponse is the public shape of a user.
type UserResponse struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

// FromEntity maps a domain user to its response shape.
func FromEntity(u entity.User) UserResponse {
	return UserResponse{ID: u.ID, Username: u.Username}
}

// FromEntities maps a slice, keeping an empty slice (never null) on the wire.
func FromEntities(us []entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(us))
	for _, u := range us {
		out = append(out, FromEntity(u))
	}
	return out
}
