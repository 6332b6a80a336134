// Package dto defines data transfer objects for the auth feature's HTTP
// transport layer.
package dto

import (
	"time"

	"task_backend/internal/feature/auth/domain/entity"
)

// RegisterReq is the request body for POST /api/auth/register. Gin's
// binding tags validate it before it reaches the core.
type RegisterReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginReq is the request body for POST /api/auth/login.
type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResp is the public view of a user. It never carries the password
// hash.
type UserResp struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewUserResp converts a user entity into its public view.
func NewUserResp(u *entity.User) UserResp {
	return UserResp{
		ID:        u.ID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// TokenResp carries the session token issued on login.
type TokenResp struct {
	Token string `json:"token"`
}

// MessageResp is a generic success message body.
type MessageResp struct {
	Message string `json:"message"`
}

// ErrorResp is the uniform error body. Error is a stable machine-readable
// code; internal detail never reaches the client.
type ErrorResp struct {
	Error string `json:"error"`
}
