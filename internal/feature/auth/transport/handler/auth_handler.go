// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"task_backend/internal/feature/auth/domain"
	"task_backend/internal/feature/auth/domain/entity"
	"task_backend/internal/feature/auth/transport/http/dto"
	"task_backend/internal/platform/token"
)

// AuthUsecase defines the authentication operations the handler consumes.
type AuthUsecase interface {
	// Register creates a new account and returns the stored user.
	Register(ctx context.Context, email, password string) (*entity.User, error)
	// Login authenticates the user and returns the stored record.
	Login(ctx context.Context, email, password string) (*entity.User, error)
	// DeleteAccount removes the user and cascades to their tasks.
	DeleteAccount(ctx context.Context, userID string) error
}

// AuthHandler handles HTTP requests for registration, login, logout, and
// account deletion.
type AuthHandler struct {
	auth     AuthUsecase
	sessions *token.Manager
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(auth AuthUsecase, sessions *token.Manager) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions}
}

// Register handles POST /api/auth/register.
// - 201 with the public user view on success
// - 400 on validation failure or duplicate email
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResp{Error: "invalid request"})
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			slog.Warn("register rejected", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, dto.ErrorResp{Error: "user already exists"})
			return
		}
		slog.Error("register failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.ErrorResp{Error: "internal error"})
		return
	}

	slog.Info("user registered", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.NewUserResp(user))
}

// Login handles POST /api/auth/login. On success the session token is
// returned in the body and set as an HTTP-only cookie.
// - 200 with the token on success
// - 401 on invalid credentials, never distinguishing the cause
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResp{Error: "invalid request"})
		return
	}

	user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		slog.Warn("login failed", "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, dto.ErrorResp{Error: "invalid credentials"})
		return
	}

	signed, err := h.sessions.Issue(user.ID)
	if err != nil {
		slog.Error("token issuance failed", "error", err, "user_id", user.ID)
		c.JSON(http.StatusInternalServerError, dto.ErrorResp{Error: "internal error"})
		return
	}

	maxAge := int(h.sessions.TTL().Seconds())
	c.SetCookie(token.CookieName, signed, maxAge, "/", "", false, true)

	slog.Info("user login successful", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.TokenResp{Token: signed})
}

// Logout handles POST /api/auth/logout. Session tokens are stateless and
// cannot be revoked server-side; logout only clears the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(token.CookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, dto.MessageResp{Message: "logged out"})
}

// DeleteAccount handles DELETE /api/auth/account for the authenticated
// user, cascading to their tasks.
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	userID, ok := token.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResp{Error: "unauthorized"})
		return
	}

	if err := h.auth.DeleteAccount(c.Request.Context(), userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResp{Error: "user not found"})
			return
		}
		slog.Error("account deletion failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, dto.ErrorResp{Error: "internal error"})
		return
	}

	c.SetCookie(token.CookieName, "", -1, "/", "", false, true)
	slog.Info("account deleted", "user_id", userID)
	c.JSON(http.StatusOK, dto.MessageResp{Message: "account deleted"})
}
