// Package handler provides the HTTP handlers for the account feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"registration_backend/internal/feature/account/transport/http/dto"
	"registration_backend/internal/feature/account/transport/middleware"
	"registration_backend/internal/feature/account/usecase"
)

// UsersService defines the account operations the handlers depend on.
// Following Go convention, the interface is defined by the consumer (handler),
// not the provider (usecase).
type UsersService interface {
	// Register creates an inactive user and emails an activation code.
	Register(ctx context.Context, email, password string) (uint, error)
	// Activate validates the code and marks the account active.
	Activate(ctx context.Context, userID uint, code string) error
}

// AccountHandler handles HTTP requests for registration and activation.
type AccountHandler struct {
	users UsersService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(users UsersService) *AccountHandler {
	return &AccountHandler{users: users}
}

// Register handles POST /users/register.
//   - 400 on a malformed body or an out-of-bounds email/password
//   - 409 when the email is already registered
//   - 502 when the user was created but the activation email was not delivered
//   - 201 on success
//
// Each domain error kind keeps its own status; they are never collapsed into
// one generic failure.
func (h *AccountHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	_, err := h.users.Register(c.Request.Context(), req.Email, req.Password)
	switch {
	case err == nil:
		slog.Info("user registered", "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusCreated, gin.H{"message": "User created. Activation code sent."})
	case errors.Is(err, usecase.ErrUserAlreadyExists):
		slog.Warn("register rejected", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusConflict, gin.H{"error": "user already exists"})
	case errors.Is(err, usecase.ErrActivationEmailFailed):
		// The registration is committed; only the delivery failed.
		slog.Error("activation email not delivered", "error", err, "email", req.Email)
		c.JSON(http.StatusBadGateway, gin.H{"error": "user created but the activation email could not be sent"})
	default:
		slog.Error("register failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// Activate handles POST /activation behind the Basic-Auth gate.
//   - 401 invalid credentials
//   - 409 account already active
//   - 400 invalid activation code
//   - 410 expired activation code
//   - 200 on success
func (h *AccountHandler) Activate(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.Header("WWW-Authenticate", `Basic realm="activation"`)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	var req dto.ActivateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("activation validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	err := h.users.Activate(c.Request.Context(), userID, req.Code)
	switch {
	case err == nil:
		slog.Info("account activated", "user_id", userID)
		c.JSON(http.StatusOK, gin.H{"message": "Account successfully activated."})
	case errors.Is(err, usecase.ErrInvalidCredentials):
		c.Header("WWW-Authenticate", `Basic realm="activation"`)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, usecase.ErrUserAlreadyActive):
		c.JSON(http.StatusConflict, gin.H{"error": "user is already active"})
	case errors.Is(err, usecase.ErrActivationCodeExpired):
		c.JSON(http.StatusGone, gin.H{"error": "activation code expired"})
	case errors.Is(err, usecase.ErrInvalidActivationCode):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid activation code"})
	default:
		slog.Error("activation failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
