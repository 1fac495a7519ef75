// Package handler contains the HTTP handlers for the gateway.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"storefront/internal/delivery/api/cookie"
	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for session lifecycle handlers.
type AuthHandler struct {
	uc      usecase.AuthUsecase
	cookies *cookie.Manager
	logger  *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, cookies *cookie.Manager, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:      uc,
		cookies: cookies,
		logger:  logger,
	}
}

type loginResponse struct {
	Success bool         `json:"success"`
	User    *entity.User `json:"user"`
}

type sessionResponse struct {
	Authenticated bool         `json:"authenticated"`
	User          *entity.User `json:"user,omitempty"`
	ExpiresAt     *time.Time   `json:"expiresAt,omitempty"`
}

// Login handles the credential exchange and sets the session cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.cookies.Write(c, output.Session); err != nil {
		return errors.WithStack(err)
	}

	user := output.Session.User

	return response.Success(c, http.StatusOK, loginResponse{Success: true, User: &user})
}

// Logout clears the session cookie. It succeeds with or without a session.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.cookies.Clear(c)

	return response.Success(c, http.StatusOK, map[string]bool{"success": true})
}

// Session reports the caller's session state.
func (h *AuthHandler) Session(c echo.Context) error {
	status := h.uc.Status(c.Request().Context(), deliverycontext.GetSession(c))
	if !status.Authenticated {
		return response.Success(c, http.StatusUnauthorized, sessionResponse{})
	}

	return response.Success(c, http.StatusOK, sessionResponse{
		Authenticated: true,
		User:          status.User,
		ExpiresAt:     status.ExpiresAt,
	})
}
