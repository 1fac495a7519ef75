// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
)

// LoginInput defines the credentials submitted to log in.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput carries the session to be sealed into the cookie.
type LoginOutput struct {
	Session *entity.Session
}

// SessionStatus describes the caller's session for the session-check endpoint.
type SessionStatus struct {
	Authenticated bool
	User          *entity.User
	ExpiresAt     *time.Time
}

// AuthUsecase defines the session lifecycle operations.
type AuthUsecase interface {
	// Login exchanges credentials with the commerce API for a session.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Status reports whether session is authenticated and, if known, when its token expires.
	Status(ctx context.Context, session *entity.Session) SessionStatus
}
