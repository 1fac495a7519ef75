// Package auth provides concrete implementations for token-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"storefront/internal/domain/service"
)

// jwtInspector reads claims from tokens issued by the commerce API.
// The signing key belongs to the upstream, so signatures are never checked here.
type jwtInspector struct {
	parser *jwt.Parser
}

// NewJWTInspector is the constructor for jwtInspector.
func NewJWTInspector() service.TokenInspector {
	return &jwtInspector{parser: jwt.NewParser()}
}

// ExpiresAt returns the exp claim of token, if it is a JWT carrying one.
func (i *jwtInspector) ExpiresAt(token string) (time.Time, bool) {
	if token == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := i.parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}

	return exp.Time, true
}
