package middleware

import (
	"storefront/internal/delivery/api/cookie"
	deliverycontext "storefront/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// SessionMiddleware decodes the session cookie once per request.
type SessionMiddleware struct {
	cookies *cookie.Manager
}

// NewSessionMiddleware creates a new session middleware
func NewSessionMiddleware(cookies *cookie.Manager) *SessionMiddleware {
	return &SessionMiddleware{cookies: cookies}
}

// Load stores the decoded, or anonymous, session on the echo context.
func (m *SessionMiddleware) Load(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		deliverycontext.SetSession(c, m.cookies.Read(c))

		return next(c)
	}
}
