package context

import (
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeySession is the echo.Context key for the decoded session.
const KeySession ContextKey = "session"

// GetSession returns the session decoded for this request, or an anonymous one.
func GetSession(c echo.Context) *entity.Session {
	if session, ok := c.Get(string(KeySession)).(*entity.Session); ok && session != nil {
		return session
	}

	return entity.AnonymousSession()
}

// SetSession stores the decoded session for the rest of this request only.
func SetSession(c echo.Context, session *entity.Session) {
	c.Set(string(KeySession), session)
}
