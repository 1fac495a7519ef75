// Package cookie moves sessions between echo requests and the sealed session cookie.
package cookie

import (
	"log/slog"
	"net/http"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/labstack/echo/v4"
)

// Manager reads and writes the session cookie.
type Manager struct {
	codec  service.SessionCodec
	name   string
	maxAge time.Duration
	secure bool
	logger *slog.Logger
}

// NewManager creates a Manager from the session configuration.
func NewManager(codec service.SessionCodec, cfg *config.Config, logger *slog.Logger) *Manager {
	return &Manager{
		codec:  codec,
		name:   cfg.Session.CookieName,
		maxAge: cfg.Session.MaxAge,
		secure: cfg.IsProduction(),
		logger: logger,
	}
}

// Read decodes the request cookie. A missing, tampered or expired cookie yields
// an anonymous session; this never fails.
func (m *Manager) Read(c echo.Context) *entity.Session {
	ck, err := c.Cookie(m.name)
	if err != nil || ck.Value == "" {
		return entity.AnonymousSession()
	}

	session, err := m.codec.Decode(ck.Value)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
			Debug("Ignoring unreadable session cookie", slog.Any("error", err))

		return entity.AnonymousSession()
	}

	return session
}

// Write seals session into a fresh cookie on the response.
func (m *Manager) Write(c echo.Context, session *entity.Session) error {
	value, err := m.codec.Encode(session)
	if err != nil {
		return errors.Wrap(err, "encode session cookie")
	}

	c.SetCookie(m.cookie(value, int(m.maxAge.Seconds()), time.Now().Add(m.maxAge)))

	return nil
}

// Clear expires the cookie on the response.
func (m *Manager) Clear(c echo.Context) {
	c.SetCookie(m.cookie("", -1, time.Unix(0, 0)))
}

func (m *Manager) cookie(value string, maxAge int, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     m.name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		Expires:  expires,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
