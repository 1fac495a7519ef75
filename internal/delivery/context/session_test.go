package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestSession_DefaultsToAnonymous(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	session := GetSession(c)

	assert.NotNil(t, session)
	assert.False(t, session.Authenticated())
}

func TestSession_SetAndGet(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	session := &entity.Session{AccessToken: "acc"}

	SetSession(c, session)

	assert.Same(t, session, GetSession(c))
}

func TestRequestID_EmptyContext(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, GetRequestIDFromContext(ctx))
	assert.Nil(t, GetLogger(ctx))
}

func TestAttachRequest(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Empty(t, GetRequestID(c))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	AttachRequest(c, "req-1", logger)

	assert.Equal(t, "req-1", GetRequestID(c))
	assert.Equal(t, "req-1", GetRequestIDFromContext(c.Request().Context()))
	assert.Same(t, logger, GetLogger(c.Request().Context()))
	assert.Same(t, logger, GetLoggerOrDefault(c.Request().Context(), nil))
}

func TestGetLoggerOrDefault_Fallback(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
}
