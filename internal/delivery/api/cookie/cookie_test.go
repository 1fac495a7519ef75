package cookie

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/infra/session"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T, env string) *Manager {
	t.Helper()

	cfg := &config.Config{}
	cfg.Env.Env = env
	cfg.Session = config.SessionConfig{
		Secret:     "test_session_secret_key_very_long_for_testing",
		CookieName: "ecommerce_session",
		MaxAge:     7 * 24 * time.Hour,
	}

	codec, err := session.NewCodec(cfg)
	require.NoError(t, err)

	return NewManager(codec, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestManager_WriteThenRead(t *testing.T) {
	m := newTestManager(t, "development")
	e := echo.New()
	want := &entity.Session{AccessToken: "acc", RefreshToken: "ref", User: entity.User{ID: 1, Username: "emilys"}}

	rec := httptest.NewRecorder()
	require.NoError(t, m.Write(e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec), want))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.False(t, cookies[0].Secure)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])

	assert.Equal(t, want, m.Read(e.NewContext(req, httptest.NewRecorder())))
}

func TestManager_ReadFallsBackToAnonymous(t *testing.T) {
	m := newTestManager(t, "development")
	e := echo.New()

	for _, value := range []string{"", "garbage", "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if value != "" {
			req.AddCookie(&http.Cookie{Name: "ecommerce_session", Value: value})
		}

		session := m.Read(e.NewContext(req, httptest.NewRecorder()))

		assert.False(t, session.Authenticated(), value)
	}
}

func TestManager_SecureInProduction(t *testing.T) {
	m := newTestManager(t, "production")
	e := echo.New()

	rec := httptest.NewRecorder()
	require.NoError(t, m.Write(e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec), &entity.Session{AccessToken: "acc"}))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].Secure)
}

func TestManager_Clear(t *testing.T) {
	m := newTestManager(t, "development")
	e := echo.New()

	rec := httptest.NewRecorder()
	m.Clear(e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "ecommerce_session", cookies[0].Name)
	assert.Less(t, cookies[0].MaxAge, 0)
}
