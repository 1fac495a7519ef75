package impl

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixedInspector struct {
	exp time.Time
	ok  bool
}

func (i fixedInspector) ExpiresAt(string) (time.Time, bool) {
	return i.exp, i.ok
}

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service usecase.AuthUsecase
	client  *mockService.MockCommerceClient
}

func createTestAuthService(t *testing.T, inspector service.TokenInspector) authServiceFixtures {
	client := mockService.NewMockCommerceClient(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return authServiceFixtures{
		service: NewAuthService(client, inspector, logger),
		client:  client,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t, fixedInspector{})
	ctx := context.Background()
	user := entity.User{ID: 1, Username: "emilys", FirstName: "Emily"}

	fx.client.EXPECT().
		Authenticate(ctx, service.Credentials{Username: "emilys", Password: "emilyspass"}).
		Return(&service.AuthResult{AccessToken: "acc", RefreshToken: "ref", User: user}, nil)

	out, err := fx.service.Login(ctx, usecase.LoginInput{Username: "emilys", Password: "emilyspass"})

	require.NoError(t, err)
	assert.Equal(t, &entity.Session{AccessToken: "acc", RefreshToken: "ref", User: user}, out.Session)
	assert.True(t, out.Session.Authenticated())
}

func TestAuthService_Login_ValidationNeverReachesUpstream(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.LoginInput
		want  map[string]string
	}{
		{name: "empty password", input: usecase.LoginInput{Username: "emilys"}, want: map[string]string{"password": "required"}},
		{name: "empty username", input: usecase.LoginInput{Password: "x"}, want: map[string]string{"username": "required"}},
		{name: "both empty", input: usecase.LoginInput{}, want: map[string]string{"username": "required", "password": "required"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t, fixedInspector{})

			out, err := fx.service.Login(context.Background(), tt.input)

			assert.Nil(t, out)
			require.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.want, appErr.Details())
			fx.client.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything)
		})
	}
}

func TestAuthService_Login_UpstreamFailures(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantIs   error
		wantCode int
	}{
		{
			name:     "rejected credentials",
			err:      domainerrors.NewUpstreamError(service.ResourceLogin, http.StatusBadRequest),
			wantIs:   domainerrors.ErrInvalidCredentials,
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "upstream unauthorized",
			err:      domainerrors.NewUpstreamError(service.ResourceLogin, http.StatusUnauthorized),
			wantIs:   domainerrors.ErrInvalidCredentials,
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "upstream outage",
			err:      domainerrors.NewUpstreamError(service.ResourceLogin, http.StatusBadGateway),
			wantCode: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t, fixedInspector{})
			fx.client.EXPECT().Authenticate(mock.Anything, mock.Anything).Return(nil, tt.err)

			out, err := fx.service.Login(context.Background(), usecase.LoginInput{Username: "u", Password: "p"})

			assert.Nil(t, out)
			if tt.wantIs != nil {
				assert.True(t, errors.Is(err, tt.wantIs))
			}
			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.wantCode, appErr.HTTPCode())
		})
	}
}

func TestAuthService_Login_TransportError(t *testing.T) {
	fx := createTestAuthService(t, fixedInspector{})
	fx.client.EXPECT().Authenticate(mock.Anything, mock.Anything).Return(nil, errors.New("dial tcp: connection refused"))

	_, err := fx.service.Login(context.Background(), usecase.LoginInput{Username: "u", Password: "p"})

	require.Error(t, err)
	var appErr domainerrors.AppError
	assert.False(t, errors.As(err, &appErr))
}

func TestAuthService_Status(t *testing.T) {
	exp := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	session := &entity.Session{AccessToken: "acc", User: entity.User{ID: 3, Username: "michaelw"}}

	t.Run("authenticated with expiry", func(t *testing.T) {
		fx := createTestAuthService(t, fixedInspector{exp: exp, ok: true})

		status := fx.service.Status(context.Background(), session)

		assert.True(t, status.Authenticated)
		assert.Equal(t, "michaelw", status.User.Username)
		require.NotNil(t, status.ExpiresAt)
		assert.True(t, exp.Equal(*status.ExpiresAt))
	})

	t.Run("authenticated opaque token", func(t *testing.T) {
		fx := createTestAuthService(t, fixedInspector{})

		status := fx.service.Status(context.Background(), session)

		assert.True(t, status.Authenticated)
		assert.Nil(t, status.ExpiresAt)
	})

	t.Run("anonymous", func(t *testing.T) {
		fx := createTestAuthService(t, fixedInspector{exp: exp, ok: true})

		assert.Equal(t, usecase.SessionStatus{}, fx.service.Status(context.Background(), entity.AnonymousSession()))
		assert.Equal(t, usecase.SessionStatus{}, fx.service.Status(context.Background(), nil))
	})
}
