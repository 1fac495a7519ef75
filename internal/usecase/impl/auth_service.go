// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"
)

// authService implements the AuthUsecase interface.
type authService struct {
	client    service.CommerceClient
	inspector service.TokenInspector
	logger    *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	client service.CommerceClient,
	inspector service.TokenInspector,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		client:    client,
		inspector: inspector,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login forwards the credentials upstream. A 4xx answer is reported as invalid
// credentials without echoing the upstream message; a 5xx stays an upstream failure.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	if details := missingCredentials(input); len(details) > 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails(details)
	}

	result, err := srv.client.Authenticate(ctx, service.Credentials{
		Username: input.Username,
		Password: input.Password,
	})
	if err != nil {
		var upstreamErr *domainerrors.UpstreamError
		if errors.As(err, &upstreamErr) && upstreamErr.Status() < http.StatusInternalServerError {
			srv.log(ctx).Info("Login rejected by upstream",
				slog.String("username", input.Username),
				slog.Int("status", upstreamErr.Status()),
			)

			return nil, domainerrors.ErrInvalidCredentials
		}
		if upstreamErr != nil {
			return nil, upstreamErr
		}

		return nil, errors.Wrap(err, "authenticate")
	}

	if result.AccessToken == "" {
		return nil, errors.Wrap(domainerrors.ErrInternalError, "upstream login returned no access token")
	}

	srv.log(ctx).Info("User logged in", slog.Int("user_id", result.User.ID))

	return &usecase.LoginOutput{
		Session: &entity.Session{
			AccessToken:  result.AccessToken,
			RefreshToken: result.RefreshToken,
			User:         result.User,
		},
	}, nil
}

func missingCredentials(input usecase.LoginInput) map[string]string {
	details := map[string]string{}
	if input.Username == "" {
		details["username"] = "required"
	}
	if input.Password == "" {
		details["password"] = "required"
	}

	return details
}

func (srv *authService) Status(ctx context.Context, session *entity.Session) usecase.SessionStatus {
	if !session.Authenticated() {
		return usecase.SessionStatus{}
	}

	user := session.User
	status := usecase.SessionStatus{Authenticated: true, User: &user}

	if exp, ok := srv.inspector.ExpiresAt(session.AccessToken); ok {
		exp = exp.In(time.UTC)
		status.ExpiresAt = &exp
	}

	return status
}
