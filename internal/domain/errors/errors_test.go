package errors

import (
	"net/http"
	"testing"

	"storefront/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	err := ErrValidationFailed.WithDetails(map[string]string{"password": "required"})

	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.False(t, errors.Is(err, ErrUnauthorized))
	assert.Equal(t, map[string]string{"password": "required"}, err.Details())
	assert.Nil(t, ErrValidationFailed.Details())
}

func TestBaseError_WrapMessage(t *testing.T) {
	wrapped := ErrInvalidCredentials.WrapMessage("upstream rejected login")

	var appErr AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
	assert.Equal(t, "INVALID_CREDENTIALS", appErr.ErrorCode())
}

func TestUpstreamError_HTTPCode(t *testing.T) {
	tests := []struct {
		status int
		want   int
	}{
		{status: http.StatusNotFound, want: http.StatusNotFound},
		{status: http.StatusTooManyRequests, want: http.StatusTooManyRequests},
		{status: http.StatusBadGateway, want: http.StatusBadGateway},
		{status: http.StatusMovedPermanently, want: http.StatusInternalServerError},
		{status: 0, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			err := NewUpstreamError("products", tt.status)
			assert.Equal(t, tt.want, err.HTTPCode())
			assert.Equal(t, "UPSTREAM_UNAVAILABLE", err.ErrorCode())
			assert.Equal(t, "Failed to fetch products", err.Message())
		})
	}
}
