package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("upstream-owned-secret"))
	require.NoError(t, err)

	return token
}

func TestJWTInspector_ExpiresAt(t *testing.T) {
	inspector := NewJWTInspector()
	exp := time.Now().Add(30 * time.Minute).Truncate(time.Second)

	tests := []struct {
		name   string
		token  string
		wantOK bool
		want   time.Time
	}{
		{
			name:   "token with exp",
			token:  signToken(t, jwt.MapClaims{"id": 1, "username": "emilys", "exp": exp.Unix()}),
			wantOK: true,
			want:   exp,
		},
		{
			name:  "token without exp",
			token: signToken(t, jwt.MapClaims{"id": 1}),
		},
		{
			name:  "opaque token",
			token: "not-a-jwt",
		},
		{
			name:  "empty token",
			token: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := inspector.ExpiresAt(tt.token)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.True(t, tt.want.Equal(got), "want %v got %v", tt.want, got)
			}
		})
	}
}

func TestJWTInspector_ExpiredTokenStillReadable(t *testing.T) {
	exp := time.Now().Add(-time.Hour).Truncate(time.Second)
	token := signToken(t, jwt.MapClaims{"exp": exp.Unix()})

	got, ok := NewJWTInspector().ExpiresAt(token)

	require.True(t, ok)
	assert.True(t, exp.Equal(got))
}
