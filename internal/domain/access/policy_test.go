package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestPolicy() *Policy {
	return &Policy{
		ProtectedPrefixes: []string{"/products", "/cart"},
		AuthPath:          "/login",
		LandingPath:       "/products",
		InfraPrefixes:     []string{"/assets", "/.well-known", "/api", "/health"},
	}
}

func TestPolicy_Classify(t *testing.T) {
	policy := newTestPolicy()

	tests := []struct {
		path string
		want Class
	}{
		{path: "/products", want: ClassProtected},
		{path: "/products/42", want: ClassProtected},
		{path: "/cart", want: ClassProtected},
		{path: "/login", want: ClassAuth},
		{path: "/", want: ClassPublic},
		{path: "", want: ClassPublic},
		{path: "/about", want: ClassPublic},
		{path: "/productsx", want: ClassPublic},
		{path: "/api/products", want: ClassInfra},
		{path: "/assets/app.css", want: ClassInfra},
		{path: "/.well-known/security.txt", want: ClassInfra},
		{path: "/favicon.ico", want: ClassInfra},
		{path: "/products/image.png", want: ClassInfra},
		{path: "/v1.2/", want: ClassPublic},
		{path: "/products/v1.2/x", want: ClassProtected},
		{path: "/cart.v2/items", want: ClassPublic},
		{path: "/health", want: ClassInfra},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.Classify(tt.path))
		})
	}
}

func TestPolicy_Decide(t *testing.T) {
	policy := newTestPolicy()

	tests := []struct {
		name          string
		path          string
		authenticated bool
		want          Decision
	}{
		{name: "protected anonymous redirects to login", path: "/products", want: Decision{Action: Redirect, Target: "/login"}},
		{name: "protected detail anonymous redirects", path: "/products/7", want: Decision{Action: Redirect, Target: "/login"}},
		{name: "cart anonymous redirects", path: "/cart", want: Decision{Action: Redirect, Target: "/login"}},
		{name: "protected authenticated allowed", path: "/cart", authenticated: true, want: Decision{Action: Allow}},
		{name: "login authenticated redirects to catalog", path: "/login", authenticated: true, want: Decision{Action: Redirect, Target: "/products"}},
		{name: "login anonymous allowed", path: "/login", want: Decision{Action: Allow}},
		{name: "public anonymous allowed", path: "/", want: Decision{Action: Allow}},
		{name: "public authenticated allowed", path: "/", authenticated: true, want: Decision{Action: Allow}},
		{name: "api never gated", path: "/api/products", want: Decision{Action: Allow}},
		{name: "static file never gated", path: "/cart/logo.svg", want: Decision{Action: Allow}},
		{name: "dotted directory stays gated", path: "/products/v1.2/x", want: Decision{Action: Redirect, Target: "/login"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.Decide(tt.path, tt.authenticated))
		})
	}
}

func TestPolicy_DecideIsTotalOverSessionState(t *testing.T) {
	policy := newTestPolicy()

	for _, path := range []string{"/", "/about", "/api/auth/login", "/assets/x.js"} {
		for _, authenticated := range []bool{true, false} {
			assert.Equal(t, Allow, policy.Decide(path, authenticated).Action, path)
		}
	}
}
