package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"session": map[string]any{
			"cookieName": "ecommerce_session",
			"maxAge":     "168h",
		},
		"upstream": map[string]any{
			"baseUrl": "https://dummyjson.com",
		},
		"cache": map[string]any{
			"categoriesTtl": "24h",
			"redis": map[string]any{
				"addr": "localhost:6379",
			},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "SESSION_COOKIENAME", want: "session.cookieName"},
		{envKey: "SESSION_MAXAGE", want: "session.maxAge"},
		{envKey: "UPSTREAM_BASEURL", want: "upstream.baseUrl"},
		{envKey: "CACHE_REDIS_ADDR", want: "cache.redis.addr"},
		{envKey: "CACHE_CATEGORIESTTL", want: "cache.categoriesTtl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, "ecommerce_session", cfg.Session.CookieName)
	assert.Equal(t, 7*24*time.Hour, cfg.Session.MaxAge)
	assert.Equal(t, 24*time.Hour, cfg.Cache.CategoriesTTL)
	assert.Equal(t, time.Hour, cfg.Cache.ProductTTL)
	assert.Equal(t, time.Hour, cfg.Cache.ListingTTL)
	assert.Equal(t, []string{"/products", "/cart"}, cfg.Access.ProtectedPrefixes)
	assert.Equal(t, "/login", cfg.Access.AuthPath)
	assert.Equal(t, "/products", cfg.Access.LandingPath)
	assert.Equal(t, 500*time.Millisecond, cfg.Client.Debounce)
	assert.Equal(t, "100KB", cfg.HTTP.MaxRequestBodySize)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{Cache: &CacheConfig{Provider: "redis", ProductTTL: 5 * time.Minute}}
	cfg.Access.AuthPath = "/signin"
	applyDefaults(cfg)

	assert.Equal(t, "redis", cfg.Cache.Provider)
	assert.Equal(t, 5*time.Minute, cfg.Cache.ProductTTL)
	assert.Equal(t, "/signin", cfg.Access.AuthPath)
}

func TestIsProduction(t *testing.T) {
	cfg := &Config{}
	cfg.Env.Env = "Production"
	assert.True(t, cfg.IsProduction())

	cfg.Env.Env = "local"
	assert.False(t, cfg.IsProduction())
}
