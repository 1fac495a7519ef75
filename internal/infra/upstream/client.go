// Package upstream talks to the commerce API on behalf of authenticated sessions.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/infra/metrics"

	"go.uber.org/fx"
)

// commerceClient is the net/http implementation of service.CommerceClient.
type commerceClient struct {
	baseURL  string
	http     *http.Client
	cache    service.ResponseCache
	metrics  *metrics.Metrics
	logger   *slog.Logger
	policies map[string]service.CachePolicy
}

// ClientParams holds dependencies for the commerce client, injected by Fx
type ClientParams struct {
	fx.In

	Config  *config.Config
	Cache   service.ResponseCache
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// NewCommerceClient creates a CommerceClient for the configured upstream
func NewCommerceClient(params ClientParams) service.CommerceClient {
	cfg := params.Config

	return &commerceClient{
		baseURL: strings.TrimSuffix(cfg.Upstream.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Upstream.Timeout},
		cache:   params.Cache,
		metrics: params.Metrics,
		logger:  params.Logger,
		policies: map[string]service.CachePolicy{
			service.ResourceLogin:      {Resource: service.ResourceLogin},
			service.ResourceCategories: {Resource: service.ResourceCategories, TTL: cfg.Cache.CategoriesTTL},
			service.ResourceProduct:    {Resource: service.ResourceProduct, TTL: cfg.Cache.ProductTTL},
			service.ResourceProducts:   {Resource: service.ResourceProducts, TTL: cfg.Cache.ListingTTL},
		},
	}
}

// loginResponse is the upstream login payload: the profile plus tokens.
type loginResponse struct {
	entity.User
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func (c *commerceClient) Authenticate(ctx context.Context, creds service.Credentials) (*service.AuthResult, error) {
	body, err := json.Marshal(creds)
	if err != nil {
		return nil, errors.Wrap(err, "marshal credentials")
	}

	var resp loginResponse
	if err := c.do(ctx, service.ResourceLogin, http.MethodPost, "", "/auth/login", nil, body, &resp); err != nil {
		return nil, err
	}

	return &service.AuthResult{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		User:         resp.User,
	}, nil
}

func (c *commerceClient) Categories(ctx context.Context, token string) ([]string, error) {
	var categories []string
	if err := c.do(ctx, service.ResourceCategories, http.MethodGet, token, "/products/category-list", nil, nil, &categories); err != nil {
		return nil, err
	}

	return categories, nil
}

func (c *commerceClient) Product(ctx context.Context, token string, id int) (*entity.Product, error) {
	var product entity.Product
	if err := c.do(ctx, service.ResourceProduct, http.MethodGet, token, "/products/"+strconv.Itoa(id), nil, nil, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (c *commerceClient) Products(ctx context.Context, token string, query entity.ProductQuery) (*entity.ProductPage, error) {
	path, params := query.Endpoint()

	var page entity.ProductPage
	if err := c.do(ctx, service.ResourceProducts, http.MethodGet, token, path, params, nil, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

func (c *commerceClient) Policy(resource string) service.CachePolicy {
	if policy, ok := c.policies[resource]; ok {
		return policy
	}

	return service.CachePolicy{Resource: resource}
}

// do performs one upstream call, serving and filling the cache for cacheable resources.
func (c *commerceClient) do(ctx context.Context, resource, method, token, path string, params url.Values, body []byte, out any) error {
	target := c.baseURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	policy := c.Policy(resource)
	cacheable := method == http.MethodGet && policy.TTL > 0

	if cacheable {
		if cached, ok := c.fromCache(ctx, target); ok {
			if err := json.Unmarshal(cached, out); err == nil {
				c.metrics.CacheHit(ctx, resource)

				return nil
			}
			c.logger.Warn("Discarding undecodable cache entry", slog.String("key", target))
		}
		c.metrics.CacheMiss(ctx, resource)
	}

	raw, err := c.fetch(ctx, resource, method, token, target, body)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrapf(err, "decode upstream %s response", resource)
	}

	if cacheable {
		if err := c.cache.Set(ctx, target, raw, policy.TTL); err != nil {
			c.logger.Warn("Failed to cache upstream response",
				slog.String("key", target),
				slog.Any("error", err),
			)
		}
	}

	return nil
}

func (c *commerceClient) fromCache(ctx context.Context, key string) ([]byte, bool) {
	cached, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		c.logger.Warn("Response cache lookup failed", slog.String("key", key), slog.Any("error", err))

		return nil, false
	}

	return cached, ok
}

func (c *commerceClient) fetch(ctx context.Context, resource, method, token, target string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, errors.Wrapf(err, "build upstream %s request", resource)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.RecordUpstream(ctx, resource, 0, time.Since(start))

		return nil, errors.Wrapf(err, "upstream %s request", resource)
	}
	defer resp.Body.Close()

	c.metrics.RecordUpstream(ctx, resource, resp.StatusCode, time.Since(start))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// Drain so the connection can be reused; the body itself is never surfaced.
		_, _ = io.Copy(io.Discard, resp.Body)
		c.logger.Debug("Upstream returned non-success status",
			slog.String("resource", resource),
			slog.Int("status", resp.StatusCode),
		)

		return nil, domainerrors.NewUpstreamError(resource, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "read upstream %s response", resource)
	}

	return raw, nil
}

// Module provides the upstream FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewCommerceClient),
)
