// Package gateway is the shopper's HTTP client for the storefront gateway.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

const requestTimeout = 15 * time.Second

// APIError is an error envelope returned by the gateway.
type APIError struct {
	Status  int
	Code    string
	Message string
	Details map[string]string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("gateway returned %d", e.Status)
	}

	return fmt.Sprintf("%s (%d): %s", e.Code, e.Status, e.Message)
}

// IsUnauthorized reports whether err means the session is missing or expired.
func IsUnauthorized(err error) bool {
	apiErr, ok := errors.Find[*APIError](err)

	return ok && apiErr.Status == http.StatusUnauthorized
}

// SessionInfo is the gateway's view of the current session.
type SessionInfo struct {
	Authenticated bool         `json:"authenticated"`
	User          *entity.User `json:"user,omitempty"`
	ExpiresAt     *time.Time   `json:"expiresAt,omitempty"`
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

// Client calls the gateway API with a persistent session cookie.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	logger  *slog.Logger
}

// New creates a client for baseURL, restoring any saved session from store.
func New(ctx context.Context, baseURL string, store SlotStore, logger *slog.Logger) (*Client, error) {
	origin, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil || origin.Scheme == "" || origin.Host == "" {
		return nil, errors.Errorf("invalid gateway url %q", baseURL)
	}

	jar, err := newPersistentJar(ctx, origin, store, logger)
	if err != nil {
		return nil, err
	}

	return &Client{
		baseURL: origin,
		http: &http.Client{
			Jar:     jar,
			Timeout: requestTimeout,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		logger: logger,
	}, nil
}

// Login exchanges credentials for a session cookie.
func (c *Client) Login(ctx context.Context, username, password string) (*entity.User, error) {
	body, err := json.Marshal(map[string]string{"username": username, "password": password})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var out struct {
		Success bool         `json:"success"`
		User    *entity.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, body, &out); err != nil {
		return nil, err
	}

	return out.User, nil
}

// Logout drops the session cookie.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil, nil)
}

// Session reports the current session. An anonymous caller is not an error.
func (c *Client) Session(ctx context.Context) (*SessionInfo, error) {
	var info SessionInfo
	err := c.do(ctx, http.MethodGet, "/api/auth/session", nil, nil, &info)
	if err != nil && !IsUnauthorized(err) {
		return nil, err
	}

	return &info, nil
}

// Categories lists category slugs.
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.do(ctx, http.MethodGet, "/api/categories", nil, nil, &categories); err != nil {
		return nil, err
	}

	return categories, nil
}

// Products fetches one listing page.
func (c *Client) Products(ctx context.Context, query entity.ProductQuery) (*entity.ProductPage, error) {
	var page entity.ProductPage
	if err := c.do(ctx, http.MethodGet, "/api/products", query.Values(), nil, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// Product fetches one product.
func (c *Client) Product(ctx context.Context, id int) (*entity.Product, error) {
	var product entity.Product
	if err := c.do(ctx, http.MethodGet, "/api/products/"+strconv.Itoa(id), nil, nil, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

// do sends the request and decodes the data envelope into out. The data
// member is decoded even for error statuses when present, so callers that
// tolerate an error can still read it.
func (c *Client) do(ctx context.Context, method, path string, params url.Values, body []byte, out any) error {
	target := c.baseURL.JoinPath(path)
	if len(params) > 0 {
		target.RawQuery = params.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
	if err != nil {
		return errors.Wrap(err, "build gateway request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "read %s response", path)
	}

	c.logger.Debug("gateway call",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
	)

	var env envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil && resp.StatusCode < http.StatusBadRequest {
			return errors.Wrapf(err, "decode %s response", path)
		}
	}

	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return errors.Wrapf(err, "decode %s data", path)
		}
	}

	if resp.StatusCode >= http.StatusBadRequest || (resp.StatusCode >= 300 && resp.StatusCode < 400) {
		apiErr := &APIError{Status: resp.StatusCode}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
			apiErr.Details = env.Error.Details
		}

		return apiErr
	}

	return nil
}
