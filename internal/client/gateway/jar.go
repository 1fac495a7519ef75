package gateway

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sync"
	"time"

	"storefront/internal/client/storage"
	"storefront/internal/errors"
)

// SessionSlot is the storage slot holding the gateway cookies.
const SessionSlot = "session"

// SlotStore is the durable store the jar saves cookies to.
type SlotStore interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte) error
	Clear(ctx context.Context, key string) error
}

type storedCookie struct {
	Name    string    `json:"name"`
	Value   string    `json:"value"`
	Expires time.Time `json:"expires,omitzero"`
}

// persistentJar is a cookie jar for one gateway origin whose cookies
// outlive the process, the way a browser profile keeps them.
type persistentJar struct {
	mu      sync.Mutex
	inner   *cookiejar.Jar
	origin  *url.URL
	store   SlotStore
	logger  *slog.Logger
	cookies map[string]storedCookie
}

func newPersistentJar(ctx context.Context, origin *url.URL, store SlotStore, logger *slog.Logger) (*persistentJar, error) {
	inner, err := cookiejar.New(nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	j := &persistentJar{
		inner:   inner,
		origin:  origin,
		store:   store,
		logger:  logger,
		cookies: make(map[string]storedCookie),
	}
	j.load(ctx)

	return j, nil
}

func (j *persistentJar) load(ctx context.Context) {
	data, err := j.store.Read(ctx, SessionSlot)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			j.logger.Warn("failed to read saved session", slog.Any("error", err))
		}

		return
	}

	var saved []storedCookie
	if err := json.Unmarshal(data, &saved); err != nil {
		j.logger.Warn("saved session is corrupt, ignoring it", slog.Any("error", err))

		return
	}

	now := time.Now()
	restored := make([]*http.Cookie, 0, len(saved))
	for _, c := range saved {
		if !c.Expires.IsZero() && !c.Expires.After(now) {
			continue
		}
		j.cookies[c.Name] = c
		restored = append(restored, &http.Cookie{Name: c.Name, Value: c.Value, Path: "/", Expires: c.Expires})
	}
	j.inner.SetCookies(j.origin, restored)
}

// SetCookies records cookies in memory and saves them for the gateway origin.
func (j *persistentJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.inner.SetCookies(u, cookies)

	if u.Host != j.origin.Host {
		return
	}

	j.mu.Lock()
	now := time.Now()
	for _, c := range cookies {
		switch {
		case c.MaxAge < 0, !c.Expires.IsZero() && !c.Expires.After(now):
			delete(j.cookies, c.Name)
		case c.MaxAge > 0:
			j.cookies[c.Name] = storedCookie{Name: c.Name, Value: c.Value, Expires: now.Add(time.Duration(c.MaxAge) * time.Second)}
		default:
			j.cookies[c.Name] = storedCookie{Name: c.Name, Value: c.Value, Expires: c.Expires}
		}
	}
	saved := make([]storedCookie, 0, len(j.cookies))
	for _, c := range j.cookies {
		saved = append(saved, c)
	}
	j.mu.Unlock()

	j.save(saved)
}

// Cookies returns the cookies to send to u.
func (j *persistentJar) Cookies(u *url.URL) []*http.Cookie {
	return j.inner.Cookies(u)
}

func (j *persistentJar) save(saved []storedCookie) {
	ctx := context.Background()

	if len(saved) == 0 {
		if err := j.store.Clear(ctx, SessionSlot); err != nil {
			j.logger.Warn("failed to clear saved session", slog.Any("error", err))
		}

		return
	}

	data, err := json.Marshal(saved)
	if err != nil {
		j.logger.Error("failed to encode session", slog.Any("error", err))

		return
	}

	if err := j.store.Write(ctx, SessionSlot, data); err != nil {
		j.logger.Warn("failed to save session", slog.Any("error", err))
	}
}
