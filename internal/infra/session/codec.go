// Package session seals the session cookie with an authenticated cipher.
package session

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"io"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

const (
	minSecretLength = 32
	keyInfo         = "storefront session cookie v1"
)

var (
	ErrSecretTooShort = errors.New("session secret must be at least 32 bytes")
	ErrDefaultSecret  = errors.New("session secret is the shipped placeholder, set SESSION_SECRET")
	ErrMalformed      = errors.New("session cookie is malformed")
	ErrExpired        = errors.New("session cookie has expired")
)

// payload is the sealed cookie content.
type payload struct {
	Session   entity.Session `json:"session"`
	ExpiresAt int64          `json:"exp"`
}

type codec struct {
	key    []byte
	maxAge time.Duration
	now    func() time.Time
}

// NewCodec derives the cookie key from the configured secret.
func NewCodec(cfg *config.Config) (service.SessionCodec, error) {
	if cfg.IsProduction() && cfg.Session.Secret == config.PlaceholderSessionSecret {
		return nil, errors.WithStack(ErrDefaultSecret)
	}

	return newCodec(cfg.Session.Secret, cfg.Session.MaxAge, time.Now)
}

func newCodec(secret string, maxAge time.Duration, now func() time.Time) (*codec, error) {
	if len(secret) < minSecretLength {
		return nil, errors.WithStack(ErrSecretTooShort)
	}

	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(keyInfo)), key); err != nil {
		return nil, errors.Wrap(err, "derive session key")
	}

	return &codec{key: key, maxAge: maxAge, now: now}, nil
}

// Encode seals the session as base64url(nonce || ciphertext).
func (c *codec) Encode(session *entity.Session) (string, error) {
	plaintext, err := json.Marshal(payload{
		Session:   *session,
		ExpiresAt: c.now().Add(c.maxAge).Unix(),
	})
	if err != nil {
		return "", errors.Wrap(err, "marshal session")
	}

	aead, err := chacha20poly1305.NewX(c.key)
	if err != nil {
		return "", errors.WithStack(err)
	}

	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(plaintext)+aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return "", errors.Wrap(err, "generate nonce")
	}

	sealed := aead.Seal(nonce, nonce, plaintext, nil)

	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

// Decode opens a sealed value. Any tampering fails the authentication tag.
func (c *codec) Decode(value string) (*entity.Session, error) {
	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil, errors.Wrap(ErrMalformed, err.Error())
	}

	aead, err := chacha20poly1305.NewX(c.key)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if len(raw) < aead.NonceSize()+aead.Overhead() {
		return nil, errors.WithStack(ErrMalformed)
	}

	nonce, ciphertext := raw[:aead.NonceSize()], raw[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, errors.Wrap(ErrMalformed, "authentication failed")
	}

	var p payload
	if err := json.Unmarshal(plaintext, &p); err != nil {
		return nil, errors.Wrap(ErrMalformed, "decode payload")
	}

	if c.now().Unix() >= p.ExpiresAt {
		return nil, errors.WithStack(ErrExpired)
	}

	return &p.Session, nil
}
