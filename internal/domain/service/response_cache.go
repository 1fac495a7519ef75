package service

import (
	"context"
	"time"
)

// ResponseCache stores upstream response bodies by key.
// Get reports a miss with ok=false; errors are reserved for backend failures.
type ResponseCache interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Close() error
}
