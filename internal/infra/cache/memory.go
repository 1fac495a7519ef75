package cache

import (
	"context"
	"sync"
	"time"
)

// DefaultSweepInterval is how often expired entries are purged.
const DefaultSweepInterval = time.Minute

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryCache is a process-local TTL map. Expired entries are evicted on read,
// by Set once per sweep interval, and by the background sweeper once started.
type MemoryCache struct {
	mu        sync.RWMutex
	entries   map[string]memoryEntry
	now       func() time.Time
	interval  time.Duration
	nextSweep time.Time

	startOnce sync.Once
	stopOnce  sync.Once
	done      chan struct{}
	stopped   chan struct{}
}

// NewMemoryCache creates an empty MemoryCache
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries:  make(map[string]memoryEntry),
		now:      time.Now,
		interval: DefaultSweepInterval,
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
}

// Start runs the background sweeper until Close.
func (c *MemoryCache) Start() {
	c.startOnce.Do(func() {
		go c.sweepLoop()
	})
}

func (c *MemoryCache) sweepLoop() {
	defer close(c.stopped)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.sweep()
		case <-c.done:
			return
		}
	}
}

// sweep drops every expired entry and returns how many were removed.
func (c *MemoryCache) sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.sweepLocked(c.now())
}

func (c *MemoryCache) sweepLocked(now time.Time) int {
	removed := 0
	for key, entry := range c.entries {
		if !now.Before(entry.expiresAt) {
			delete(c.entries, key)
			removed++
		}
	}
	c.nextSweep = now.Add(c.interval)

	return removed
}

func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}

	if !c.now().Before(entry.expiresAt) {
		c.mu.Lock()
		if current, still := c.entries[key]; still && !c.now().Before(current.expiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()

		return nil, false, nil
	}

	return entry.value, true, nil
}

func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	stored := make([]byte, len(value))
	copy(stored, value)

	c.mu.Lock()
	now := c.now()
	if !now.Before(c.nextSweep) {
		c.sweepLocked(now)
	}
	c.entries[key] = memoryEntry{value: stored, expiresAt: now.Add(ttl)}
	c.mu.Unlock()

	return nil
}

// Len reports the number of stored entries, expired or not.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Close stops the sweeper, waiting for it to exit, and drops all entries.
func (c *MemoryCache) Close() error {
	c.stopOnce.Do(func() {
		close(c.done)
	})
	// A sweeper that never started must not start after Close.
	c.startOnce.Do(func() { close(c.stopped) })
	<-c.stopped

	c.mu.Lock()
	c.entries = make(map[string]memoryEntry)
	c.mu.Unlock()

	return nil
}
