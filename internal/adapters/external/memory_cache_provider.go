package external

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/simplelru"
	"textgateway.app/internal/ports"
	"textgateway.app/pkg/errors"
)

// MemoryCacheProvider is a process-local LRU bounded by entry count, with a
// per-entry TTL measured from insertion. Expired entries are dropped on read.
type MemoryCacheProvider struct {
	mutex      sync.Mutex
	entries    *simplelru.LRU[string, memoryCacheItem]
	maxEntries int
	now        func() time.Time
	observer   ports.EvictionObserver
}

type memoryCacheItem struct {
	data       []byte
	insertedAt time.Time
	ttl        time.Duration
}

func (i memoryCacheItem) expired(now time.Time) bool {
	return now.Sub(i.insertedAt) > i.ttl
}

// MemoryCacheOption customizes a MemoryCacheProvider
type MemoryCacheOption func(*MemoryCacheProvider)

// WithClock replaces time.Now
func WithClock(now func() time.Time) MemoryCacheOption {
	return func(c *MemoryCacheProvider) {
		c.now = now
	}
}

// WithEvictionObserver reports capacity evictions
func WithEvictionObserver(observer ports.EvictionObserver) MemoryCacheOption {
	return func(c *MemoryCacheProvider) {
		c.observer = observer
	}
}

func NewMemoryCacheProvider(maxEntries int, opts ...MemoryCacheOption) (*MemoryCacheProvider, error) {
	if maxEntries < 1 {
		return nil, errors.NewConfigurationError("cache max entries must be positive", nil)
	}

	entries, err := simplelru.NewLRU[string, memoryCacheItem](maxEntries, nil)
	if err != nil {
		return nil, errors.NewConfigurationError("failed to create LRU cache", err)
	}

	c := &MemoryCacheProvider{
		entries:    entries,
		maxEntries: maxEntries,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *MemoryCacheProvider) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("cache key cannot be empty")
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	item, exists := c.entries.Get(key)
	if !exists {
		return nil, errors.NewNotFoundError("cache miss")
	}
	if item.expired(c.now()) {
		c.entries.Remove(key)
		return nil, errors.NewNotFoundError("cache miss")
	}

	return item.data, nil
}

func (c *MemoryCacheProvider) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("cache value cannot be nil")
	}
	if ttl <= 0 {
		return errors.NewValidationError("cache TTL must be positive")
	}

	c.mutex.Lock()
	evicted := c.entries.Add(key, memoryCacheItem{
		data:       value,
		insertedAt: c.now(),
		ttl:        ttl,
	})
	c.mutex.Unlock()

	if evicted && c.observer != nil {
		c.observer.RecordEviction()
	}
	return nil
}

func (c *MemoryCacheProvider) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries.Remove(key)
	return nil
}

// Exists does not refresh recency
func (c *MemoryCacheProvider) Exists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.NewValidationError("cache key cannot be empty")
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	item, exists := c.entries.Peek(key)
	if !exists {
		return false, nil
	}
	return !item.expired(c.now()), nil
}

func (c *MemoryCacheProvider) Clear(ctx context.Context) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries.Purge()
	return nil
}

// Len reports stored entries, including expired ones not yet read
func (c *MemoryCacheProvider) Len() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	return c.entries.Len()
}

// Describe is used by health reporting
func (c *MemoryCacheProvider) Describe() map[string]interface{} {
	return map[string]interface{}{
		"type":        "memory",
		"entries":     c.Len(),
		"max_entries": c.maxEntries,
	}
}
