package external

import (
	"context"
	"time"

	"textgateway.app/internal/ports"
	"textgateway.app/pkg/errors"
)

// InstrumentedCacheProvider records hits, misses and latencies of a wrapped provider
type InstrumentedCacheProvider struct {
	provider ports.CacheProvider
	metrics  ports.CacheMetrics
}

func NewInstrumentedCacheProvider(provider ports.CacheProvider, metrics ports.CacheMetrics) *InstrumentedCacheProvider {
	return &InstrumentedCacheProvider{
		provider: provider,
		metrics:  metrics,
	}
}

func (c *InstrumentedCacheProvider) Get(ctx context.Context, key string) ([]byte, error) {
	start := time.Now()
	value, err := c.provider.Get(ctx, key)
	c.metrics.RecordOperation("get", time.Since(start))

	switch {
	case err == nil:
		c.metrics.RecordHit()
	case errors.IsNotFoundError(err):
		c.metrics.RecordMiss()
	}
	return value, err
}

func (c *InstrumentedCacheProvider) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	start := time.Now()
	err := c.provider.Set(ctx, key, value, ttl)
	c.metrics.RecordOperation("set", time.Since(start))
	return err
}

func (c *InstrumentedCacheProvider) Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := c.provider.Delete(ctx, key)
	c.metrics.RecordOperation("delete", time.Since(start))
	return err
}

func (c *InstrumentedCacheProvider) Exists(ctx context.Context, key string) (bool, error) {
	return c.provider.Exists(ctx, key)
}

func (c *InstrumentedCacheProvider) Clear(ctx context.Context) error {
	return c.provider.Clear(ctx)
}

// GetStats returns the hit/miss statistics of the wrapped provider
func (c *InstrumentedCacheProvider) GetStats() ports.CacheStats {
	return c.metrics.GetStats()
}

// Unwrap exposes the backend for health checks and shutdown
func (c *InstrumentedCacheProvider) Unwrap() ports.CacheProvider {
	return c.provider
}
