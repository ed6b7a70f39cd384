package ports

import (
	"context"
	"time"
)

// CacheProvider defines the contract for byte-level caching operations.
// Get returns a NotFound AppError on a miss or an expired entry.
type CacheProvider interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Clear(ctx context.Context) error
}

// CacheStats represents cache performance metrics
type CacheStats struct {
	Hits        int64     `json:"hits"`
	Misses      int64     `json:"misses"`
	Evictions   int64     `json:"evictions"`
	TotalOps    int64     `json:"total_ops"`
	HitRatio    float64   `json:"hit_ratio"`
	LastUpdated time.Time `json:"last_updated"`
}

// CacheMetrics defines the contract for cache performance tracking
type CacheMetrics interface {
	GetStats() CacheStats
	RecordHit()
	RecordMiss()
	RecordEviction()
	RecordOperation(operation string, duration time.Duration)
}

// EvictionObserver is notified when a bounded cache drops an entry to make room
type EvictionObserver interface {
	RecordEviction()
}

// ResponseCache stores generation results under operation cache keys
type ResponseCache interface {
	Get(ctx context.Context, key string) (*GenerationResult, error)
	Set(ctx context.Context, key string, result *GenerationResult, ttl time.Duration) error
}
