package external

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"textgateway.app/internal/config"
	"textgateway.app/internal/ports"
	"textgateway.app/pkg/errors"
)

const (
	redisPingTimeout = 5 * time.Second
	redisScanBatch   = 100
)

// RedisCacheProviderAdapter implements CacheProvider on Redis. Values expire through
// Redis TTLs; a sorted set scored by last access bounds the number of entries.
type RedisCacheProviderAdapter struct {
	client     *redis.Client
	prefix     string
	indexKey   string
	maxEntries int
	now        func() time.Time
	observer   ports.EvictionObserver
}

// RedisCacheOption customizes a RedisCacheProviderAdapter
type RedisCacheOption func(*RedisCacheProviderAdapter)

// WithRedisClock replaces time.Now for recency scores
func WithRedisClock(now func() time.Time) RedisCacheOption {
	return func(r *RedisCacheProviderAdapter) {
		r.now = now
	}
}

// WithRedisEvictionObserver reports capacity evictions
func WithRedisEvictionObserver(observer ports.EvictionObserver) RedisCacheOption {
	return func(r *RedisCacheProviderAdapter) {
		r.observer = observer
	}
}

// NewRedisCacheProviderAdapter creates a new Redis cache provider adapter
func NewRedisCacheProviderAdapter(cfg *config.RedisConfig, maxEntries int, opts ...RedisCacheOption) (*RedisCacheProviderAdapter, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("redis config cannot be nil", nil)
	}
	if maxEntries < 1 {
		return nil, errors.NewConfigurationError("cache max entries must be positive", nil)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  time.Duration(cfg.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.NewCacheError("failed to connect to Redis", err)
	}

	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = "textgateway"
	}

	r := &RedisCacheProviderAdapter{
		client:     client,
		prefix:     prefix,
		indexKey:   prefix + ":lru",
		maxEntries: maxEntries,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

func (r *RedisCacheProviderAdapter) dataKey(key string) string {
	return r.prefix + ":entry:" + key
}

func (r *RedisCacheProviderAdapter) score() float64 {
	return float64(r.now().UnixNano())
}

// Get retrieves a value and refreshes its recency
func (r *RedisCacheProviderAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("cache key cannot be empty")
	}

	val, err := r.client.Get(ctx, r.dataKey(key)).Bytes()
	if err != nil {
		if err == redis.Nil {
			// expired or evicted, drop the stale index member
			r.client.ZRem(ctx, r.indexKey, key)
			return nil, errors.NewNotFoundError("cache miss")
		}
		return nil, errors.NewCacheError("redis get operation failed", err)
	}

	if err := r.client.ZAdd(ctx, r.indexKey, &redis.Z{Score: r.score(), Member: key}).Err(); err != nil {
		return nil, errors.NewCacheError("redis recency update failed", err)
	}
	return val, nil
}

// Set stores a value with TTL and evicts least recently used keys beyond capacity
func (r *RedisCacheProviderAdapter) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("cache value cannot be nil")
	}
	if ttl <= 0 {
		return errors.NewValidationError("cache TTL must be positive")
	}

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.dataKey(key), value, ttl)
		pipe.ZAdd(ctx, r.indexKey, &redis.Z{Score: r.score(), Member: key})
		return nil
	})
	if err != nil {
		return errors.NewCacheError("redis set operation failed", err)
	}

	return r.enforceCapacity(ctx)
}

func (r *RedisCacheProviderAdapter) enforceCapacity(ctx context.Context) error {
	count, err := r.client.ZCard(ctx, r.indexKey).Result()
	if err != nil {
		return errors.NewCacheError("redis capacity check failed", err)
	}

	overflow := count - int64(r.maxEntries)
	if overflow <= 0 {
		return nil
	}

	victims, err := r.client.ZRange(ctx, r.indexKey, 0, overflow-1).Result()
	if err != nil {
		return errors.NewCacheError("redis eviction lookup failed", err)
	}
	if len(victims) == 0 {
		return nil
	}

	dataKeys := make([]string, len(victims))
	members := make([]interface{}, len(victims))
	for i, victim := range victims {
		dataKeys[i] = r.dataKey(victim)
		members[i] = victim
	}

	var removed *redis.IntCmd
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		removed = pipe.Del(ctx, dataKeys...)
		pipe.ZRem(ctx, r.indexKey, members...)
		return nil
	})
	if err != nil {
		return errors.NewCacheError("redis eviction failed", err)
	}

	if r.observer != nil {
		// members whose value had already expired are not evictions
		for i := int64(0); i < removed.Val(); i++ {
			r.observer.RecordEviction()
		}
	}
	return nil
}

// Delete removes a value from Redis cache
func (r *RedisCacheProviderAdapter) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, r.dataKey(key))
		pipe.ZRem(ctx, r.indexKey, key)
		return nil
	})
	if err != nil {
		return errors.NewCacheError("redis delete operation failed", err)
	}
	return nil
}

// Exists checks if a key exists in Redis cache
func (r *RedisCacheProviderAdapter) Exists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.NewValidationError("cache key cannot be empty")
	}

	count, err := r.client.Exists(ctx, r.dataKey(key)).Result()
	if err != nil {
		return false, errors.NewCacheError("redis exists operation failed", err)
	}
	return count > 0, nil
}

// Clear removes every key under the configured prefix
func (r *RedisCacheProviderAdapter) Clear(ctx context.Context) error {
	iter := r.client.Scan(ctx, 0, r.prefix+":*", redisScanBatch).Iterator()
	batch := make([]string, 0, redisScanBatch)
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == redisScanBatch {
			if err := r.client.Del(ctx, batch...).Err(); err != nil {
				return errors.NewCacheError("redis clear operation failed", err)
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return errors.NewCacheError("redis clear scan failed", err)
	}
	if len(batch) > 0 {
		if err := r.client.Del(ctx, batch...).Err(); err != nil {
			return errors.NewCacheError("redis clear operation failed", err)
		}
	}
	return nil
}

// Len reports the number of indexed keys
func (r *RedisCacheProviderAdapter) Len(ctx context.Context) (int, error) {
	count, err := r.client.ZCard(ctx, r.indexKey).Result()
	if err != nil {
		return 0, errors.NewCacheError("redis len operation failed", err)
	}
	return int(count), nil
}

// Close closes the Redis client connection
func (r *RedisCacheProviderAdapter) Close() error {
	if err := r.client.Close(); err != nil {
		return errors.NewCacheError("failed to close Redis connection", err)
	}
	return nil
}

// Ping checks if Redis connection is alive
func (r *RedisCacheProviderAdapter) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.NewCacheError("Redis ping failed", err)
	}
	return nil
}

// Describe is used by health reporting
func (r *RedisCacheProviderAdapter) Describe() map[string]interface{} {
	return map[string]interface{}{
		"type":        "redis",
		"addr":        r.client.Options().Addr,
		"max_entries": r.maxEntries,
	}
}
