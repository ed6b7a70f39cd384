package external

import (
	"fmt"

	"textgateway.app/internal/config"
	"textgateway.app/internal/ports"
	"textgateway.app/pkg/errors"
)

type CacheProviderFactory struct{}

func NewCacheProviderFactory() *CacheProviderFactory {
	return &CacheProviderFactory{}
}

// CreateCacheProvider builds the backend selected by CACHE_TYPE. Capacity evictions
// are reported to observer when it is not nil.
func (f *CacheProviderFactory) CreateCacheProvider(cfg *config.CacheConfig, observer ports.EvictionObserver) (ports.CacheProvider, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("cache config cannot be nil", nil)
	}

	switch cfg.Type {
	case config.CacheTypeMemory:
		var opts []MemoryCacheOption
		if observer != nil {
			opts = append(opts, WithEvictionObserver(observer))
		}
		return NewMemoryCacheProvider(cfg.MaxEntries, opts...)
	case config.CacheTypeRedis:
		var opts []RedisCacheOption
		if observer != nil {
			opts = append(opts, WithRedisEvictionObserver(observer))
		}
		return NewRedisCacheProviderAdapter(&cfg.Redis, cfg.MaxEntries, opts...)
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported cache type: %s", cfg.Type.String()), nil)
	}
}
