package external

import (
	"context"
	"encoding/json"
	"time"

	"textgateway.app/internal/ports"
	"textgateway.app/pkg/errors"
)

// ResponseCacheAdapter stores generation results as JSON in a byte-level CacheProvider
type ResponseCacheAdapter struct {
	cacheProvider ports.CacheProvider
}

// NewResponseCacheAdapter creates a response cache on top of a generic cache provider
func NewResponseCacheAdapter(cacheProvider ports.CacheProvider) ports.ResponseCache {
	return &ResponseCacheAdapter{
		cacheProvider: cacheProvider,
	}
}

// Get retrieves a cached result
func (a *ResponseCacheAdapter) Get(ctx context.Context, key string) (*ports.GenerationResult, error) {
	data, err := a.cacheProvider.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	var result ports.GenerationResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, errors.NewCacheError("failed to deserialize cached result", err)
	}
	return &result, nil
}

// Set stores a result under key
func (a *ResponseCacheAdapter) Set(ctx context.Context, key string, result *ports.GenerationResult, ttl time.Duration) error {
	if result == nil {
		return errors.NewValidationError("result cannot be nil")
	}

	data, err := json.Marshal(result)
	if err != nil {
		return errors.NewCacheError("failed to serialize result", err)
	}
	return a.cacheProvider.Set(ctx, key, data, ttl)
}
