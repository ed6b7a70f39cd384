package external

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"textgateway.app/internal/mocks"
	"textgateway.app/internal/ports"
	"textgateway.app/pkg/errors"
)

func typeName(v interface{}) string {
	return fmt.Sprintf("%T", v)
}

func TestInstrumentedCacheProvider_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Hit", func(t *testing.T) {
		provider := mocks.NewCacheProvider(t)
		metrics := mocks.NewCacheMetrics(t)
		provider.EXPECT().Get(ctx, "k").Return([]byte("v"), nil)
		metrics.EXPECT().RecordOperation("get", mock.AnythingOfType("time.Duration")).Return()
		metrics.EXPECT().RecordHit().Return()

		value, err := NewInstrumentedCacheProvider(provider, metrics).Get(ctx, "k")

		require.NoError(t, err)
		assert.Equal(t, []byte("v"), value)
	})

	t.Run("Miss", func(t *testing.T) {
		provider := mocks.NewCacheProvider(t)
		metrics := mocks.NewCacheMetrics(t)
		provider.EXPECT().Get(ctx, "k").Return(nil, errors.NewNotFoundError("cache miss"))
		metrics.EXPECT().RecordOperation("get", mock.AnythingOfType("time.Duration")).Return()
		metrics.EXPECT().RecordMiss().Return()

		_, err := NewInstrumentedCacheProvider(provider, metrics).Get(ctx, "k")

		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("BackendFailureIsNeitherHitNorMiss", func(t *testing.T) {
		provider := mocks.NewCacheProvider(t)
		metrics := mocks.NewCacheMetrics(t)
		provider.EXPECT().Get(ctx, "k").Return(nil, errors.NewCacheError("down", nil))
		metrics.EXPECT().RecordOperation("get", mock.AnythingOfType("time.Duration")).Return()

		_, err := NewInstrumentedCacheProvider(provider, metrics).Get(ctx, "k")

		assert.Equal(t, errors.ErrorTypeCache, errors.TypeOf(err))
	})
}

func TestInstrumentedCacheProvider_SetDelete(t *testing.T) {
	ctx := context.Background()
	provider := mocks.NewCacheProvider(t)
	metrics := mocks.NewCacheMetrics(t)

	provider.EXPECT().Set(ctx, "k", []byte("v"), time.Minute).Return(nil)
	provider.EXPECT().Delete(ctx, "k").Return(nil)
	metrics.EXPECT().RecordOperation("set", mock.AnythingOfType("time.Duration")).Return()
	metrics.EXPECT().RecordOperation("delete", mock.AnythingOfType("time.Duration")).Return()
	metrics.EXPECT().GetStats().Return(ports.CacheStats{Hits: 3})

	cache := NewInstrumentedCacheProvider(provider, metrics)
	require.NoError(t, cache.Set(ctx, "k", []byte("v"), time.Minute))
	require.NoError(t, cache.Delete(ctx, "k"))
	assert.Equal(t, int64(3), cache.GetStats().Hits)
	assert.Same(t, provider, cache.Unwrap())
}
