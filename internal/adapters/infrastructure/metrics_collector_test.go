package infrastructure

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"textgateway.app/internal/mocks"
	"textgateway.app/internal/ports"
)

func TestMetricsCollectorAdapter_GetMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("CacheAndAudit", func(t *testing.T) {
		cacheMetrics := mocks.NewCacheMetrics(t)
		cacheMetrics.EXPECT().GetStats().Return(ports.CacheStats{Hits: 3, Misses: 1, Evictions: 2, TotalOps: 4, HitRatio: 0.75})
		repository := mocks.NewAuditRepository(t)
		repository.EXPECT().Count(mock.Anything).Return(int64(7), nil)

		collector := NewMetricsCollectorAdapter(MetricsCollectorConfig{
			CacheStats:      cacheMetrics,
			AuditRepository: repository,
			CacheType:       "memory",
		})

		metrics, err := collector.GetMetrics(ctx)
		require.NoError(t, err)

		cache := metrics["cache"].(map[string]interface{})
		assert.Equal(t, "memory", cache["type"])
		assert.Equal(t, int64(3), cache["hits"])
		assert.Equal(t, int64(2), cache["evictions"])
		assert.Equal(t, 0.75, cache["hit_ratio"])
		assert.Equal(t, int64(7), metrics["audit"].(map[string]interface{})["records"])
	})

	t.Run("AuditCountFails", func(t *testing.T) {
		repository := mocks.NewAuditRepository(t)
		repository.EXPECT().Count(mock.Anything).Return(int64(0), stderrors.New("db down"))

		_, err := NewMetricsCollectorAdapter(MetricsCollectorConfig{AuditRepository: repository}).GetMetrics(ctx)
		assert.Error(t, err)
	})
}
