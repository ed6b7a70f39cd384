package infrastructure

import (
	"context"

	"textgateway.app/internal/ports"
)

// CacheStatsSource is satisfied by the instrumented cache
type CacheStatsSource interface {
	GetStats() ports.CacheStats
}

// MetricsCollectorAdapter aggregates cache statistics and audit volume for the JSON metrics endpoint
type MetricsCollectorAdapter struct {
	cacheStats      CacheStatsSource
	auditRepository ports.AuditRepository
	cacheType       string
}

// MetricsCollectorConfig holds configuration for creating the metrics collector
type MetricsCollectorConfig struct {
	CacheStats      CacheStatsSource
	AuditRepository ports.AuditRepository
	CacheType       string
}

// NewMetricsCollectorAdapter creates a new metrics collector adapter
func NewMetricsCollectorAdapter(config MetricsCollectorConfig) *MetricsCollectorAdapter {
	return &MetricsCollectorAdapter{
		cacheStats:      config.CacheStats,
		auditRepository: config.AuditRepository,
		cacheType:       config.CacheType,
	}
}

// GetMetrics returns aggregated metrics; an audit count failure is returned as an error
func (m *MetricsCollectorAdapter) GetMetrics(ctx context.Context) (map[string]interface{}, error) {
	metrics := map[string]interface{}{}

	if m.cacheStats != nil {
		stats := m.cacheStats.GetStats()
		metrics["cache"] = map[string]interface{}{
			"type":      m.cacheType,
			"hits":      stats.Hits,
			"misses":    stats.Misses,
			"evictions": stats.Evictions,
			"total_ops": stats.TotalOps,
			"hit_ratio": stats.HitRatio,
			"updated":   stats.LastUpdated,
		}
	}

	if m.auditRepository != nil {
		count, err := m.auditRepository.Count(ctx)
		if err != nil {
			return nil, err
		}
		metrics["audit"] = map[string]interface{}{
			"records": count,
		}
	}

	return metrics, nil
}
