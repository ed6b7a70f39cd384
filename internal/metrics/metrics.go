// Package metrics owns the Prometheus collectors of the gateway.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"textgateway.app/internal/ports"
)

const namespace = "textgateway"

type collector struct {
	CacheHits      *prometheus.CounterVec
	CacheMisses    *prometheus.CounterVec
	CacheRequests  *prometheus.CounterVec
	CacheEvictions *prometheus.CounterVec
	CacheLatency   *prometheus.HistogramVec
	CacheHitRatio  *prometheus.GaugeVec

	OperationCache   *prometheus.CounterVec
	UpstreamCalls    *prometheus.CounterVec
	UpstreamDuration *prometheus.HistogramVec
	AuditFailures    *prometheus.CounterVec
}

var (
	globalCollector *collector
	collectorOnce   sync.Once
)

func getCollector() *collector {
	collectorOnce.Do(func() {
		globalCollector = &collector{
			CacheHits: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: namespace,
					Name:      "cache_hits_total",
					Help:      "The total number of cache hits",
				},
				[]string{"cache_type"},
			),
			CacheMisses: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: namespace,
					Name:      "cache_misses_total",
					Help:      "The total number of cache misses",
				},
				[]string{"cache_type"},
			),
			CacheRequests: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: namespace,
					Name:      "cache_requests_total",
					Help:      "The total number of cache lookups",
				},
				[]string{"cache_type"},
			),
			CacheEvictions: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: namespace,
					Name:      "cache_evictions_total",
					Help:      "Entries dropped to respect the cache capacity",
				},
				[]string{"cache_type"},
			),
			CacheLatency: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Namespace: namespace,
					Name:      "cache_duration_seconds",
					Help:      "Cache operation duration in seconds",
					Buckets:   prometheus.DefBuckets,
				},
				[]string{"cache_type", "operation"},
			),
			CacheHitRatio: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: namespace,
					Name:      "cache_hit_ratio",
					Help:      "Cache hit ratio (hits/total requests)",
				},
				[]string{"cache_type"},
			),
			OperationCache: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: namespace,
					Name:      "operation_cache_lookups_total",
					Help:      "Cache lookups per operation and result",
				},
				[]string{"operation", "result"},
			),
			UpstreamCalls: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: namespace,
					Name:      "upstream_calls_total",
					Help:      "Calls to the language-model provider",
				},
				[]string{"operation", "outcome"},
			),
			UpstreamDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Namespace: namespace,
					Name:      "upstream_call_duration_seconds",
					Help:      "Language-model provider call duration in seconds",
					Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60},
				},
				[]string{"operation"},
			),
			AuditFailures: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: namespace,
					Name:      "audit_write_failures_total",
					Help:      "Audit records that could not be persisted",
				},
				[]string{"operation"},
			),
		}
	})
	return globalCollector
}

// CacheMetrics tracks hit/miss statistics for one cache backend
type CacheMetrics struct {
	cacheType   string
	hits        int64
	misses      int64
	evictions   int64
	total       int64
	lastUpdated time.Time
	collector   *collector
	mu          sync.RWMutex
}

var _ ports.CacheMetrics = (*CacheMetrics)(nil)

func NewCacheMetrics(cacheType string) *CacheMetrics {
	return &CacheMetrics{
		cacheType: cacheType,
		collector: getCollector(),
	}
}

func (m *CacheMetrics) RecordHit() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.hits++
	m.total++
	m.lastUpdated = time.Now()
	m.collector.CacheHits.WithLabelValues(m.cacheType).Inc()
	m.collector.CacheRequests.WithLabelValues(m.cacheType).Inc()
	m.updateHitRatio()
}

func (m *CacheMetrics) RecordMiss() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.misses++
	m.total++
	m.lastUpdated = time.Now()
	m.collector.CacheMisses.WithLabelValues(m.cacheType).Inc()
	m.collector.CacheRequests.WithLabelValues(m.cacheType).Inc()
	m.updateHitRatio()
}

func (m *CacheMetrics) RecordEviction() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.evictions++
	m.collector.CacheEvictions.WithLabelValues(m.cacheType).Inc()
}

func (m *CacheMetrics) RecordOperation(operation string, duration time.Duration) {
	m.collector.CacheLatency.WithLabelValues(m.cacheType, operation).Observe(duration.Seconds())
}

// updateHitRatio updates the Prometheus hit ratio gauge.
// Must be called while holding the mutex.
func (m *CacheMetrics) updateHitRatio() {
	if m.total > 0 {
		ratio := float64(m.hits) / float64(m.total)
		m.collector.CacheHitRatio.WithLabelValues(m.cacheType).Set(ratio)
	}
}

func (m *CacheMetrics) GetStats() ports.CacheStats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var hitRatio float64
	if m.total > 0 {
		hitRatio = float64(m.hits) / float64(m.total)
	}

	return ports.CacheStats{
		Hits:        m.hits,
		Misses:      m.misses,
		Evictions:   m.evictions,
		TotalOps:    m.total,
		HitRatio:    hitRatio,
		LastUpdated: m.lastUpdated,
	}
}

// OperationMetrics records per-operation serving events
type OperationMetrics struct {
	collector *collector
}

var _ ports.OperationMetrics = (*OperationMetrics)(nil)

func NewOperationMetrics() *OperationMetrics {
	return &OperationMetrics{collector: getCollector()}
}

func (o *OperationMetrics) RecordCacheResult(operation string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	o.collector.OperationCache.WithLabelValues(operation, result).Inc()
}

func (o *OperationMetrics) RecordUpstreamCall(operation string, success bool, duration time.Duration) {
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	o.collector.UpstreamCalls.WithLabelValues(operation, outcome).Inc()
	o.collector.UpstreamDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (o *OperationMetrics) RecordAuditFailure(operation string) {
	o.collector.AuditFailures.WithLabelValues(operation).Inc()
}
