package infrastructure

import (
	"context"

	"textgateway.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	databaseChecker ports.HealthChecker
	cacheChecker    ports.HealthChecker
	upstreamChecker ports.HealthChecker
	configProvider  ports.ConfigProvider
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	DatabaseChecker ports.HealthChecker
	CacheChecker    ports.HealthChecker
	UpstreamChecker ports.HealthChecker
	ConfigProvider  ports.ConfigProvider
}

// NewSystemHealthChecker creates a new system health checker
func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	return &SystemHealthChecker{
		databaseChecker: config.DatabaseChecker,
		cacheChecker:    config.CacheChecker,
		upstreamChecker: config.UpstreamChecker,
		configProvider:  config.ConfigProvider,
	}
}

// CheckAll performs health checks on all components
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus)

	if s.databaseChecker != nil {
		results["database"] = s.databaseChecker.Check(ctx)
	}

	if s.cacheChecker != nil {
		results["cache"] = s.cacheChecker.Check(ctx)
	}

	if s.upstreamChecker != nil {
		results["upstream"] = s.upstreamChecker.Check(ctx)
	}

	if s.configProvider != nil {
		cacheConfig := s.configProvider.GetCacheConfig()
		results["config"] = ports.HealthStatus{
			Component: "config",
			Status:    StatusHealthy,
			Details: map[string]interface{}{
				"cache_type":        cacheConfig.Type,
				"cache_ttl_seconds": cacheConfig.TTL.Seconds(),
				"cache_max_entries": cacheConfig.MaxEntries,
				"token_ttl_minutes": s.configProvider.GetAuthConfig().TokenTTL.Minutes(),
			},
		}
	}

	return results
}

// IsHealthy reports whether every component in results is healthy
func IsHealthy(results map[string]ports.HealthStatus) bool {
	for _, status := range results {
		if status.Status != StatusHealthy {
			return false
		}
	}
	return true
}
