package infrastructure

import (
	"context"

	"textgateway.app/internal/ports"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// Pinger is implemented by cache backends that hold a network connection
type Pinger interface {
	Ping(ctx context.Context) error
}

// Describer is implemented by cache backends that report their settings
type Describer interface {
	Describe() map[string]interface{}
}

// CacheHealthChecker reports the configured cache backend
type CacheHealthChecker struct {
	backend interface{}
}

// NewCacheHealthChecker accepts any backend; Ping and Describe are used when present
func NewCacheHealthChecker(backend interface{}) *CacheHealthChecker {
	return &CacheHealthChecker{backend: backend}
}

func (c *CacheHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "cache",
		Status:    StatusHealthy,
		Details:   make(map[string]interface{}),
	}

	if c.backend == nil {
		status.Status = StatusUnhealthy
		status.Error = "cache is not configured"
		return status
	}

	if describer, ok := c.backend.(Describer); ok {
		for k, v := range describer.Describe() {
			status.Details[k] = v
		}
	}

	if pinger, ok := c.backend.(Pinger); ok {
		if err := pinger.Ping(ctx); err != nil {
			status.Status = StatusUnhealthy
			status.Error = err.Error()
		}
	}

	return status
}

// UpstreamHealthChecker reports the provider configuration. It does not call
// the provider, since every call is billed.
type UpstreamHealthChecker struct {
	client ports.UpstreamClient
	config ports.UpstreamConfig
}

func NewUpstreamHealthChecker(client ports.UpstreamClient, config ports.UpstreamConfig) *UpstreamHealthChecker {
	return &UpstreamHealthChecker{client: client, config: config}
}

func (u *UpstreamHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "upstream",
		Status:    StatusHealthy,
		Details: map[string]interface{}{
			"base_url":          u.config.BaseURL,
			"timeout_seconds":   u.config.Timeout.Seconds(),
			"translation_model": u.config.TranslationModel,
			"summary_model":     u.config.SummaryModel,
		},
	}

	if u.client == nil {
		status.Status = StatusUnhealthy
		status.Error = "upstream client is not available"
		return status
	}

	status.Details["provider"] = u.client.GetProviderName()
	return status
}
