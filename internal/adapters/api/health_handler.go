package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"textgateway.app/internal/adapters/infrastructure"
	"textgateway.app/internal/ports"
)

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status     string                        `json:"status"`
	Components map[string]ports.HealthStatus `json:"components"`
}

// getHealth handles GET /health requests
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	components := s.healthChecker.CheckAll(c.Request.Context())

	if infrastructure.IsHealthy(components) {
		c.JSON(http.StatusOK, HealthResponse{Status: infrastructure.StatusHealthy, Components: components})
		return
	}
	c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: infrastructure.StatusUnhealthy, Components: components})
}

// getMetrics handles GET /api/v1/metrics requests
func (s *HTTPServerAdapter) getMetrics(c *gin.Context) {
	slog.Debug("Metrics endpoint called")

	metrics, err := s.metricsCollector.GetMetrics(c.Request.Context())
	if err != nil {
		slog.Error("Error getting metrics", "error", err)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, metrics)
}
