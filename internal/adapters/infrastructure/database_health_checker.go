package infrastructure

import (
	"context"

	"gorm.io/gorm"
	"textgateway.app/internal/ports"
)

// DatabaseHealthChecker implements database health checking
type DatabaseHealthChecker struct {
	db     *gorm.DB
	driver string
}

// NewDatabaseHealthChecker creates a new database health checker
func NewDatabaseHealthChecker(db *gorm.DB, driver string) *DatabaseHealthChecker {
	return &DatabaseHealthChecker{db: db, driver: driver}
}

// Check pings the audit store
func (d *DatabaseHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "database",
		Details: map[string]interface{}{
			"driver": d.driver,
		},
	}

	if d.db == nil {
		status.Status = StatusUnhealthy
		status.Error = "database instance is nil"
		return status
	}

	sqlDB, err := d.db.DB()
	if err != nil {
		status.Status = StatusUnhealthy
		status.Error = "failed to get underlying database connection"
		return status
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		status.Status = StatusUnhealthy
		status.Error = err.Error()
		return status
	}

	stats := sqlDB.Stats()
	status.Status = StatusHealthy
	status.Details["connected"] = true
	status.Details["open_connections"] = stats.OpenConnections
	return status
}
