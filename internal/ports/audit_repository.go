package ports

import (
	"context"
	"time"
)

// AuditRecord is one persisted request/response pair
type AuditRecord struct {
	ID           uint
	RequestID    string
	UserID       string
	Operation    string
	Timestamp    time.Time
	RequestData  string
	ResponseData string
}

// AuditRepository defines the contract for audit log persistence
type AuditRepository interface {
	Save(ctx context.Context, record *AuditRecord) error
	Count(ctx context.Context) (int64, error)
}

// AuditEntry is what a completed operation hands to the request logger
type AuditEntry struct {
	UserID    string
	Operation string
	RequestID string
	Request   interface{}
	Response  interface{}
}

// RequestLogger appends one audit record per completed operation.
// Failures are returned as Logging AppErrors.
type RequestLogger interface {
	Record(ctx context.Context, entry AuditEntry) error
}
