package database

import (
	"context"
	"time"

	"gorm.io/gorm"
	"textgateway.app/internal/ports"
	"textgateway.app/pkg/errors"
)

// RequestLogModel represents one audited request/response pair
type RequestLogModel struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	RequestID    string    `gorm:"size:64;index"`
	UserID       string    `gorm:"size:255;index;not null"`
	Operation    string    `gorm:"size:32;not null"`
	Timestamp    time.Time `gorm:"index;not null"`
	RequestData  string    `gorm:"type:text"`
	ResponseData string    `gorm:"type:text"`
}

func (RequestLogModel) TableName() string {
	return "request_logs"
}

// AuditRepositoryAdapter implements the AuditRepository port using GORM
type AuditRepositoryAdapter struct {
	db *gorm.DB
}

// NewAuditRepositoryAdapter creates a new audit repository adapter
func NewAuditRepositoryAdapter(db *gorm.DB) ports.AuditRepository {
	return &AuditRepositoryAdapter{db: db}
}

// Save appends a record; rows are never updated
func (r *AuditRepositoryAdapter) Save(ctx context.Context, record *ports.AuditRecord) error {
	if record == nil {
		return errors.NewValidationError("audit record cannot be nil")
	}
	if record.UserID == "" {
		return errors.NewValidationError("audit record requires a user id")
	}

	model := r.dataToModel(record)
	if result := r.db.WithContext(ctx).Create(model); result.Error != nil {
		return errors.NewDatabaseError("failed to save audit record", result.Error)
	}

	record.ID = model.ID
	return nil
}

// Count returns the number of stored audit records
func (r *AuditRepositoryAdapter) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&RequestLogModel{}).Count(&count)
	if result.Error != nil {
		return 0, errors.NewDatabaseError("failed to count audit records", result.Error)
	}
	return count, nil
}

func (r *AuditRepositoryAdapter) dataToModel(record *ports.AuditRecord) *RequestLogModel {
	timestamp := record.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now().UTC()
	}
	return &RequestLogModel{
		RequestID:    record.RequestID,
		UserID:       record.UserID,
		Operation:    record.Operation,
		Timestamp:    timestamp,
		RequestData:  record.RequestData,
		ResponseData: record.ResponseData,
	}
}
