package audit

import (
	"context"
	"encoding/json"
	"time"

	"textgateway.app/internal/ports"
	"textgateway.app/pkg/errors"
)

// RequestLogger persists one audit record per completed operation
type RequestLogger struct {
	repository ports.AuditRepository
	now        func() time.Time
}

var _ ports.RequestLogger = (*RequestLogger)(nil)

func NewRequestLogger(repository ports.AuditRepository) (*RequestLogger, error) {
	if repository == nil {
		return nil, errors.NewValidationError("audit repository is required")
	}
	return &RequestLogger{
		repository: repository,
		now:        time.Now,
	}, nil
}

// Record serializes request and response and returns once the row is written
func (l *RequestLogger) Record(ctx context.Context, entry ports.AuditEntry) error {
	requestData, err := json.Marshal(entry.Request)
	if err != nil {
		return errors.NewLoggingError("failed to serialize request", err)
	}
	responseData, err := json.Marshal(entry.Response)
	if err != nil {
		return errors.NewLoggingError("failed to serialize response", err)
	}

	record := &ports.AuditRecord{
		RequestID:    entry.RequestID,
		UserID:       entry.UserID,
		Operation:    entry.Operation,
		Timestamp:    l.now().UTC(),
		RequestData:  string(requestData),
		ResponseData: string(responseData),
	}

	if err := l.repository.Save(ctx, record); err != nil {
		return errors.NewLoggingError("failed to persist audit record", err)
	}
	return nil
}
