package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		setup    func() *AppError
		expected string
	}{
		{
			name: "ErrorWithoutCause",
			setup: func() *AppError {
				return New(ValidationError, "prompt is required")
			},
			expected: "VALIDATION_ERROR: prompt is required",
		},
		{
			name: "ErrorWithCause",
			setup: func() *AppError {
				cause := fmt.Errorf("connection refused")
				return Wrap(DatabaseError, "failed to save audit record", cause)
			},
			expected: "DATABASE_ERROR: failed to save audit record (caused by: connection refused)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.setup()
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("dial tcp: timeout")
	err := NewUpstreamError("OpenAI API error: timeout", cause)
	assert.Equal(t, cause, err.Unwrap())

	assert.Nil(t, NewNotFoundError("cache miss").Unwrap())
}

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		expected  string
	}{
		{ErrorTypeValidation, "VALIDATION_ERROR"},
		{ErrorTypeNotFound, "NOT_FOUND_ERROR"},
		{ErrorTypeAuth, "AUTH_ERROR"},
		{ErrorTypeUpstream, "UPSTREAM_ERROR"},
		{ErrorTypeLogging, "LOGGING_ERROR"},
		{ErrorTypeCache, "CACHE_ERROR"},
		{ErrorTypeDatabase, "DATABASE_ERROR"},
		{ErrorTypeConfiguration, "CONFIGURATION_ERROR"},
		{ErrorTypeUnknown, "UNKNOWN_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.errorType.String())
		})
	}
}

func TestTypeOf_WrappedErrors(t *testing.T) {
	authErr := NewAuthError("token expired", nil)
	wrapped := fmt.Errorf("authenticate caller: %w", authErr)

	assert.Equal(t, AuthError, TypeOf(wrapped))
	assert.True(t, IsAuthError(wrapped))
	assert.False(t, IsUpstreamError(wrapped))
	assert.Equal(t, ErrorTypeUnknown, TypeOf(fmt.Errorf("plain")))
	assert.Equal(t, ErrorTypeUnknown, TypeOf(nil))
}

func TestIsHelpers(t *testing.T) {
	assert.True(t, IsValidationError(NewValidationError("bad input")))
	assert.True(t, IsNotFoundError(NewNotFoundError("cache miss")))
	assert.True(t, IsUpstreamError(NewUpstreamError("provider failed", nil)))
	assert.True(t, IsLoggingError(NewLoggingError("audit write failed", nil)))
	assert.True(t, IsDatabaseError(NewDatabaseError("insert failed", nil)))
	assert.True(t, IsConfigurationError(NewConfigurationError("missing key", nil)))

	assert.False(t, IsNotFoundError(NewCacheError("redis down", nil)))
	assert.False(t, IsValidationError(nil))
}
