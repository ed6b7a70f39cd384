package errors

import (
	stderrors "errors"
	"fmt"
)

// Application error types organized by category for consistent mapping at the HTTP boundary

type ErrorType int

// Domain errors - caller input and credentials
const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeValidation
	ErrorTypeNotFound
	ErrorTypeAuth

	// Infrastructure errors - upstream provider, stores and caches
	ErrorTypeUpstream
	ErrorTypeLogging
	ErrorTypeCache
	ErrorTypeDatabase

	// System errors - setup and configuration
	ErrorTypeConfiguration
)

// String returns the string representation of error type
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeValidation:
		return "VALIDATION_ERROR"
	case ErrorTypeNotFound:
		return "NOT_FOUND_ERROR"
	case ErrorTypeAuth:
		return "AUTH_ERROR"
	case ErrorTypeUpstream:
		return "UPSTREAM_ERROR"
	case ErrorTypeLogging:
		return "LOGGING_ERROR"
	case ErrorTypeCache:
		return "CACHE_ERROR"
	case ErrorTypeDatabase:
		return "DATABASE_ERROR"
	case ErrorTypeConfiguration:
		return "CONFIGURATION_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// Short aliases used across the code base
const (
	ValidationError    = ErrorTypeValidation
	NotFoundError      = ErrorTypeNotFound
	AuthError          = ErrorTypeAuth
	UpstreamError      = ErrorTypeUpstream
	LoggingError       = ErrorTypeLogging
	CacheError         = ErrorTypeCache
	DatabaseError      = ErrorTypeDatabase
	ConfigurationError = ErrorTypeConfiguration
)

type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// Domain Error Constructors
func NewValidationError(message string) *AppError {
	return New(ValidationError, message)
}

func NewNotFoundError(message string) *AppError {
	return New(NotFoundError, message)
}

func NewAuthError(message string, cause error) *AppError {
	return Wrap(AuthError, message, cause)
}

// Infrastructure Error Constructors

// NewUpstreamError carries the provider's human-readable message in Message.
func NewUpstreamError(message string, cause error) *AppError {
	return Wrap(UpstreamError, message, cause)
}

func NewLoggingError(message string, cause error) *AppError {
	return Wrap(LoggingError, message, cause)
}

func NewCacheError(message string, cause error) *AppError {
	return Wrap(CacheError, message, cause)
}

func NewDatabaseError(message string, cause error) *AppError {
	return Wrap(DatabaseError, message, cause)
}

// System/Configuration Error Constructors
func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ConfigurationError, message, cause)
}

// TypeOf returns the type of the first AppError in the chain, or ErrorTypeUnknown.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeUnknown
}

// Helper functions for error type checking
func IsNotFoundError(err error) bool {
	return TypeOf(err) == NotFoundError
}

func IsValidationError(err error) bool {
	return TypeOf(err) == ValidationError
}

func IsAuthError(err error) bool {
	return TypeOf(err) == AuthError
}

func IsUpstreamError(err error) bool {
	return TypeOf(err) == UpstreamError
}

func IsLoggingError(err error) bool {
	return TypeOf(err) == LoggingError
}

func IsDatabaseError(err error) bool {
	return TypeOf(err) == DatabaseError
}

func IsConfigurationError(err error) bool {
	return TypeOf(err) == ConfigurationError
}
