package ports

import (
	"context"
	"time"
)

// CacheConfig represents cache configuration
type CacheConfig struct {
	Type       string
	TTL        time.Duration
	MaxEntries int
	Redis      RedisConfig
}

// RedisConfig represents Redis configuration
type RedisConfig struct {
	Addr         string
	Password     string
	DB           int
	KeyPrefix    string
	DialTimeout  int
	ReadTimeout  int
	WriteTimeout int
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port int
}

// DatabaseConfig represents database configuration
type DatabaseConfig struct {
	Driver string
	DSN    string
	Name   string
}

// UpstreamConfig represents language-model provider configuration
type UpstreamConfig struct {
	BaseURL          string
	Timeout          time.Duration
	TranslationModel string
	SummaryModel     string
}

// AuthConfig represents bearer token configuration
type AuthConfig struct {
	TokenTTL time.Duration
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetServerConfig() ServerConfig
	GetDatabaseConfig() DatabaseConfig
	GetUpstreamConfig() UpstreamConfig
	GetAuthConfig() AuthConfig
	GetCacheConfig() CacheConfig
	GetAllowedOrigins() []string
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// MetricsCollector exposes aggregated service metrics
type MetricsCollector interface {
	GetMetrics(ctx context.Context) (map[string]interface{}, error)
}

// OperationMetrics receives serving-path events that must stay observable
type OperationMetrics interface {
	RecordCacheResult(operation string, hit bool)
	RecordUpstreamCall(operation string, success bool, duration time.Duration)
	RecordAuditFailure(operation string)
}
