package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"textgateway.app/pkg/errors"
)

const (
	maxRedisDB          = 15
	maxCacheTTLSeconds  = 86400
	maxCacheEntries     = 1_000_000
	maxPortNumber       = 65535
	maxTokenTTLMinutes  = 1440
	maxUpstreamTimeoutS = 600
	minSecretKeyLength  = 16
)

// Config represents the application configuration structure
type Config struct {
	Server   ServerConfig   `split_words:"true"`
	Database DatabaseConfig `split_words:"true"`
	OpenAI   OpenAIConfig   `split_words:"true"`
	Auth     AuthConfig     `split_words:"true"`
	Cache    CacheConfig    `split_words:"true"`
	Logging  LoggingConfig  `split_words:"true"`
	CORS     CORSConfig     `split_words:"true"`
}

type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

// DatabaseDriver selects the gorm dialector for the audit store
type DatabaseDriver string

const (
	DriverPostgres DatabaseDriver = "postgres"
	DriverSQLite   DatabaseDriver = "sqlite"
)

type DatabaseConfig struct {
	Driver     DatabaseDriver `envconfig:"DB_DRIVER" default:"postgres"`
	Host       string         `envconfig:"DB_HOST" default:"localhost"`
	Port       int            `envconfig:"DB_PORT" default:"5432"`
	User       string         `envconfig:"DB_USER" default:"postgres"`
	Password   string         `envconfig:"DB_PASSWORD" default:"postgres"`
	Name       string         `envconfig:"DB_NAME" default:"textgateway"`
	SSLMode    string         `envconfig:"DB_SSL_MODE" default:"disable"`
	SQLitePath string         `envconfig:"DB_SQLITE_PATH" default:"textgateway.db"`
}

func (c DatabaseConfig) GetDSN() string {
	if c.Driver == DriverSQLite {
		return c.SQLitePath
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type OpenAIConfig struct {
	APIKey           string `envconfig:"OPENAI_API_KEY"`
	BaseURL          string `envconfig:"OPENAI_BASE_URL" default:"https://api.openai.com/v1"`
	TimeoutSeconds   int    `envconfig:"OPENAI_TIMEOUT_SECONDS" default:"30"`
	TranslationModel string `envconfig:"OPENAI_TRANSLATION_MODEL" default:"gpt-3.5-turbo"`
	SummaryModel     string `envconfig:"OPENAI_SUMMARY_MODEL" default:"text-davinci-003"`
}

// Timeout returns the per-call upstream deadline
func (o OpenAIConfig) Timeout() time.Duration {
	return time.Duration(o.TimeoutSeconds) * time.Second
}

type AuthConfig struct {
	SecretKey       string `envconfig:"AUTH_SECRET_KEY"`
	TokenTTLMinutes int    `envconfig:"AUTH_TOKEN_TTL_MINUTES" default:"15"`
}

func (a AuthConfig) TokenTTL() time.Duration {
	return time.Duration(a.TokenTTLMinutes) * time.Minute
}

// CacheType represents the type of cache to use
type CacheType int

const (
	CacheTypeUnknown CacheType = iota
	CacheTypeMemory
	CacheTypeRedis
)

// String returns the string representation of cache type
func (c CacheType) String() string {
	switch c {
	case CacheTypeMemory:
		return "memory"
	case CacheTypeRedis:
		return "redis"
	default:
		return "unknown"
	}
}

// IsValid checks if the cache type is valid
func (c CacheType) IsValid() bool {
	return c == CacheTypeMemory || c == CacheTypeRedis
}

// CacheTypeFromString converts string to CacheType enum
func CacheTypeFromString(s string) CacheType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "memory":
		return CacheTypeMemory
	case "redis":
		return CacheTypeRedis
	default:
		return CacheTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (c *CacheType) UnmarshalText(text []byte) error {
	*c = CacheTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (c CacheType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type CacheConfig struct {
	Type       CacheType   `envconfig:"CACHE_TYPE" default:"memory"`
	TTLSeconds int         `envconfig:"CACHE_TTL_SECONDS" default:"300"`
	MaxEntries int         `envconfig:"CACHE_MAX_ENTRIES" default:"100"`
	Redis      RedisConfig `split_words:"true"`
}

func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	KeyPrefix    string `envconfig:"REDIS_KEY_PREFIX" default:"textgateway"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

type LoggingConfig struct {
	Level              string `envconfig:"LOG_LEVEL" default:"info"`
	UpstreamLogEnabled bool   `envconfig:"UPSTREAM_LOG_ENABLED" default:"true"`
	UpstreamLogPath    string `envconfig:"UPSTREAM_LOG_FILE_PATH" default:"logs/upstream.log"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:8000,http://localhost:3000,http://127.0.0.1:8000"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.OpenAI.Validate(); err != nil {
		return err
	}
	if err := c.Auth.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (d *DatabaseConfig) Validate() error {
	switch d.Driver {
	case DriverSQLite:
		if d.SQLitePath == "" {
			return errors.NewConfigurationError("DB_SQLITE_PATH cannot be empty when DB_DRIVER is sqlite", nil)
		}
		return nil
	case DriverPostgres:
	default:
		return errors.NewConfigurationError("DB_DRIVER must be one of: postgres, sqlite", nil)
	}

	if d.Host == "" {
		return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
	}
	if d.Port < 1 || d.Port > maxPortNumber {
		return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
	}
	if d.User == "" {
		return errors.NewConfigurationError("DB_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
	}
	return d.ValidateSSLMode()
}

func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

func (o *OpenAIConfig) Validate() error {
	if strings.TrimSpace(o.APIKey) == "" {
		return errors.NewConfigurationError("OPENAI_API_KEY must be configured", nil)
	}
	if !strings.HasPrefix(o.BaseURL, "http://") && !strings.HasPrefix(o.BaseURL, "https://") {
		return errors.NewConfigurationError("OPENAI_BASE_URL must start with http:// or https://", nil)
	}
	if o.TimeoutSeconds < 1 || o.TimeoutSeconds > maxUpstreamTimeoutS {
		return errors.NewConfigurationError("OPENAI_TIMEOUT_SECONDS must be between 1 and 600", nil)
	}
	if o.TranslationModel == "" {
		return errors.NewConfigurationError("OPENAI_TRANSLATION_MODEL cannot be empty", nil)
	}
	if o.SummaryModel == "" {
		return errors.NewConfigurationError("OPENAI_SUMMARY_MODEL cannot be empty", nil)
	}
	return nil
}

func (a *AuthConfig) Validate() error {
	if len(a.SecretKey) < minSecretKeyLength {
		return errors.NewConfigurationError(
			fmt.Sprintf("AUTH_SECRET_KEY must be at least %d characters", minSecretKeyLength), nil)
	}
	if a.TokenTTLMinutes < 1 || a.TokenTTLMinutes > maxTokenTTLMinutes {
		return errors.NewConfigurationError("AUTH_TOKEN_TTL_MINUTES must be between 1 and 1440", nil)
	}
	return nil
}

func (c *CacheConfig) Validate() error {
	if !c.Type.IsValid() {
		return errors.NewConfigurationError("CACHE_TYPE must be one of: memory, redis", nil)
	}
	if c.TTLSeconds < 1 || c.TTLSeconds > maxCacheTTLSeconds {
		return errors.NewConfigurationError("CACHE_TTL_SECONDS must be between 1 and 86400", nil)
	}
	if c.MaxEntries < 1 || c.MaxEntries > maxCacheEntries {
		return errors.NewConfigurationError("CACHE_MAX_ENTRIES must be between 1 and 1000000", nil)
	}

	if c.Type == CacheTypeRedis {
		return c.Redis.Validate()
	}

	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis cache", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

func (l *LoggingConfig) Validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return errors.NewConfigurationError("LOG_LEVEL must be one of: debug, info, warn, error", nil)
	}
	if l.UpstreamLogEnabled && l.UpstreamLogPath == "" {
		return errors.NewConfigurationError("UPSTREAM_LOG_FILE_PATH cannot be empty when UPSTREAM_LOG_ENABLED is true", nil)
	}
	return nil
}
