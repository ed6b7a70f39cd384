package infrastructure

import (
	"textgateway.app/internal/config"
	"textgateway.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

// GetServerConfig returns server configuration
func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port: c.config.Server.Port,
	}
}

// GetDatabaseConfig exposes the driver and DSN; credentials stay inside config
func (c *ConfigProviderAdapter) GetDatabaseConfig() ports.DatabaseConfig {
	return ports.DatabaseConfig{
		Driver: string(c.config.Database.Driver),
		DSN:    c.config.Database.GetDSN(),
		Name:   c.config.Database.Name,
	}
}

// GetUpstreamConfig returns the OpenAI settings without the API key
func (c *ConfigProviderAdapter) GetUpstreamConfig() ports.UpstreamConfig {
	return ports.UpstreamConfig{
		BaseURL:          c.config.OpenAI.BaseURL,
		Timeout:          c.config.OpenAI.Timeout(),
		TranslationModel: c.config.OpenAI.TranslationModel,
		SummaryModel:     c.config.OpenAI.SummaryModel,
	}
}

func (c *ConfigProviderAdapter) GetAuthConfig() ports.AuthConfig {
	return ports.AuthConfig{
		TokenTTL: c.config.Auth.TokenTTL(),
	}
}

// GetCacheConfig returns cache configuration
func (c *ConfigProviderAdapter) GetCacheConfig() ports.CacheConfig {
	return ports.CacheConfig{
		Type:       c.config.Cache.Type.String(),
		TTL:        c.config.Cache.TTL(),
		MaxEntries: c.config.Cache.MaxEntries,
		Redis: ports.RedisConfig{
			Addr:         c.config.Cache.Redis.Addr,
			Password:     c.config.Cache.Redis.Password,
			DB:           c.config.Cache.Redis.DB,
			KeyPrefix:    c.config.Cache.Redis.KeyPrefix,
			DialTimeout:  c.config.Cache.Redis.DialTimeout,
			ReadTimeout:  c.config.Cache.Redis.ReadTimeout,
			WriteTimeout: c.config.Cache.Redis.WriteTimeout,
		},
	}
}

func (c *ConfigProviderAdapter) GetAllowedOrigins() []string {
	origins := make([]string, len(c.config.CORS.AllowedOrigins))
	copy(origins, c.config.CORS.AllowedOrigins)
	return origins
}
