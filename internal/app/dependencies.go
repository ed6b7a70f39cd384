package app

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"
	"textgateway.app/internal/adapters/database"
	"textgateway.app/internal/adapters/external"
	"textgateway.app/internal/adapters/infrastructure"
	"textgateway.app/internal/adapters/security"
	"textgateway.app/internal/config"
	"textgateway.app/internal/core/audit"
	"textgateway.app/internal/metrics"
	"textgateway.app/internal/ports"
)

// DependencyContainer owns every long-lived resource: the database handle,
// the cache backend and the upstream log file. Cleanup releases them.
type DependencyContainer struct {
	config       *config.Config
	db           *gorm.DB
	cacheBackend ports.CacheProvider
	cacheStats   *external.InstrumentedCacheProvider
	upstreamLog  *infrastructure.FileLoggerAdapter
	ports        *ports.ApplicationPorts
}

func NewDependencyContainer(cfg *config.Config) (*DependencyContainer, error) {
	container := &DependencyContainer{
		config: cfg,
	}

	if err := container.initializeDatabase(); err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	if err := container.initializePorts(); err != nil {
		_ = container.Cleanup()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializeDatabase() error {
	slog.Info("Initializing database connection...", "driver", c.config.Database.Driver)

	db, err := database.Open(c.config.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}

	slog.Info("Running database migrations...")
	if err := database.RunMigrations(db); err != nil {
		_ = database.Close(db)
		return fmt.Errorf("run migrations: %w", err)
	}

	c.db = db
	slog.Info("Database connection established successfully")
	return nil
}

func (c *DependencyContainer) initializePorts() error {
	slog.Info("Initializing ports...")

	logger := infrastructure.NewSlogLoggerAdapter(nil)

	auditRepo := database.NewAuditRepositoryAdapter(c.db)
	requestLogger, err := audit.NewRequestLogger(auditRepo)
	if err != nil {
		return fmt.Errorf("create request logger: %w", err)
	}

	upstream, err := c.initializeUpstream(logger)
	if err != nil {
		return err
	}

	cacheMetrics := metrics.NewCacheMetrics(c.config.Cache.Type.String())
	backend, err := external.NewCacheProviderFactory().CreateCacheProvider(&c.config.Cache, cacheMetrics)
	if err != nil {
		return fmt.Errorf("create cache provider: %w", err)
	}
	c.cacheBackend = backend
	c.cacheStats = external.NewInstrumentedCacheProvider(backend, cacheMetrics)

	slog.Info("Cache provider initialized",
		"type", c.config.Cache.Type.String(),
		"ttl", c.config.Cache.TTL(),
		"max_entries", c.config.Cache.MaxEntries)

	tokens, err := security.NewJWTTokenService(c.config.Auth.SecretKey, c.config.Auth.TokenTTL())
	if err != nil {
		return fmt.Errorf("create token service: %w", err)
	}

	c.ports = &ports.ApplicationPorts{
		UpstreamClient: upstream,
		ResponseCache:  external.NewResponseCacheAdapter(c.cacheStats),

		AuditRepository: auditRepo,
		RequestLogger:   requestLogger,

		TokenService: tokens,

		CacheMetrics: cacheMetrics,

		ConfigProvider:   infrastructure.NewConfigProviderAdapter(c.config),
		Logger:           logger,
		OperationMetrics: metrics.NewOperationMetrics(),
		Database:         c.db,
	}

	slog.Info("Ports initialized successfully")
	return nil
}

func (c *DependencyContainer) initializeUpstream(logger ports.Logger) (ports.UpstreamClient, error) {
	client, err := external.NewOpenAIClientAdapter(external.OpenAIClientParams{
		APIKey:           c.config.OpenAI.APIKey,
		BaseURL:          c.config.OpenAI.BaseURL,
		Timeout:          c.config.OpenAI.Timeout(),
		TranslationModel: c.config.OpenAI.TranslationModel,
		SummaryModel:     c.config.OpenAI.SummaryModel,
	})
	if err != nil {
		return nil, fmt.Errorf("create upstream client: %w", err)
	}

	if !c.config.Logging.UpstreamLogEnabled {
		return client, nil
	}

	var upstreamLogger ports.Logger = logger
	fileLogger, err := infrastructure.NewFileLoggerAdapter(c.config.Logging.UpstreamLogPath)
	if err != nil {
		slog.Warn("Failed to create upstream log file, falling back to slog", "error", err)
	} else {
		c.upstreamLog = fileLogger
		upstreamLogger = fileLogger
		slog.Info("Upstream call logging enabled", "path", c.config.Logging.UpstreamLogPath)
	}

	return external.NewUpstreamLoggingDecorator(client, upstreamLogger), nil
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

func (c *DependencyContainer) Database() *gorm.DB {
	return c.db
}

// CacheBackend is the unwrapped provider, used for health checks
func (c *DependencyContainer) CacheBackend() ports.CacheProvider {
	return c.cacheBackend
}

// CacheStats exposes hit and miss counters of the serving cache
func (c *DependencyContainer) CacheStats() infrastructure.CacheStatsSource {
	return c.cacheStats
}

// Cleanup closes the cache backend, the upstream log and the database
func (c *DependencyContainer) Cleanup() error {
	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if closer, ok := c.cacheBackend.(interface{ Close() error }); ok {
		keep(closer.Close())
	}
	if c.upstreamLog != nil {
		keep(c.upstreamLog.Close())
	}
	if c.db != nil {
		keep(database.Close(c.db))
	}
	return firstErr
}
