package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"textgateway.app/internal/adapters/api"
	"textgateway.app/internal/adapters/infrastructure"
	"textgateway.app/internal/config"
	"textgateway.app/internal/core/auth"
	"textgateway.app/internal/core/textgen"
	"textgateway.app/internal/ports"
	"textgateway.app/pkg/logger"
)

type Application struct {
	config *config.Config

	// Use Cases
	textGenUseCase *textgen.UseCase
	gate           *auth.Gate

	// Adapters
	httpServer *http.Server
	router     *gin.Engine

	// Infrastructure
	deps  *DependencyContainer
	ports *ports.ApplicationPorts
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	logger.SetDefault(cfg.Logging.Level)

	deps, err := NewDependencyContainer(cfg)
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app, err := NewApplicationWithDependencies(cfg, deps)
	if err != nil {
		_ = deps.Cleanup()
		return nil, err
	}
	return app, nil
}

// NewApplicationWithDependencies creates an application with provided dependencies (for testing)
func NewApplicationWithDependencies(cfg *config.Config, deps *DependencyContainer) (*Application, error) {
	app := &Application{
		config: cfg,
		deps:   deps,
		ports:  deps.ApplicationPorts(),
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	textGenUseCase, err := textgen.NewUseCase(textgen.UseCaseDependencies{
		Upstream:      a.ports.UpstreamClient,
		Cache:         a.ports.ResponseCache,
		RequestLogger: a.ports.RequestLogger,
		Config:        a.ports.ConfigProvider,
		Logger:        a.ports.Logger,
		Metrics:       a.ports.OperationMetrics,
	})
	if err != nil {
		return fmt.Errorf("create text generation use case: %w", err)
	}
	a.textGenUseCase = textGenUseCase

	gate, err := auth.NewGate(auth.GateDependencies{
		Tokens: a.ports.TokenService,
		Logger: a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create auth gate: %w", err)
	}
	a.gate = gate

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	metricsCollector := infrastructure.NewMetricsCollectorAdapter(infrastructure.MetricsCollectorConfig{
		CacheStats:      a.deps.CacheStats(),
		AuditRepository: a.ports.AuditRepository,
		CacheType:       a.config.Cache.Type.String(),
	})

	systemHealthChecker := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		DatabaseChecker: infrastructure.NewDatabaseHealthChecker(a.deps.Database(), string(a.config.Database.Driver)),
		CacheChecker:    infrastructure.NewCacheHealthChecker(a.deps.CacheBackend()),
		UpstreamChecker: infrastructure.NewUpstreamHealthChecker(
			a.ports.UpstreamClient, a.ports.ConfigProvider.GetUpstreamConfig()),
		ConfigProvider: a.ports.ConfigProvider,
	})

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		TextGenUseCase:   a.textGenUseCase,
		Authenticator:    a.gate,
		MetricsCollector: metricsCollector,
		HealthChecker:    systemHealthChecker,
		AllowedOrigins:   a.ports.ConfigProvider.GetAllowedOrigins(),
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	a.router = httpAdapter.GetRouter()

	a.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.config.Server.Port),
		Handler:      a.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: a.config.OpenAI.Timeout() + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("Adapters initialized successfully")
	return nil
}

// Start blocks serving HTTP until Shutdown is called
func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting HTTP server", "port", a.config.Server.Port)
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}
	return nil
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	if err := a.deps.Cleanup(); err != nil {
		slog.Warn("Error releasing resources", "error", err)
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}

// GetTextGenUseCase returns the text generation use case for testing
func (a *Application) GetTextGenUseCase() *textgen.UseCase {
	return a.textGenUseCase
}

// GetPorts returns the wired ports for testing
func (a *Application) GetPorts() *ports.ApplicationPorts {
	return a.ports
}
