// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"textgateway.app/internal/core/auth"
	"textgateway.app/internal/core/textgen"
	"textgateway.app/internal/ports"
	"textgateway.app/pkg/errors"
)

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router           *gin.Engine
	textGenUseCase   TextGenUseCase
	authenticator    Authenticator
	metricsCollector ports.MetricsCollector
	healthChecker    ports.SystemHealthChecker
	allowedOrigins   []string
}

// TextGenUseCase is the operation handler set served under /api/v1
type TextGenUseCase interface {
	Complete(ctx context.Context, caller textgen.Caller, request textgen.CompletionRequest) (*textgen.Result, error)
	Translate(ctx context.Context, caller textgen.Caller, request textgen.TranslationRequest) (*textgen.Result, error)
	Summarize(ctx context.Context, caller textgen.Caller, request textgen.SummarizationRequest) (*textgen.Result, error)
}

// Authenticator resolves an Authorization header to a caller
type Authenticator interface {
	Authenticate(authorization string) (auth.Identity, error)
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	TextGenUseCase   TextGenUseCase
	Authenticator    Authenticator
	MetricsCollector ports.MetricsCollector
	HealthChecker    ports.SystemHealthChecker
	AllowedOrigins   []string
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := RegisterValidators(); err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	server := &HTTPServerAdapter{
		router:           router,
		textGenUseCase:   opts.TextGenUseCase,
		authenticator:    opts.Authenticator,
		metricsCollector: opts.MetricsCollector,
		healthChecker:    opts.HealthChecker,
		allowedOrigins:   opts.AllowedOrigins,
	}

	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.TextGenUseCase == nil {
		return errors.NewValidationError("text generation use case is required")
	}
	if opts.Authenticator == nil {
		return errors.NewValidationError("authenticator is required")
	}
	if opts.MetricsCollector == nil {
		return errors.NewValidationError("metrics collector is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	s.router.Use(requestID(), cors(s.allowedOrigins))

	v1 := s.router.Group("/api/v1")
	{
		authenticated := v1.Group("", s.authenticate())
		authenticated.POST("/completions", s.createCompletion)
		authenticated.POST("/translations", s.createTranslation)
		authenticated.POST("/summaries", s.createSummary)

		v1.GET("/metrics", s.getMetrics)
	}

	s.router.GET("/health", s.getHealth)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// GetRouter returns the router for serving and testing
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}
