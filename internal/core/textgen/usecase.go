package textgen

import (
	"context"
	"fmt"
	"strings"
	"time"

	"textgateway.app/internal/ports"
	"textgateway.app/pkg/errors"
)

type UseCase struct {
	upstream      ports.UpstreamClient
	cache         ports.ResponseCache
	requestLogger ports.RequestLogger
	config        ports.ConfigProvider
	logger        ports.Logger
	metrics       ports.OperationMetrics
}

type UseCaseDependencies struct {
	Upstream      ports.UpstreamClient
	Cache         ports.ResponseCache
	RequestLogger ports.RequestLogger
	Config        ports.ConfigProvider
	Logger        ports.Logger
	Metrics       ports.OperationMetrics
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Upstream == nil {
		return nil, errors.NewValidationError("upstream client is required")
	}
	if deps.Cache == nil {
		return nil, errors.NewValidationError("cache is required")
	}
	if deps.RequestLogger == nil {
		return nil, errors.NewValidationError("request logger is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	return &UseCase{
		upstream:      deps.Upstream,
		cache:         deps.Cache,
		requestLogger: deps.RequestLogger,
		config:        deps.Config,
		logger:        deps.Logger,
		metrics:       deps.Metrics,
	}, nil
}

func (uc *UseCase) Complete(ctx context.Context, caller Caller, request CompletionRequest) (*Result, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	request.Normalize()
	if err := request.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid completion request: " + err.Error())
	}

	return uc.execute(ctx, caller, OperationCompletion, request.CacheKey(), request,
		func(ctx context.Context) (*ports.GenerationResult, error) {
			return uc.upstream.Complete(ctx, ports.CompletionParams{
				Prompt:      request.Prompt,
				Model:       request.Model,
				MaxTokens:   request.MaxTokens,
				Temperature: request.Temperature,
			})
		})
}

func (uc *UseCase) Translate(ctx context.Context, caller Caller, request TranslationRequest) (*Result, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	request.Normalize()
	if err := request.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid translation request: " + err.Error())
	}

	return uc.execute(ctx, caller, OperationTranslation, request.CacheKey(), request,
		func(ctx context.Context) (*ports.GenerationResult, error) {
			return uc.upstream.Translate(ctx, ports.TranslationParams{
				Text:           request.Text,
				TargetLanguage: request.TargetLanguage,
			})
		})
}

func (uc *UseCase) Summarize(ctx context.Context, caller Caller, request SummarizationRequest) (*Result, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	if err := request.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid summarization request: " + err.Error())
	}

	return uc.execute(ctx, caller, OperationSummary, request.CacheKey(), request,
		func(ctx context.Context) (*ports.GenerationResult, error) {
			return uc.upstream.Summarize(ctx, ports.SummarizationParams{
				Text:      request.Text,
				MaxTokens: request.MaxTokens,
			})
		})
}

type upstreamCall func(ctx context.Context) (*ports.GenerationResult, error)

// execute runs cache lookup, upstream call, cache store and audit in that order.
// Hits return without an audit record; failures leave both cache and audit untouched.
func (uc *UseCase) execute(ctx context.Context, caller Caller, op Operation, key string, request interface{}, call upstreamCall) (*Result, error) {
	if cached := uc.lookup(ctx, op, key); cached != nil {
		return cached, nil
	}

	start := time.Now()
	generated, err := call(ctx)
	if err == nil && generated == nil {
		err = errors.NewUpstreamError("upstream returned no result", nil)
	}
	uc.metrics.RecordUpstreamCall(string(op), err == nil, time.Since(start))
	if err != nil {
		uc.logger.Error("Upstream call failed",
			ports.F("operation", op),
			ports.F("request_id", caller.RequestID),
			ports.F("error", err))
		if !errors.IsUpstreamError(err) {
			err = errors.NewUpstreamError(err.Error(), err)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ttl := uc.config.GetCacheConfig().TTL
	if cacheErr := uc.cache.Set(ctx, key, generated, ttl); cacheErr != nil {
		uc.logger.Warn("Failed to cache upstream result",
			ports.F("operation", op),
			ports.F("error", cacheErr))
	}

	entry := ports.AuditEntry{
		UserID:    caller.ID,
		Operation: string(op),
		RequestID: caller.RequestID,
		Request:   request,
		Response:  generated,
	}
	if logErr := uc.requestLogger.Record(ctx, entry); logErr != nil {
		uc.metrics.RecordAuditFailure(string(op))
		uc.logger.Error("Failed to record audit entry",
			ports.F("operation", op),
			ports.F("user_id", caller.ID),
			ports.F("request_id", caller.RequestID),
			ports.F("error", logErr))
	}

	return fromGeneration(generated, false), nil
}

// lookup treats any cache failure as a miss
func (uc *UseCase) lookup(ctx context.Context, op Operation, key string) *Result {
	cached, err := uc.cache.Get(ctx, key)
	if err == nil && cached != nil {
		uc.metrics.RecordCacheResult(string(op), true)
		uc.logger.Debug("Result found in cache", ports.F("operation", op), ports.F("key", key))
		return fromGeneration(cached, true)
	}

	if err != nil && !errors.IsNotFoundError(err) {
		uc.logger.Warn("Cache lookup failed, treating as miss",
			ports.F("operation", op),
			ports.F("error", err))
	}
	uc.metrics.RecordCacheResult(string(op), false)
	return nil
}

func requireCaller(caller Caller) error {
	if strings.TrimSpace(caller.ID) == "" {
		return errors.NewAuthError("caller identity is required", nil)
	}
	return nil
}

func fromGeneration(g *ports.GenerationResult, cached bool) *Result {
	result := &Result{Text: g.Text, Cached: cached}
	if g.Usage != nil {
		result.Usage = &Usage{
			PromptTokens:     g.Usage.PromptTokens,
			CompletionTokens: g.Usage.CompletionTokens,
			TotalTokens:      g.Usage.TotalTokens,
		}
	}
	return result
}
