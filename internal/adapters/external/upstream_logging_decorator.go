package external

import (
	"context"
	"time"

	"textgateway.app/internal/ports"
)

// UpstreamLoggingDecorator writes request, response and error events for every upstream call
type UpstreamLoggingDecorator struct {
	client ports.UpstreamClient
	logger ports.Logger
}

// NewUpstreamLoggingDecorator creates a new logging decorator for upstream clients
func NewUpstreamLoggingDecorator(client ports.UpstreamClient, logger ports.Logger) ports.UpstreamClient {
	return &UpstreamLoggingDecorator{
		client: client,
		logger: logger,
	}
}

func (d *UpstreamLoggingDecorator) Complete(ctx context.Context, params ports.CompletionParams) (*ports.GenerationResult, error) {
	return d.observe("completion", func() (*ports.GenerationResult, error) {
		return d.client.Complete(ctx, params)
	}, ports.F("model", params.Model),
		ports.F("max_tokens", params.MaxTokens),
		ports.F("prompt_chars", len(params.Prompt)))
}

func (d *UpstreamLoggingDecorator) Translate(ctx context.Context, params ports.TranslationParams) (*ports.GenerationResult, error) {
	return d.observe("translation", func() (*ports.GenerationResult, error) {
		return d.client.Translate(ctx, params)
	}, ports.F("target_language", params.TargetLanguage),
		ports.F("text_chars", len(params.Text)))
}

func (d *UpstreamLoggingDecorator) Summarize(ctx context.Context, params ports.SummarizationParams) (*ports.GenerationResult, error) {
	return d.observe("summary", func() (*ports.GenerationResult, error) {
		return d.client.Summarize(ctx, params)
	}, ports.F("max_tokens", params.MaxTokens),
		ports.F("text_chars", len(params.Text)))
}

// GetProviderName returns the name of the wrapped client with logging indication
func (d *UpstreamLoggingDecorator) GetProviderName() string {
	return "logged(" + d.client.GetProviderName() + ")"
}

// observe logs sizes rather than the text itself
func (d *UpstreamLoggingDecorator) observe(operation string, call func() (*ports.GenerationResult, error), fields ...ports.Field) (*ports.GenerationResult, error) {
	provider := d.client.GetProviderName()
	base := []ports.Field{
		ports.F("provider", provider),
		ports.F("operation", operation),
	}

	d.logger.Info("Upstream request started",
		append(base, append(fields, ports.F("event", "request"))...)...)

	startTime := time.Now()
	result, err := call()
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Upstream request failed",
			append(base,
				ports.F("event", "error"),
				ports.F("duration_ms", duration.Milliseconds()),
				ports.F("error", err.Error()))...)
		return nil, err
	}

	responseFields := append(base,
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()))
	if result != nil {
		responseFields = append(responseFields, ports.F("response_chars", len(result.Text)))
		if result.Usage != nil {
			responseFields = append(responseFields, ports.F("total_tokens", result.Usage.TotalTokens))
		}
	}
	d.logger.Info("Upstream request completed", responseFields...)

	return result, nil
}
