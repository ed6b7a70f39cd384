package ports

import "context"

// CompletionParams is the provider-facing shape of a completion call
type CompletionParams struct {
	Prompt      string
	Model       string
	MaxTokens   int
	Temperature float64
}

// TranslationParams is the provider-facing shape of a translation call
type TranslationParams struct {
	Text           string
	TargetLanguage string
}

// SummarizationParams is the provider-facing shape of a summarization call
type SummarizationParams struct {
	Text      string
	MaxTokens int
}

// TokenUsage mirrors the provider's token accounting
type TokenUsage struct {
	PromptTokens     int64 `json:"prompt_tokens"`
	CompletionTokens int64 `json:"completion_tokens"`
	TotalTokens      int64 `json:"total_tokens"`
}

// GenerationResult is the normalized result of any upstream operation
type GenerationResult struct {
	Text  string      `json:"text"`
	Usage *TokenUsage `json:"usage,omitempty"`
}

// UpstreamClient issues one request per call to the language-model provider.
// Every failure is returned as an Upstream AppError; implementations never retry.
type UpstreamClient interface {
	Complete(ctx context.Context, params CompletionParams) (*GenerationResult, error)
	Translate(ctx context.Context, params TranslationParams) (*GenerationResult, error)
	Summarize(ctx context.Context, params SummarizationParams) (*GenerationResult, error)
	GetProviderName() string
}
