package textgen

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"textgateway.app/pkg/validation"
)

// Operation discriminates cache keys, audit rows and metrics
type Operation string

const (
	OperationCompletion  Operation = "completion"
	OperationTranslation Operation = "translation"
	OperationSummary     Operation = "summary"
)

const (
	DefaultCompletionModel = "text-davinci-003"
	DefaultMaxTokens       = 100
	DefaultTemperature     = 0.7

	MinMaxTokens   = 1
	MaxMaxTokens   = 4096
	MinTemperature = 0.0
	MaxTemperature = 2.0
)

// CompletionRequest asks the provider to continue a prompt
type CompletionRequest struct {
	Prompt      string  `json:"prompt"`
	Model       string  `json:"model"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
}

// NewCompletionRequest returns a request carrying the documented defaults
func NewCompletionRequest(prompt string) CompletionRequest {
	return CompletionRequest{
		Prompt:      prompt,
		Model:       DefaultCompletionModel,
		MaxTokens:   DefaultMaxTokens,
		Temperature: DefaultTemperature,
	}
}

// IsValid validates completion parameters
func (r *CompletionRequest) IsValid() error {
	if !validation.IsNotEmpty(r.Prompt) {
		return fmt.Errorf("prompt cannot be empty")
	}
	if !validation.IsNotEmpty(r.Model) {
		return fmt.Errorf("model cannot be empty")
	}
	if !validation.IsInRange(r.MaxTokens, MinMaxTokens, MaxMaxTokens) {
		return fmt.Errorf("max_tokens must be between %d and %d", MinMaxTokens, MaxMaxTokens)
	}
	if !validation.IsInRange(r.Temperature, MinTemperature, MaxTemperature) {
		return fmt.Errorf("temperature must be between %.1f and %.1f", MinTemperature, MaxTemperature)
	}
	return nil
}

// Normalize trims the model name. The prompt is sent verbatim.
func (r *CompletionRequest) Normalize() {
	r.Model = strings.TrimSpace(r.Model)
}

// CacheKey covers every field the provider output depends on
func (r CompletionRequest) CacheKey() string {
	return cacheKey(OperationCompletion, r)
}

// TranslationRequest asks the provider to translate text
type TranslationRequest struct {
	Text           string `json:"text"`
	TargetLanguage string `json:"target_language"`
}

// IsValid validates translation parameters
func (r *TranslationRequest) IsValid() error {
	if !validation.IsNotEmpty(r.Text) {
		return fmt.Errorf("text cannot be empty")
	}
	if !validation.IsNotEmpty(r.TargetLanguage) {
		return fmt.Errorf("target_language cannot be empty")
	}
	if !validation.IsValidLanguageCode(r.TargetLanguage) {
		return fmt.Errorf("target_language %q is not a valid language code", r.TargetLanguage)
	}
	return nil
}

// Normalize lowercases the language tag so "FR" and "fr" share a cache entry
func (r *TranslationRequest) Normalize() {
	r.TargetLanguage = strings.ToLower(strings.TrimSpace(r.TargetLanguage))
}

func (r TranslationRequest) CacheKey() string {
	return cacheKey(OperationTranslation, r)
}

// SummarizationRequest asks the provider to summarize text
type SummarizationRequest struct {
	Text      string `json:"text"`
	MaxTokens int    `json:"max_tokens"`
}

// NewSummarizationRequest returns a request carrying the documented defaults
func NewSummarizationRequest(text string) SummarizationRequest {
	return SummarizationRequest{
		Text:      text,
		MaxTokens: DefaultMaxTokens,
	}
}

// IsValid validates summarization parameters
func (r *SummarizationRequest) IsValid() error {
	if !validation.IsNotEmpty(r.Text) {
		return fmt.Errorf("text cannot be empty")
	}
	if !validation.IsInRange(r.MaxTokens, MinMaxTokens, MaxMaxTokens) {
		return fmt.Errorf("max_tokens must be between %d and %d", MinMaxTokens, MaxMaxTokens)
	}
	return nil
}

func (r SummarizationRequest) CacheKey() string {
	return cacheKey(OperationSummary, r)
}

// Usage is the token accounting reported by the provider
type Usage struct {
	PromptTokens     int64 `json:"prompt_tokens"`
	CompletionTokens int64 `json:"completion_tokens"`
	TotalTokens      int64 `json:"total_tokens"`
}

// Result is the normalized output of an operation
type Result struct {
	Text   string
	Usage  *Usage
	Cached bool
}

// Caller identifies who issued a request and under which request id
type Caller struct {
	ID        string
	RequestID string
}

// cacheKey hashes the canonical JSON of params under an operation prefix.
// Struct field order makes the encoding deterministic.
func cacheKey(op Operation, params interface{}) string {
	payload, err := json.Marshal(params)
	if err != nil {
		// NaN and Inf are not valid JSON numbers
		payload = []byte(fmt.Sprintf("%+v", params))
	}
	sum := sha256.Sum256(payload)
	return string(op) + ":" + hex.EncodeToString(sum[:])
}
