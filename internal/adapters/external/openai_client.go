package external

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"textgateway.app/internal/ports"
	"textgateway.app/pkg/errors"
)

const (
	summaryPromptPrefix  = "Summarize this text: "
	summaryTemperature   = 0.7
	defaultOpenAITimeout = 30 * time.Second
)

// OpenAIClientAdapter implements UpstreamClient on the OpenAI completions and chat APIs
type OpenAIClientAdapter struct {
	client           openai.Client
	timeout          time.Duration
	translationModel string
	summaryModel     string
}

// OpenAIClientParams holds parameters for creating the OpenAI client
type OpenAIClientParams struct {
	APIKey           string
	BaseURL          string
	Timeout          time.Duration
	TranslationModel string
	SummaryModel     string
	HTTPClient       *http.Client
}

// NewOpenAIClientAdapter creates an OpenAI client with SDK retries disabled
func NewOpenAIClientAdapter(params OpenAIClientParams) (*OpenAIClientAdapter, error) {
	if strings.TrimSpace(params.APIKey) == "" {
		return nil, errors.NewConfigurationError("OpenAI API key cannot be empty", nil)
	}
	if params.TranslationModel == "" || params.SummaryModel == "" {
		return nil, errors.NewConfigurationError("OpenAI translation and summary models must be set", nil)
	}

	timeout := params.Timeout
	if timeout <= 0 {
		timeout = defaultOpenAITimeout
	}

	opts := []option.RequestOption{
		option.WithAPIKey(params.APIKey),
		option.WithMaxRetries(0),
	}
	if params.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(params.BaseURL))
	}
	if params.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(params.HTTPClient))
	}

	return &OpenAIClientAdapter{
		client:           openai.NewClient(opts...),
		timeout:          timeout,
		translationModel: params.TranslationModel,
		summaryModel:     params.SummaryModel,
	}, nil
}

func (c *OpenAIClientAdapter) Complete(ctx context.Context, params ports.CompletionParams) (*ports.GenerationResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Completions.New(ctx, openai.CompletionNewParams{
		Model:       openai.CompletionNewParamsModel(params.Model),
		Prompt:      openai.CompletionNewParamsPromptUnion{OfString: openai.String(params.Prompt)},
		MaxTokens:   openai.Int(int64(params.MaxTokens)),
		Temperature: openai.Float(params.Temperature),
	})
	if err != nil {
		return nil, upstreamError(err)
	}
	return completionResult(resp)
}

func (c *OpenAIClientAdapter) Translate(ctx context.Context, params ports.TranslationParams) (*ports.GenerationResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	instruction := fmt.Sprintf(
		"Translate the user's message into the language with code %q. Reply with the translation only.",
		params.TargetLanguage)

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.translationModel),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(instruction),
			openai.UserMessage(params.Text),
		},
	})
	if err != nil {
		return nil, upstreamError(err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.NewUpstreamError("OpenAI returned no choices", nil)
	}

	return &ports.GenerationResult{
		Text:  strings.TrimSpace(resp.Choices[0].Message.Content),
		Usage: tokenUsage(resp.Usage),
	}, nil
}

func (c *OpenAIClientAdapter) Summarize(ctx context.Context, params ports.SummarizationParams) (*ports.GenerationResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Completions.New(ctx, openai.CompletionNewParams{
		Model:       openai.CompletionNewParamsModel(c.summaryModel),
		Prompt:      openai.CompletionNewParamsPromptUnion{OfString: openai.String(summaryPromptPrefix + params.Text)},
		MaxTokens:   openai.Int(int64(params.MaxTokens)),
		Temperature: openai.Float(summaryTemperature),
	})
	if err != nil {
		return nil, upstreamError(err)
	}
	return completionResult(resp)
}

func (c *OpenAIClientAdapter) GetProviderName() string {
	return "openai"
}

func completionResult(resp *openai.Completion) (*ports.GenerationResult, error) {
	if len(resp.Choices) == 0 {
		return nil, errors.NewUpstreamError("OpenAI returned no choices", nil)
	}
	return &ports.GenerationResult{
		Text:  resp.Choices[0].Text,
		Usage: tokenUsage(resp.Usage),
	}, nil
}

func tokenUsage(usage openai.CompletionUsage) *ports.TokenUsage {
	if usage.TotalTokens == 0 && usage.PromptTokens == 0 && usage.CompletionTokens == 0 {
		return nil
	}
	return &ports.TokenUsage{
		PromptTokens:     usage.PromptTokens,
		CompletionTokens: usage.CompletionTokens,
		TotalTokens:      usage.TotalTokens,
	}
}

// upstreamError keeps the provider's own message so callers can surface it
func upstreamError(err error) error {
	var apiErr *openai.Error
	if stderrors.As(err, &apiErr) {
		message := apiErr.Message
		if message == "" {
			message = apiErr.Error()
		}
		return errors.NewUpstreamError("OpenAI API error: "+message, err)
	}
	if stderrors.Is(err, context.DeadlineExceeded) {
		return errors.NewUpstreamError("OpenAI request timed out", err)
	}
	return errors.NewUpstreamError("OpenAI request failed: "+err.Error(), err)
}
