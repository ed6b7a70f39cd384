package textgen

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	mocks "textgateway.app/internal/mocks"
	"textgateway.app/internal/ports"
	"textgateway.app/pkg/errors"
)

type useCaseMocks struct {
	upstream      *mocks.UpstreamClient
	cache         *mocks.ResponseCache
	requestLogger *mocks.RequestLogger
	config        *mocks.ConfigProvider
	logger        *mocks.Logger
	metrics       *mocks.OperationMetrics
}

func newUseCaseWithMocks(t *testing.T) (*UseCase, useCaseMocks) {
	m := useCaseMocks{
		upstream:      mocks.NewUpstreamClient(t),
		cache:         mocks.NewResponseCache(t),
		requestLogger: mocks.NewRequestLogger(t),
		config:        mocks.NewConfigProvider(t),
		logger:        mocks.NewLoggerAllowingAll(t),
		metrics:       mocks.NewOperationMetrics(t),
	}
	m.metrics.EXPECT().RecordCacheResult(mock.Anything, mock.Anything).Maybe()
	m.metrics.EXPECT().RecordUpstreamCall(mock.Anything, mock.Anything, mock.Anything).Maybe()

	uc, err := NewUseCase(UseCaseDependencies{
		Upstream:      m.upstream,
		Cache:         m.cache,
		RequestLogger: m.requestLogger,
		Config:        m.config,
		Logger:        m.logger,
		Metrics:       m.metrics,
	})
	require.NoError(t, err)
	return uc, m
}

var testCaller = Caller{ID: "alice", RequestID: "req-1"}

func cacheMiss() error {
	return errors.NewNotFoundError("cache miss")
}

func TestNewUseCase_MissingDependencies(t *testing.T) {
	uc, err := NewUseCase(UseCaseDependencies{})

	assert.Nil(t, uc)
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), "upstream client is required")
}

func TestUseCase_Complete_CacheMissCallsUpstreamCachesAndAudits(t *testing.T) {
	uc, m := newUseCaseWithMocks(t)
	ctx := context.Background()
	req := NewCompletionRequest("Write a short story about a cat.")

	generated := &ports.GenerationResult{
		Text: "The ginger cat...",
		Usage: &ports.TokenUsage{
			PromptTokens:     10,
			CompletionTokens: 70,
			TotalTokens:      80,
		},
	}

	m.cache.EXPECT().Get(mock.Anything, req.CacheKey()).Return(nil, cacheMiss())
	m.upstream.EXPECT().Complete(mock.Anything, ports.CompletionParams{
		Prompt:      "Write a short story about a cat.",
		Model:       "text-davinci-003",
		MaxTokens:   100,
		Temperature: 0.7,
	}).Return(generated, nil).Once()
	m.config.EXPECT().GetCacheConfig().Return(ports.CacheConfig{TTL: 300 * time.Second})
	m.cache.EXPECT().Set(mock.Anything, req.CacheKey(), generated, 300*time.Second).Return(nil)
	m.requestLogger.EXPECT().Record(mock.Anything, mock.MatchedBy(func(e ports.AuditEntry) bool {
		return e.UserID == "alice" && e.Operation == "completion" && e.RequestID == "req-1" &&
			e.Response == generated
	})).Return(nil).Once()

	result, err := uc.Complete(ctx, testCaller, req)

	require.NoError(t, err)
	assert.Equal(t, "The ginger cat...", result.Text)
	assert.Equal(t, &Usage{PromptTokens: 10, CompletionTokens: 70, TotalTokens: 80}, result.Usage)
	assert.False(t, result.Cached)
}

func TestUseCase_Complete_CacheHitSkipsUpstreamAndAudit(t *testing.T) {
	uc, m := newUseCaseWithMocks(t)
	req := NewCompletionRequest("Write a short story about a cat.")

	m.cache.EXPECT().Get(mock.Anything, req.CacheKey()).Return(&ports.GenerationResult{
		Text:  "The ginger cat...",
		Usage: &ports.TokenUsage{PromptTokens: 10, CompletionTokens: 70, TotalTokens: 80},
	}, nil)

	result, err := uc.Complete(context.Background(), testCaller, req)

	require.NoError(t, err)
	assert.True(t, result.Cached)
	assert.Equal(t, "The ginger cat...", result.Text)
	m.upstream.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
	m.requestLogger.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
}

func TestUseCase_Translate_Scenario(t *testing.T) {
	uc, m := newUseCaseWithMocks(t)
	req := TranslationRequest{Text: "Hello, how are you?", TargetLanguage: "FR"}
	key := TranslationRequest{Text: "Hello, how are you?", TargetLanguage: "fr"}.CacheKey()

	generated := &ports.GenerationResult{Text: "Bonjour, comment allez-vous?"}
	m.cache.EXPECT().Get(mock.Anything, key).Return(nil, cacheMiss())
	m.upstream.EXPECT().Translate(mock.Anything, ports.TranslationParams{
		Text:           "Hello, how are you?",
		TargetLanguage: "fr",
	}).Return(generated, nil)
	m.config.EXPECT().GetCacheConfig().Return(ports.CacheConfig{TTL: time.Minute})
	m.cache.EXPECT().Set(mock.Anything, key, generated, time.Minute).Return(nil)
	m.requestLogger.EXPECT().Record(mock.Anything, mock.Anything).Return(nil)

	result, err := uc.Translate(context.Background(), testCaller, req)

	require.NoError(t, err)
	assert.Equal(t, "Bonjour, comment allez-vous?", result.Text)
	assert.Nil(t, result.Usage)
}

func TestUseCase_Summarize_Scenario(t *testing.T) {
	uc, m := newUseCaseWithMocks(t)
	req := NewSummarizationRequest("Hello, how are you?")

	generated := &ports.GenerationResult{Text: "A ginger cat named Marmalade had a routine."}
	m.cache.EXPECT().Get(mock.Anything, req.CacheKey()).Return(nil, cacheMiss())
	m.upstream.EXPECT().Summarize(mock.Anything, ports.SummarizationParams{
		Text:      "Hello, how are you?",
		MaxTokens: 100,
	}).Return(generated, nil)
	m.config.EXPECT().GetCacheConfig().Return(ports.CacheConfig{TTL: time.Minute})
	m.cache.EXPECT().Set(mock.Anything, req.CacheKey(), generated, time.Minute).Return(nil)
	m.requestLogger.EXPECT().Record(mock.Anything, mock.Anything).Return(nil)

	result, err := uc.Summarize(context.Background(), testCaller, req)

	require.NoError(t, err)
	assert.Equal(t, "A ginger cat named Marmalade had a routine.", result.Text)
}

func TestUseCase_UpstreamErrorLeavesNoCacheOrAudit(t *testing.T) {
	uc, m := newUseCaseWithMocks(t)
	req := NewCompletionRequest("Write a short story about a cat.")

	m.cache.EXPECT().Get(mock.Anything, req.CacheKey()).Return(nil, cacheMiss())
	m.upstream.EXPECT().Complete(mock.Anything, mock.Anything).
		Return(nil, errors.NewUpstreamError("The model `text-davinci-003` has been deprecated", nil))

	result, err := uc.Complete(context.Background(), testCaller, req)

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.IsUpstreamError(err))
	assert.Contains(t, err.Error(), "has been deprecated")
	m.cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	m.requestLogger.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
}

func TestUseCase_UntypedUpstreamErrorIsWrapped(t *testing.T) {
	uc, m := newUseCaseWithMocks(t)
	req := NewSummarizationRequest("text")

	m.cache.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, cacheMiss())
	m.upstream.EXPECT().Summarize(mock.Anything, mock.Anything).Return(nil, fmt.Errorf("connection reset"))

	_, err := uc.Summarize(context.Background(), testCaller, req)

	require.Error(t, err)
	assert.True(t, errors.IsUpstreamError(err))
	assert.Contains(t, err.Error(), "connection reset")
}

func TestUseCase_NilUpstreamResultIsUpstreamError(t *testing.T) {
	uc, m := newUseCaseWithMocks(t)
	req := NewSummarizationRequest("text")

	m.cache.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, cacheMiss())
	m.upstream.EXPECT().Summarize(mock.Anything, mock.Anything).Return(nil, nil)

	_, err := uc.Summarize(context.Background(), testCaller, req)

	assert.True(t, errors.IsUpstreamError(err))
}

func TestUseCase_AuditFailureDoesNotFailOperation(t *testing.T) {
	uc, m := newUseCaseWithMocks(t)
	req := NewSummarizationRequest("Hello, how are you?")

	generated := &ports.GenerationResult{Text: "summary"}
	m.cache.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, cacheMiss())
	m.upstream.EXPECT().Summarize(mock.Anything, mock.Anything).Return(generated, nil)
	m.config.EXPECT().GetCacheConfig().Return(ports.CacheConfig{TTL: time.Minute})
	m.cache.EXPECT().Set(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	m.requestLogger.EXPECT().Record(mock.Anything, mock.Anything).
		Return(errors.NewLoggingError("failed to persist audit record", fmt.Errorf("disk full")))
	m.metrics.EXPECT().RecordAuditFailure("summary").Once()

	result, err := uc.Summarize(context.Background(), testCaller, req)

	require.NoError(t, err)
	assert.Equal(t, "summary", result.Text)
}

func TestUseCase_CacheErrorsAreNotFatal(t *testing.T) {
	uc, m := newUseCaseWithMocks(t)
	req := NewCompletionRequest("prompt")

	generated := &ports.GenerationResult{Text: "ok"}
	m.cache.EXPECT().Get(mock.Anything, mock.Anything).
		Return(nil, errors.NewCacheError("redis unavailable", nil))
	m.upstream.EXPECT().Complete(mock.Anything, mock.Anything).Return(generated, nil)
	m.config.EXPECT().GetCacheConfig().Return(ports.CacheConfig{TTL: time.Minute})
	m.cache.EXPECT().Set(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.NewCacheError("redis unavailable", nil))
	m.requestLogger.EXPECT().Record(mock.Anything, mock.Anything).Return(nil)

	result, err := uc.Complete(context.Background(), testCaller, req)

	require.NoError(t, err)
	assert.Equal(t, "ok", result.Text)
}

func TestUseCase_MissingCallerNeverTouchesCacheOrUpstream(t *testing.T) {
	uc, m := newUseCaseWithMocks(t)

	_, err := uc.Complete(context.Background(), Caller{}, NewCompletionRequest("prompt"))
	assert.True(t, errors.IsAuthError(err))

	_, err = uc.Translate(context.Background(), Caller{ID: "  "}, TranslationRequest{Text: "a", TargetLanguage: "fr"})
	assert.True(t, errors.IsAuthError(err))

	_, err = uc.Summarize(context.Background(), Caller{}, NewSummarizationRequest("a"))
	assert.True(t, errors.IsAuthError(err))

	m.cache.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	m.upstream.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
}

func TestUseCase_ValidationErrorBeforeCache(t *testing.T) {
	uc, m := newUseCaseWithMocks(t)

	req := NewCompletionRequest("prompt")
	req.MaxTokens = 0
	_, err := uc.Complete(context.Background(), testCaller, req)
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Translate(context.Background(), testCaller, TranslationRequest{Text: "hi"})
	assert.True(t, errors.IsValidationError(err))

	m.cache.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}
