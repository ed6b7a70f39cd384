package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"textgateway.app/internal/core/textgen"
)

const cacheHeader = "X-Cache"

// CompletionHTTPRequest is the body of POST /api/v1/completions. Optional
// fields are pointers so an explicit zero differs from an omitted value.
type CompletionHTTPRequest struct {
	Prompt      string   `json:"prompt" binding:"required,notblank"`
	Model       *string  `json:"model"`
	MaxTokens   *int     `json:"max_tokens" binding:"omitempty,min=1,max=4096"`
	Temperature *float64 `json:"temperature" binding:"omitempty,min=0,max=2"`
}

// TranslationHTTPRequest is the body of POST /api/v1/translations
type TranslationHTTPRequest struct {
	Text           string `json:"text" binding:"required,notblank"`
	TargetLanguage string `json:"target_language" binding:"required,language"`
}

// SummarizationHTTPRequest is the body of POST /api/v1/summaries
type SummarizationHTTPRequest struct {
	Text      string `json:"text" binding:"required,notblank"`
	MaxTokens *int   `json:"max_tokens" binding:"omitempty,min=1,max=4096"`
}

// UsageResponse mirrors the provider token accounting
type UsageResponse struct {
	PromptTokens     int64 `json:"prompt_tokens"`
	CompletionTokens int64 `json:"completion_tokens"`
	TotalTokens      int64 `json:"total_tokens"`
}

// CompletionResponse is returned by the completions endpoint
type CompletionResponse struct {
	Text  string         `json:"text"`
	Usage *UsageResponse `json:"usage,omitempty"`
}

// TextResponse is returned by the translation and summary endpoints
type TextResponse struct {
	Text string `json:"text"`
}

func (r CompletionHTTPRequest) toDomain() textgen.CompletionRequest {
	request := textgen.NewCompletionRequest(r.Prompt)
	if r.Model != nil {
		request.Model = *r.Model
	}
	if r.MaxTokens != nil {
		request.MaxTokens = *r.MaxTokens
	}
	if r.Temperature != nil {
		request.Temperature = *r.Temperature
	}
	return request
}

func (r SummarizationHTTPRequest) toDomain() textgen.SummarizationRequest {
	request := textgen.NewSummarizationRequest(r.Text)
	if r.MaxTokens != nil {
		request.MaxTokens = *r.MaxTokens
	}
	return request
}

// createCompletion handles POST /api/v1/completions requests
func (s *HTTPServerAdapter) createCompletion(c *gin.Context) {
	var httpReq CompletionHTTPRequest
	if err := c.ShouldBindJSON(&httpReq); err != nil {
		slog.Debug("Completion request binding error", "error", err)
		s.handleError(c, bindingError(err))
		return
	}

	result, err := s.textGenUseCase.Complete(c.Request.Context(), callerFrom(c), httpReq.toDomain())
	if err != nil {
		s.handleError(c, err)
		return
	}

	response := CompletionResponse{Text: result.Text}
	if result.Usage != nil {
		response.Usage = &UsageResponse{
			PromptTokens:     result.Usage.PromptTokens,
			CompletionTokens: result.Usage.CompletionTokens,
			TotalTokens:      result.Usage.TotalTokens,
		}
	}
	writeResult(c, result, response)
}

// createTranslation handles POST /api/v1/translations requests
func (s *HTTPServerAdapter) createTranslation(c *gin.Context) {
	var httpReq TranslationHTTPRequest
	if err := c.ShouldBindJSON(&httpReq); err != nil {
		slog.Debug("Translation request binding error", "error", err)
		s.handleError(c, bindingError(err))
		return
	}

	request := textgen.TranslationRequest{
		Text:           httpReq.Text,
		TargetLanguage: httpReq.TargetLanguage,
	}
	result, err := s.textGenUseCase.Translate(c.Request.Context(), callerFrom(c), request)
	if err != nil {
		s.handleError(c, err)
		return
	}

	writeResult(c, result, TextResponse{Text: result.Text})
}

// createSummary handles POST /api/v1/summaries requests
func (s *HTTPServerAdapter) createSummary(c *gin.Context) {
	var httpReq SummarizationHTTPRequest
	if err := c.ShouldBindJSON(&httpReq); err != nil {
		slog.Debug("Summary request binding error", "error", err)
		s.handleError(c, bindingError(err))
		return
	}

	result, err := s.textGenUseCase.Summarize(c.Request.Context(), callerFrom(c), httpReq.toDomain())
	if err != nil {
		s.handleError(c, err)
		return
	}

	writeResult(c, result, TextResponse{Text: result.Text})
}

func writeResult(c *gin.Context, result *textgen.Result, body interface{}) {
	if result.Cached {
		c.Header(cacheHeader, "HIT")
	} else {
		c.Header(cacheHeader, "MISS")
	}
	c.JSON(http.StatusOK, body)
}
