package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	errorspkg "textgateway.app/pkg/errors"
)

const internalErrorMessage = "Internal server error"

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleError maps application errors to status codes. Unclassified errors
// never leak their text.
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	statusCode, message := classify(err)

	if statusCode == http.StatusUnauthorized {
		c.Header("WWW-Authenticate", "Bearer")
	}
	if statusCode >= http.StatusInternalServerError {
		slog.Error("Request failed",
			"path", c.FullPath(),
			"request_id", c.GetString(requestIDKey),
			"error", err)
	}

	c.JSON(statusCode, ErrorResponse{Error: message})
}

func classify(err error) (int, string) {
	var appErr *errorspkg.AppError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError, internalErrorMessage
	}

	switch appErr.Type {
	case errorspkg.AuthError:
		return http.StatusUnauthorized, appErr.Message
	case errorspkg.ValidationError:
		return http.StatusBadRequest, appErr.Message
	case errorspkg.NotFoundError:
		return http.StatusNotFound, appErr.Message
	case errorspkg.UpstreamError:
		return http.StatusInternalServerError, appErr.Message
	default:
		return http.StatusInternalServerError, internalErrorMessage
	}
}
