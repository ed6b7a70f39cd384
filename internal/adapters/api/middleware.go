package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"textgateway.app/internal/core/textgen"
)

const (
	RequestIDHeader = "X-Request-ID"

	requestIDKey = "request_id"
	callerKey    = "caller_id"
)

// requestID reuses a client supplied id or mints a UUID, and echoes it on the response
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(RequestIDHeader))
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// cors allows credentialed requests from the configured origins only
func cors(allowedOrigins []string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[strings.TrimRight(strings.TrimSpace(origin), "/")] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if _, ok := allowed[origin]; origin == "" || !ok {
			if c.Request.Method == http.MethodOptions && origin != "" {
				c.AbortWithStatus(http.StatusForbidden)
				return
			}
			c.Next()
			return
		}

		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Vary", "Origin")

		if c.Request.Method == http.MethodOptions {
			c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			requested := c.GetHeader("Access-Control-Request-Headers")
			if requested == "" {
				requested = "Authorization, Content-Type, X-Request-ID"
			}
			c.Header("Access-Control-Allow-Headers", requested)
			c.Header("Access-Control-Max-Age", "600")
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Header("Access-Control-Expose-Headers", RequestIDHeader+", X-Cache")
		c.Next()
	}
}

// authenticate rejects the request before any body is read
func (s *HTTPServerAdapter) authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := s.authenticator.Authenticate(c.GetHeader("Authorization"))
		if err != nil {
			s.handleError(c, err)
			c.Abort()
			return
		}
		c.Set(callerKey, identity.Subject)
		c.Next()
	}
}

func callerFrom(c *gin.Context) textgen.Caller {
	return textgen.Caller{
		ID:        c.GetString(callerKey),
		RequestID: c.GetString(requestIDKey),
	}
}
