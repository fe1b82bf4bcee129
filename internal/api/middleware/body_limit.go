package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yasiralharfash/chronos/pkg/response"
)

// BodyLimit caps the request body size. Requests that declare a larger
// Content-Length are rejected up front; streamed bodies are cut off by
// MaxBytesReader when the handler reads past the cap.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			response.Error(c, http.StatusRequestEntityTooLarge, 10005, "request body too large")
			c.Abort()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
