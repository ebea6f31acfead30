package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"codergrounds/internal/shared/constants"
)

// RequestID attaches an identifier to every request, honoring one supplied
// by the client, and echoes it back in the response headers.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(constants.ContextKeyRequestID, requestID)
		c.Header("X-Request-ID", requestID)

		c.Next()
	}
}
