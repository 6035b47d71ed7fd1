package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"gtd-task-management/pkg/response"
)

const apiKeyHeader = "X-API-Key"

// Auth checks the API key header against the configured key. When no key is
// configured the middleware is a pass-through.
func (mw Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if mw.apiKey == "" {
			c.Next()
			return
		}

		got := c.GetHeader(apiKeyHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(mw.apiKey)) != 1 {
			mw.l.Warnf(c.Request.Context(), "auth: rejected request to %s from %s", c.FullPath(), c.ClientIP())
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
