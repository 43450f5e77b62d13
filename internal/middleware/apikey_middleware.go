package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIKeyHeader carries the shared secret for the integration endpoints.
const APIKeyHeader = "X-API-Key"

// APIKeyMiddleware guards the external integration surface with a shared
// secret. Any missing or mismatched key gets a uniform 401; the comparison
// is constant-time.
func APIKeyMiddleware(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "integration API key is not configured"})
			return
		}

		provided := c.GetHeader(APIKeyHeader)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid API key"})
			return
		}

		c.Next()
	}
}
