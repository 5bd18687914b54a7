package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"kahramana-backend/internal/shared/response"
)

const AdminKeyHeader = "X-Admin-Key"

// AdminMiddleware guards catalog maintenance routes with a shared key.
// An empty key leaves the routes open (development only).
func AdminMiddleware(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key == "" {
			c.Next()
			return
		}

		got := c.GetHeader(AdminKeyHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
			response.ErrorResponse(c, http.StatusForbidden, "AUTH_003", "Access denied: admin key required")
			c.Abort()
			return
		}

		c.Next()
	}
}
