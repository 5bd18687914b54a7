package middleware

import (
	"github.com/gin-gonic/gin"

	"kahramana-backend/internal/shared/utils"
)

const ContextKeyClientIP = "client_ip"

// ClientIP stores the resolved client address for handlers and the logger
func ClientIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextKeyClientIP, utils.ExtractClientIP(c))
		c.Next()
	}
}

// GetClientIP returns the address set by ClientIP, falling back to gin's
func GetClientIP(c *gin.Context) string {
	if ip := c.GetString(ContextKeyClientIP); ip != "" {
		return ip
	}
	return c.ClientIP()
}
