package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// getClientIP prefers the forwarded header when the app sits behind a proxy.
func getClientIP(c *gin.Context) string {
	if forwarded := c.GetHeader("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	return c.ClientIP()
}
