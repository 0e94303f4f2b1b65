package middleware

import (
	"net/http"
	"strings"

	"theyool/config"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware validates the static admin bearer token.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		adminToken := config.AppConfig.AdminAPIToken
		if adminToken == "" {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "ADMIN_API_TOKEN not configured"})
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		if tokenString != adminToken {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		c.Set("adminToken", tokenString)
		c.Set("isAdmin", true)
		c.Next()
	}
}
