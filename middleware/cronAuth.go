package middleware

import (
	"net/http"

	"theyool/config"

	"github.com/gin-gonic/gin"
)

// CronAuthMiddleware authorizes the time-triggered reminder endpoint via
// a shared secret instead of a user session. A missing server-side
// secret is a deployment fault and fails the invocation outright, before
// any booking is processed.
func CronAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		cronSecret := config.AppConfig.CronSecret
		if cronSecret == "" {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "CRON_SECRET not configured"})
			return
		}

		if c.GetHeader("Authorization") != "Bearer "+cronSecret {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Next()
	}
}
