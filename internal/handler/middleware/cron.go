package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CronAuth guards the scheduler endpoints with a shared secret so only the
// external cron runner can trigger sweeps.
func CronAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid cron secret",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
