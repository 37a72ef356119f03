// Package secret provides shared-secret authorization middleware.
package secret

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"relay_backend/internal/api"
)

// Required returns a Gin middleware that only admits requests whose
// Authorization header equals the configured key. The comparison is
// constant-time. An empty key is a server misconfiguration, not an open door.
func Required(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key == "" {
			api.Respond(c, http.StatusInternalServerError, "Server Misconfigured", nil)
			c.Abort()
			return
		}

		auth := c.GetHeader("Authorization")
		if subtle.ConstantTimeCompare([]byte(auth), []byte(key)) != 1 {
			api.AbortUnauthorized(c)
			return
		}

		c.Next()
	}
}
