package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"

	"pokemonreview/src/app/http/response"
)

const bearerPrefix = "Bearer "

// TokenAuth requires "Authorization: Bearer <token>" matching token.
// An empty token disables the check entirely.
func TokenAuth(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			response.Unauthorized(c, "missing bearer token", GetRequestID(c))
			return
		}

		got := strings.TrimPrefix(header, bearerPrefix)
		if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			response.Unauthorized(c, "invalid bearer token", GetRequestID(c))
			return
		}

		c.Next()
	}
}
