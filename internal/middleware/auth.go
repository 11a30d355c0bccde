package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const TokenKey = "bearer_token"

// MockAuth extracts a bearer token when one is present and stashes it on the
// context. The token is never validated and requests without one are never
// rejected; authorization is out of scope for this mock.
func MockAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && parts[0] == "Bearer" {
				c.Set(TokenKey, strings.TrimSpace(parts[1]))
			}
		}
		c.Next()
	}
}
