package middleware

import (
	"net/http"

	"moodly/pin-api/pkg/security"

	"github.com/gin-gonic/gin"
)

// NewAuthMiddleware guards login-gated routes. A missing, malformed or
// expired token cookie is always a 401, never an anonymous pass-through.
// On success the bound user ID is stored as userID on the context
func NewAuthMiddleware(tokens *security.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie("token")
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Not authenticated!",
			})
			return
		}

		userID, err := tokens.Verify(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Not authenticated!",
			})
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
