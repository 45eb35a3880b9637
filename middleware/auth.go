package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"nutriplan/auth"
)

// AuthRequired guards protected routes. A missing or malformed
// Authorization header is 401; a token that fails verification or has
// expired is 403. On success the subject user id is attached to the
// request context for downstream handlers.
func AuthRequired(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Malformed authorization header"})
			return
		}

		userID, err := auth.ParseToken(parts[1], secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid token"})
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
