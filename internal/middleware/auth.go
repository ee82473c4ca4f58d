package middleware

import (
	"net/http"
	"strings"

	"github.com/andratama/topupstore-golang/internal/auth"
	"github.com/gin-gonic/gin"
)

// TokenCookie is the session cookie name shared with the auth handlers.
const TokenCookie = "token"

// UserIDKey is where the authenticated admin's ID lands on the request
// context.
const UserIDKey = "userID"

// AuthRequired guards admin routes. The cookie is checked first, then the
// Authorization header as a bearer-token fallback for API clients.
func AuthRequired(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(TokenCookie)
		if err != nil || tokenString == "" {
			authHeader := c.GetHeader("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				tokenString = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Unauthorized - No token provided",
			})
			return
		}

		userID, err := tokens.Validate(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Unauthorized - Invalid token",
			})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}
