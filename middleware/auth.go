package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fixfleet-server/services"
)

// AuthMiddleware validates bearer tokens and sets the claims on the
// request context. Claims are self-contained, so there is no store
// round-trip here.
func AuthMiddleware(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Authorization header required",
				"message": "Please provide a valid token",
			})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Invalid token format",
				"message": "Token must be in format: Bearer <token>",
			})
			c.Abort()
			return
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			message := "Token is invalid"
			if errors.Is(err, services.ErrTokenExpired) {
				message = "Token is expired"
			}
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Invalid token",
				"message": message,
			})
			c.Abort()
			return
		}

		c.Set("claims", claims)
		c.Set("user_id", claims.UserID)
		c.Next()
	}
}
