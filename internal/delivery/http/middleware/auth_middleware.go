package middleware

import (
	"net/http"
	"strings"

	"cvconnect-backend/internal/delivery/http/response"
	"cvconnect-backend/internal/domain"
	"cvconnect-backend/pkg/token"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and loads the account it names.
// Claims are never trusted beyond the user id; the account is re-read so a
// deleted user cannot keep using an old token.
func AuthMiddleware(tokens *token.Provider, userRepo domain.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header required", nil)
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		user, err := userRepo.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "User not found", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), user.ID)
		c.Set(string(domain.KeyUsername), user.Username)

		c.Next()
	}
}
