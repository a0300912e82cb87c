package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/DhavalSuthar-24/livescore/pkg/token"
	"github.com/gin-gonic/gin"
)

const (
	AuthUserIDKey    = "auth_user_id"
	AuthUserRolesKey = "auth_user_roles"
)

// AuthMiddleware requires a valid bearer token and stores the user id and roles on the context.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header format. Expected: Bearer <token>"})
			return
		}

		claims, err := token.ValidateJWT(bearerToken[1], jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token: " + err.Error()})
			return
		}

		c.Set(AuthUserIDKey, claims.UserID)
		c.Set(AuthUserRolesKey, claims.Roles)
		c.Next()
	}
}

// GetUserIDFromContext extracts the user ID from the context
func GetUserIDFromContext(c *gin.Context) (string, error) {
	userID := c.GetString(AuthUserIDKey)
	if userID == "" {
		return "", errors.New("user ID not found in context")
	}
	return userID, nil
}

// GetRolesFromContext extracts the token roles from the context.
func GetRolesFromContext(c *gin.Context) []string {
	return c.GetStringSlice(AuthUserRolesKey)
}
