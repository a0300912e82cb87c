package rmiddleware

import (
	"net/http"
	"strings"

	"github.com/DhavalSuthar-24/livescore/internal/middleware"
	"github.com/gin-gonic/gin"
)

const (
	RoleAdmin  = "ADMIN"
	RoleScorer = "SCORER"
)

// RoleMiddleware allows the request through when the authenticated user holds any of requiredRoles.
// It must run after middleware.AuthMiddleware.
func RoleMiddleware(requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := middleware.GetUserIDFromContext(c); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: " + err.Error()})
			return
		}

		userRoles := middleware.GetRolesFromContext(c)
		if !hasAnyRole(userRoles, requiredRoles) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":      "Forbidden",
				"message":    "You don't have permission to access this resource",
				"required":   requiredRoles,
				"user_roles": userRoles,
			})
			return
		}
		c.Next()
	}
}

func hasAnyRole(userRoles, requiredRoles []string) bool {
	for _, userRole := range userRoles {
		for _, requiredRole := range requiredRoles {
			if strings.EqualFold(userRole, requiredRole) {
				return true
			}
		}
	}
	return false
}

// AdminMiddleware is a convenience middleware for admin-only access
func AdminMiddleware() gin.HandlerFunc {
	return RoleMiddleware(RoleAdmin)
}

// ScorerOrAdminMiddleware lets match officials record deliveries.
func ScorerOrAdminMiddleware() gin.HandlerFunc {
	return RoleMiddleware(RoleScorer, RoleAdmin)
}
