package middleware

import (
	"net/http"
	"strings"

	"homestay-backend/models"
	"homestay-backend/utils"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserIDKey = "userID"
	ContextRoleKey   = "userRole"
)

// RequireAuth verifies the bearer token and attaches the caller's identity to
// the request context.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			utils.JSONError(c, http.StatusUnauthorized, "No token, authorization denied")
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			utils.JSONError(c, http.StatusUnauthorized, "Token is not valid")
			c.Abort()
			return
		}

		claims, err := utils.ParseAccessToken(strings.TrimSpace(parts[1]))
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "Token is not valid")
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextRoleKey, claims.Role)
		c.Next()
	}
}

// RequireHost gates host-only routes. Must run after RequireAuth.
func RequireHost() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextRoleKey) != models.RoleHost {
			utils.JSONError(c, http.StatusForbidden, "Access denied. Host privileges required.")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CallerID returns the authenticated user's id set by RequireAuth.
func CallerID(c *gin.Context) uint {
	v, ok := c.Get(ContextUserIDKey)
	if !ok {
		return 0
	}
	id, _ := v.(uint)
	return id
}
