package middleware

import (
	"net/http"
	"strings"

	"room-rental-server/utils"

	"github.com/gin-gonic/gin"
)

// ContextUserID is the gin context key holding the authenticated user id.
const ContextUserID = "user_id"

// RequireAuth validates the bearer token and places the user id in the
// request context. Identity is always explicit context, never a global.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "missing bearer token",
				"kind":  "unauthorized",
			})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := utils.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid or expired token",
				"kind":  "unauthorized",
			})
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// UserID reads the authenticated user id from the context; 0 means the
// request was not authenticated.
func UserID(c *gin.Context) uint {
	id, ok := c.Get(ContextUserID)
	if !ok {
		return 0
	}
	userID, ok := id.(uint)
	if !ok {
		return 0
	}
	return userID
}
