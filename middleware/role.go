package middleware

import (
	"net/http"

	"shootflow/models"

	"github.com/gin-gonic/gin"
)

// RequireAdmin gates mutating catalog, shoot and invoice endpoints to admin
// accounts. Must run after JWTAuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(CtxRole)
		if role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}
