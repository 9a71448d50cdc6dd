package middleware

import (
	"net/http"
	"strings"

	userRepo "shootflow/database/repository/user"
	"shootflow/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware.
const (
	CtxAccountID = "accountID"
	CtxRole      = "role"
)

// JWTAuthMiddleware validates the bearer token and resolves the caller's
// account through the injected repository. The token's hash must still match
// the one stored on the account, so revocation takes effect immediately.
func JWTAuthMiddleware(accounts userRepo.AccountRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		acct, err := accounts.GetByTokenHash(computedHash)
		if err != nil || acct == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch or account not found"})
			return
		}

		c.Set(CtxAccountID, acct.ID)
		c.Set(CtxRole, acct.Role)
		c.Next()
	}
}
