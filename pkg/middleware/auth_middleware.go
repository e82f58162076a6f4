package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"billbook/internal/services"
	"billbook/pkg/utils"
)

// AuthMiddleware resolves the bearer token to an authorization decision
// before dispatch. Unauthenticated and pending-approval callers get
// distinguishable responses so clients can route to login vs. a pending
// screen.
func AuthMiddleware(authz services.AuthzServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimPrefix(authHeader, "Bearer ")
		}

		decision := authz.Authorize(c.Request.Context(), token)

		switch decision.Level {
		case services.LevelUnauthenticated:
			utils.RespondError(c, http.StatusUnauthorized, "Please login to access this page")
			c.Abort()
			return
		case services.LevelUnapproved:
			utils.RespondError(c, http.StatusForbidden, "Account pending admin approval")
			c.Abort()
			return
		}

		c.Set("user_id", decision.UserID)
		c.Set("is_admin", decision.IsAdmin)
		c.Set("session_id", decision.SessionID)
		c.Next()
	}
}

// AdminOnly gates admin routes. It runs after AuthMiddleware and produces
// an error distinct from "not logged in".
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("is_admin") {
			utils.RespondError(c, http.StatusForbidden, "Admin access required")
			c.Abort()
			return
		}

		c.Next()
	}
}
