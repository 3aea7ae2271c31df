package middleware

import (
	"net/http"
	"strings"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/auth"
	"portfolio-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware admits requests bearing a valid token whose role is admin.
func AdminAuthMiddleware(verifier *auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if tokenString == "" {
			reject(c, http.StatusUnauthorized, "Authorization header required", "missing_token")
			return
		}

		claims, err := verifier.Parse(tokenString)
		if err != nil {
			reject(c, http.StatusUnauthorized, "Invalid token", "invalid_token")
			return
		}

		role := auth.Role(claims)
		if role != domain.RoleAdmin {
			reject(c, http.StatusForbidden, "Admin access required", "insufficient_role")
			return
		}

		sub, _ := claims["sub"].(string)
		email, _ := claims["email"].(string)
		c.Set(string(domain.KeySubject), sub)
		c.Set(string(domain.KeyUserEmail), email)
		c.Set(string(domain.KeyUserRole), role)

		c.Next()
	}
}

func reject(c *gin.Context, code int, message, reason string) {
	security.DefaultLogger().LogUnauthorizedAccess(c.Request.Context(), c.ClientIP(), c.GetString(response.RequestIDKey), reason)
	response.Error(c, code, message, nil)
	c.Abort()
}
