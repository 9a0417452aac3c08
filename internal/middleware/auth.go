package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/skelectricals/backend/internal/service"
	"github.com/skelectricals/backend/internal/types"
)

// AuthMiddleware creates a middleware that validates JWT tokens and stores
// the claims in the gin context for handlers to use.
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Authorization header is required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(c, "Invalid authorization header format. Expected 'Bearer <token>'")
			return
		}

		claims, err := authService.ValidateAccessToken(parts[1])
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("userEmail", claims.Email)
		c.Set("userRole", claims.Role)
		c.Set("companyName", claims.CompanyName)

		c.Next()
	}
}

// RequireRoles creates a middleware that gates a route group to the given
// roles. Admins pass every gate. Must run after AuthMiddleware.
func RequireRoles(roles ...types.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := types.UserRole(c.GetString("userRole"))
		if role == types.RoleAdmin {
			c.Next()
			return
		}
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{
			"status":  http.StatusText(http.StatusForbidden),
			"message": "Insufficient permissions for this resource",
		})
		c.Abort()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"status":  http.StatusText(http.StatusUnauthorized),
		"message": message,
	})
	c.Abort()
}
