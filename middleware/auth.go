package middlewares

import (
	"net/http"
	"strings"
	"travelbharat/services"

	"github.com/gin-gonic/gin"
)

const claimsKey = "currentClaims"

// AuthMiddleware verifies the bearer token and, when roles are given, requires
// the caller to hold one of them. The verified claims are stored once and read
// back by handlers through CurrentUser.
func AuthMiddleware(requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"code": 0, "mess": "Authorization header is missing"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := services.ParseToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"code": 0, "mess": "Invalid token"})
			c.Abort()
			return
		}

		if len(requiredRoles) > 0 {
			hasRole := false
			for _, role := range requiredRoles {
				if claims.Role == role {
					hasRole = true
					break
				}
			}

			if !hasRole {
				c.JSON(http.StatusForbidden, gin.H{"code": 0, "mess": "You do not have permission to access this resource"})
				c.Abort()
				return
			}
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// CurrentUser returns the claims stored by AuthMiddleware for this request.
func CurrentUser(c *gin.Context) (*services.Claims, bool) {
	value, exists := c.Get(claimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*services.Claims)
	return claims, ok
}
