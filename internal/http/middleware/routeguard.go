package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleet-service/internal/permissions"
)

// RequireRoute guards an endpoint group with the same role-to-route table
// the navigation endpoint serves. Keeping one table prevents the guard and
// the rendered links from drifting apart.
func RequireRoute(route string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := MustPrincipal(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing principal"})
			return
		}

		if !permissions.CanAccessRoute(principal.Role, route) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "access denied"})
			return
		}

		c.Next()
	}
}
