package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Enforcer is a local interface; anything with casbin's Enforce signature
// fits, which keeps handler tests free of casbin setup.
type Enforcer interface {
	Enforce(rvals ...interface{}) (bool, error)
}

// RBACAuthorize checks the authenticated role against resource/action
// policy. AuthMiddleware must run first.
func RBACAuthorize(enforcer Enforcer, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing auth context"})
			c.Abort()
			return
		}

		allowed, err := enforcer.Enforce(role, resource, action)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		if !allowed {
			c.JSON(http.StatusForbidden, gin.H{
				"error":    "forbidden",
				"message":  "You do not have permission to access this resource",
				"required": resource + ":" + action,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
