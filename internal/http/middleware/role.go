package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// RequireUserType is role-based access control over the user type set by
// RequireAuth. Example:
//
//	users.POST("", RequireUserType("A"), h.CreateUser)
func RequireUserType(allowedTypes ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedTypes))
	for _, t := range allowedTypes {
		allowed[strings.ToUpper(strings.TrimSpace(t))] = struct{}{}
	}

	return func(c *gin.Context) {
		userType := AuthUserType(c)
		if userType == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "unauthorized: user type missing from context",
				"code":    "AUTH",
			})
			return
		}

		if _, ok := allowed[strings.ToUpper(strings.TrimSpace(userType))]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"message": "forbidden: user type not allowed",
				"code":    "AUTH",
			})
			return
		}

		c.Next()
	}
}
