package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	userIDKey   = "userId"
	userTypeKey = "userType"
)

// RequireAuth validates the bearer token and stores the caller's identity
// on the context.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "missing bearer token",
				"code":    "AUTH",
			})
			return
		}

		raw := strings.TrimPrefix(header, "Bearer ")
		token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "invalid or expired token",
				"code":    "AUTH",
			})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "invalid token claims",
				"code":    "AUTH",
			})
			return
		}

		sub, _ := claims["sub"].(string)
		userType, _ := claims["type"].(string)
		c.Set(userIDKey, sub)
		c.Set(userTypeKey, userType)
		c.Next()
	}
}

// AuthUserID returns the authenticated user's ID from the context.
func AuthUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

// AuthUserType returns the authenticated user's type from the context.
func AuthUserType(c *gin.Context) string {
	return c.GetString(userTypeKey)
}
