package handlers

import (
	"net/http"

	"usermgmt/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// RespondError sends the standard error payload with the structured kind
// code and request_id included.
func RespondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"message":    message,
		"code":       code,
		"request_id": middleware.GetRequestID(c),
	})
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION", "request body is empty")
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION", "invalid request payload")
		return false
	}
	return true
}
