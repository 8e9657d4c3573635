package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	intconfig "usermgmt/internal/config"
)

// GET /api/health
func Health(c *gin.Context) {
	dbStatus := "ok"
	if err := intconfig.EnsureDB(); err != nil {
		dbStatus = "down"
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"db":     dbStatus,
	})
}
