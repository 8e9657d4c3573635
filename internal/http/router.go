package api

import (
	"log"
	stdhttp "net/http"

	intconfig "usermgmt/internal/config"
	h "usermgmt/internal/http/handlers"
	"usermgmt/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.SetJWTSecret(env.JWTSecret)
	secret := []byte(env.JWTSecret)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"message": "route not found",
			"path":    c.Request.URL.Path,
			"method":  c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)

		auth := api.Group("/auth")
		auth.POST("/signon", h.SignOn)

		users := api.Group("/users")
		users.Use(middleware.RequireAuth(secret))
		users.GET("", h.ListUsers)
		users.GET("/page/next", h.NextPage)
		users.GET("/page/previous", h.PreviousPage)
		users.GET("/export", middleware.RequireUserType("A"), h.ExportRoster)
		users.GET("/:userId", h.GetUserByID)
		users.POST("", middleware.RequireUserType("A"), h.CreateUser)
		users.PUT("/:userId", middleware.RequireUserType("A"), h.UpdateUser)
		users.DELETE("/:userId", middleware.RequireUserType("A"), h.DeleteUser)
	}

	return r
}
