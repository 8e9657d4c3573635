package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"usermgmt/internal/domain/models"
	"usermgmt/internal/http/middleware"
	"usermgmt/internal/repositories"
	"usermgmt/internal/services"
)

func userService(c *gin.Context) services.UserService {
	return services.UserService{
		Repo:      repositories.UserRepository{},
		RequestID: middleware.GetRequestID(c),
	}
}

func intQuery(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

// GET /api/users?search=&page=&size=
func ListUsers(c *gin.Context) {
	page, err := userService(c).List(
		c.Query("search"),
		intQuery(c, "page", 0),
		intQuery(c, "size", models.DefaultPageSize),
	)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GET /api/users/page/next?lastUserId=&size=
func NextPage(c *gin.Context) {
	page, err := userService(c).NextPage(
		c.Query("lastUserId"),
		intQuery(c, "size", models.DefaultPageSize),
	)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GET /api/users/page/previous?firstUserId=&size=
func PreviousPage(c *gin.Context) {
	page, err := userService(c).PreviousPage(
		c.Query("firstUserId"),
		intQuery(c, "size", models.DefaultPageSize),
	)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GET /api/users/:userId
func GetUserByID(c *gin.Context) {
	user, err := userService(c).Get(c.Param("userId"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// POST /api/users
func CreateUser(c *gin.Context) {
	var req services.CreateUserInput
	if !BindJSONOrError(c, &req) {
		return
	}

	user, err := userService(c).Create(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    user,
	})
}

// PUT /api/users/:userId
func UpdateUser(c *gin.Context) {
	var req services.UpdateUserInput
	if !BindJSONOrError(c, &req) {
		return
	}

	user, err := userService(c).Update(c.Param("userId"), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User updated successfully",
		"user":    user,
	})
}

// DELETE /api/users/:userId
func DeleteUser(c *gin.Context) {
	if err := userService(c).Delete(c.Param("userId")); err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User deleted successfully",
	})
}

// GET /api/users/export
func ExportRoster(c *gin.Context) {
	svc := services.RosterService{
		Repo:      repositories.UserRepository{},
		RequestID: middleware.GetRequestID(c),
	}

	pdfBytes, filename, err := svc.GenerateRoster()
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
