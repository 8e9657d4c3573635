package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"usermgmt/internal/http/middleware"
	"usermgmt/internal/repositories"
	"usermgmt/internal/services"
)

var jwtSecret = []byte("super-secret-key-change-me")

// SetJWTSecret overrides the signing key; called once from the router.
func SetJWTSecret(secret string) {
	if secret != "" {
		jwtSecret = []byte(secret)
	}
}

type signOnRequest struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
}

// POST /api/auth/signon
func SignOn(c *gin.Context) {
	var req signOnRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.UserService{
		Repo:      repositories.UserRepository{},
		RequestID: middleware.GetRequestID(c),
	}

	user, err := svc.SignOn(req.UserID, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  user.UserID,
		"type": user.UserType,
		"jti":  uuid.NewString(),
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "INTERNAL", "failed to create token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Sign on successful",
		"token":   tokenString,
		"user": gin.H{
			"userId":    user.UserID,
			"userType":  user.UserType,
			"firstName": user.FirstName,
			"lastName":  user.LastName,
		},
	})
}
