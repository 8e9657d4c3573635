package handlers

import (
	"net/http"

	"usermgmt/internal/domain"

	"github.com/gin-gonic/gin"
)

// RespondDomainError maps domain errors to HTTP responses. The "code"
// field is the contract clients branch on; the message is display text.
func RespondDomainError(c *gin.Context, err error) {
	code := domain.Code(err)
	switch code {
	case domain.CodeValidation:
		RespondError(c, http.StatusBadRequest, code, err.Error())
	case domain.CodeNotFound:
		RespondError(c, http.StatusNotFound, code, err.Error())
	case domain.CodeConflict:
		RespondError(c, http.StatusConflict, code, err.Error())
	case domain.CodeAuth:
		RespondError(c, http.StatusUnauthorized, code, err.Error())
	default:
		RespondError(c, http.StatusInternalServerError, code, "something went wrong")
	}
}
