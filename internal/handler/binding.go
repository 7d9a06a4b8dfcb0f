package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/DiegoMarin025/EduTrack-SW/pkg/errors"
	"github.com/DiegoMarin025/EduTrack-SW/pkg/response"
)

// bindJSON decodes the body and writes a 400 on malformed input.
func bindJSON(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return false
	}
	return true
}
