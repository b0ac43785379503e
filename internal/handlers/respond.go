package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"event_admin/internal/services"

	"github.com/gin-gonic/gin"
)

func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

func respondErrorCode(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// respondError maps the service error taxonomy onto HTTP statuses and
// envelope codes.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		respondErrorCode(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, services.ErrValidation):
		respondErrorCode(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, services.ErrRemote):
		respondErrorCode(c, http.StatusBadGateway, "REMOTE_ERROR", err.Error())
	default:
		respondErrorCode(c, http.StatusInternalServerError, "DATABASE_ERROR", err.Error())
	}
}

func respondBindError(c *gin.Context, err error) {
	respondErrorCode(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		respondErrorCode(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid "+name)
		return 0, false
	}
	return uint(id), true
}
