package handlers

import (
	"net/http"

	"qualityze-admin-be/internal/models"
	"qualityze-admin-be/internal/services"

	"github.com/gin-gonic/gin"
)

// respondResult maps a structured action result onto an HTTP status. The
// action layer never throws; everything arrives as a value.
func respondResult(c *gin.Context, result models.MutationResult, successStatus int) {
	switch {
	case result.Success:
		c.JSON(successStatus, result)
	case result.Error == services.ErrUnauthorized:
		c.JSON(http.StatusUnauthorized, result)
	default:
		c.JSON(http.StatusBadRequest, result)
	}
}
