package handlers

import (
	"net/http"
	"strconv"

	"qualityze-admin-be/internal/middleware"
	"qualityze-admin-be/internal/models"
	"qualityze-admin-be/internal/services"

	"github.com/gin-gonic/gin"
)

// EmailSettingsHandler exposes email configuration and test sends
type EmailSettingsHandler struct {
	service *services.EmailService
}

func NewEmailSettingsHandler(service *services.EmailService) *EmailSettingsHandler {
	return &EmailSettingsHandler{service: service}
}

// GetConfig godoc
// @Summary Get the email configuration (secrets masked)
// @Tags email
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} models.EmailConfig
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/email/config [get]
func (h *EmailSettingsHandler) GetConfig(c *gin.Context) {
	config := h.service.GetConfig(c.Request.Context(), middleware.GetSession(c))
	if config == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Email is not configured"})
		return
	}
	c.JSON(http.StatusOK, config)
}

// SaveConfig godoc
// @Summary Save the email configuration
// @Description Sensitive fields still carrying the mask placeholder are left untouched.
// @Tags email
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param payload body models.EmailConfig true "Configuration"
// @Success 200 {object} models.MutationResult
// @Failure 401 {object} models.MutationResult
// @Router /admin/email/config [put]
func (h *EmailSettingsHandler) SaveConfig(c *gin.Context) {
	var config models.EmailConfig
	if err := c.ShouldBindJSON(&config); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.service.SaveConfig(c.Request.Context(), middleware.GetSession(c), config)
	respondResult(c, result, http.StatusOK)
}

// TestSendRequest is the test-send payload
type TestSendRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// TestSend godoc
// @Summary Send a test email with the stored configuration
// @Tags email
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param payload body TestSendRequest true "Recipient"
// @Success 200 {object} models.MutationResult
// @Failure 401 {object} models.MutationResult
// @Router /admin/email/test [post]
func (h *EmailSettingsHandler) TestSend(c *gin.Context) {
	var req TestSendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.service.TestSend(c.Request.Context(), middleware.GetSession(c), req.Email)
	respondResult(c, result, http.StatusOK)
}

// Logs godoc
// @Summary Recent email send attempts
// @Tags email
// @Security ApiKeyAuth
// @Produce json
// @Param limit query int false "Max entries" default(50)
// @Success 200 {object} map[string][]models.EmailLog
// @Router /admin/email/logs [get]
func (h *EmailSettingsHandler) Logs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	c.JSON(http.StatusOK, gin.H{"logs": h.service.Logs(c.Request.Context(), limit)})
}
