package handlers

import (
	"net/http"

	"qualityze-admin-be/internal/middleware"
	"qualityze-admin-be/internal/models"
	"qualityze-admin-be/internal/services"

	"github.com/gin-gonic/gin"
)

// DownloadHandler exposes the lead/download pipeline over HTTP
type DownloadHandler struct {
	service *services.DownloadService
}

func NewDownloadHandler(service *services.DownloadService) *DownloadHandler {
	return &DownloadHandler{service: service}
}

// Create godoc
// @Summary Record a resource download (public lead capture)
// @Tags downloads
// @Accept json
// @Produce json
// @Param payload body models.DownloadFormData true "Download form"
// @Success 201 {object} models.MutationResult
// @Failure 400 {object} models.ErrorResponse
// @Router /downloads [post]
func (h *DownloadHandler) Create(c *gin.Context) {
	var form models.DownloadFormData
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	respondResult(c, h.service.Create(c.Request.Context(), form), http.StatusCreated)
}

// List godoc
// @Summary List downloads with optional filters
// @Tags downloads
// @Security ApiKeyAuth
// @Produce json
// @Param resourceType query string false "Resource type"
// @Param emailStatus query string false "Email status"
// @Param dateFrom query string false "Inclusive start date (YYYY-MM-DD)"
// @Param dateTo query string false "Inclusive end date (YYYY-MM-DD)"
// @Param search query string false "Substring search over requester fields"
// @Success 200 {object} map[string][]models.Download
// @Router /admin/downloads [get]
func (h *DownloadHandler) List(c *gin.Context) {
	var filter models.DownloadFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	downloads := h.service.List(c.Request.Context(), filter)
	c.JSON(http.StatusOK, gin.H{"downloads": downloads})
}

// Get godoc
// @Summary Get one download record
// @Tags downloads
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Download ID"
// @Success 200 {object} models.Download
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/downloads/{id} [get]
func (h *DownloadHandler) Get(c *gin.Context) {
	download := h.service.Get(c.Request.Context(), c.Param("id"))
	if download == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Download not found"})
		return
	}
	c.JSON(http.StatusOK, download)
}

// Stats godoc
// @Summary Download statistics for the admin dashboard
// @Tags downloads
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} models.DownloadStats
// @Router /admin/downloads/stats [get]
func (h *DownloadHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Stats(c.Request.Context()))
}

// UpdateFollowUp godoc
// @Summary Update the follow-up state of a lead
// @Tags downloads
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "Download ID"
// @Param payload body models.FollowUpUpdate true "Follow-up state"
// @Success 200 {object} models.MutationResult
// @Failure 401 {object} models.MutationResult
// @Router /admin/downloads/{id}/follow-up [patch]
func (h *DownloadHandler) UpdateFollowUp(c *gin.Context) {
	var update models.FollowUpUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.service.UpdateFollowUp(c.Request.Context(), middleware.GetSession(c), c.Param("id"), update)
	respondResult(c, result, http.StatusOK)
}

// Delete godoc
// @Summary Delete a download record
// @Tags downloads
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Download ID"
// @Success 200 {object} models.MutationResult
// @Failure 401 {object} models.MutationResult
// @Router /admin/downloads/{id} [delete]
func (h *DownloadHandler) Delete(c *gin.Context) {
	result := h.service.Delete(c.Request.Context(), middleware.GetSession(c), c.Param("id"))
	respondResult(c, result, http.StatusOK)
}

// Export godoc
// @Summary Export filtered downloads as CSV
// @Description Returns the CSV blob and a suggested filename; the client writes the file.
// @Tags downloads
// @Security ApiKeyAuth
// @Produce json
// @Param resourceType query string false "Resource type"
// @Param dateFrom query string false "Inclusive start date (YYYY-MM-DD)"
// @Param dateTo query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} models.ExportResult
// @Failure 401 {object} models.ExportResult
// @Router /admin/downloads/export [get]
func (h *DownloadHandler) Export(c *gin.Context) {
	var filter models.ExportFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.service.ExportCSV(c.Request.Context(), middleware.GetSession(c), filter)
	switch {
	case result.Success:
		c.JSON(http.StatusOK, result)
	case result.Error == services.ErrUnauthorized:
		c.JSON(http.StatusUnauthorized, result)
	default:
		c.JSON(http.StatusInternalServerError, result)
	}
}
