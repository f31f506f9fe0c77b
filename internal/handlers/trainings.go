package handlers

import (
	"net/http"

	"qualityze-admin-be/internal/middleware"
	"qualityze-admin-be/internal/models"
	"qualityze-admin-be/internal/services"

	"github.com/gin-gonic/gin"
)

// TrainingHandler exposes training listing management over HTTP
type TrainingHandler struct {
	service *services.TrainingService
}

func NewTrainingHandler(service *services.TrainingService) *TrainingHandler {
	return &TrainingHandler{service: service}
}

// List godoc
// @Summary List all trainings
// @Tags trainings
// @Produce json
// @Success 200 {object} map[string][]models.Training
// @Router /trainings [get]
func (h *TrainingHandler) List(c *gin.Context) {
	trainings := h.service.List(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"trainings": trainings})
}

// Get godoc
// @Summary Get one training
// @Tags trainings
// @Produce json
// @Param id path string true "Training ID"
// @Success 200 {object} models.Training
// @Failure 404 {object} models.ErrorResponse
// @Router /trainings/{id} [get]
func (h *TrainingHandler) Get(c *gin.Context) {
	training := h.service.Get(c.Request.Context(), c.Param("id"))
	if training == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Training not found"})
		return
	}
	c.JSON(http.StatusOK, training)
}

// Speakers godoc
// @Summary List the speakers selectable in the training form
// @Tags trainings
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} map[string][]models.Speaker
// @Router /admin/speakers [get]
func (h *TrainingHandler) Speakers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"speakers": h.service.Speakers(c.Request.Context())})
}

// Create godoc
// @Summary Create a training
// @Tags trainings
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param payload body models.TrainingFormData true "Training data"
// @Success 201 {object} models.MutationResult
// @Failure 400 {object} models.MutationResult
// @Failure 401 {object} models.MutationResult
// @Router /admin/trainings [post]
func (h *TrainingHandler) Create(c *gin.Context) {
	var form models.TrainingFormData
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.service.Create(c.Request.Context(), middleware.GetSession(c), form)
	respondResult(c, result, http.StatusCreated)
}

// Update godoc
// @Summary Update a training (partial)
// @Tags trainings
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "Training ID"
// @Param payload body models.TrainingUpdateData true "Fields to change"
// @Success 200 {object} models.MutationResult
// @Failure 401 {object} models.MutationResult
// @Router /admin/trainings/{id} [put]
func (h *TrainingHandler) Update(c *gin.Context) {
	var form models.TrainingUpdateData
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.service.Update(c.Request.Context(), middleware.GetSession(c), c.Param("id"), form)
	respondResult(c, result, http.StatusOK)
}

// Delete godoc
// @Summary Delete a training
// @Tags trainings
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Training ID"
// @Success 200 {object} models.MutationResult
// @Failure 401 {object} models.MutationResult
// @Router /admin/trainings/{id} [delete]
func (h *TrainingHandler) Delete(c *gin.Context) {
	result := h.service.Delete(c.Request.Context(), middleware.GetSession(c), c.Param("id"))
	respondResult(c, result, http.StatusOK)
}

// ToggleFeatured godoc
// @Summary Toggle the featured flag of a training
// @Tags trainings
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Training ID"
// @Success 200 {object} models.MutationResult
// @Failure 401 {object} models.MutationResult
// @Router /admin/trainings/{id}/featured [post]
func (h *TrainingHandler) ToggleFeatured(c *gin.Context) {
	result := h.service.ToggleFeatured(c.Request.Context(), middleware.GetSession(c), c.Param("id"))
	respondResult(c, result, http.StatusOK)
}
