package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"qualityze-admin-be/internal/middleware"
	"qualityze-admin-be/internal/models"
	"qualityze-admin-be/internal/services"

	"github.com/gin-gonic/gin"
)

// ServiceHandler exposes service-page management over HTTP. The admin form
// submits one multipart payload with indexed sub-service and industry
// fields plus optional image uploads.
type ServiceHandler struct {
	service   *services.ContentService
	uploadDir string
}

func NewServiceHandler(service *services.ContentService, uploadDir string) *ServiceHandler {
	return &ServiceHandler{service: service, uploadDir: uploadDir}
}

// List godoc
// @Summary List all service pages
// @Tags services
// @Produce json
// @Success 200 {array} models.Service
// @Router /services [get]
func (h *ServiceHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.List(c.Request.Context()))
}

// Get godoc
// @Summary Get one service page by slug
// @Tags services
// @Produce json
// @Param slug path string true "Service slug"
// @Success 200 {object} models.Service
// @Failure 404 {object} models.ErrorResponse
// @Router /services/{slug} [get]
func (h *ServiceHandler) Get(c *gin.Context) {
	service := h.service.Get(c.Request.Context(), c.Param("slug"))
	if service == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}
	c.JSON(http.StatusOK, service)
}

// Create godoc
// @Summary Create a service page
// @Tags services
// @Security ApiKeyAuth
// @Accept mpfd
// @Produce json
// @Success 201 {object} models.MutationResult
// @Failure 401 {object} models.MutationResult
// @Router /admin/services [post]
func (h *ServiceHandler) Create(c *gin.Context) {
	form, err := h.parseServiceForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.service.Create(c.Request.Context(), middleware.GetSession(c), form)
	respondResult(c, result, http.StatusCreated)
}

// Update godoc
// @Summary Update a service page
// @Tags services
// @Security ApiKeyAuth
// @Accept mpfd
// @Produce json
// @Param slug path string true "Service slug"
// @Success 200 {object} models.MutationResult
// @Failure 401 {object} models.MutationResult
// @Router /admin/services/{slug} [put]
func (h *ServiceHandler) Update(c *gin.Context) {
	form, err := h.parseServiceForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.service.Update(c.Request.Context(), middleware.GetSession(c), c.Param("slug"), form)
	respondResult(c, result, http.StatusOK)
}

// Delete godoc
// @Summary Delete a service page
// @Tags services
// @Security ApiKeyAuth
// @Produce json
// @Param slug path string true "Service slug"
// @Success 200 {object} models.MutationResult
// @Failure 401 {object} models.MutationResult
// @Router /admin/services/{slug} [delete]
func (h *ServiceHandler) Delete(c *gin.Context) {
	result := h.service.Delete(c.Request.Context(), middleware.GetSession(c), c.Param("slug"))
	respondResult(c, result, http.StatusOK)
}

// parseServiceForm assembles the multipart payload. Indexed groups
// (industries[i][name], subservices[i][...]) are walked until the first
// missing index. Uploaded images land in the upload dir and are stored as
// /uploads/ URLs.
func (h *ServiceHandler) parseServiceForm(c *gin.Context) (models.ServiceFormData, error) {
	form := models.ServiceFormData{
		Name:           c.PostForm("name"),
		Slug:           c.PostForm("slug"),
		Title:          c.PostForm("title"),
		Subtitle:       c.PostForm("subtitle"),
		SEOTitle:       c.PostForm("seoTitle"),
		SEODescription: c.PostForm("seoDescription"),
		SEOKeywords:    c.PostForm("seoKeywords"),
		OGTitle:        c.PostForm("ogTitle"),
		OGDescription:  c.PostForm("ogDescription"),
		OGURL:          c.PostForm("ogUrl"),
	}

	// Each image slot takes a fresh upload when present, otherwise the
	// echoed URL of the image already stored.
	form.BannerImageURL = c.PostForm("bannerImageUrl")
	if url, err := h.saveUpload(c, "bannerImage"); err != nil {
		return form, err
	} else if url != "" {
		form.BannerImageURL = url
	}

	form.OGImageURL = c.PostForm("ogImageUrl")
	if url, err := h.saveUpload(c, "ogImage"); err != nil {
		return form, err
	} else if url != "" {
		form.OGImageURL = url
	}

	for i := 0; ; i++ {
		name, ok := c.GetPostForm(fmt.Sprintf("industries[%d][name]", i))
		if !ok {
			break
		}
		form.Industries = append(form.Industries, models.Industry{
			Name:   name,
			Detail: c.PostForm(fmt.Sprintf("industries[%d][detail]", i)),
		})
	}

	for i := 0; ; i++ {
		name, ok := c.GetPostForm(fmt.Sprintf("subservices[%d][name]", i))
		if !ok {
			break
		}
		sub := models.SubServiceForm{
			Name:        name,
			Slug:        c.PostForm(fmt.Sprintf("subservices[%d][slug]", i)),
			Description: c.PostForm(fmt.Sprintf("subservices[%d][description]", i)),
			KeyPoints:   c.PostForm(fmt.Sprintf("subservices[%d][keyPoints]", i)),
			ImageAlt:    c.PostForm(fmt.Sprintf("subservices[%d][imageAlt]", i)),
			Details:     c.PostForm(fmt.Sprintf("subservices[%d][details]", i)),
		}
		sub.ImageURL = c.PostForm(fmt.Sprintf("subservices[%d][imageUrl]", i))
		url, err := h.saveUpload(c, fmt.Sprintf("subservices[%d][image]", i))
		if err != nil {
			return form, err
		}
		if url != "" {
			sub.ImageURL = url
		}
		form.SubServices = append(form.SubServices, sub)
	}

	return form, nil
}

func (h *ServiceHandler) saveUpload(c *gin.Context, field string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		// Absent file fields are fine; only transport errors matter here
		return "", nil
	}

	name := fmt.Sprintf("%d-%s", time.Now().UnixNano(), filepath.Base(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(h.uploadDir, name)); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}
