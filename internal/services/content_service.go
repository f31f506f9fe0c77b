package services

import (
	"context"
	"log"
	"strings"
	"time"

	"qualityze-admin-be/internal/models"
	"qualityze-admin-be/internal/utils"
)

// ServiceStore is the persistence capability for service offering pages
type ServiceStore interface {
	Insert(ctx context.Context, service *models.Service) (string, error)
	FindBySlug(ctx context.Context, slug string) (*models.Service, error)
	FindAll(ctx context.Context) ([]models.Service, error)
	ReplaceBySlug(ctx context.Context, slug string, service *models.Service) error
	DeleteBySlug(ctx context.Context, slug string) error
}

// View paths invalidated by service-page mutations
const publicServicesPath = "/services"

// ContentService implements admin CRUD over service offering pages
type ContentService struct {
	services    ServiceStore
	invalidator ViewInvalidator
}

func NewContentService(services ServiceStore, invalidator ViewInvalidator) *ContentService {
	return &ContentService{
		services:    services,
		invalidator: invalidator,
	}
}

// Create publishes a new service page from the multipart form payload.
// The slug must be unique.
func (s *ContentService) Create(ctx context.Context, sess *Session, form models.ServiceFormData) models.MutationResult {
	if !sess.Valid() {
		return models.Fail(ErrUnauthorized)
	}

	service := buildService(form)
	if service.Slug == "" {
		return models.Fail("Service name is required")
	}

	existing, err := s.services.FindBySlug(ctx, service.Slug)
	if err != nil {
		log.Println("create service error:", err)
		return models.Fail(err.Error())
	}
	if existing != nil {
		return models.Fail("Service with this name already exists")
	}

	now := time.Now()
	service.CreatedAt = now
	service.UpdatedAt = now

	id, err := s.services.Insert(ctx, service)
	if err != nil {
		log.Println("create service error:", err)
		return models.Fail(err.Error())
	}

	s.invalidator.Invalidate(publicServicesPath, publicServicesPath+"/"+service.Slug)
	return models.OKWithID(id)
}

// Update replaces the stored page for a slug with the re-submitted form
func (s *ContentService) Update(ctx context.Context, sess *Session, slug string, form models.ServiceFormData) models.MutationResult {
	if !sess.Valid() {
		return models.Fail(ErrUnauthorized)
	}

	service := buildService(form)
	service.Slug = slug // the page keeps its public address
	service.UpdatedAt = time.Now()

	if err := s.services.ReplaceBySlug(ctx, slug, service); err != nil {
		log.Println("update service error:", err)
		return models.Fail(err.Error())
	}

	s.invalidator.Invalidate(publicServicesPath, publicServicesPath+"/"+slug)
	return models.OK()
}

// Delete removes a service page by slug
func (s *ContentService) Delete(ctx context.Context, sess *Session, slug string) models.MutationResult {
	if !sess.Valid() {
		return models.Fail(ErrUnauthorized)
	}

	if err := s.services.DeleteBySlug(ctx, slug); err != nil {
		log.Println("delete service error:", err)
		return models.Fail(err.Error())
	}

	s.invalidator.Invalidate(publicServicesPath, publicServicesPath+"/"+slug)
	return models.OK()
}

// Get fetches one service page by slug; nil when absent
func (s *ContentService) Get(ctx context.Context, slug string) *models.Service {
	service, err := s.services.FindBySlug(ctx, slug)
	if err != nil {
		return nil
	}
	return service
}

// List returns all service pages, degrading to empty on store trouble
func (s *ContentService) List(ctx context.Context) []models.Service {
	services, err := s.services.FindAll(ctx)
	if err != nil {
		log.Println("get services error:", err)
		return []models.Service{}
	}
	if services == nil {
		return []models.Service{}
	}
	return services
}

// buildService maps the authored form onto the stored document: slugs
// derived where absent, key points split on newlines, rich-text details
// sanitized.
func buildService(form models.ServiceFormData) *models.Service {
	slug := form.Slug
	if slug == "" {
		slug = utils.Slugify(form.Name)
	}

	subServices := make([]models.SubService, 0, len(form.SubServices))
	for _, sub := range form.SubServices {
		subSlug := sub.Slug
		if subSlug == "" {
			subSlug = utils.Slugify(sub.Name)
		}
		subServices = append(subServices, models.SubService{
			Name:        sub.Name,
			Slug:        subSlug,
			Description: sub.Description,
			KeyPoints:   splitKeyPoints(sub.KeyPoints),
			Image: models.ServiceImage{
				URL: sub.ImageURL,
				Alt: sub.ImageAlt,
			},
			Details: utils.SanitizeRichText(sub.Details),
		})
	}

	return &models.Service{
		Name:        form.Name,
		Slug:        slug,
		Title:       form.Title,
		Subtitle:    form.Subtitle,
		BannerImage: form.BannerImageURL,
		SubServices: subServices,
		Industries:  form.Industries,
		SEO: models.ServiceSEO{
			Title:       form.SEOTitle,
			Description: form.SEODescription,
			Keywords:    form.SEOKeywords,
			OpenGraph: models.OpenGraph{
				Title:       form.OGTitle,
				Description: form.OGDescription,
				Image:       form.OGImageURL,
				URL:         form.OGURL,
			},
		},
	}
}

func splitKeyPoints(raw string) []string {
	points := []string{}
	for _, line := range strings.Split(raw, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			points = append(points, line)
		}
	}
	return points
}
