package services

import (
	"context"
	"testing"

	"qualityze-admin-be/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serviceForm() models.ServiceFormData {
	return models.ServiceFormData{
		Name:  "Quality Consulting",
		Title: "Quality Consulting Services",
		SubServices: []models.SubServiceForm{
			{
				Name:        "Gap Assessments",
				Description: "Find the distance to compliance",
				KeyPoints:   "Current-state review\n\n  Remediation roadmap  \n",
				Details:     `<p>Scoped <b>assessments</b></p><script>alert(1)</script>`,
			},
		},
		Industries: []models.Industry{
			{Name: "Medical Devices", Detail: "ISO 13485 programs"},
		},
	}
}

func TestCreateServiceDerivesSlugsAndSanitizes(t *testing.T) {
	store := &memServiceStore{}
	inv := &spyInvalidator{}
	svc := NewContentService(store, inv)

	result := svc.Create(context.Background(), adminSession(), serviceForm())
	require.True(t, result.Success)

	require.Len(t, store.services, 1)
	page := store.services[0]
	assert.Equal(t, "quality-consulting", page.Slug)

	require.Len(t, page.SubServices, 1)
	sub := page.SubServices[0]
	assert.Equal(t, "gap-assessments", sub.Slug)
	assert.Equal(t, []string{"Current-state review", "Remediation roadmap"}, sub.KeyPoints)
	assert.Contains(t, sub.Details, "<b>assessments</b>")
	assert.NotContains(t, sub.Details, "<script>")

	assert.Contains(t, inv.seen(), "/services")
	assert.Contains(t, inv.seen(), "/services/quality-consulting")
}

func TestCreateServiceRejectsDuplicateSlug(t *testing.T) {
	store := &memServiceStore{}
	svc := NewContentService(store, &spyInvalidator{})

	require.True(t, svc.Create(context.Background(), adminSession(), serviceForm()).Success)

	result := svc.Create(context.Background(), adminSession(), serviceForm())
	assert.False(t, result.Success)
	assert.Equal(t, "Service with this name already exists", result.Error)
	assert.Len(t, store.services, 1)
}

func TestCreateServiceFailsWhenSlugCheckErrors(t *testing.T) {
	store := &memServiceStore{failFindBySlug: true}
	svc := NewContentService(store, &spyInvalidator{})

	result := svc.Create(context.Background(), adminSession(), serviceForm())
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
	assert.Empty(t, store.services)
}

func TestCreateServiceRequiresName(t *testing.T) {
	svc := NewContentService(&memServiceStore{}, &spyInvalidator{})

	result := svc.Create(context.Background(), adminSession(), models.ServiceFormData{})
	assert.False(t, result.Success)
	assert.Equal(t, "Service name is required", result.Error)
}

func TestUpdateServiceKeepsSlugAndCreatedAt(t *testing.T) {
	store := &memServiceStore{}
	svc := NewContentService(store, &spyInvalidator{})

	require.True(t, svc.Create(context.Background(), adminSession(), serviceForm()).Success)
	createdAt := store.services[0].CreatedAt

	form := serviceForm()
	form.Name = "Quality Consulting and Auditing" // rename must not move the page
	form.Title = "Updated Title"

	result := svc.Update(context.Background(), adminSession(), "quality-consulting", form)
	require.True(t, result.Success)

	page := store.services[0]
	assert.Equal(t, "quality-consulting", page.Slug)
	assert.Equal(t, "Updated Title", page.Title)
	assert.Equal(t, createdAt, page.CreatedAt)
}

func TestDeleteServiceRequiresSession(t *testing.T) {
	store := &memServiceStore{}
	svc := NewContentService(store, &spyInvalidator{})

	require.True(t, svc.Create(context.Background(), adminSession(), serviceForm()).Success)

	result := svc.Delete(context.Background(), nil, "quality-consulting")
	assert.False(t, result.Success)
	assert.Equal(t, ErrUnauthorized, result.Error)
	assert.Len(t, store.services, 1)
}
