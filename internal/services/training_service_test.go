package services

import (
	"context"
	"testing"

	"qualityze-admin-be/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trainingFixtures() (*memTrainingStore, *memSpeakerStore, *spyInvalidator, *TrainingService) {
	trainings := &memTrainingStore{}
	speakers := &memSpeakerStore{speakers: map[string]models.Speaker{
		"sp-1": {ID: "sp-1", Name: "Dr. Alice Moran"},
		"sp-2": {ID: "sp-2", Name: "Ben Okafor"},
	}}
	inv := &spyInvalidator{}
	return trainings, speakers, inv, NewTrainingService(trainings, speakers, inv)
}

func TestCreateTrainingDerivesSlugAndDenormalizesSpeaker(t *testing.T) {
	store, _, inv, svc := trainingFixtures()

	result := svc.Create(context.Background(), adminSession(), models.TrainingFormData{
		Title:     "ISO 9001 Lead Auditor Course",
		SpeakerID: "sp-1",
		PricingOptions: []models.PricingOption{
			{Name: "Standard"},
			{Name: "Premium"},
		},
	})
	require.True(t, result.Success)

	require.Len(t, store.trainings, 1)
	tr := store.trainings[0]
	assert.Equal(t, "iso-9001-lead-auditor-course", tr.Slug)
	assert.Equal(t, "Dr. Alice Moran", tr.SpeakerName)
	assert.Equal(t, []string{"Standard", "Premium"}, tr.PricingOptions)
	assert.Equal(t, 0, tr.Views)

	assert.Contains(t, inv.seen(), "/trainings")
	assert.Contains(t, inv.seen(), "/admin/trainings")
}

func TestCreateTrainingRejectsDuplicateTitle(t *testing.T) {
	store, _, _, svc := trainingFixtures()

	form := models.TrainingFormData{Title: "Root Cause Analysis", SpeakerID: "sp-1"}
	require.True(t, svc.Create(context.Background(), adminSession(), form).Success)

	// same title, different casing and punctuation, still collides on slug
	form.Title = "Root Cause Analysis!"
	result := svc.Create(context.Background(), adminSession(), form)
	assert.False(t, result.Success)
	assert.Equal(t, "Training with this title already exists", result.Error)
	assert.Len(t, store.trainings, 1)
}

func TestCreateTrainingFailsWhenSlugCheckErrors(t *testing.T) {
	store, _, _, svc := trainingFixtures()
	store.failFindBySlug = true

	result := svc.Create(context.Background(), adminSession(), models.TrainingFormData{
		Title:     "Root Cause Analysis",
		SpeakerID: "sp-1",
	})
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
	assert.Empty(t, store.trainings)
}

func TestCreateTrainingUnknownSpeaker(t *testing.T) {
	store, _, _, svc := trainingFixtures()

	result := svc.Create(context.Background(), adminSession(), models.TrainingFormData{
		Title:     "CAPA Deep Dive",
		SpeakerID: "sp-missing",
	})
	assert.False(t, result.Success)
	assert.Equal(t, "Speaker not found", result.Error)
	assert.Empty(t, store.trainings)
}

func TestCreateTrainingRequiresSession(t *testing.T) {
	store, _, _, svc := trainingFixtures()

	result := svc.Create(context.Background(), nil, models.TrainingFormData{
		Title:     "CAPA Deep Dive",
		SpeakerID: "sp-1",
	})
	assert.False(t, result.Success)
	assert.Equal(t, ErrUnauthorized, result.Error)
	assert.Empty(t, store.trainings)
}

func TestUpdateTrainingKeepsSlug(t *testing.T) {
	store, _, _, svc := trainingFixtures()

	created := svc.Create(context.Background(), adminSession(), models.TrainingFormData{
		Title:     "Supplier Audits",
		SpeakerID: "sp-1",
	})
	require.True(t, created.Success)

	newTitle := "Supplier Audits, Second Edition"
	result := svc.Update(context.Background(), adminSession(), created.ID, models.TrainingUpdateData{
		Title: &newTitle,
	})
	require.True(t, result.Success)

	tr := store.trainings[0]
	assert.Equal(t, newTitle, tr.Title)
	assert.Equal(t, "supplier-audits", tr.Slug)
}

func TestUpdateTrainingResolvableSpeakerRefreshesName(t *testing.T) {
	store, _, _, svc := trainingFixtures()

	created := svc.Create(context.Background(), adminSession(), models.TrainingFormData{
		Title:     "Supplier Audits",
		SpeakerID: "sp-1",
	})
	require.True(t, created.Success)

	newSpeaker := "sp-2"
	result := svc.Update(context.Background(), adminSession(), created.ID, models.TrainingUpdateData{
		SpeakerID: &newSpeaker,
	})
	require.True(t, result.Success)

	tr := store.trainings[0]
	assert.Equal(t, "sp-2", tr.SpeakerID)
	assert.Equal(t, "Ben Okafor", tr.SpeakerName)
}

func TestUpdateTrainingUnresolvableSpeakerLeftUntouched(t *testing.T) {
	store, _, _, svc := trainingFixtures()

	created := svc.Create(context.Background(), adminSession(), models.TrainingFormData{
		Title:     "Supplier Audits",
		SpeakerID: "sp-1",
	})
	require.True(t, created.Success)

	ghost := "sp-missing"
	result := svc.Update(context.Background(), adminSession(), created.ID, models.TrainingUpdateData{
		SpeakerID: &ghost,
	})
	require.True(t, result.Success)

	tr := store.trainings[0]
	assert.Equal(t, "sp-1", tr.SpeakerID)
	assert.Equal(t, "Dr. Alice Moran", tr.SpeakerName)

	require.Len(t, store.updates, 1)
	assert.Nil(t, store.updates[0].SpeakerID)
	assert.Nil(t, store.updates[0].SpeakerName)
}

func TestToggleFeatured(t *testing.T) {
	store, _, _, svc := trainingFixtures()

	created := svc.Create(context.Background(), adminSession(), models.TrainingFormData{
		Title:     "Supplier Audits",
		SpeakerID: "sp-1",
	})
	require.True(t, created.Success)
	require.False(t, store.trainings[0].Featured)

	require.True(t, svc.ToggleFeatured(context.Background(), adminSession(), created.ID).Success)
	assert.True(t, store.trainings[0].Featured)

	require.True(t, svc.ToggleFeatured(context.Background(), adminSession(), created.ID).Success)
	assert.False(t, store.trainings[0].Featured)
}

func TestToggleFeaturedUnknownID(t *testing.T) {
	_, _, _, svc := trainingFixtures()

	result := svc.ToggleFeatured(context.Background(), adminSession(), "tr-missing")
	assert.False(t, result.Success)
	assert.Equal(t, "Training not found", result.Error)
}

func TestSpeakers(t *testing.T) {
	_, _, _, svc := trainingFixtures()

	speakers := svc.Speakers(context.Background())
	require.Len(t, speakers, 2)
	names := []string{speakers[0].Name, speakers[1].Name}
	assert.ElementsMatch(t, []string{"Dr. Alice Moran", "Ben Okafor"}, names)
}

func TestListTrainingsDegradesToEmpty(t *testing.T) {
	_, _, _, svc := trainingFixtures()

	trainings := svc.List(context.Background())
	require.NotNil(t, trainings)
	assert.Empty(t, trainings)
}
