package services

import (
	"context"
	"log"
	"time"

	"qualityze-admin-be/internal/models"
	"qualityze-admin-be/internal/utils"
)

// TrainingStore is the persistence capability the training operations need
type TrainingStore interface {
	Insert(ctx context.Context, training *models.Training) (string, error)
	FindBySlug(ctx context.Context, slug string) (*models.Training, error)
	FindByID(ctx context.Context, id string) (*models.Training, error)
	FindAll(ctx context.Context) ([]models.Training, error)
	Update(ctx context.Context, id string, update models.TrainingUpdate) error
	SetFeatured(ctx context.Context, id string, featured bool, now time.Time) error
	Delete(ctx context.Context, id string) error
}

// SpeakerStore resolves speaker references
type SpeakerStore interface {
	FindByID(ctx context.Context, id string) (*models.Speaker, error)
	FindAll(ctx context.Context) ([]models.Speaker, error)
}

// View paths invalidated by training mutations
const (
	adminTrainingsPath  = "/admin/trainings"
	publicTrainingsPath = "/trainings"
)

// TrainingService implements admin CRUD over training listings
type TrainingService struct {
	trainings   TrainingStore
	speakers    SpeakerStore
	invalidator ViewInvalidator
}

func NewTrainingService(trainings TrainingStore, speakers SpeakerStore, invalidator ViewInvalidator) *TrainingService {
	return &TrainingService{
		trainings:   trainings,
		speakers:    speakers,
		invalidator: invalidator,
	}
}

// Create publishes a new training. The slug is derived from the title and
// must be unique; the speaker reference must resolve. The slug check and
// the insert are separate store calls, so two concurrent creates with the
// same title can in principle both pass the check — accepted, the store
// has no unique index here.
func (s *TrainingService) Create(ctx context.Context, sess *Session, form models.TrainingFormData) models.MutationResult {
	if !sess.Valid() {
		return models.Fail(ErrUnauthorized)
	}

	slug := utils.Slugify(form.Title)

	existing, err := s.trainings.FindBySlug(ctx, slug)
	if err != nil {
		log.Println("create training error:", err)
		return models.Fail(err.Error())
	}
	if existing != nil {
		return models.Fail("Training with this title already exists")
	}

	speaker, err := s.speakers.FindByID(ctx, form.SpeakerID)
	if err != nil || speaker == nil {
		return models.Fail("Speaker not found")
	}

	now := time.Now()
	training := &models.Training{
		Title:          form.Title,
		Slug:           slug,
		Description:    form.Description,
		SpeakerID:      form.SpeakerID,
		SpeakerName:    speaker.Name,
		PricingOptions: models.NormalizePricingOptions(form.PricingOptions),
		Featured:       form.Featured,
		Views:          0,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	id, err := s.trainings.Insert(ctx, training)
	if err != nil {
		log.Println("create training error:", err)
		return models.Fail(err.Error())
	}

	s.invalidator.Invalidate(adminTrainingsPath, publicTrainingsPath)
	return models.OKWithID(id)
}

// Update applies a partial edit. A supplied speaker id that resolves also
// refreshes the denormalized speaker name; one that doesn't resolve leaves
// both untouched. The slug is never regenerated.
func (s *TrainingService) Update(ctx context.Context, sess *Session, id string, form models.TrainingUpdateData) models.MutationResult {
	if !sess.Valid() {
		return models.Fail(ErrUnauthorized)
	}

	update := models.TrainingUpdate{
		Title:       form.Title,
		Description: form.Description,
		Featured:    form.Featured,
		UpdatedAt:   time.Now(),
	}

	if form.SpeakerID != nil {
		if speaker, err := s.speakers.FindByID(ctx, *form.SpeakerID); err == nil && speaker != nil {
			update.SpeakerID = form.SpeakerID
			update.SpeakerName = &speaker.Name
		}
	}

	if form.PricingOptions != nil {
		update.PricingOptions = models.NormalizePricingOptions(form.PricingOptions)
	}

	if err := s.trainings.Update(ctx, id, update); err != nil {
		log.Println("update training error:", err)
		return models.Fail(err.Error())
	}

	s.invalidator.Invalidate(adminTrainingsPath, publicTrainingsPath, publicTrainingsPath+"/"+id)
	return models.OK()
}

// Delete removes a training listing
func (s *TrainingService) Delete(ctx context.Context, sess *Session, id string) models.MutationResult {
	if !sess.Valid() {
		return models.Fail(ErrUnauthorized)
	}

	if err := s.trainings.Delete(ctx, id); err != nil {
		log.Println("delete training error:", err)
		return models.Fail(err.Error())
	}

	s.invalidator.Invalidate(adminTrainingsPath)
	return models.OK()
}

// ToggleFeatured flips the featured flag; fails when the id does not resolve
func (s *TrainingService) ToggleFeatured(ctx context.Context, sess *Session, id string) models.MutationResult {
	if !sess.Valid() {
		return models.Fail(ErrUnauthorized)
	}

	training, err := s.trainings.FindByID(ctx, id)
	if err != nil || training == nil {
		return models.Fail("Training not found")
	}

	if err := s.trainings.SetFeatured(ctx, id, !training.Featured, time.Now()); err != nil {
		log.Println("toggle featured error:", err)
		return models.Fail(err.Error())
	}

	s.invalidator.Invalidate(adminTrainingsPath)
	return models.OK()
}

// Get fetches one training; nil when absent or the id is malformed
func (s *TrainingService) Get(ctx context.Context, id string) *models.Training {
	training, err := s.trainings.FindByID(ctx, id)
	if err != nil {
		return nil
	}
	return training
}

// Speakers returns the speakers selectable in the admin training form,
// degrading to empty on store trouble
func (s *TrainingService) Speakers(ctx context.Context) []models.Speaker {
	speakers, err := s.speakers.FindAll(ctx)
	if err != nil {
		log.Println("get speakers error:", err)
		return []models.Speaker{}
	}
	if speakers == nil {
		return []models.Speaker{}
	}
	return speakers
}

// List returns all trainings, newest first, degrading to empty on store trouble
func (s *TrainingService) List(ctx context.Context) []models.Training {
	trainings, err := s.trainings.FindAll(ctx)
	if err != nil {
		log.Println("get trainings error:", err)
		return []models.Training{}
	}
	if trainings == nil {
		return []models.Training{}
	}
	return trainings
}
