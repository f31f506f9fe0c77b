package repository

import (
	"context"
	"time"

	"qualityze-admin-be/internal/database"
	"qualityze-admin-be/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TrainingRepository persists training/course listings
type TrainingRepository struct {
	collection *mongo.Collection
}

func NewTrainingRepository(db *database.MongoDB) *TrainingRepository {
	return &TrainingRepository{
		collection: db.Trainings(),
	}
}

func (r *TrainingRepository) Insert(ctx context.Context, training *models.Training) (string, error) {
	if training.ID == "" {
		training.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.collection.InsertOne(ctx, training); err != nil {
		return "", err
	}
	return training.ID, nil
}

// FindBySlug returns (nil, nil) when no training carries the slug, so the
// uniqueness guard can tell "free slug" apart from a store failure.
func (r *TrainingRepository) FindBySlug(ctx context.Context, slug string) (*models.Training, error) {
	var training models.Training
	if err := r.collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&training); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &training, nil
}

func (r *TrainingRepository) FindByID(ctx context.Context, id string) (*models.Training, error) {
	var training models.Training
	if err := r.collection.FindOne(ctx, idFilter(id)).Decode(&training); err != nil {
		return nil, err
	}
	return &training, nil
}

// FindAll returns every training, newest first
func (r *TrainingRepository) FindAll(ctx context.Context) ([]models.Training, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var trainings []models.Training
	if err = cursor.All(ctx, &trainings); err != nil {
		return nil, err
	}

	return trainings, nil
}

// Update applies a partial update; nil fields are left untouched
func (r *TrainingRepository) Update(ctx context.Context, id string, update models.TrainingUpdate) error {
	set := bson.M{"updatedAt": update.UpdatedAt}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.SpeakerID != nil {
		set["speakerId"] = *update.SpeakerID
	}
	if update.SpeakerName != nil {
		set["speakerName"] = *update.SpeakerName
	}
	if update.PricingOptions != nil {
		set["pricingOptions"] = update.PricingOptions
	}
	if update.Featured != nil {
		set["featured"] = *update.Featured
	}

	_, err := r.collection.UpdateOne(ctx, idFilter(id), bson.M{"$set": set})
	return err
}

func (r *TrainingRepository) SetFeatured(ctx context.Context, id string, featured bool, now time.Time) error {
	update := bson.M{"$set": bson.M{
		"featured":  featured,
		"updatedAt": now,
	}}
	_, err := r.collection.UpdateOne(ctx, idFilter(id), update)
	return err
}

func (r *TrainingRepository) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, idFilter(id))
	return err
}
