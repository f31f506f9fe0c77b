package repository

import (
	"context"

	"qualityze-admin-be/internal/database"
	"qualityze-admin-be/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SpeakerRepository reads speaker documents referenced by trainings
type SpeakerRepository struct {
	collection *mongo.Collection
}

func NewSpeakerRepository(db *database.MongoDB) *SpeakerRepository {
	return &SpeakerRepository{
		collection: db.Speakers(),
	}
}

func (r *SpeakerRepository) FindByID(ctx context.Context, id string) (*models.Speaker, error) {
	var speaker models.Speaker
	if err := r.collection.FindOne(ctx, idFilter(id)).Decode(&speaker); err != nil {
		return nil, err
	}
	return &speaker, nil
}

func (r *SpeakerRepository) FindAll(ctx context.Context) ([]models.Speaker, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var speakers []models.Speaker
	if err = cursor.All(ctx, &speakers); err != nil {
		return nil, err
	}

	return speakers, nil
}
