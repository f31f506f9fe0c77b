package repository

import (
	"context"

	"qualityze-admin-be/internal/database"
	"qualityze-admin-be/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EmailLogRepository records send attempts and their outcomes
type EmailLogRepository struct {
	collection *mongo.Collection
}

func NewEmailLogRepository(db *database.MongoDB) *EmailLogRepository {
	return &EmailLogRepository{
		collection: db.EmailLogs(),
	}
}

func (r *EmailLogRepository) Insert(ctx context.Context, entry *models.EmailLog) error {
	if entry.ID == "" {
		entry.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.collection.InsertOne(ctx, entry)
	return err
}

// Recent returns the latest log entries, newest first
func (r *EmailLogRepository) Recent(ctx context.Context, limit int) ([]models.EmailLog, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var logs []models.EmailLog
	if err = cursor.All(ctx, &logs); err != nil {
		return nil, err
	}

	return logs, nil
}
