package repository

import (
	"context"
	"time"

	"qualityze-admin-be/internal/database"
	"qualityze-admin-be/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// EmailConfigRepository persists the singleton email provider configuration
type EmailConfigRepository struct {
	collection *mongo.Collection
}

func NewEmailConfigRepository(db *database.MongoDB) *EmailConfigRepository {
	return &EmailConfigRepository{
		collection: db.EmailConfig(),
	}
}

// Get returns the singleton config, or nil when none has been saved yet
func (r *EmailConfigRepository) Get(ctx context.Context) (*models.EmailConfig, error) {
	var config models.EmailConfig
	err := r.collection.FindOne(ctx, bson.M{}).Decode(&config)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &config, nil
}

// Save upserts the singleton. When updateAPIKey or updateSMTPPassword is
// false the corresponding stored secret is left untouched.
func (r *EmailConfigRepository) Save(ctx context.Context, config models.EmailConfig, updateAPIKey, updateSMTPPassword bool) error {
	now := time.Now()

	set := bson.M{
		"provider":  config.Provider,
		"fromEmail": config.FromEmail,
		"fromName":  config.FromName,
		"replyTo":   config.ReplyTo,
		"smtpHost":  config.SMTPHost,
		"smtpPort":  config.SMTPPort,
		"smtpUser":  config.SMTPUser,
		"enabled":   config.Enabled,
		"updatedAt": now,
	}
	if updateAPIKey {
		set["apiKey"] = config.APIKey
	}
	if updateSMTPPassword {
		set["smtpPassword"] = config.SMTPPassword
	}

	existing, err := r.Get(ctx)
	if err != nil {
		return err
	}

	if existing != nil {
		_, err = r.collection.UpdateOne(ctx, idFilter(existing.ID), bson.M{"$set": set})
		return err
	}

	set["_id"] = primitive.NewObjectID().Hex()
	set["createdAt"] = now
	_, err = r.collection.InsertOne(ctx, set)
	return err
}
