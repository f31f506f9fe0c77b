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

// ServiceRepository persists service offering pages, addressed by slug
type ServiceRepository struct {
	collection *mongo.Collection
}

func NewServiceRepository(db *database.MongoDB) *ServiceRepository {
	return &ServiceRepository{
		collection: db.Services(),
	}
}

func (r *ServiceRepository) Insert(ctx context.Context, service *models.Service) (string, error) {
	if service.ID == "" {
		service.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.collection.InsertOne(ctx, service); err != nil {
		return "", err
	}
	return service.ID, nil
}

// FindBySlug returns (nil, nil) when no service carries the slug, so the
// uniqueness guard can tell "free slug" apart from a store failure.
func (r *ServiceRepository) FindBySlug(ctx context.Context, slug string) (*models.Service, error) {
	var service models.Service
	if err := r.collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&service); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &service, nil
}

func (r *ServiceRepository) FindAll(ctx context.Context) ([]models.Service, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err = cursor.All(ctx, &services); err != nil {
		return nil, err
	}

	return services, nil
}

// ReplaceBySlug overwrites the stored document for a slug, keeping its id
// and creation timestamp
func (r *ServiceRepository) ReplaceBySlug(ctx context.Context, slug string, service *models.Service) error {
	existing, err := r.FindBySlug(ctx, slug)
	if err != nil {
		return err
	}
	service.ID = existing.ID
	service.CreatedAt = existing.CreatedAt

	_, err = r.collection.ReplaceOne(ctx, bson.M{"slug": slug}, service)
	return err
}

func (r *ServiceRepository) DeleteBySlug(ctx context.Context, slug string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"slug": slug})
	return err
}
