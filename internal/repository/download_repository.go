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

// DownloadRepository persists lead/download events
type DownloadRepository struct {
	collection *mongo.Collection
}

func NewDownloadRepository(db *database.MongoDB) *DownloadRepository {
	return &DownloadRepository{
		collection: db.Downloads(),
	}
}

func (r *DownloadRepository) Insert(ctx context.Context, download *models.Download) (string, error) {
	if download.ID == "" {
		download.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.collection.InsertOne(ctx, download); err != nil {
		return "", err
	}
	return download.ID, nil
}

// Find returns downloads matching the filter, newest first. Zero-valued
// filter fields are wildcards.
func (r *DownloadRepository) Find(ctx context.Context, filter models.DownloadFilter) ([]models.Download, error) {
	query := bson.M{}

	if filter.ResourceType != "" {
		query["resourceType"] = filter.ResourceType
	}
	if filter.EmailStatus != "" {
		query["emailStatus"] = filter.EmailStatus
	}
	if filter.DateFrom != nil || filter.DateTo != nil {
		dateRange := bson.M{}
		if filter.DateFrom != nil {
			dateRange["$gte"] = *filter.DateFrom
		}
		if filter.DateTo != nil {
			dateRange["$lte"] = *filter.DateTo
		}
		query["downloadedAt"] = dateRange
	}
	if filter.Search != "" {
		regex := bson.M{"$regex": primitive.Regex{Pattern: filter.Search, Options: "i"}}
		query["$or"] = []bson.M{
			{"userEmail": regex},
			{"userName": regex},
			{"userCompany": regex},
			{"resourceTitle": regex},
		}
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "downloadedAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var downloads []models.Download
	if err = cursor.All(ctx, &downloads); err != nil {
		return nil, err
	}

	return downloads, nil
}

func (r *DownloadRepository) FindByID(ctx context.Context, id string) (*models.Download, error) {
	var download models.Download
	if err := r.collection.FindOne(ctx, idFilter(id)).Decode(&download); err != nil {
		return nil, err
	}
	return &download, nil
}

func (r *DownloadRepository) UpdateFollowUp(ctx context.Context, id string, update models.FollowUpUpdate, now time.Time) error {
	set := bson.M{
		"followUpStatus": update.Status,
		"followUpNotes":  update.Notes,
		"assignedTo":     update.AssignedTo,
		"updatedAt":      now,
	}
	_, err := r.collection.UpdateOne(ctx, idFilter(id), bson.M{"$set": set})
	return err
}

func (r *DownloadRepository) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, idFilter(id))
	return err
}

// helper to build ID filter - documents may carry either ObjectID or hex
// string ids depending on which writer created them
func idFilter(id string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{"$or": []bson.M{
			{"_id": oid},
			{"_id": id},
		}}
	}
	return bson.M{"_id": id}
}
