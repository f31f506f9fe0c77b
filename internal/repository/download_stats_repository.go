package repository

import (
	"context"
	"time"

	"qualityze-admin-be/internal/database"
	"qualityze-admin-be/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DownloadStatsRepository runs the dashboard aggregation sub-queries over
// the downloads collection. Each method is independent; the service layer
// fans them out and joins the results.
type DownloadStatsRepository struct {
	collection *mongo.Collection
}

func NewDownloadStatsRepository(db *database.MongoDB) *DownloadStatsRepository {
	return &DownloadStatsRepository{
		collection: db.Downloads(),
	}
}

func (r *DownloadStatsRepository) CountAll(ctx context.Context) (int, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

func (r *DownloadStatsRepository) CountSince(ctx context.Context, since time.Time) (int, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{
		"downloadedAt": bson.M{"$gte": since},
	})
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

// CountByResourceType groups download counts by resource type
func (r *DownloadStatsRepository) CountByResourceType(ctx context.Context) ([]models.ResourceTypeCount, error) {
	pipeline := []bson.M{
		{"$group": bson.M{
			"_id":   "$resourceType",
			"count": bson.M{"$sum": 1},
		}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []models.ResourceTypeCount
	if err = cursor.All(ctx, &results); err != nil {
		return nil, err
	}

	return results, nil
}

// CountByEmailStatus groups download counts by email delivery status
func (r *DownloadStatsRepository) CountByEmailStatus(ctx context.Context) ([]models.EmailStatusCount, error) {
	pipeline := []bson.M{
		{"$group": bson.M{
			"_id":   "$emailStatus",
			"count": bson.M{"$sum": 1},
		}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []models.EmailStatusCount
	if err = cursor.All(ctx, &results); err != nil {
		return nil, err
	}

	return results, nil
}

// TopResources returns the most-downloaded resources, grouped by
// (resourceId, resourceTitle, resourceType), descending by count
func (r *DownloadStatsRepository) TopResources(ctx context.Context, limit int) ([]models.TopResource, error) {
	pipeline := []bson.M{
		{"$group": bson.M{
			"_id": bson.M{
				"resourceId":    "$resourceId",
				"resourceTitle": "$resourceTitle",
				"resourceType":  "$resourceType",
			},
			"count": bson.M{"$sum": 1},
		}},
		{"$sort": bson.M{"count": -1}},
		{"$limit": limit},
		{"$project": bson.M{
			"resourceId":    "$_id.resourceId",
			"resourceTitle": "$_id.resourceTitle",
			"resourceType":  "$_id.resourceType",
			"count":         1,
			"_id":           0,
		}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []models.TopResource
	if err = cursor.All(ctx, &results); err != nil {
		return nil, err
	}

	return results, nil
}

// Recent returns the latest downloads by downloadedAt
func (r *DownloadStatsRepository) Recent(ctx context.Context, limit int) ([]models.Download, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "downloadedAt", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
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
