package availabilityRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sudsy/models"
)

func (r *mongoBlockRepo) Create(ctx context.Context, block *models.BlockedTime) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if block.ID == "" {
		block.ID = uuid.New().String()
	}
	if block.CreatedAt.IsZero() {
		block.CreatedAt = time.Now()
	}
	_, err := r.coll.InsertOne(ctx, block)
	return err
}

func (r *mongoBlockRepo) Delete(ctx context.Context, providerID, blockID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": blockID, "provider_id": providerID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoBlockRepo) GetByProvider(ctx context.Context, providerID string) ([]models.BlockedTime, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "start_date", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"provider_id": providerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var blocks []models.BlockedTime
	if err := cursor.All(ctx, &blocks); err != nil {
		return nil, err
	}
	return blocks, nil
}

// GetOverlapping returns blocks intersecting [from, to) using the half-open
// overlap test: start_date < to AND end_date > from.
func (r *mongoBlockRepo) GetOverlapping(ctx context.Context, providerID string, from, to time.Time) ([]models.BlockedTime, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"provider_id": providerID,
		"start_date":  bson.M{"$lt": to},
		"end_date":    bson.M{"$gt": from},
	}
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "start_date", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var blocks []models.BlockedTime
	if err := cursor.All(ctx, &blocks); err != nil {
		return nil, err
	}
	return blocks, nil
}
