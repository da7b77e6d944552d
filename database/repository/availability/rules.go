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

func (r *mongoRuleRepo) Create(ctx context.Context, rule *models.AvailabilityRule) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if rule.ID == "" {
		rule.ID = uuid.New().String()
	}
	if rule.CreatedAt.IsZero() {
		rule.CreatedAt = time.Now()
	}
	_, err := r.coll.InsertOne(ctx, rule)
	return err
}

func (r *mongoRuleRepo) CreateMany(ctx context.Context, rules []models.AvailabilityRule) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	docs := make([]interface{}, len(rules))
	for i, rule := range rules {
		if rule.ID == "" {
			rule.ID = uuid.New().String()
		}
		if rule.CreatedAt.IsZero() {
			rule.CreatedAt = time.Now()
		}
		docs[i] = rule
	}
	_, err := r.coll.InsertMany(ctx, docs, &options.InsertManyOptions{Ordered: boolPtr(true)})
	return err
}

func (r *mongoRuleRepo) Update(ctx context.Context, rule *models.AvailabilityRule) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": rule.ID, "provider_id": rule.ProviderID}
	update := bson.M{"$set": bson.M{
		"day_of_week":  rule.DayOfWeek,
		"start_time":   rule.StartTime,
		"end_time":     rule.EndTime,
		"is_available": rule.IsAvailable,
	}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoRuleRepo) Delete(ctx context.Context, providerID, ruleID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": ruleID, "provider_id": providerID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoRuleRepo) GetByID(ctx context.Context, providerID, ruleID string) (*models.AvailabilityRule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var rule models.AvailabilityRule
	err := r.coll.FindOne(ctx, bson.M{"id": ruleID, "provider_id": providerID}).Decode(&rule)
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

func (r *mongoRuleRepo) GetByProvider(ctx context.Context, providerID string) ([]models.AvailabilityRule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "day_of_week", Value: 1}, {Key: "start_time", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"provider_id": providerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rules []models.AvailabilityRule
	if err := cursor.All(ctx, &rules); err != nil {
		return nil, err
	}
	return rules, nil
}

func boolPtr(b bool) *bool { return &b }
