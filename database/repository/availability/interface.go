package availabilityRepo

import (
	"context"
	"time"

	"sudsy/config"
	"sudsy/database"
	"sudsy/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// RuleRepository defines persistence for weekly availability rules.
type RuleRepository interface {
	Create(ctx context.Context, rule *models.AvailabilityRule) error
	Update(ctx context.Context, rule *models.AvailabilityRule) error
	Delete(ctx context.Context, providerID, ruleID string) error
	GetByID(ctx context.Context, providerID, ruleID string) (*models.AvailabilityRule, error)
	GetByProvider(ctx context.Context, providerID string) ([]models.AvailabilityRule, error)
	CreateMany(ctx context.Context, rules []models.AvailabilityRule) error
}

// BlockRepository defines persistence for one-off blocked intervals.
type BlockRepository interface {
	Create(ctx context.Context, block *models.BlockedTime) error
	Delete(ctx context.Context, providerID, blockID string) error
	GetByProvider(ctx context.Context, providerID string) ([]models.BlockedTime, error)
	GetOverlapping(ctx context.Context, providerID string, from, to time.Time) ([]models.BlockedTime, error)
}

type mongoRuleRepo struct {
	coll *mongo.Collection
}

type mongoBlockRepo struct {
	coll *mongo.Collection
}

// NewMongoRuleRepo constructs a MongoDB RuleRepository.
func NewMongoRuleRepo() RuleRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoRuleRepo{coll: db.Collection("availability_rules")}
}

// NewMongoBlockRepo constructs a MongoDB BlockRepository.
func NewMongoBlockRepo() BlockRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoBlockRepo{coll: db.Collection("blocked_times")}
}
