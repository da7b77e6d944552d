package catalogRepo

import (
	"context"

	"sudsy/config"
	"sudsy/database"
	"sudsy/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// Repository exposes the catalogue reads the booking wizard needs: the
// selected provider, service and vehicle.
type Repository interface {
	GetProvider(ctx context.Context, providerID string) (*models.Provider, error)
	GetService(ctx context.Context, serviceID string) (*models.Service, error)
	GetServicesByProvider(ctx context.Context, providerID string) ([]models.Service, error)
	GetVehicle(ctx context.Context, vehicleID string) (*models.Vehicle, error)
	GetVehiclesByCustomer(ctx context.Context, customerID string) ([]models.Vehicle, error)
}

type mongoCatalogRepo struct {
	providers *mongo.Collection
	services  *mongo.Collection
	vehicles  *mongo.Collection
}

// NewMongoCatalogRepo constructs a MongoDB catalogue repository.
func NewMongoCatalogRepo() Repository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoCatalogRepo{
		providers: db.Collection("providers"),
		services:  db.Collection("services"),
		vehicles:  db.Collection("vehicles"),
	}
}
