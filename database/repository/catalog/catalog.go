package catalogRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sudsy/models"
)

func (r *mongoCatalogRepo) GetProvider(ctx context.Context, providerID string) (*models.Provider, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var provider models.Provider
	if err := r.providers.FindOne(ctx, bson.M{"id": providerID}).Decode(&provider); err != nil {
		return nil, err
	}
	return &provider, nil
}

func (r *mongoCatalogRepo) GetService(ctx context.Context, serviceID string) (*models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var service models.Service
	if err := r.services.FindOne(ctx, bson.M{"id": serviceID}).Decode(&service); err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *mongoCatalogRepo) GetServicesByProvider(ctx context.Context, providerID string) ([]models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"provider_id": providerID, "is_active": true}
	cursor, err := r.services.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (r *mongoCatalogRepo) GetVehicle(ctx context.Context, vehicleID string) (*models.Vehicle, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var vehicle models.Vehicle
	if err := r.vehicles.FindOne(ctx, bson.M{"id": vehicleID}).Decode(&vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *mongoCatalogRepo) GetVehiclesByCustomer(ctx context.Context, customerID string) ([]models.Vehicle, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.vehicles.Find(ctx, bson.M{"customer_id": customerID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var vehicles []models.Vehicle
	if err := cursor.All(ctx, &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}
