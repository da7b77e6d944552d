package reservationRepo

import (
	"context"
	"time"

	"sudsy/config"
	"sudsy/database"
	"sudsy/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// Repository defines persistence for confirmed reservations.
type Repository interface {
	Create(ctx context.Context, input models.ReservationInput) (*models.Reservation, error)
	GetByID(ctx context.Context, reservationID string) (*models.Reservation, error)
	GetByCustomer(ctx context.Context, customerID string) ([]models.Reservation, error)
	GetByProvider(ctx context.Context, providerID string) ([]models.Reservation, error)
	GetByProviderAndRange(ctx context.Context, providerID string, from, to time.Time) ([]models.Reservation, error)
	Cancel(ctx context.Context, reservationID string) error
}

type mongoReservationRepo struct {
	coll *mongo.Collection
}

// NewMongoReservationRepo constructs a MongoDB reservation repository.
func NewMongoReservationRepo() Repository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoReservationRepo{coll: db.Collection("reservations")}
}
