package reservationRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sudsy/models"
)

// Create inserts the reservation as a single atomic write. No multi-step
// transaction is coordinated here; the caller retries on failure.
func (r *mongoReservationRepo) Create(ctx context.Context, input models.ReservationInput) (*models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	reservation := models.Reservation{
		ID:                uuid.New().String(),
		ProviderID:        input.ProviderID,
		CustomerID:        input.CustomerID,
		ServiceID:         input.ServiceID,
		AddOnIDs:          input.AddOnIDs,
		VehicleID:         input.VehicleID,
		ScheduledAt:       input.ScheduledAt,
		Location:          input.Location,
		TotalPrice:        input.TotalPrice,
		EstimatedDuration: input.EstimatedDuration,
		Notes:             input.Notes,
		Status:            models.ReservationStatusConfirmed,
		CreatedAt:         time.Now(),
	}
	if _, err := r.coll.InsertOne(ctx, reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *mongoReservationRepo) GetByID(ctx context.Context, reservationID string) (*models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var reservation models.Reservation
	if err := r.coll.FindOne(ctx, bson.M{"id": reservationID}).Decode(&reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *mongoReservationRepo) GetByCustomer(ctx context.Context, customerID string) ([]models.Reservation, error) {
	return r.find(ctx, bson.M{"customer_id": customerID})
}

func (r *mongoReservationRepo) GetByProvider(ctx context.Context, providerID string) ([]models.Reservation, error) {
	return r.find(ctx, bson.M{"provider_id": providerID})
}

func (r *mongoReservationRepo) GetByProviderAndRange(ctx context.Context, providerID string, from, to time.Time) ([]models.Reservation, error) {
	return r.find(ctx, bson.M{
		"provider_id":  providerID,
		"scheduled_at": bson.M{"$gte": from, "$lt": to},
	})
}

func (r *mongoReservationRepo) Cancel(ctx context.Context, reservationID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": reservationID},
		bson.M{"$set": bson.M{"status": models.ReservationStatusCancelled}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoReservationRepo) find(ctx context.Context, filter bson.M) ([]models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "scheduled_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reservations []models.Reservation
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}
