package models

import "time"

// Reservation statuses.
const (
	ReservationStatusConfirmed = "confirmed"
	ReservationStatusCancelled = "cancelled"
	ReservationStatusCompleted = "completed"
)

// Location is where a mobile service takes place.
type Location struct {
	Address     string    `bson:"address" json:"address"`
	Coordinates *GeoPoint `bson:"coordinates,omitempty" json:"coordinates,omitempty"`
}

// Reservation represents a confirmed booking record.
type Reservation struct {
	ID                string    `bson:"id" json:"id"`
	ProviderID        string    `bson:"provider_id" json:"providerId"`
	CustomerID        string    `bson:"customer_id" json:"customerId"`
	ServiceID         string    `bson:"service_id" json:"serviceId"`
	AddOnIDs          []string  `bson:"add_on_ids,omitempty" json:"addOnIds,omitempty"`
	VehicleID         string    `bson:"vehicle_id" json:"vehicleId"`
	ScheduledAt       time.Time `bson:"scheduled_at" json:"scheduledAt"`
	Location          *Location `bson:"location,omitempty" json:"location,omitempty"`
	TotalPrice        float64   `bson:"total_price" json:"totalPrice"`
	EstimatedDuration int       `bson:"estimated_duration" json:"estimatedDuration"` // minutes
	Notes             string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Status            string    `bson:"status" json:"status"`
	CreatedAt         time.Time `bson:"created_at" json:"createdAt"`
}

// ReservationInput is the single create-reservation command emitted when a
// booking wizard draft is submitted.
type ReservationInput struct {
	ProviderID        string    `json:"providerId"`
	CustomerID        string    `json:"customerId"`
	ServiceID         string    `json:"serviceId"`
	AddOnIDs          []string  `json:"addOnIds,omitempty"`
	VehicleID         string    `json:"vehicleId"`
	ScheduledAt       time.Time `json:"scheduledAt"`
	Location          *Location `json:"location,omitempty"`
	TotalPrice        float64   `json:"totalPrice"`
	EstimatedDuration int       `json:"estimatedDuration"`
	Notes             string    `json:"notes,omitempty"`
}
