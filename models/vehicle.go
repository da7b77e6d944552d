package models

import "time"

// Vehicle is a customer-owned vehicle a booking is made for.
type Vehicle struct {
	ID           string    `bson:"id" json:"id"`
	CustomerID   string    `bson:"customer_id" json:"customerId"`
	Make         string    `bson:"make" json:"make"`
	Model        string    `bson:"model" json:"model"`
	Year         int       `bson:"year,omitempty" json:"year,omitempty"`
	Color        string    `bson:"color,omitempty" json:"color,omitempty"`
	LicensePlate string    `bson:"license_plate,omitempty" json:"licensePlate,omitempty"`
	VehicleType  string    `bson:"vehicle_type,omitempty" json:"vehicleType,omitempty"` // e.g., "sedan", "suv", "truck"
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
}
