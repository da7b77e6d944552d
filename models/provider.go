package models

import "time"

// GeoPoint represents a GeoJSON Point.
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`               // Always "Point"
	Coordinates []float64 `bson:"coordinates" json:"coordinates"` // [longitude, latitude]
}

// Provider is a mobile detailing business offering services on the platform.
type Provider struct {
	ID           string    `bson:"id" json:"id"`
	BusinessName string    `bson:"business_name" json:"businessName"`
	Email        string    `bson:"email,omitempty" json:"email,omitempty"`
	PhoneNumber  string    `bson:"phone_number,omitempty" json:"phoneNumber,omitempty"`
	Bio          string    `bson:"bio,omitempty" json:"bio,omitempty"`
	Address      string    `bson:"address,omitempty" json:"address,omitempty"`
	LocationGeo  GeoPoint  `bson:"location_geo,omitempty" json:"locationGeo,omitzero"`
	Rating       float64   `bson:"rating,omitempty" json:"rating,omitempty"`
	ReviewCount  int       `bson:"review_count,omitempty" json:"reviewCount,omitempty"`
	IsActive     bool      `bson:"is_active" json:"isActive"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
}
