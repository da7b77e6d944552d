package models

// Service is a single offering in a provider's catalogue, e.g. "Exterior
// Wash" or "Full Detail".
type Service struct {
	ID          string  `bson:"id" json:"id"`
	ProviderID  string  `bson:"provider_id" json:"providerId"`
	Name        string  `bson:"name" json:"name"`
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
	Category    string  `bson:"category" json:"category"`           // e.g., "wash", "detail", "ceramic"
	BasePrice   float64 `bson:"base_price" json:"basePrice"`        // price before add-ons
	Duration    int     `bson:"duration" json:"duration"`           // minutes
	Mobile      bool    `bson:"mobile" json:"mobile"`               // true when the provider travels to the customer
	IsActive    bool    `bson:"is_active" json:"isActive"`
	AddOns      []AddOn `bson:"add_ons,omitempty" json:"addOns,omitempty"`
}

// AddOn is an optional extra attached to a service (e.g. "Pet Hair Removal").
// Price and duration are independent of the base service.
type AddOn struct {
	ID        string  `bson:"id" json:"id"`
	ServiceID string  `bson:"service_id" json:"serviceId"`
	Name      string  `bson:"name" json:"name"`
	Price     float64 `bson:"price" json:"price"`
	Duration  int     `bson:"duration" json:"duration"` // minutes added to the job
}
