package models

import "time"

// AvailabilityRule is one weekly recurring working window for a provider.
// Times are 24-hour "HH:MM" strings; StartTime must be strictly before
// EndTime. Multiple rules may exist per weekday and may overlap.
type AvailabilityRule struct {
	ID          string       `bson:"id" json:"id"`
	ProviderID  string       `bson:"provider_id" json:"providerId"`
	DayOfWeek   time.Weekday `bson:"day_of_week" json:"dayOfWeek"` // Sunday = 0
	StartTime   string       `bson:"start_time" json:"startTime"`  // e.g., "09:00"
	EndTime     string       `bson:"end_time" json:"endTime"`      // e.g., "17:00"
	IsAvailable bool         `bson:"is_available" json:"isAvailable"`
	CreatedAt   time.Time    `bson:"created_at" json:"createdAt"`
}

// BlockedTime marks a one-off interval where the provider cannot take work
// (vacation, break, equipment down). Date+time granularity.
type BlockedTime struct {
	ID          string    `bson:"id" json:"id"`
	ProviderID  string    `bson:"provider_id" json:"providerId"`
	StartDate   time.Time `bson:"start_date" json:"startDate"`
	EndDate     time.Time `bson:"end_date" json:"endDate"`
	Reason      string    `bson:"reason,omitempty" json:"reason,omitempty"`
	IsRecurring bool      `bson:"is_recurring" json:"isRecurring"` // stored only; resolution treats every block as a single interval
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}

// Overlaps reports whether the block intersects the half-open interval
// [checkStart, checkEnd).
func (b BlockedTime) Overlaps(checkStart, checkEnd time.Time) bool {
	return b.StartDate.Before(checkEnd) && b.EndDate.After(checkStart)
}

// BookableSlot is a derived booking window, computed on demand and never
// persisted. Start and End are minutes from midnight on Date.
type BookableSlot struct {
	Date  string `json:"date"` // e.g., "2026-03-02"
	Start int    `json:"start"`
	End   int    `json:"end"`
	Label string `json:"label"` // e.g., "9:00 AM - 10:00 AM"
}
