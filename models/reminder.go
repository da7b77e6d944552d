package models

// ReminderPayload is queued when a reservation is confirmed and delivered
// shortly before the scheduled time.
type ReminderPayload struct {
	ReservationID string `json:"reservationId"`
	CustomerID    string `json:"customerId"`
	ProviderID    string `json:"providerId"`
	Title         string `json:"title"`
	Body          string `json:"body"`
	ScheduledAt   string `json:"scheduledAt"` // RFC 3339
}
