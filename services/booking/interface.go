package booking

import (
	"context"
	"time"

	catalogRepo "sudsy/database/repository/catalog"
	reservationRepo "sudsy/database/repository/reservation"
	"sudsy/models"
	"sudsy/services/availability"
)

// WizardService drives the booking wizard: a draft reservation accumulated
// across revisitable steps, confirmed into exactly one reservation write.
type WizardService interface {
	StartSession(ctx context.Context) (string, *Draft, error)
	GetSession(ctx context.Context, sessionID string) (*Draft, error)
	CancelSession(ctx context.Context, sessionID string) error

	SelectService(ctx context.Context, sessionID, serviceID string) (*Draft, error)
	ToggleAddOn(ctx context.Context, sessionID, addOnID string) (*Draft, error)
	SelectVehicle(ctx context.Context, sessionID, customerID, vehicleID string) (*Draft, error)
	SelectLocation(ctx context.Context, sessionID string, location models.Location) (*Draft, error)
	SelectProvider(ctx context.Context, sessionID, providerID string) (*Draft, error)
	SelectSchedule(ctx context.Context, sessionID, date, timeLabel string) (*Draft, error)

	Quote(ctx context.Context, sessionID string) (*Quote, error)
	Confirm(ctx context.Context, sessionID, customerID, notes string) (*models.Reservation, error)
}

// Quote is the running price and duration of a draft.
type Quote struct {
	Total             float64 `json:"total"`
	EstimatedDuration int     `json:"estimatedDuration"` // minutes
	CanSubmit         bool    `json:"canSubmit"`
	MissingFields     []string `json:"missingFields,omitempty"`
}

// ReminderScheduler queues a reminder for a confirmed reservation.
type ReminderScheduler interface {
	ScheduleReservationReminder(ctx context.Context, reservation *models.Reservation, leadTime time.Duration) error
}

// DefaultWizardService implements WizardService.
type DefaultWizardService struct {
	Sessions     SessionStore
	Catalog      catalogRepo.Repository
	Reservations reservationRepo.Repository
	Availability availability.Service
	Reminders    ReminderScheduler
	ReminderLead time.Duration
}
