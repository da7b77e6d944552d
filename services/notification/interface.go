package notification

import (
	"context"

	"sudsy/models"
	"sudsy/utils"

	"go.uber.org/zap"
)

// Service delivers booking reminders. Delivery transport (push, SMS) lives
// behind this interface; the core only hands over the payload.
type Service interface {
	SendBookingReminder(ctx context.Context, payload models.ReminderPayload) error
}

// LogNotificationService is the default Service: it records the reminder in
// the log and delivers nothing.
type LogNotificationService struct{}

func (s *LogNotificationService) SendBookingReminder(_ context.Context, payload models.ReminderPayload) error {
	utils.GetLogger().Info("booking reminder due",
		zap.String("reservationID", payload.ReservationID),
		zap.String("customerID", payload.CustomerID),
		zap.String("scheduledAt", payload.ScheduledAt),
		zap.String("title", payload.Title))
	return nil
}
