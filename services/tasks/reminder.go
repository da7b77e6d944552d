package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"sudsy/config"
	"sudsy/models"

	"github.com/hibiken/asynq"
)

const TypeBookingReminder = "reminder:booking"

// NewBookingReminderTask builds the asynq task fired at fireAt.
func NewBookingReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// ReminderQueue schedules booking reminders on the asynq queue.
type ReminderQueue struct {
	client *asynq.Client
}

// NewReminderQueue builds a queue client against the reminder Redis DB.
func NewReminderQueue() *ReminderQueue {
	return &ReminderQueue{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderDB,
		}),
	}
}

// ScheduleReservationReminder enqueues a reminder leadTime before the
// reservation's scheduled start. Reservations already inside the lead window
// get no reminder.
func (q *ReminderQueue) ScheduleReservationReminder(ctx context.Context, reservation *models.Reservation, leadTime time.Duration) error {
	fireAt := reservation.ScheduledAt.Add(-leadTime)
	if !fireAt.After(time.Now()) {
		return nil
	}

	payload := models.ReminderPayload{
		ReservationID: reservation.ID,
		CustomerID:    reservation.CustomerID,
		ProviderID:    reservation.ProviderID,
		Title:         "Upcoming wash",
		Body:          fmt.Sprintf("Your detailing appointment starts at %s", reservation.ScheduledAt.Format("3:04 PM")),
		ScheduledAt:   reservation.ScheduledAt.Format(time.RFC3339),
	}
	task, opts, err := NewBookingReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	_, err = q.client.EnqueueContext(ctx, task, opts...)
	return err
}
