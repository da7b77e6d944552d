package booking

import (
	"context"
	"fmt"
	"time"

	"sudsy/models"
	"sudsy/utils"

	"go.uber.org/zap"
)

// StartSession creates a new empty wizard session.
func (s *DefaultWizardService) StartSession(ctx context.Context) (string, *Draft, error) {
	draft := NewDraft()
	sessionID, err := s.Sessions.Create(ctx, draft)
	if err != nil {
		return "", nil, err
	}
	utils.GetLogger().Debug("started booking session", zap.String("sessionID", sessionID))
	return sessionID, draft, nil
}

// GetSession returns the current draft for a session.
func (s *DefaultWizardService) GetSession(ctx context.Context, sessionID string) (*Draft, error) {
	return s.Sessions.Get(ctx, sessionID)
}

// CancelSession discards the draft entirely.
func (s *DefaultWizardService) CancelSession(ctx context.Context, sessionID string) error {
	return s.Sessions.Delete(ctx, sessionID)
}

// mutate loads the session's draft, applies fn and saves the result. The
// draft is only persisted when fn succeeds.
func (s *DefaultWizardService) mutate(ctx context.Context, sessionID string, fn func(draft *Draft) error) (*Draft, error) {
	draft, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := fn(draft); err != nil {
		return nil, err
	}
	if err := s.Sessions.Save(ctx, sessionID, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// SelectService sets the wizard's service. The service and its provider must
// both be active; add-ons from a previously selected service are dropped.
func (s *DefaultWizardService) SelectService(ctx context.Context, sessionID, serviceID string) (*Draft, error) {
	service, err := s.Catalog.GetService(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("service not found: %w", err)
	}
	if !service.IsActive {
		return nil, fmt.Errorf("service %s is not active", serviceID)
	}
	provider, err := s.Catalog.GetProvider(ctx, service.ProviderID)
	if err != nil {
		return nil, fmt.Errorf("service provider not found: %w", err)
	}
	if !provider.IsActive {
		return nil, fmt.Errorf("provider %s is not active", provider.ID)
	}

	return s.mutate(ctx, sessionID, func(draft *Draft) error {
		draft.SetService(service)
		return nil
	})
}

// ToggleAddOn flips an add-on of the currently selected service on or off.
func (s *DefaultWizardService) ToggleAddOn(ctx context.Context, sessionID, addOnID string) (*Draft, error) {
	return s.mutate(ctx, sessionID, func(draft *Draft) error {
		if draft.SelectedService == nil {
			return fmt.Errorf("select a service before toggling add-ons")
		}
		for _, addOn := range draft.SelectedService.AddOns {
			if addOn.ID == addOnID {
				draft.ToggleAddOn(addOn)
				return nil
			}
		}
		return fmt.Errorf("add-on %s does not belong to the selected service", addOnID)
	})
}

// SelectVehicle sets the wizard's vehicle. The vehicle must belong to the
// requesting customer.
func (s *DefaultWizardService) SelectVehicle(ctx context.Context, sessionID, customerID, vehicleID string) (*Draft, error) {
	vehicle, err := s.Catalog.GetVehicle(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("vehicle not found: %w", err)
	}
	if vehicle.CustomerID != customerID {
		return nil, fmt.Errorf("vehicle %s does not belong to the requesting customer", vehicleID)
	}
	return s.mutate(ctx, sessionID, func(draft *Draft) error {
		draft.SetVehicle(vehicle)
		return nil
	})
}

// SelectLocation sets the service location.
func (s *DefaultWizardService) SelectLocation(ctx context.Context, sessionID string, location models.Location) (*Draft, error) {
	if location.Address == "" {
		return nil, fmt.Errorf("location address is required")
	}
	return s.mutate(ctx, sessionID, func(draft *Draft) error {
		draft.SetLocation(&location)
		return nil
	})
}

// SelectProvider sets the wizard's provider; it must be active.
func (s *DefaultWizardService) SelectProvider(ctx context.Context, sessionID, providerID string) (*Draft, error) {
	provider, err := s.Catalog.GetProvider(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("provider not found: %w", err)
	}
	if !provider.IsActive {
		return nil, fmt.Errorf("provider %s is not active", providerID)
	}
	return s.mutate(ctx, sessionID, func(draft *Draft) error {
		draft.SetProvider(provider)
		return nil
	})
}

// SelectSchedule sets the wizard's date and time after checking the provider
// is bookable for the draft's estimated duration at that moment.
func (s *DefaultWizardService) SelectSchedule(ctx context.Context, sessionID, date, timeLabel string) (*Draft, error) {
	start, err := CombineDateTime(date, timeLabel)
	if err != nil {
		return nil, err
	}

	draft, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if draft.SelectedProvider == nil {
		return nil, fmt.Errorf("select a provider before choosing a time")
	}

	duration := draft.EstimatedDuration()
	if duration <= 0 {
		return nil, fmt.Errorf("select a service before choosing a time")
	}
	end := start.Add(time.Duration(duration) * time.Minute)

	bookable, err := s.Availability.IsBookable(ctx, draft.SelectedProvider.ID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to check provider availability: %w", err)
	}
	if !bookable {
		return nil, fmt.Errorf("provider is not bookable at the requested time")
	}

	draft.SetDate(date)
	draft.SetTime(timeLabel)
	if err := s.Sessions.Save(ctx, sessionID, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Quote returns the draft's running total, duration and submit readiness.
func (s *DefaultWizardService) Quote(ctx context.Context, sessionID string) (*Quote, error) {
	draft, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	missing := draft.MissingFields()
	return &Quote{
		Total:             draft.CalculateTotal(),
		EstimatedDuration: draft.EstimatedDuration(),
		CanSubmit:         len(missing) == 0,
		MissingFields:     missing,
	}, nil
}

// Confirm submits the draft. Validation runs before any external call; an
// incomplete draft never reaches the reservation store. On success the
// session is discarded (the draft's sole success side effect); on a
// persistence failure the draft is left untouched so the caller may retry.
func (s *DefaultWizardService) Confirm(ctx context.Context, sessionID, customerID, notes string) (*models.Reservation, error) {
	draft, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if notes != "" {
		draft.SetNotes(notes)
	}

	reservation, err := s.Submit(ctx, draft, customerID)
	if err != nil {
		return nil, err
	}

	if err := s.Sessions.Delete(ctx, sessionID); err != nil {
		utils.GetLogger().Warn("failed to discard confirmed booking session",
			zap.String("sessionID", sessionID), zap.Error(err))
	}
	return reservation, nil
}

// Submit validates the draft, issues exactly one create-reservation command
// and resets the draft on success. Persistence errors are surfaced verbatim
// with the draft preserved.
func (s *DefaultWizardService) Submit(ctx context.Context, draft *Draft, customerID string) (*models.Reservation, error) {
	logger := utils.GetLogger()

	if missing := draft.MissingFields(); len(missing) > 0 {
		return nil, NewIncompleteBookingError(missing)
	}

	input, err := draft.buildInput(customerID)
	if err != nil {
		return nil, err
	}

	reservation, err := s.Reservations.Create(ctx, input)
	if err != nil {
		logger.Error("failed to create reservation",
			zap.String("providerID", input.ProviderID), zap.Error(err))
		return nil, err
	}

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleReservationReminder(ctx, reservation, s.ReminderLead); err != nil {
			// Reminder delivery is best effort; the reservation stands.
			logger.Warn("failed to schedule reservation reminder",
				zap.String("reservationID", reservation.ID), zap.Error(err))
		}
	}

	draft.Reset()
	logger.Info("reservation confirmed",
		zap.String("reservationID", reservation.ID),
		zap.String("providerID", reservation.ProviderID),
		zap.Float64("totalPrice", reservation.TotalPrice))
	return reservation, nil
}
