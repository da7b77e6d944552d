package booking

import (
	"sync"

	"sudsy/models"
)

// Draft accumulates a reservation across the wizard steps (service, vehicle,
// location, provider, schedule). Steps are freely revisitable; navigating
// backward never clears later selections unless the changed field
// invalidates them. All mutation goes through the setters, which serialize
// behind the mutex so concurrent callers cannot interleave partial state.
type Draft struct {
	mu sync.Mutex

	SelectedService  *models.Service  `json:"selectedService,omitempty"`
	SelectedAddOns   []models.AddOn   `json:"selectedAddOns,omitempty"`
	SelectedVehicle  *models.Vehicle  `json:"selectedVehicle,omitempty"`
	SelectedLocation *models.Location `json:"selectedLocation,omitempty"`
	SelectedProvider *models.Provider `json:"selectedProvider,omitempty"`
	SelectedDate     string           `json:"selectedDate,omitempty"` // "YYYY-MM-DD"
	SelectedTime     string           `json:"selectedTime,omitempty"` // 12-hour label, e.g. "2:30 PM"
	Notes            string           `json:"notes,omitempty"`
}

// NewDraft returns an empty draft.
func NewDraft() *Draft {
	return &Draft{}
}

// SetService replaces the selected service and drops add-ons that do not
// belong to the new service. Provider, date and time selections survive.
func (d *Draft) SetService(service *models.Service) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.SelectedService = service
	if service == nil {
		d.SelectedAddOns = nil
		return
	}
	var kept []models.AddOn
	for _, addOn := range d.SelectedAddOns {
		if addOn.ServiceID == service.ID {
			kept = append(kept, addOn)
		}
	}
	d.SelectedAddOns = kept
}

// ToggleAddOn inserts the add-on if absent and removes it if present,
// matching by id. Add-ons can only be toggled while a service is selected.
func (d *Draft) ToggleAddOn(addOn models.AddOn) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.SelectedService == nil {
		return
	}
	for i, existing := range d.SelectedAddOns {
		if existing.ID == addOn.ID {
			d.SelectedAddOns = append(d.SelectedAddOns[:i], d.SelectedAddOns[i+1:]...)
			return
		}
	}
	d.SelectedAddOns = append(d.SelectedAddOns, addOn)
}

func (d *Draft) SetVehicle(vehicle *models.Vehicle) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.SelectedVehicle = vehicle
}

func (d *Draft) SetLocation(location *models.Location) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.SelectedLocation = location
}

func (d *Draft) SetProvider(provider *models.Provider) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.SelectedProvider = provider
}

func (d *Draft) SetDate(date string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.SelectedDate = date
}

func (d *Draft) SetTime(timeLabel string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.SelectedTime = timeLabel
}

func (d *Draft) SetNotes(notes string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Notes = notes
}

// CalculateTotal returns the service base price plus every selected add-on.
// Taxes and fees are not this layer's concern. Returns 0 with no service.
func (d *Draft) CalculateTotal() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.totalLocked()
}

func (d *Draft) totalLocked() float64 {
	if d.SelectedService == nil {
		return 0
	}
	total := d.SelectedService.BasePrice
	for _, addOn := range d.SelectedAddOns {
		total += addOn.Price
	}
	return total
}

// EstimatedDuration returns the job length in minutes: service duration plus
// every selected add-on's duration.
func (d *Draft) EstimatedDuration() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.durationLocked()
}

func (d *Draft) durationLocked() int {
	if d.SelectedService == nil {
		return 0
	}
	duration := d.SelectedService.Duration
	for _, addOn := range d.SelectedAddOns {
		duration += addOn.Duration
	}
	return duration
}

// MissingFields lists the steps still required before submission: service,
// vehicle, provider, date and time always; location when the selected
// service is a mobile (on-site) visit.
func (d *Draft) MissingFields() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.missingLocked()
}

func (d *Draft) missingLocked() []string {
	var missing []string
	if d.SelectedService == nil {
		missing = append(missing, "service")
	}
	if d.SelectedVehicle == nil {
		missing = append(missing, "vehicle")
	}
	if d.SelectedProvider == nil {
		missing = append(missing, "provider")
	}
	if d.SelectedDate == "" {
		missing = append(missing, "date")
	}
	if d.SelectedTime == "" {
		missing = append(missing, "time")
	}
	if d.SelectedService != nil && d.SelectedService.Mobile && d.SelectedLocation == nil {
		missing = append(missing, "location")
	}
	return missing
}

// CanSubmit reports whether every required step is complete.
func (d *Draft) CanSubmit() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.missingLocked()) == 0
}

// Reset clears every field back to the initial empty state.
func (d *Draft) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.SelectedService = nil
	d.SelectedAddOns = nil
	d.SelectedVehicle = nil
	d.SelectedLocation = nil
	d.SelectedProvider = nil
	d.SelectedDate = ""
	d.SelectedTime = ""
	d.Notes = ""
}

// buildInput converts the completed draft into the single create-reservation
// command. The caller must have checked CanSubmit.
func (d *Draft) buildInput(customerID string) (models.ReservationInput, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	scheduledAt, err := CombineDateTime(d.SelectedDate, d.SelectedTime)
	if err != nil {
		return models.ReservationInput{}, err
	}

	addOnIDs := make([]string, 0, len(d.SelectedAddOns))
	for _, addOn := range d.SelectedAddOns {
		addOnIDs = append(addOnIDs, addOn.ID)
	}

	return models.ReservationInput{
		ProviderID:        d.SelectedProvider.ID,
		CustomerID:        customerID,
		ServiceID:         d.SelectedService.ID,
		AddOnIDs:          addOnIDs,
		VehicleID:         d.SelectedVehicle.ID,
		ScheduledAt:       scheduledAt,
		Location:          d.SelectedLocation,
		TotalPrice:        d.totalLocked(),
		EstimatedDuration: d.durationLocked(),
		Notes:             d.Notes,
	}, nil
}
