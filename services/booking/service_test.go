package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sudsy/models"
	"sudsy/services/availability"
)

// memSessionStore mimics the cache: drafts survive only as JSON, so every
// read hands back a fresh copy the way the real store does.
type memSessionStore struct {
	next     int
	sessions map[string][]byte
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: map[string][]byte{}}
}

func (s *memSessionStore) Create(ctx context.Context, draft *Draft) (string, error) {
	s.next++
	sessionID := fmt.Sprintf("sess-%d", s.next)
	return sessionID, s.Save(ctx, sessionID, draft)
}

func (s *memSessionStore) Get(_ context.Context, sessionID string) (*Draft, error) {
	data, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	var draft Draft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

func (s *memSessionStore) Save(_ context.Context, sessionID string, draft *Draft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	s.sessions[sessionID] = data
	return nil
}

func (s *memSessionStore) Delete(_ context.Context, sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}

type fakeCatalog struct {
	providers map[string]models.Provider
	services  map[string]models.Service
	vehicles  map[string]models.Vehicle
}

func (c *fakeCatalog) GetProvider(_ context.Context, providerID string) (*models.Provider, error) {
	if p, ok := c.providers[providerID]; ok {
		return &p, nil
	}
	return nil, errors.New("provider not found")
}

func (c *fakeCatalog) GetService(_ context.Context, serviceID string) (*models.Service, error) {
	if s, ok := c.services[serviceID]; ok {
		return &s, nil
	}
	return nil, errors.New("service not found")
}

func (c *fakeCatalog) GetServicesByProvider(_ context.Context, providerID string) ([]models.Service, error) {
	var out []models.Service
	for _, s := range c.services {
		if s.ProviderID == providerID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (c *fakeCatalog) GetVehicle(_ context.Context, vehicleID string) (*models.Vehicle, error) {
	if v, ok := c.vehicles[vehicleID]; ok {
		return &v, nil
	}
	return nil, errors.New("vehicle not found")
}

func (c *fakeCatalog) GetVehiclesByCustomer(_ context.Context, customerID string) ([]models.Vehicle, error) {
	var out []models.Vehicle
	for _, v := range c.vehicles {
		if v.CustomerID == customerID {
			out = append(out, v)
		}
	}
	return out, nil
}

type fakeReservationRepo struct {
	created   []models.ReservationInput
	createErr error
}

func (r *fakeReservationRepo) Create(_ context.Context, input models.ReservationInput) (*models.Reservation, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.created = append(r.created, input)
	return &models.Reservation{
		ID:                fmt.Sprintf("res-%d", len(r.created)),
		ProviderID:        input.ProviderID,
		CustomerID:        input.CustomerID,
		ServiceID:         input.ServiceID,
		AddOnIDs:          input.AddOnIDs,
		VehicleID:         input.VehicleID,
		ScheduledAt:       input.ScheduledAt,
		Location:          input.Location,
		TotalPrice:        input.TotalPrice,
		EstimatedDuration: input.EstimatedDuration,
		Notes:             input.Notes,
		Status:            models.ReservationStatusConfirmed,
		CreatedAt:         time.Now(),
	}, nil
}

func (r *fakeReservationRepo) GetByID(_ context.Context, _ string) (*models.Reservation, error) {
	return nil, errors.New("not implemented")
}

func (r *fakeReservationRepo) GetByCustomer(_ context.Context, _ string) ([]models.Reservation, error) {
	return nil, nil
}

func (r *fakeReservationRepo) GetByProvider(_ context.Context, _ string) ([]models.Reservation, error) {
	return nil, nil
}

func (r *fakeReservationRepo) GetByProviderAndRange(_ context.Context, _ string, _, _ time.Time) ([]models.Reservation, error) {
	return nil, nil
}

func (r *fakeReservationRepo) Cancel(_ context.Context, _ string) error {
	return nil
}

// stubAvailability answers IsBookable with a canned verdict; nothing else is
// exercised by the wizard.
type stubAvailability struct {
	availability.Service
	bookable bool
	err      error
}

func (s *stubAvailability) IsBookable(_ context.Context, _ string, _, _ time.Time) (bool, error) {
	return s.bookable, s.err
}

type fakeReminderScheduler struct {
	scheduled []*models.Reservation
	err       error
}

func (f *fakeReminderScheduler) ScheduleReservationReminder(_ context.Context, reservation *models.Reservation, _ time.Duration) error {
	if f.err != nil {
		return f.err
	}
	f.scheduled = append(f.scheduled, reservation)
	return nil
}

type wizardFixture struct {
	svc       *DefaultWizardService
	sessions  *memSessionStore
	repo      *fakeReservationRepo
	reminders *fakeReminderScheduler
	avail     *stubAvailability
}

func newWizardFixture() *wizardFixture {
	sessions := newMemSessionStore()
	repo := &fakeReservationRepo{}
	reminders := &fakeReminderScheduler{}
	avail := &stubAvailability{bookable: true}
	catalog := &fakeCatalog{
		providers: map[string]models.Provider{
			testProvider.ID: testProvider,
			"prov-inactive": {ID: "prov-inactive", BusinessName: "Gone Fishing", IsActive: false},
		},
		services: map[string]models.Service{
			washService.ID:  washService,
			mobileDetail.ID: mobileDetail,
			"svc-retired":   {ID: "svc-retired", ProviderID: testProvider.ID, IsActive: false},
		},
		vehicles: map[string]models.Vehicle{
			testVehicle.ID: testVehicle,
			"veh-other":    {ID: "veh-other", CustomerID: "cust-2"},
		},
	}
	return &wizardFixture{
		svc: &DefaultWizardService{
			Sessions:     sessions,
			Catalog:      catalog,
			Reservations: repo,
			Availability: avail,
			Reminders:    reminders,
			ReminderLead: time.Hour,
		},
		sessions:  sessions,
		repo:      repo,
		reminders: reminders,
		avail:     avail,
	}
}

// walk runs the happy path up to (but not including) Confirm.
func (f *wizardFixture) walk(t *testing.T, ctx context.Context) string {
	t.Helper()
	sessionID, _, err := f.svc.StartSession(ctx)
	require.NoError(t, err)

	_, err = f.svc.SelectService(ctx, sessionID, washService.ID)
	require.NoError(t, err)
	_, err = f.svc.ToggleAddOn(ctx, sessionID, waxAddOn.ID)
	require.NoError(t, err)
	_, err = f.svc.SelectVehicle(ctx, sessionID, "cust-1", testVehicle.ID)
	require.NoError(t, err)
	_, err = f.svc.SelectProvider(ctx, sessionID, testProvider.ID)
	require.NoError(t, err)
	_, err = f.svc.SelectSchedule(ctx, sessionID, "2025-06-02", "10:00 AM")
	require.NoError(t, err)
	return sessionID
}

func TestWizardHappyPath(t *testing.T) {
	ctx := context.Background()
	f := newWizardFixture()
	sessionID := f.walk(t, ctx)

	quote, err := f.svc.Quote(ctx, sessionID)
	require.NoError(t, err)
	assert.True(t, quote.CanSubmit)
	assert.Empty(t, quote.MissingFields)
	assert.InDelta(t, 59.99, quote.Total, 1e-9)
	assert.Equal(t, 75, quote.EstimatedDuration)

	reservation, err := f.svc.Confirm(ctx, sessionID, "cust-1", "ring the bell")
	require.NoError(t, err)
	assert.Equal(t, models.ReservationStatusConfirmed, reservation.Status)
	assert.Equal(t, "ring the bell", reservation.Notes)
	assert.Equal(t, time.Date(2025, 6, 2, 10, 0, 0, 0, time.Local), reservation.ScheduledAt)

	// Exactly one create command reached the store.
	require.Len(t, f.repo.created, 1)
	assert.Equal(t, []string{waxAddOn.ID}, f.repo.created[0].AddOnIDs)

	// The session is gone once the reservation stands.
	_, err = f.svc.GetSession(ctx, sessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// And a reminder was queued for it.
	require.Len(t, f.reminders.scheduled, 1)
	assert.Equal(t, reservation.ID, f.reminders.scheduled[0].ID)
}

func TestConfirmIncompleteDraft(t *testing.T) {
	ctx := context.Background()
	f := newWizardFixture()

	sessionID, _, err := f.svc.StartSession(ctx)
	require.NoError(t, err)
	_, err = f.svc.SelectService(ctx, sessionID, washService.ID)
	require.NoError(t, err)

	_, err = f.svc.Confirm(ctx, sessionID, "cust-1", "")
	require.Error(t, err)
	assert.True(t, IsIncomplete(err))

	var ibe *IncompleteBookingError
	require.ErrorAs(t, err, &ibe)
	assert.Equal(t, []string{"vehicle", "provider", "date", "time"}, ibe.MissingFields)

	// Validation failed before any external call: no write, session intact.
	assert.Empty(t, f.repo.created)
	draft, err := f.svc.GetSession(ctx, sessionID)
	require.NoError(t, err)
	require.NotNil(t, draft.SelectedService)
	assert.Equal(t, washService.ID, draft.SelectedService.ID)
}

func TestConfirmPersistenceFailurePreservesDraft(t *testing.T) {
	ctx := context.Background()
	f := newWizardFixture()
	sessionID := f.walk(t, ctx)

	storeErr := errors.New("reservation store unavailable")
	f.repo.createErr = storeErr

	_, err := f.svc.Confirm(ctx, sessionID, "cust-1", "")
	require.ErrorIs(t, err, storeErr)
	assert.False(t, IsIncomplete(err))

	// The draft survives for a retry with every selection intact.
	draft, err := f.svc.GetSession(ctx, sessionID)
	require.NoError(t, err)
	assert.True(t, draft.CanSubmit())
	assert.Equal(t, "2025-06-02", draft.SelectedDate)
	assert.Equal(t, "10:00 AM", draft.SelectedTime)

	// Clearing the fault lets the same session confirm.
	f.repo.createErr = nil
	_, err = f.svc.Confirm(ctx, sessionID, "cust-1", "")
	require.NoError(t, err)
	assert.Len(t, f.repo.created, 1)
}

func TestConfirmSurvivesReminderFailure(t *testing.T) {
	ctx := context.Background()
	f := newWizardFixture()
	sessionID := f.walk(t, ctx)

	f.reminders.err = errors.New("queue down")

	reservation, err := f.svc.Confirm(ctx, sessionID, "cust-1", "")
	require.NoError(t, err)
	assert.Equal(t, models.ReservationStatusConfirmed, reservation.Status)
	assert.Len(t, f.repo.created, 1)
}

func TestSelectScheduleRejectsUnbookableTime(t *testing.T) {
	ctx := context.Background()
	f := newWizardFixture()

	sessionID, _, err := f.svc.StartSession(ctx)
	require.NoError(t, err)
	_, err = f.svc.SelectService(ctx, sessionID, washService.ID)
	require.NoError(t, err)
	_, err = f.svc.SelectProvider(ctx, sessionID, testProvider.ID)
	require.NoError(t, err)

	f.avail.bookable = false
	_, err = f.svc.SelectSchedule(ctx, sessionID, "2025-06-02", "10:00 AM")
	require.Error(t, err)

	draft, err := f.svc.GetSession(ctx, sessionID)
	require.NoError(t, err)
	assert.Empty(t, draft.SelectedDate)
	assert.Empty(t, draft.SelectedTime)
}

func TestSelectScheduleRequiresProviderAndService(t *testing.T) {
	ctx := context.Background()
	f := newWizardFixture()

	sessionID, _, err := f.svc.StartSession(ctx)
	require.NoError(t, err)

	_, err = f.svc.SelectSchedule(ctx, sessionID, "2025-06-02", "10:00 AM")
	assert.Error(t, err)

	_, err = f.svc.SelectProvider(ctx, sessionID, testProvider.ID)
	require.NoError(t, err)
	_, err = f.svc.SelectSchedule(ctx, sessionID, "2025-06-02", "10:00 AM")
	assert.Error(t, err)
}

func TestSelectServiceRejectsInactive(t *testing.T) {
	ctx := context.Background()
	f := newWizardFixture()

	sessionID, _, err := f.svc.StartSession(ctx)
	require.NoError(t, err)

	_, err = f.svc.SelectService(ctx, sessionID, "svc-retired")
	assert.Error(t, err)
	_, err = f.svc.SelectService(ctx, sessionID, "svc-missing")
	assert.Error(t, err)
}

func TestSelectVehicleEnforcesOwnership(t *testing.T) {
	ctx := context.Background()
	f := newWizardFixture()

	sessionID, _, err := f.svc.StartSession(ctx)
	require.NoError(t, err)

	_, err = f.svc.SelectVehicle(ctx, sessionID, "cust-1", "veh-other")
	assert.Error(t, err)

	draft, err := f.svc.GetSession(ctx, sessionID)
	require.NoError(t, err)
	assert.Nil(t, draft.SelectedVehicle)
}

func TestToggleAddOnUnknownID(t *testing.T) {
	ctx := context.Background()
	f := newWizardFixture()

	sessionID, _, err := f.svc.StartSession(ctx)
	require.NoError(t, err)

	// No service selected yet.
	_, err = f.svc.ToggleAddOn(ctx, sessionID, waxAddOn.ID)
	assert.Error(t, err)

	_, err = f.svc.SelectService(ctx, sessionID, washService.ID)
	require.NoError(t, err)
	_, err = f.svc.ToggleAddOn(ctx, sessionID, "addon-from-another-service")
	assert.Error(t, err)
}

func TestCancelSessionDiscardsDraft(t *testing.T) {
	ctx := context.Background()
	f := newWizardFixture()

	sessionID, _, err := f.svc.StartSession(ctx)
	require.NoError(t, err)

	require.NoError(t, f.svc.CancelSession(ctx, sessionID))
	_, err = f.svc.GetSession(ctx, sessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
