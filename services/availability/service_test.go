package availability

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sudsy/models"
)

type fakeRuleRepo struct {
	rules []models.AvailabilityRule
}

func (r *fakeRuleRepo) Create(_ context.Context, rule *models.AvailabilityRule) error {
	if rule.ID == "" {
		rule.ID = uuid.New().String()
	}
	r.rules = append(r.rules, *rule)
	return nil
}

func (r *fakeRuleRepo) CreateMany(_ context.Context, rules []models.AvailabilityRule) error {
	for i := range rules {
		if rules[i].ID == "" {
			rules[i].ID = uuid.New().String()
		}
	}
	r.rules = append(r.rules, rules...)
	return nil
}

func (r *fakeRuleRepo) Update(_ context.Context, rule *models.AvailabilityRule) error {
	for i, existing := range r.rules {
		if existing.ID == rule.ID {
			r.rules[i] = *rule
			return nil
		}
	}
	return nil
}

func (r *fakeRuleRepo) Delete(_ context.Context, _, ruleID string) error {
	for i, existing := range r.rules {
		if existing.ID == ruleID {
			r.rules = append(r.rules[:i], r.rules[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeRuleRepo) GetByID(_ context.Context, _, ruleID string) (*models.AvailabilityRule, error) {
	for _, existing := range r.rules {
		if existing.ID == ruleID {
			rule := existing
			return &rule, nil
		}
	}
	return nil, nil
}

func (r *fakeRuleRepo) GetByProvider(_ context.Context, providerID string) ([]models.AvailabilityRule, error) {
	var out []models.AvailabilityRule
	for _, rule := range r.rules {
		if rule.ProviderID == providerID {
			out = append(out, rule)
		}
	}
	return out, nil
}

type fakeBlockRepo struct {
	blocks []models.BlockedTime
}

func (r *fakeBlockRepo) Create(_ context.Context, block *models.BlockedTime) error {
	if block.ID == "" {
		block.ID = uuid.New().String()
	}
	r.blocks = append(r.blocks, *block)
	return nil
}

func (r *fakeBlockRepo) Delete(_ context.Context, _, blockID string) error {
	for i, existing := range r.blocks {
		if existing.ID == blockID {
			r.blocks = append(r.blocks[:i], r.blocks[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeBlockRepo) GetByProvider(_ context.Context, providerID string) ([]models.BlockedTime, error) {
	var out []models.BlockedTime
	for _, block := range r.blocks {
		if block.ProviderID == providerID {
			out = append(out, block)
		}
	}
	return out, nil
}

func (r *fakeBlockRepo) GetOverlapping(_ context.Context, providerID string, from, to time.Time) ([]models.BlockedTime, error) {
	var out []models.BlockedTime
	for _, block := range r.blocks {
		if block.ProviderID == providerID && block.Overlaps(from, to) {
			out = append(out, block)
		}
	}
	return out, nil
}

func newTestService() (*DefaultAvailabilityService, *fakeRuleRepo, *fakeBlockRepo) {
	rules := &fakeRuleRepo{}
	blocks := &fakeBlockRepo{}
	return &DefaultAvailabilityService{Rules: rules, Blocks: blocks}, rules, blocks
}

func TestCreateRuleValidation(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	tests := []struct {
		name    string
		rule    models.AvailabilityRule
		wantErr bool
	}{
		{
			name:    "valid rule",
			rule:    rule(time.Monday, "09:00", "17:00", true),
			wantErr: false,
		},
		{
			name:    "start equals end",
			rule:    rule(time.Monday, "09:00", "09:00", true),
			wantErr: true,
		},
		{
			name:    "start after end",
			rule:    rule(time.Monday, "17:00", "09:00", true),
			wantErr: true,
		},
		{
			name:    "malformed start time",
			rule:    rule(time.Monday, "9am", "17:00", true),
			wantErr: true,
		},
		{
			name:    "malformed end time",
			rule:    rule(time.Monday, "09:00", "25:00", true),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := len(repo.rules)
			err := svc.CreateRule(ctx, &tt.rule)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsInvalidRule(err), "expected InvalidRuleError, got %T", err)
				// Validation failures never reach the repository.
				assert.Len(t, repo.rules, before)
				return
			}
			require.NoError(t, err)
			assert.Len(t, repo.rules, before+1)
		})
	}
}

func TestCreateBlockValidation(t *testing.T) {
	svc, _, repo := newTestService()
	ctx := context.Background()

	bad := models.BlockedTime{
		ProviderID: "prov-1",
		StartDate:  mondayAt(13, 0),
		EndDate:    mondayAt(12, 0),
	}
	err := svc.CreateBlock(ctx, &bad)
	require.Error(t, err)
	assert.True(t, IsInvalidRule(err))
	assert.Empty(t, repo.blocks)

	good := models.BlockedTime{
		ProviderID: "prov-1",
		StartDate:  mondayAt(12, 0),
		EndDate:    mondayAt(13, 0),
		Reason:     "lunch",
	}
	require.NoError(t, svc.CreateBlock(ctx, &good))
	assert.Len(t, repo.blocks, 1)
}

func TestSetDefaultAvailability(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	inserted, err := svc.SetDefaultAvailability(ctx, "prov-1")
	require.NoError(t, err)
	assert.Equal(t, 5, inserted)
	require.Len(t, repo.rules, 5)

	days := map[time.Weekday]bool{}
	for _, r := range repo.rules {
		assert.Equal(t, "09:00", r.StartTime)
		assert.Equal(t, "17:00", r.EndTime)
		assert.True(t, r.IsAvailable)
		days[r.DayOfWeek] = true
	}
	for day := time.Monday; day <= time.Friday; day++ {
		assert.True(t, days[day], "missing default rule for %s", day)
	}

	// Repeat call is a deterministic no-op.
	inserted, err = svc.SetDefaultAvailability(ctx, "prov-1")
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)
	assert.Len(t, repo.rules, 5)

	// Other providers are unaffected by prov-1's rules.
	inserted, err = svc.SetDefaultAvailability(ctx, "prov-2")
	require.NoError(t, err)
	assert.Equal(t, 5, inserted)
}

func TestServiceIsBookableEndToEnd(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	weekday := rule(time.Monday, "09:00", "17:00", true)
	require.NoError(t, svc.CreateRule(ctx, &weekday))
	require.NoError(t, svc.CreateBlock(ctx, &models.BlockedTime{
		ProviderID: "prov-1",
		StartDate:  mondayAt(12, 0),
		EndDate:    mondayAt(13, 0),
	}))

	bookable, err := svc.IsBookable(ctx, "prov-1", mondayAt(10, 0), mondayAt(11, 0))
	require.NoError(t, err)
	assert.True(t, bookable)

	bookable, err = svc.IsBookable(ctx, "prov-1", mondayAt(12, 30), mondayAt(13, 30))
	require.NoError(t, err)
	assert.False(t, bookable)
}

func TestServiceEnumerateSlotsEndToEnd(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	weekday := rule(time.Monday, "09:00", "17:00", true)
	require.NoError(t, svc.CreateRule(ctx, &weekday))
	require.NoError(t, svc.CreateBlock(ctx, &models.BlockedTime{
		ProviderID: "prov-1",
		StartDate:  mondayAt(12, 0),
		EndDate:    mondayAt(13, 0),
	}))

	slots, err := svc.EnumerateSlots(ctx, "prov-1", monday, monday, time.Hour)
	require.NoError(t, err)
	assert.Len(t, slots, 7)
}
