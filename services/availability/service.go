package availability

import (
	"context"
	"fmt"
	"time"

	availabilityRepo "sudsy/database/repository/availability"
	"sudsy/models"
	"sudsy/utils"

	"go.uber.org/zap"
)

// Default weekday working hours installed by SetDefaultAvailability.
const (
	defaultStartTime = "09:00"
	defaultEndTime   = "17:00"
)

// Service manages a provider's availability rules and blocked times, and
// answers bookability queries through the resolver.
type Service interface {
	CreateRule(ctx context.Context, rule *models.AvailabilityRule) error
	UpdateRule(ctx context.Context, rule *models.AvailabilityRule) error
	DeleteRule(ctx context.Context, providerID, ruleID string) error
	ListRules(ctx context.Context, providerID string) ([]models.AvailabilityRule, error)
	SetDefaultAvailability(ctx context.Context, providerID string) (int, error)

	CreateBlock(ctx context.Context, block *models.BlockedTime) error
	DeleteBlock(ctx context.Context, providerID, blockID string) error
	ListBlocks(ctx context.Context, providerID string) ([]models.BlockedTime, error)

	IsBookable(ctx context.Context, providerID string, candidateStart, candidateEnd time.Time) (bool, error)
	EnumerateSlots(ctx context.Context, providerID string, rangeStart, rangeEnd time.Time, slotDuration time.Duration) ([]models.BookableSlot, error)
}

// DefaultAvailabilityService implements Service on top of the rule and block
// repositories.
type DefaultAvailabilityService struct {
	Rules  availabilityRepo.RuleRepository
	Blocks availabilityRepo.BlockRepository
}

func validateRule(rule *models.AvailabilityRule) error {
	if rule.ProviderID == "" {
		return NewInvalidRuleError("providerId is required")
	}
	if rule.DayOfWeek < time.Sunday || rule.DayOfWeek > time.Saturday {
		return NewInvalidRuleError("dayOfWeek must be between 0 (Sunday) and 6 (Saturday)")
	}
	start, err := ParseClock(rule.StartTime)
	if err != nil {
		return NewInvalidRuleError(fmt.Sprintf("startTime: %v", err))
	}
	end, err := ParseClock(rule.EndTime)
	if err != nil {
		return NewInvalidRuleError(fmt.Sprintf("endTime: %v", err))
	}
	if start >= end {
		return NewInvalidRuleError("startTime must be before endTime")
	}
	return nil
}

func (s *DefaultAvailabilityService) CreateRule(ctx context.Context, rule *models.AvailabilityRule) error {
	if err := validateRule(rule); err != nil {
		return err
	}
	return s.Rules.Create(ctx, rule)
}

func (s *DefaultAvailabilityService) UpdateRule(ctx context.Context, rule *models.AvailabilityRule) error {
	if err := validateRule(rule); err != nil {
		return err
	}
	if rule.ID == "" {
		return NewInvalidRuleError("rule id is required")
	}
	return s.Rules.Update(ctx, rule)
}

func (s *DefaultAvailabilityService) DeleteRule(ctx context.Context, providerID, ruleID string) error {
	return s.Rules.Delete(ctx, providerID, ruleID)
}

func (s *DefaultAvailabilityService) ListRules(ctx context.Context, providerID string) ([]models.AvailabilityRule, error) {
	return s.Rules.GetByProvider(ctx, providerID)
}

// SetDefaultAvailability installs Monday-Friday 09:00-17:00 rules for a
// provider with no rules yet. Idempotent: when any rules already exist it is
// a no-op and returns 0 inserted.
func (s *DefaultAvailabilityService) SetDefaultAvailability(ctx context.Context, providerID string) (int, error) {
	existing, err := s.Rules.GetByProvider(ctx, providerID)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	rules := make([]models.AvailabilityRule, 0, 5)
	for day := time.Monday; day <= time.Friday; day++ {
		rules = append(rules, models.AvailabilityRule{
			ProviderID:  providerID,
			DayOfWeek:   day,
			StartTime:   defaultStartTime,
			EndTime:     defaultEndTime,
			IsAvailable: true,
		})
	}
	if err := s.Rules.CreateMany(ctx, rules); err != nil {
		return 0, err
	}

	utils.GetLogger().Info("installed default availability",
		zap.String("providerID", providerID), zap.Int("rules", len(rules)))
	return len(rules), nil
}

func (s *DefaultAvailabilityService) CreateBlock(ctx context.Context, block *models.BlockedTime) error {
	if block.ProviderID == "" {
		return NewInvalidRuleError("providerId is required")
	}
	if !block.EndDate.After(block.StartDate) {
		return NewInvalidRuleError("endDate must be after startDate")
	}
	return s.Blocks.Create(ctx, block)
}

func (s *DefaultAvailabilityService) DeleteBlock(ctx context.Context, providerID, blockID string) error {
	return s.Blocks.Delete(ctx, providerID, blockID)
}

func (s *DefaultAvailabilityService) ListBlocks(ctx context.Context, providerID string) ([]models.BlockedTime, error) {
	return s.Blocks.GetByProvider(ctx, providerID)
}

func (s *DefaultAvailabilityService) IsBookable(ctx context.Context, providerID string, candidateStart, candidateEnd time.Time) (bool, error) {
	rules, err := s.Rules.GetByProvider(ctx, providerID)
	if err != nil {
		return false, fmt.Errorf("failed to fetch availability rules: %w", err)
	}
	blocks, err := s.Blocks.GetOverlapping(ctx, providerID, candidateStart, candidateEnd)
	if err != nil {
		return false, fmt.Errorf("failed to fetch blocked times: %w", err)
	}
	return IsBookable(rules, blocks, candidateStart, candidateEnd), nil
}

func (s *DefaultAvailabilityService) EnumerateSlots(ctx context.Context, providerID string, rangeStart, rangeEnd time.Time, slotDuration time.Duration) ([]models.BookableSlot, error) {
	rules, err := s.Rules.GetByProvider(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability rules: %w", err)
	}
	blocks, err := s.Blocks.GetOverlapping(ctx, providerID, dateOf(rangeStart), dateOf(rangeEnd).AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch blocked times: %w", err)
	}
	return EnumerateSlots(rules, blocks, rangeStart, rangeEnd, slotDuration), nil
}
