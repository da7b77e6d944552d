package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sudsy/config"
	"sudsy/models"
	"sudsy/services/availability"
	"sudsy/utils"
)

// AvailabilityHandler exposes provider schedule management: weekly rules,
// one-off blocked times and the bookable-slot query.
type AvailabilityHandler struct {
	Service availability.Service
}

func NewAvailabilityHandler(svc availability.Service) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

type ruleRequest struct {
	DayOfWeek   int    `json:"dayOfWeek"`
	StartTime   string `json:"startTime" binding:"required"`
	EndTime     string `json:"endTime" binding:"required"`
	IsAvailable *bool  `json:"isAvailable"`
}

// CreateRule adds one weekly availability rule for the provider.
func (h *AvailabilityHandler) CreateRule(c *gin.Context) {
	logger := utils.GetLogger()
	providerID := c.Param("providerID")

	var req ruleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("invalid availability rule request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}
	rule := models.AvailabilityRule{
		ProviderID:  providerID,
		DayOfWeek:   time.Weekday(req.DayOfWeek),
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		IsAvailable: isAvailable,
	}

	if err := h.Service.CreateRule(c.Request.Context(), &rule); err != nil {
		if availability.IsInvalidRule(err) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		logger.Error("failed to create availability rule", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create availability rule", "message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"rule": rule})
}

// UpdateRule replaces one rule's fields.
func (h *AvailabilityHandler) UpdateRule(c *gin.Context) {
	providerID := c.Param("providerID")
	ruleID := c.Param("ruleID")

	var req ruleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}
	rule := models.AvailabilityRule{
		ID:          ruleID,
		ProviderID:  providerID,
		DayOfWeek:   time.Weekday(req.DayOfWeek),
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		IsAvailable: isAvailable,
	}

	if err := h.Service.UpdateRule(c.Request.Context(), &rule); err != nil {
		if availability.IsInvalidRule(err) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update availability rule", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rule": rule})
}

// DeleteRule removes one rule.
func (h *AvailabilityHandler) DeleteRule(c *gin.Context) {
	if err := h.Service.DeleteRule(c.Request.Context(), c.Param("providerID"), c.Param("ruleID")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete availability rule", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "rule deleted"})
}

// ListRules returns every rule for the provider.
func (h *AvailabilityHandler) ListRules(c *gin.Context) {
	rules, err := h.Service.ListRules(c.Request.Context(), c.Param("providerID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch availability rules", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rules": rules})
}

// SetDefaultAvailability installs Monday-Friday 09:00-17:00 when the
// provider has no rules yet; repeat calls are a no-op.
func (h *AvailabilityHandler) SetDefaultAvailability(c *gin.Context) {
	inserted, err := h.Service.SetDefaultAvailability(c.Request.Context(), c.Param("providerID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set default availability", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rulesInserted": inserted})
}

// CreateBlock adds a one-off blocked interval.
func (h *AvailabilityHandler) CreateBlock(c *gin.Context) {
	var req struct {
		StartDate   time.Time `json:"startDate" binding:"required"`
		EndDate     time.Time `json:"endDate" binding:"required"`
		Reason      string    `json:"reason"`
		IsRecurring bool      `json:"isRecurring"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	block := models.BlockedTime{
		ProviderID:  c.Param("providerID"),
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Reason:      req.Reason,
		IsRecurring: req.IsRecurring,
	}
	if err := h.Service.CreateBlock(c.Request.Context(), &block); err != nil {
		if availability.IsInvalidRule(err) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create blocked time", "message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"block": block})
}

// DeleteBlock removes a blocked interval.
func (h *AvailabilityHandler) DeleteBlock(c *gin.Context) {
	if err := h.Service.DeleteBlock(c.Request.Context(), c.Param("providerID"), c.Param("blockID")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete blocked time", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "blocked time deleted"})
}

// ListBlocks returns the provider's blocked intervals.
func (h *AvailabilityHandler) ListBlocks(c *gin.Context) {
	blocks, err := h.Service.ListBlocks(c.Request.Context(), c.Param("providerID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch blocked times", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"blocks": blocks})
}

// GetSlots enumerates bookable windows for a date range.
// Query params: from, to ("YYYY-MM-DD", both inclusive), duration (minutes).
func (h *AvailabilityHandler) GetSlots(c *gin.Context) {
	providerID := c.Param("providerID")

	from, err := time.ParseInLocation("2006-01-02", c.Query("from"), time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid 'from' date"})
		return
	}
	to, err := time.ParseInLocation("2006-01-02", c.Query("to"), time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid 'to' date"})
		return
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'to' must not precede 'from'"})
		return
	}

	durationMin := config.AppConfig.DefaultSlotMinutes
	if raw := c.Query("duration"); raw != "" {
		durationMin, err = strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'duration' minutes"})
			return
		}
	}
	if durationMin <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'duration' must be positive"})
		return
	}

	slots, err := h.Service.EnumerateSlots(c.Request.Context(), providerID, from, to, time.Duration(durationMin)*time.Minute)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to enumerate slots", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}
