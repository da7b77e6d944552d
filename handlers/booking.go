package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sudsy/models"
	"sudsy/services/booking"
	"sudsy/utils"
)

// BookingHandler exposes the wizard flow over HTTP. Each step endpoint loads
// the draft, applies one mutation and stores it back; the service serializes
// the mutation itself.
type BookingHandler struct {
	Service booking.WizardService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.WizardService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// StartSession creates a new empty wizard session.
func (h *BookingHandler) StartSession(c *gin.Context) {
	sessionID, draft, err := h.Service.StartSession(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to start booking session", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to start booking session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionID": sessionID, "draft": draft})
}

// GetSession returns the draft in its current state.
func (h *BookingHandler) GetSession(c *gin.Context) {
	draft, err := h.Service.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// SelectService sets the draft's service.
func (h *BookingHandler) SelectService(c *gin.Context) {
	var body struct {
		ServiceID string `json:"serviceId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	draft, err := h.Service.SelectService(c.Request.Context(), c.Param("sessionID"), body.ServiceID)
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// ToggleAddOn flips one add-on of the selected service.
func (h *BookingHandler) ToggleAddOn(c *gin.Context) {
	var body struct {
		AddOnID string `json:"addOnId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	draft, err := h.Service.ToggleAddOn(c.Request.Context(), c.Param("sessionID"), body.AddOnID)
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// SelectVehicle sets the draft's vehicle for the requesting customer.
func (h *BookingHandler) SelectVehicle(c *gin.Context) {
	var body struct {
		CustomerID string `json:"customerId" binding:"required"`
		VehicleID  string `json:"vehicleId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	draft, err := h.Service.SelectVehicle(c.Request.Context(), c.Param("sessionID"), body.CustomerID, body.VehicleID)
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// SelectLocation sets where the service happens.
func (h *BookingHandler) SelectLocation(c *gin.Context) {
	var body models.Location
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	draft, err := h.Service.SelectLocation(c.Request.Context(), c.Param("sessionID"), body)
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// SelectProvider sets the draft's provider.
func (h *BookingHandler) SelectProvider(c *gin.Context) {
	var body struct {
		ProviderID string `json:"providerId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	draft, err := h.Service.SelectProvider(c.Request.Context(), c.Param("sessionID"), body.ProviderID)
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// SelectSchedule sets the draft's date and 12-hour time label after the
// availability check passes.
func (h *BookingHandler) SelectSchedule(c *gin.Context) {
	var body struct {
		Date string `json:"date" binding:"required"` // "YYYY-MM-DD"
		Time string `json:"time" binding:"required"` // e.g. "2:30 PM"
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	draft, err := h.Service.SelectSchedule(c.Request.Context(), c.Param("sessionID"), body.Date, body.Time)
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// Quote returns the running total and submit readiness.
func (h *BookingHandler) Quote(c *gin.Context) {
	quote, err := h.Service.Quote(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// Confirm submits the draft into a reservation and ends the session.
func (h *BookingHandler) Confirm(c *gin.Context) {
	var body struct {
		CustomerID string `json:"customerId" binding:"required"`
		Notes      string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	reservation, err := h.Service.Confirm(c.Request.Context(), c.Param("sessionID"), body.CustomerID, body.Notes)
	if err != nil {
		var incomplete *booking.IncompleteBookingError
		if errors.As(err, &incomplete) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":         "booking is incomplete",
				"missingFields": incomplete.MissingFields,
			})
			return
		}
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservation": reservation})
}

// CancelSession discards the draft.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.Service.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to cancel booking session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking session cancelled"})
}

func (h *BookingHandler) respondSessionError(c *gin.Context, err error) {
	if errors.Is(err, booking.ErrSessionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": booking.ErrSessionNotFound.Error()})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
