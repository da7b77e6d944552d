package routes

import (
	"github.com/gin-gonic/gin"

	"sudsy/handlers"
)

// RegisterBookingRoutes registers the booking wizard endpoints.
func RegisterBookingRoutes(r *gin.Engine, h *handlers.BookingHandler) {
	booking := r.Group("/api/booking")
	{
		booking.POST("/session", h.StartSession)
		booking.GET("/session/:sessionID", h.GetSession)
		booking.DELETE("/session/:sessionID", h.CancelSession)

		// Wizard steps; each is freely revisitable.
		booking.PUT("/session/:sessionID/service", h.SelectService)
		booking.PUT("/session/:sessionID/add-on", h.ToggleAddOn)
		booking.PUT("/session/:sessionID/vehicle", h.SelectVehicle)
		booking.PUT("/session/:sessionID/location", h.SelectLocation)
		booking.PUT("/session/:sessionID/provider", h.SelectProvider)
		booking.PUT("/session/:sessionID/schedule", h.SelectSchedule)

		booking.GET("/session/:sessionID/quote", h.Quote)
		booking.POST("/session/:sessionID/confirm", h.Confirm)
	}
}
