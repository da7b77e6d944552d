package routes

import (
	"github.com/gin-gonic/gin"

	"sudsy/handlers"
)

// RegisterReservationRoutes registers reservation reads and cancellation.
func RegisterReservationRoutes(r *gin.Engine, h *handlers.ReservationHandler) {
	reservations := r.Group("/api/reservations")
	{
		reservations.GET("/:reservationID", h.GetByID)
		reservations.POST("/:reservationID/cancel", h.Cancel)
	}

	r.GET("/api/customers/:customerID/reservations", h.ListByCustomer)
	r.GET("/api/providers/:providerID/reservations", h.ListByProvider)
}
