package routes

import (
	"github.com/gin-gonic/gin"

	"sudsy/handlers"
)

// HandlerBundle groups every handler the router needs.
type HandlerBundle struct {
	Booking      *handlers.BookingHandler
	Availability *handlers.AvailabilityHandler
	Reservations *handlers.ReservationHandler
}

// RegisterRoutes wires every endpoint group onto the router.
func RegisterRoutes(r *gin.Engine, b *HandlerBundle) {
	r.GET("/health", handlers.HealthHandler)

	RegisterBookingRoutes(r, b.Booking)
	RegisterAvailabilityRoutes(r, b.Availability)
	RegisterReservationRoutes(r, b.Reservations)
}
