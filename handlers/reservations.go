package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	reservationRepo "sudsy/database/repository/reservation"
)

// ReservationHandler exposes reads and cancellation over confirmed
// reservations.
type ReservationHandler struct {
	Repo reservationRepo.Repository
}

func NewReservationHandler(repo reservationRepo.Repository) *ReservationHandler {
	return &ReservationHandler{Repo: repo}
}

// GetByID fetches one reservation.
func (h *ReservationHandler) GetByID(c *gin.Context) {
	reservation, err := h.Repo.GetByID(c.Request.Context(), c.Param("reservationID"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "reservation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reservation", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservation": reservation})
}

// ListByCustomer returns a customer's reservations, soonest first.
func (h *ReservationHandler) ListByCustomer(c *gin.Context) {
	reservations, err := h.Repo.GetByCustomer(c.Request.Context(), c.Param("customerID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reservations", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": reservations})
}

// ListByProvider returns a provider's reservations, soonest first.
func (h *ReservationHandler) ListByProvider(c *gin.Context) {
	reservations, err := h.Repo.GetByProvider(c.Request.Context(), c.Param("providerID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reservations", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": reservations})
}

// Cancel flips a reservation to cancelled.
func (h *ReservationHandler) Cancel(c *gin.Context) {
	if err := h.Repo.Cancel(c.Request.Context(), c.Param("reservationID")); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "reservation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel reservation", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "reservation cancelled"})
}
