package routes

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"fixfleet-server/models"
	"fixfleet-server/store"
)

// RegisterBookingRoutes registers the booking endpoints
func RegisterBookingRoutes(router *gin.RouterGroup, h *DirectoryHandler) {
	router.GET("/bookings", h.listBookings)
	router.POST("/bookings", h.createBooking)
}

// listBookings returns the full booking list, no filtering
func (h *DirectoryHandler) listBookings(c *gin.Context) {
	c.JSON(http.StatusOK, h.directory.ListBookings())
}

// createBooking creates a pending booking against an existing worker
func (h *DirectoryHandler) createBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Missing required fields",
			"message": err.Error(),
		})
		return
	}

	booking, err := h.directory.AddBooking(req)
	if err != nil {
		if errors.Is(err, store.ErrWorkerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "Worker not found",
				"message": "No worker matches the requested id",
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Missing required fields",
			"message": err.Error(),
		})
		return
	}

	log.Printf("✅ Booking %d created for worker %d", booking.ID, booking.WorkerID)
	c.JSON(http.StatusCreated, booking)
}
