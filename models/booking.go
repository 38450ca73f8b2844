package models

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	// BookingPending is the initial status; no further transitions are
	// implemented in this scope.
	BookingPending BookingStatus = "pending"
)

// Booking represents a service request against a specific worker
type Booking struct {
	ID       int64         `json:"id"`
	WorkerID int64         `json:"workerId"`
	Issue    string        `json:"issue"`
	Time     string        `json:"time"`
	Phone    string        `json:"phone"`
	Status   BookingStatus `json:"status"`
}

// BookingRequest represents the booking creation payload
type BookingRequest struct {
	WorkerID int64  `json:"workerId" binding:"required"`
	Issue    string `json:"issue" binding:"required"`
	Time     string `json:"time" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
}
