package store

import (
	"errors"
	"math"
	"math/rand"
	"sync"
	"time"

	"fixfleet-server/models"
)

var (
	// ErrWorkerNotFound is returned when a worker id does not resolve
	ErrWorkerNotFound = errors.New("worker not found")
	// ErrMissingFields is returned when a required field is absent
	ErrMissingFields = errors.New("missing required fields")
)

// DirectoryStore owns the in-memory worker and booking collections.
// All mutations are append-only and guarded by a single lock so id
// assignment never interleaves.
type DirectoryStore struct {
	mu       sync.Mutex
	workers  []models.Worker
	bookings []models.Booking
	lastID   int64
}

// NewDirectoryStore creates an empty directory store
func NewDirectoryStore() *DirectoryStore {
	return &DirectoryStore{}
}

// nextID returns a fresh millisecond-derived id, strictly greater than
// any id handed out before it within this process.
func (s *DirectoryStore) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// Seed loads the launch worker set. Intended for startup only.
func (s *DirectoryStore) Seed(workers []models.Worker) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, w := range workers {
		if w.ID > s.lastID {
			s.lastID = w.ID
		}
		s.workers = append(s.workers, w)
	}
}

// ListWorkers returns a snapshot of all workers in insertion order
func (s *DirectoryStore) ListWorkers() []models.Worker {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Worker, len(s.workers))
	copy(out, s.workers)
	return out
}

// FindWorker looks up a worker by id
func (s *DirectoryStore) FindWorker(id int64) (models.Worker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, w := range s.workers {
		if w.ID == id {
			return w, nil
		}
	}
	return models.Worker{}, ErrWorkerNotFound
}

// AddWorker registers a new worker, filling in the launch defaults for
// everything the registration form does not collect.
func (s *DirectoryStore) AddWorker(req models.WorkerRequest) (models.Worker, error) {
	if req.Name == "" || req.Skill == "" || req.Phone == "" {
		return models.Worker{}, ErrMissingFields
	}

	bio := req.Bio
	if bio == "" {
		bio = "New FixFleet professional in your area."
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	worker := models.Worker{
		ID:              s.nextID(),
		Name:            req.Name,
		Skill:           req.Skill,
		Bio:             bio,
		Phone:           req.Phone,
		Rating:          5.0,
		Jobs:            0,
		ExperienceYears: 1,
		DistanceKm:      randomDistanceKm(),
		Availability:    "Available now",
	}

	s.workers = append(s.workers, worker)
	return worker, nil
}

// ListBookings returns a snapshot of all bookings in insertion order
func (s *DirectoryStore) ListBookings() []models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

// AddBooking creates a booking against an existing worker. The booking
// list is never touched when the worker id does not resolve.
func (s *DirectoryStore) AddBooking(req models.BookingRequest) (models.Booking, error) {
	if req.WorkerID == 0 || req.Issue == "" || req.Time == "" || req.Phone == "" {
		return models.Booking{}, ErrMissingFields
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for _, w := range s.workers {
		if w.ID == req.WorkerID {
			found = true
			break
		}
	}
	if !found {
		return models.Booking{}, ErrWorkerNotFound
	}

	booking := models.Booking{
		ID:       s.nextID(),
		WorkerID: req.WorkerID,
		Issue:    req.Issue,
		Time:     req.Time,
		Phone:    req.Phone,
		Status:   models.BookingPending,
	}

	s.bookings = append(s.bookings, booking)
	return booking, nil
}

// randomDistanceKm assigns an informational distance in [0.5, 3.5),
// rounded to one decimal. Not derived from real geolocation.
func randomDistanceKm() float64 {
	return math.Round((rand.Float64()*3+0.5)*10) / 10
}
