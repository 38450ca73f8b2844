package client

import (
	"errors"
	"log"
	"math"
	"math/rand"
	"time"

	"fixfleet-server/matching"
	"fixfleet-server/models"
)

var (
	// ErrNoWorkerSelected is returned when booking without a selection
	ErrNoWorkerSelected = errors.New("no worker selected")
	// ErrMissingBookingFields is returned before any server contact when
	// the booking form is incomplete.
	ErrMissingBookingFields = errors.New("issue, time and phone are required")
)

// SearchController owns the current result set and selection, querying
// the API first and falling back to the bundled demo data run through
// the same matching engine, so offline behavior matches online behavior
// whenever possible.
type SearchController struct {
	api      *APIClient
	demo     []models.Worker
	results  []models.Worker
	selected int64
}

// NewSearchController creates a search controller seeded with the demo
// directory as its initial result set.
func NewSearchController(api *APIClient) *SearchController {
	demo := DemoWorkers()
	results := make([]models.Worker, len(demo))
	copy(results, demo)
	return &SearchController{
		api:     api,
		demo:    demo,
		results: results,
	}
}

// Results returns the last fetched or recomputed ordered result set
func (s *SearchController) Results() []models.Worker {
	out := make([]models.Worker, len(s.results))
	copy(out, s.results)
	return out
}

// Search runs a query remotely, recomputing locally over the demo data
// on any failure. Selection is cleared either way.
func (s *SearchController) Search(q matching.Query) []models.Worker {
	workers, err := s.api.GetWorkers(q)
	if err != nil {
		log.Printf("⚠️ Worker search failed, using local fallback: %v", err)
		workers = matching.Match(s.demo, q)
	}

	s.results = workers
	s.selected = 0
	return s.Results()
}

// Select marks a worker as the booking target. Ids not present in the
// current results are a no-op.
func (s *SearchController) Select(id int64) bool {
	for _, w := range s.results {
		if w.ID == id {
			s.selected = id
			return true
		}
	}
	return false
}

// Selected returns the currently selected worker, if any
func (s *SearchController) Selected() (models.Worker, bool) {
	if s.selected == 0 {
		return models.Worker{}, false
	}
	for _, w := range s.results {
		if w.ID == s.selected {
			return w, true
		}
	}
	return models.Worker{}, false
}

// Book submits a booking for the selected worker. Incomplete input is
// rejected before any server contact; a failed server call degrades to
// a simulated demo booking rather than losing the request.
func (s *SearchController) Book(issue, timeSlot, phone string) (models.Booking, bool, error) {
	worker, ok := s.Selected()
	if !ok {
		return models.Booking{}, false, ErrNoWorkerSelected
	}
	if issue == "" || timeSlot == "" || phone == "" {
		return models.Booking{}, false, ErrMissingBookingFields
	}

	booking, err := s.api.CreateBooking(models.BookingRequest{
		WorkerID: worker.ID,
		Issue:    issue,
		Time:     timeSlot,
		Phone:    phone,
	})
	if err != nil {
		log.Printf("⚠️ Booking failed, simulating locally: %v", err)
		return models.Booking{
			ID:       time.Now().UnixMilli(),
			WorkerID: worker.ID,
			Issue:    issue,
			Time:     timeSlot,
			Phone:    phone,
			Status:   models.BookingPending,
		}, true, nil
	}
	return booking, false, nil
}

// RegisterWorker registers a worker remotely, degrading to a local-only
// record appended to the demo set. The new worker joins the current
// results re-ordered by distance.
func (s *SearchController) RegisterWorker(req models.WorkerRequest) (models.Worker, bool, error) {
	demo := false
	worker, err := s.api.RegisterWorker(req)
	if err != nil {
		log.Printf("⚠️ Worker registration failed, keeping local-only record: %v", err)
		demo = true
		bio := req.Bio
		if bio == "" {
			bio = "New FixFleet professional in your area."
		}
		worker = models.Worker{
			ID:              time.Now().UnixMilli(),
			Name:            req.Name,
			Skill:           req.Skill,
			Bio:             bio,
			Phone:           req.Phone,
			Rating:          5.0,
			Jobs:            0,
			ExperienceYears: 1,
			DistanceKm:      math.Round((rand.Float64()*3+0.5)*10) / 10,
			Availability:    "Available now",
		}
		s.demo = append(s.demo, worker)
	}

	if worker.Coordinates == nil {
		worker.Coordinates = &models.Coordinates{
			X: 40 + rand.Float64()*30,
			Y: 35 + rand.Float64()*30,
		}
	}

	s.results = matching.Match(append(s.Results(), worker), matching.Query{SortBy: matching.SortByDistance})
	return worker, demo, nil
}
