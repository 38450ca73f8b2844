package client

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"fixfleet-server/config"
	"fixfleet-server/matching"
	"fixfleet-server/models"
	"fixfleet-server/routes"
	"fixfleet-server/store"
)

// newDirectoryServer serves the worker and booking endpoints over a
// seeded directory.
func newDirectoryServer(t *testing.T, workers []models.Worker) (*httptest.Server, *store.DirectoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.Load()

	directory := store.NewDirectoryStore()
	directory.Seed(workers)

	router := gin.New()
	api := router.Group("/api")
	h := routes.NewDirectoryHandler(directory)
	routes.RegisterWorkerRoutes(api, h)
	routes.RegisterBookingRoutes(api, h)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, directory
}

// offlineController points at a port nothing listens on
func offlineController() *SearchController {
	return NewSearchController(NewAPIClient("http://127.0.0.1:1/api"))
}

func TestSearchUsesServerResults(t *testing.T) {
	srv, _ := newDirectoryServer(t, []models.Worker{
		{ID: 101, Name: "Server Worker", Skill: models.SkillElectrician, DistanceKm: 1.0, Availability: "Available now"},
	})
	s := NewSearchController(NewAPIClient(srv.URL + "/api"))

	results := s.Search(matching.Query{Skill: models.SkillElectrician})
	assert.Len(t, results, 1)
	assert.Equal(t, int64(101), results[0].ID, "server data wins over the demo set")
}

func TestSearchFallsBackToDemoData(t *testing.T) {
	s := offlineController()

	q := matching.Query{Skill: models.SkillPlumber, SortBy: matching.SortByRating}
	results := s.Search(q)
	assert.Equal(t, matching.Match(DemoWorkers(), q), results)
}

func TestSearchOnlineAndOfflineAgree(t *testing.T) {
	srv, _ := newDirectoryServer(t, DemoWorkers())
	online := NewSearchController(NewAPIClient(srv.URL + "/api"))
	offline := offlineController()

	queries := []matching.Query{
		{},
		{Skill: models.SkillElectrician},
		{Urgency: matching.UrgencyNow},
		{SortBy: matching.SortByRating},
		{Skill: models.SkillPlumber, Urgency: matching.UrgencyNow, SortBy: matching.SortByExperience},
	}
	for _, q := range queries {
		assert.Equal(t, offline.Search(q), online.Search(q), "query %+v", q)
	}
}

func TestSearchClearsSelection(t *testing.T) {
	s := offlineController()
	s.Search(matching.Query{})
	assert.True(t, s.Select(1))

	s.Search(matching.Query{Skill: models.SkillCleaning})
	_, ok := s.Selected()
	assert.False(t, ok)
}

func TestSelectRequiresPresentID(t *testing.T) {
	s := offlineController()
	s.Search(matching.Query{Skill: models.SkillPlumber})

	assert.False(t, s.Select(999))
	_, ok := s.Selected()
	assert.False(t, ok)

	assert.True(t, s.Select(2))
	worker, ok := s.Selected()
	assert.True(t, ok)
	assert.Equal(t, "Anita Verma", worker.Name)
}

func TestBookRequiresSelection(t *testing.T) {
	s := offlineController()

	_, _, err := s.Book("Leaking tap", "Tomorrow 10am", "+919876511001")
	assert.ErrorIs(t, err, ErrNoWorkerSelected)
}

func TestBookValidatesBeforeServerContact(t *testing.T) {
	s := offlineController()
	s.Search(matching.Query{})
	s.Select(1)

	_, _, err := s.Book("", "Tomorrow 10am", "+919876511001")
	assert.ErrorIs(t, err, ErrMissingBookingFields)
	_, _, err = s.Book("Leaking tap", "", "+919876511001")
	assert.ErrorIs(t, err, ErrMissingBookingFields)
	_, _, err = s.Book("Leaking tap", "Tomorrow 10am", "")
	assert.ErrorIs(t, err, ErrMissingBookingFields)
}

func TestBookAgainstServer(t *testing.T) {
	srv, directory := newDirectoryServer(t, DemoWorkers())
	s := NewSearchController(NewAPIClient(srv.URL + "/api"))

	s.Search(matching.Query{})
	assert.True(t, s.Select(3))

	booking, demo, err := s.Book("Broken cabinet hinge", "Today 5pm", "+919876511001")
	assert.NoError(t, err)
	assert.False(t, demo)
	assert.Equal(t, int64(3), booking.WorkerID)
	assert.Equal(t, models.BookingPending, booking.Status)

	assert.Len(t, directory.ListBookings(), 1)
}

func TestBookSimulatesLocallyWhenServerUnreachable(t *testing.T) {
	s := offlineController()
	s.Search(matching.Query{})
	assert.True(t, s.Select(2))

	booking, demo, err := s.Book("Leaking tap", "Tomorrow 10am", "+919876511001")
	assert.NoError(t, err)
	assert.True(t, demo, "unreachable server degrades to a simulated booking")
	assert.Equal(t, int64(2), booking.WorkerID)
	assert.Equal(t, models.BookingPending, booking.Status)
	assert.NotZero(t, booking.ID)
}

func TestRegisterWorkerAgainstServer(t *testing.T) {
	srv, directory := newDirectoryServer(t, nil)
	s := NewSearchController(NewAPIClient(srv.URL + "/api"))

	worker, demo, err := s.RegisterWorker(models.WorkerRequest{
		Name: "Meera Pillai", Skill: models.SkillCleaning, Phone: "+919876500001",
	})
	assert.NoError(t, err)
	assert.False(t, demo)
	assert.NotZero(t, worker.ID)
	assert.NotNil(t, worker.Coordinates, "a map position is assigned for display")

	_, findErr := directory.FindWorker(worker.ID)
	assert.NoError(t, findErr)
}

func TestRegisterWorkerFallsBackToLocalRecord(t *testing.T) {
	s := offlineController()

	worker, demo, err := s.RegisterWorker(models.WorkerRequest{
		Name: "Meera Pillai", Skill: models.SkillCleaning, Phone: "+919876500001",
	})
	assert.NoError(t, err)
	assert.True(t, demo)
	assert.Equal(t, 5.0, worker.Rating)
	assert.NotNil(t, worker.Coordinates)

	// The local record participates in subsequent offline searches.
	results := s.Search(matching.Query{Skill: models.SkillCleaning})
	ids := make([]int64, 0, len(results))
	for _, w := range results {
		ids = append(ids, w.ID)
	}
	assert.Contains(t, ids, worker.ID)

	// Results stay ordered by distance after the insert.
	all := s.Search(matching.Query{})
	for i := 1; i < len(all); i++ {
		assert.LessOrEqual(t, all[i-1].DistanceKm, all[i].DistanceKm)
	}
}
