package routes

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"fixfleet-server/config"
	"fixfleet-server/models"
	"fixfleet-server/services"
	"fixfleet-server/store"
)

// recordingSender captures outbound SMS so tests can read delivered codes
type recordingSender struct {
	mu       sync.Mutex
	messages []string
	phones   []string
}

func (r *recordingSender) Send(phone, body string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.phones = append(r.phones, phone)
	r.messages = append(r.messages, body)
	return true, nil
}

func (r *recordingSender) last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.messages) == 0 {
		return ""
	}
	return r.messages[len(r.messages)-1]
}

type testEnv struct {
	router    *gin.Engine
	directory *store.DirectoryStore
	users     *store.UserStore
	tokens    *services.TokenService
	otps      *services.OTPService
	sms       *recordingSender
	oauth     *services.OAuthService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.Load()

	env := &testEnv{
		directory: store.NewDirectoryStore(),
		users:     store.NewUserStore(),
		tokens:    services.NewTokenService(),
		otps:      services.NewOTPService(10 * time.Minute),
		sms:       &recordingSender{},
		oauth:     services.NewOAuthService(),
	}

	env.directory.Seed([]models.Worker{
		{ID: 1, Name: "Ravi Sharma", Skill: models.SkillElectrician, Rating: 4.9, ExperienceYears: 7, DistanceKm: 1.2, Availability: "Available now"},
		{ID: 2, Name: "Anita Verma", Skill: models.SkillPlumber, Rating: 4.8, ExperienceYears: 5, DistanceKm: 2.1, Availability: "Wrapping a job nearby"},
		{ID: 3, Name: "Imran Khan", Skill: models.SkillCarpenter, Rating: 4.7, ExperienceYears: 6, DistanceKm: 0.9, Availability: "Available now"},
	})

	router := gin.New()
	api := router.Group("/api")
	directoryHandler := NewDirectoryHandler(env.directory)
	RegisterWorkerRoutes(api, directoryHandler)
	RegisterBookingRoutes(api, directoryHandler)
	authHandler := NewAuthHandler(env.users, env.tokens, env.otps, env.sms, env.oauth)
	RegisterAuthRoutes(api.Group("/auth"), authHandler)

	env.router = router
	return env
}

func (env *testEnv) request(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
