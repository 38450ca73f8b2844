package store

import (
	"sync"
	"time"

	"fixfleet-server/models"
)

// UserStore owns the in-memory account collection. Uniqueness of
// non-empty email, phone and (provider, providerId) is enforced by
// lookup-before-create under the store lock.
type UserStore struct {
	mu     sync.Mutex
	users  []models.User
	lastID int64
}

// NewUserStore creates an empty user store
func NewUserStore() *UserStore {
	return &UserStore{}
}

func (s *UserStore) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// FindByEmail looks up a user by email
func (s *UserStore) FindByEmail(email string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findLocked(func(u models.User) bool {
		return email != "" && u.Email == email
	})
}

// FindByPhone looks up a user by phone number
func (s *UserStore) FindByPhone(phone string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findLocked(func(u models.User) bool {
		return phone != "" && u.Phone == phone
	})
}

// FindByID looks up a user by id
func (s *UserStore) FindByID(id int64) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findLocked(func(u models.User) bool {
		return u.ID == id
	})
}

func (s *UserStore) findLocked(match func(models.User) bool) (models.User, bool) {
	for _, u := range s.users {
		if match(u) {
			return u, true
		}
	}
	return models.User{}, false
}

// Create appends a new user, assigning a fresh id and creation time
func (s *UserStore) Create(user models.User) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = s.nextID()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	s.users = append(s.users, user)
	return user
}

// OAuthIdentity carries the profile fields an OAuth provider hands back
type OAuthIdentity struct {
	Provider   models.AuthProvider
	ProviderID string
	Name       string
	Email      string
	Picture    string
}

// UpsertByIdentity resolves an OAuth login to a user record in one locked
// operation: find by (provider, providerId) or by email, merge the
// provider fields onto the found record, or create a fresh one.
func (s *UserStore) UpsertByIdentity(identity OAuthIdentity) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		u := &s.users[i]
		if s.matchesIdentity(*u, identity) {
			u.Name = identity.Name
			u.Picture = identity.Picture
			u.Provider = identity.Provider
			switch identity.Provider {
			case models.ProviderGoogle:
				u.GoogleID = identity.ProviderID
			case models.ProviderFacebook:
				u.FacebookID = identity.ProviderID
			}
			return *u
		}
	}

	user := models.User{
		ID:        s.nextID(),
		Name:      identity.Name,
		Email:     identity.Email,
		Picture:   identity.Picture,
		Provider:  identity.Provider,
		CreatedAt: time.Now().UTC(),
	}
	switch identity.Provider {
	case models.ProviderGoogle:
		user.GoogleID = identity.ProviderID
	case models.ProviderFacebook:
		user.FacebookID = identity.ProviderID
	}
	s.users = append(s.users, user)
	return user
}

func (s *UserStore) matchesIdentity(u models.User, identity OAuthIdentity) bool {
	switch identity.Provider {
	case models.ProviderGoogle:
		if u.GoogleID != "" && u.GoogleID == identity.ProviderID {
			return true
		}
	case models.ProviderFacebook:
		if u.FacebookID != "" && u.FacebookID == identity.ProviderID {
			return true
		}
	}
	return identity.Email != "" && u.Email == identity.Email
}
