package client

import (
	"encoding/json"
	"fmt"
	"net/url"

	"fixfleet-server/models"
)

// SessionController owns the logged-in user state, mirrored into
// durable storage under two slots so a restarted client restores the
// session without a network round trip.
type SessionController struct {
	storage Storage
	current *models.User
}

// NewSessionController creates a session controller over the given storage
func NewSessionController(storage Storage) *SessionController {
	return &SessionController{storage: storage}
}

// SetUser records a login. A nil user clears both slots, which is the
// only logout mechanism; there is no server call.
func (s *SessionController) SetUser(user *models.User, token string) error {
	s.current = user

	if user == nil {
		if err := s.storage.Delete(UserKey); err != nil {
			return err
		}
		return s.storage.Delete(TokenKey)
	}

	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := s.storage.Set(UserKey, string(data)); err != nil {
		return err
	}
	if token != "" {
		return s.storage.Set(TokenKey, token)
	}
	return nil
}

// Logout clears the session
func (s *SessionController) Logout() error {
	return s.SetUser(nil, "")
}

// CurrentUser returns the logged-in user, restoring it from storage
// when the in-memory copy is gone.
func (s *SessionController) CurrentUser() *models.User {
	if s.current != nil {
		return s.current
	}
	stored, ok := s.storage.Get(UserKey)
	if !ok {
		return nil
	}
	var user models.User
	if err := json.Unmarshal([]byte(stored), &user); err != nil {
		return nil
	}
	s.current = &user
	return s.current
}

// Token returns the stored bearer token, if any
func (s *SessionController) Token() string {
	token, _ := s.storage.Get(TokenKey)
	return token
}

// HandleCallbackURL inspects a page URL for OAuth callback parameters.
// When token+user are present they are adopted as the session; an error
// parameter is surfaced as an error. Either way the auth parameters are
// stripped from the returned URL so a reload does not reprocess them.
// handled is false when the URL carries no callback parameters at all.
func (s *SessionController) HandleCallbackURL(raw string) (cleaned string, handled bool, err error) {
	u, parseErr := url.Parse(raw)
	if parseErr != nil {
		return raw, false, parseErr
	}

	query := u.Query()
	oauthErr := query.Get("error")
	token := query.Get("token")
	userParam := query.Get("user")

	if oauthErr == "" && (token == "" || userParam == "") {
		return raw, false, nil
	}

	query.Del("error")
	query.Del("token")
	query.Del("user")
	u.RawQuery = query.Encode()
	cleaned = u.String()

	if oauthErr != "" {
		return cleaned, true, fmt.Errorf("oauth error: %s", oauthErr)
	}

	var user models.User
	if err := json.Unmarshal([]byte(userParam), &user); err != nil {
		return cleaned, true, fmt.Errorf("failed to parse oauth callback user: %w", err)
	}
	if err := s.SetUser(&user, token); err != nil {
		return cleaned, true, err
	}
	return cleaned, true, nil
}
