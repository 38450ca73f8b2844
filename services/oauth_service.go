package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/facebook"
	"golang.org/x/oauth2/google"

	"fixfleet-server/config"
	"fixfleet-server/models"
)

// ErrUnknownProvider is returned for providers this service does not support
var ErrUnknownProvider = errors.New("unknown oauth provider")

// OAuthProfile is the provider-neutral profile used to resolve a user
type OAuthProfile struct {
	ID      string
	Name    string
	Email   string
	Picture string
}

type oauthProvider struct {
	config       *oauth2.Config
	profileURL   string
	authOptions  []oauth2.AuthCodeOption
	parseProfile func([]byte) (OAuthProfile, error)
}

// OAuthService drives the authorization-code flows for Google and
// Facebook: building the redirect URL, exchanging the callback code and
// fetching the provider profile.
type OAuthService struct {
	providers map[models.AuthProvider]*oauthProvider
}

// NewOAuthService creates the provider registry from the loaded configuration
func NewOAuthService() *OAuthService {
	googleCfg := config.AppConfig.Google
	facebookCfg := config.AppConfig.Facebook

	return &OAuthService{
		providers: map[models.AuthProvider]*oauthProvider{
			models.ProviderGoogle: {
				config: &oauth2.Config{
					ClientID:     googleCfg.ClientID,
					ClientSecret: googleCfg.ClientSecret,
					RedirectURL:  googleCfg.RedirectURI,
					Scopes:       []string{"profile", "email"},
					Endpoint:     google.Endpoint,
				},
				profileURL: "https://www.googleapis.com/oauth2/v2/userinfo",
				authOptions: []oauth2.AuthCodeOption{
					oauth2.AccessTypeOffline,
					oauth2.SetAuthURLParam("prompt", "consent"),
				},
				parseProfile: parseGoogleProfile,
			},
			models.ProviderFacebook: {
				config: &oauth2.Config{
					ClientID:     facebookCfg.ClientID,
					ClientSecret: facebookCfg.ClientSecret,
					RedirectURL:  facebookCfg.RedirectURI,
					Scopes:       []string{"email", "public_profile"},
					Endpoint:     facebook.Endpoint,
				},
				profileURL:   "https://graph.facebook.com/v18.0/me?fields=id,name,email,picture",
				parseProfile: parseFacebookProfile,
			},
		},
	}
}

// OverrideEndpoints points a provider at different token/profile URLs.
// Tests use this to stand in a mock provider.
func (s *OAuthService) OverrideEndpoints(provider models.AuthProvider, endpoint oauth2.Endpoint, profileURL string) error {
	p, ok := s.providers[provider]
	if !ok {
		return ErrUnknownProvider
	}
	p.config.Endpoint = endpoint
	p.profileURL = profileURL
	return nil
}

// AuthURL builds the provider's authorize redirect URL
func (s *OAuthService) AuthURL(provider models.AuthProvider) (string, error) {
	p, ok := s.providers[provider]
	if !ok {
		return "", ErrUnknownProvider
	}
	return p.config.AuthCodeURL("state", p.authOptions...), nil
}

// FetchProfile exchanges a callback code for an access token and loads
// the provider profile with it.
func (s *OAuthService) FetchProfile(ctx context.Context, provider models.AuthProvider, code string) (OAuthProfile, error) {
	p, ok := s.providers[provider]
	if !ok {
		return OAuthProfile{}, ErrUnknownProvider
	}

	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return OAuthProfile{}, fmt.Errorf("code exchange failed: %w", err)
	}

	resp, err := p.config.Client(ctx, token).Get(p.profileURL)
	if err != nil {
		return OAuthProfile{}, fmt.Errorf("profile fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return OAuthProfile{}, fmt.Errorf("profile fetch returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return OAuthProfile{}, err
	}

	return p.parseProfile(body)
}

func parseGoogleProfile(body []byte) (OAuthProfile, error) {
	var payload struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Email   string `json:"email"`
		Picture string `json:"picture"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return OAuthProfile{}, err
	}
	return OAuthProfile{
		ID:      payload.ID,
		Name:    payload.Name,
		Email:   payload.Email,
		Picture: payload.Picture,
	}, nil
}

func parseFacebookProfile(body []byte) (OAuthProfile, error) {
	var payload struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Email   string `json:"email"`
		Picture struct {
			Data struct {
				URL string `json:"url"`
			} `json:"data"`
		} `json:"picture"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return OAuthProfile{}, err
	}
	return OAuthProfile{
		ID:      payload.ID,
		Name:    payload.Name,
		Email:   payload.Email,
		Picture: payload.Picture.Data.URL,
	}, nil
}
