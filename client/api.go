package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"fixfleet-server/matching"
	"fixfleet-server/models"
)

// APIError is a structured error response from the server
type APIError struct {
	Status  int    `json:"-"`
	Message string `json:"error"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// OTPResponse is the body of the signup-mobile and login-mobile endpoints
type OTPResponse struct {
	Message string `json:"message"`
	Phone   string `json:"phone"`
	Demo    bool   `json:"demo"`
}

// APIClient is the typed HTTP client for the FixFleet API
type APIClient struct {
	baseURL string
	http    *http.Client
	token   string
}

// NewAPIClient creates a client for the given base URL, e.g.
// "http://localhost:4000/api".
func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// SetToken attaches a bearer token to subsequent requests
func (c *APIClient) SetToken(token string) {
	c.token = token
}

// GetWorkers fetches the matched worker list for a query
func (c *APIClient) GetWorkers(q matching.Query) ([]models.Worker, error) {
	params := url.Values{}
	if q.Skill != "" {
		params.Set("skill", string(q.Skill))
	}
	if q.Urgency != "" {
		params.Set("urgency", q.Urgency)
	}
	if q.SortBy != "" {
		params.Set("sortBy", q.SortBy)
	}

	var workers []models.Worker
	if err := c.do(http.MethodGet, "/workers?"+params.Encode(), nil, &workers); err != nil {
		return nil, err
	}
	return workers, nil
}

// RegisterWorker registers a new worker
func (c *APIClient) RegisterWorker(req models.WorkerRequest) (models.Worker, error) {
	var worker models.Worker
	err := c.do(http.MethodPost, "/workers", req, &worker)
	return worker, err
}

// CreateBooking submits a booking request
func (c *APIClient) CreateBooking(req models.BookingRequest) (models.Booking, error) {
	var booking models.Booking
	err := c.do(http.MethodPost, "/bookings", req, &booking)
	return booking, err
}

// ListBookings fetches the full booking list
func (c *APIClient) ListBookings() ([]models.Booking, error) {
	var bookings []models.Booking
	err := c.do(http.MethodGet, "/bookings", nil, &bookings)
	return bookings, err
}

// Signup registers an email/password account
func (c *APIClient) Signup(name, email, password string) (models.AuthResponse, error) {
	var resp models.AuthResponse
	err := c.do(http.MethodPost, "/auth/signup", models.SignupRequest{
		Name: name, Email: email, Password: password,
	}, &resp)
	return resp, err
}

// Login authenticates with email and password
func (c *APIClient) Login(email, password string) (models.AuthResponse, error) {
	var resp models.AuthResponse
	err := c.do(http.MethodPost, "/auth/login", models.LoginRequest{
		Email: email, Password: password,
	}, &resp)
	return resp, err
}

// SignupMobile starts the OTP signup flow
func (c *APIClient) SignupMobile(name, phone string) (OTPResponse, error) {
	var resp OTPResponse
	err := c.do(http.MethodPost, "/auth/signup-mobile", models.MobileSignupRequest{
		Name: name, Phone: phone,
	}, &resp)
	return resp, err
}

// LoginMobile starts the OTP login flow
func (c *APIClient) LoginMobile(phone string) (OTPResponse, error) {
	var resp OTPResponse
	err := c.do(http.MethodPost, "/auth/login-mobile", models.MobileLoginRequest{
		Phone: phone,
	}, &resp)
	return resp, err
}

// VerifyOTP completes an OTP flow
func (c *APIClient) VerifyOTP(phone, otp string) (models.AuthResponse, error) {
	var resp models.AuthResponse
	err := c.do(http.MethodPost, "/auth/verify-otp", models.VerifyOTPRequest{
		Phone: phone, OTP: otp,
	}, &resp)
	return resp, err
}

// GoogleAuthURL fetches the Google authorize URL
func (c *APIClient) GoogleAuthURL() (string, error) {
	return c.authURL("/auth/google")
}

// FacebookAuthURL fetches the Facebook authorize URL
func (c *APIClient) FacebookAuthURL() (string, error) {
	return c.authURL("/auth/facebook")
}

func (c *APIClient) authURL(path string) (string, error) {
	var resp struct {
		AuthURL string `json:"authUrl"`
	}
	if err := c.do(http.MethodGet, path, nil, &resp); err != nil {
		return "", err
	}
	return resp.AuthURL, nil
}

// do performs one JSON round trip, decoding error bodies into APIError
func (c *APIClient) do(method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode}
		if decodeErr := json.NewDecoder(resp.Body).Decode(apiErr); decodeErr != nil || apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
