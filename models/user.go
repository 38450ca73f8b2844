package models

import "time"

// AuthProvider identifies which OAuth provider established a user's identity
type AuthProvider string

const (
	ProviderGoogle   AuthProvider = "google"
	ProviderFacebook AuthProvider = "facebook"
)

// User represents an account. Exactly one of the password, phone/OTP or
// OAuth paths establishes identity at signup, but a record found by phone
// or email can later be enriched with provider fields.
type User struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name,omitempty"`
	Email        string       `json:"email,omitempty"`
	PasswordHash string       `json:"-"` // Hidden from JSON
	Phone        string       `json:"phone,omitempty"`
	GoogleID     string       `json:"googleId,omitempty"`
	FacebookID   string       `json:"facebookId,omitempty"`
	Provider     AuthProvider `json:"provider,omitempty"`
	Picture      string       `json:"picture,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// SignupRequest represents the email/password signup payload
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest represents the email/password login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// MobileSignupRequest represents the phone signup payload
type MobileSignupRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

// MobileLoginRequest represents the phone login payload
type MobileLoginRequest struct {
	Phone string `json:"phone" binding:"required"`
}

// VerifyOTPRequest represents the OTP verification payload
type VerifyOTPRequest struct {
	Phone string `json:"phone" binding:"required"`
	OTP   string `json:"otp" binding:"required"`
}

// AuthResponse represents a successful authentication result
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
