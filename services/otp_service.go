package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"
)

var (
	// ErrOTPNotFound is returned when no live challenge exists for a phone
	ErrOTPNotFound = errors.New("otp not found or expired")
	// ErrOTPExpired is returned when the challenge's window has passed
	ErrOTPExpired = errors.New("otp expired")
	// ErrOTPMismatch is returned when the submitted code is wrong
	ErrOTPMismatch = errors.New("invalid otp")
)

// Challenge holds one pending OTP verification and the signup metadata
// needed to finish the flow once the code is confirmed.
type Challenge struct {
	Code      string
	ExpiresAt time.Time
	Name      string
	IsSignup  bool
}

// OTPService keeps at most one live challenge per phone number. A new
// issue overwrites any prior challenge for that phone; concurrent
// issues race and the last write wins. Expired entries are cleaned
// lazily on the next lookup, never by a timer.
type OTPService struct {
	mu         sync.Mutex
	challenges map[string]Challenge
	ttl        time.Duration
	now        func() time.Time
}

// NewOTPService creates an OTP store with the given challenge lifetime
func NewOTPService(ttl time.Duration) *OTPService {
	return &OTPService{
		challenges: make(map[string]Challenge),
		ttl:        ttl,
		now:        time.Now,
	}
}

// WithClock overrides the service clock for expiry tests
func (s *OTPService) WithClock(now func() time.Time) *OTPService {
	s.now = now
	return s
}

// Issue generates a fresh 6-digit code for the phone and stores it with
// the pending signup context, replacing any earlier challenge.
func (s *OTPService) Issue(phone, name string, isSignup bool) (string, error) {
	code, err := generateCode()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.challenges[phone] = Challenge{
		Code:      code,
		ExpiresAt: s.now().Add(s.ttl),
		Name:      name,
		IsSignup:  isSignup,
	}
	return code, nil
}

// Verify checks the submitted code against the stored challenge. The
// entry is consumed on success and deleted when found expired, so a
// correct code succeeds exactly once.
func (s *OTPService) Verify(phone, code string) (Challenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	challenge, ok := s.challenges[phone]
	if !ok {
		return Challenge{}, ErrOTPNotFound
	}

	if s.now().After(challenge.ExpiresAt) {
		delete(s.challenges, phone)
		return Challenge{}, ErrOTPExpired
	}

	if challenge.Code != code {
		return Challenge{}, ErrOTPMismatch
	}

	delete(s.challenges, phone)
	return challenge, nil
}

// generateCode produces a uniform-random 6-digit code, leading zeros
// allowed, always 6 digits.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
