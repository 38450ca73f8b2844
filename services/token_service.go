package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"fixfleet-server/config"
	"fixfleet-server/models"
	"fixfleet-server/types"
)

var (
	// ErrTokenExpired is returned when a token's validity window has passed
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid is returned for malformed or badly signed tokens
	ErrTokenInvalid = errors.New("token invalid")
)

// TokenService issues and verifies the opaque bearer credentials that
// back sessions. Stateless beyond the signing secret; there is no
// server-side revocation, logout is purely client-side deletion.
type TokenService struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

// NewTokenService creates a token service from the loaded configuration
func NewTokenService() *TokenService {
	return &TokenService{
		secret: []byte(config.AppConfig.JWT.Secret),
		expiry: time.Duration(config.AppConfig.JWT.ExpiryDays) * 24 * time.Hour,
		now:    time.Now,
	}
}

// WithClock overrides the service clock. Used by tests to simulate the
// passage of the validity window.
func (ts *TokenService) WithClock(now func() time.Time) *TokenService {
	ts.now = now
	return ts
}

// Issue generates a signed token binding to the user's id, email and phone
func (ts *TokenService) Issue(user models.User) (string, error) {
	now := ts.now()
	claims := &types.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Phone:  user.Phone,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(ts.secret)
}

// Verify parses and validates a token, returning its claims
func (ts *TokenService) Verify(tokenString string) (*types.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &types.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return ts.secret, nil
	}, jwt.WithTimeFunc(ts.now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*types.Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
