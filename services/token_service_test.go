package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fixfleet-server/config"
	"fixfleet-server/models"
)

func newTestTokenService() *TokenService {
	config.Load()
	return NewTokenService()
}

func TestIssueVerifyRoundTripsClaims(t *testing.T) {
	ts := newTestTokenService()
	user := models.User{ID: 42, Email: "a@example.com", Phone: "+911234"}

	token, err := ts.Issue(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ts.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "a@example.com", claims.Email)
	assert.Equal(t, "+911234", claims.Phone)
}

func TestVerifyFailsExpiredAfterSevenDays(t *testing.T) {
	now := time.Now()
	ts := newTestTokenService().WithClock(func() time.Time { return now })

	token, err := ts.Issue(models.User{ID: 1})
	assert.NoError(t, err)

	// Just inside the window.
	now = now.Add(7*24*time.Hour - time.Minute)
	_, err = ts.Verify(token)
	assert.NoError(t, err)

	// Just past it.
	now = now.Add(2 * time.Minute)
	_, err = ts.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	ts := newTestTokenService()

	_, err := ts.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyRejectsForeignSignature(t *testing.T) {
	ts := newTestTokenService()
	token, err := ts.Issue(models.User{ID: 1})
	assert.NoError(t, err)

	other := &TokenService{secret: []byte("some-other-secret"), expiry: ts.expiry, now: time.Now}
	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
