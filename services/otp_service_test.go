package services

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIssueProducesSixDigitCodes(t *testing.T) {
	s := NewOTPService(10 * time.Minute)
	sixDigits := regexp.MustCompile(`^\d{6}$`)

	for i := 0; i < 100; i++ {
		code, err := s.Issue("+911234", "", false)
		assert.NoError(t, err)
		assert.Regexp(t, sixDigits, code)
	}
}

func TestVerifyConsumesChallengeExactlyOnce(t *testing.T) {
	s := NewOTPService(10 * time.Minute)

	code, err := s.Issue("+911234", "Asha", true)
	assert.NoError(t, err)

	challenge, err := s.Verify("+911234", code)
	assert.NoError(t, err)
	assert.Equal(t, "Asha", challenge.Name)
	assert.True(t, challenge.IsSignup)

	// Second verify with the same correct code finds nothing.
	_, err = s.Verify("+911234", code)
	assert.ErrorIs(t, err, ErrOTPNotFound)
}

func TestVerifyUnknownPhone(t *testing.T) {
	s := NewOTPService(10 * time.Minute)
	_, err := s.Verify("+910000", "123456")
	assert.ErrorIs(t, err, ErrOTPNotFound)
}

func TestVerifyWrongCodeKeepsChallengeAlive(t *testing.T) {
	s := NewOTPService(10 * time.Minute)
	code, _ := s.Issue("+911234", "", false)

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}
	_, err := s.Verify("+911234", wrong)
	assert.ErrorIs(t, err, ErrOTPMismatch)

	// The right code still works afterwards.
	_, err = s.Verify("+911234", code)
	assert.NoError(t, err)
}

func TestVerifyExpiredChallenge(t *testing.T) {
	now := time.Now()
	s := NewOTPService(10 * time.Minute).WithClock(func() time.Time { return now })

	code, _ := s.Issue("+911234", "", false)

	now = now.Add(10*time.Minute + time.Second)
	_, err := s.Verify("+911234", code)
	assert.ErrorIs(t, err, ErrOTPExpired)

	// The expired entry was deleted on lookup.
	_, err = s.Verify("+911234", code)
	assert.ErrorIs(t, err, ErrOTPNotFound)
}

func TestIssueOverwritesPriorChallenge(t *testing.T) {
	s := NewOTPService(10 * time.Minute)

	first, _ := s.Issue("+911234", "", false)
	second, _ := s.Issue("+911234", "", false)

	if first != second {
		_, err := s.Verify("+911234", first)
		assert.ErrorIs(t, err, ErrOTPMismatch, "old code must not verify")
	}
	_, err := s.Verify("+911234", second)
	assert.NoError(t, err)
}
