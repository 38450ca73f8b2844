package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModalStartsHiddenOnLogin(t *testing.T) {
	m := NewAuthModal()
	assert.False(t, m.Visible())
	assert.Equal(t, ViewLogin, m.Active())
}

func TestShowAndHide(t *testing.T) {
	m := NewAuthModal()

	assert.NoError(t, m.Show(ViewSignup))
	assert.True(t, m.Visible())
	assert.Equal(t, ViewSignup, m.Active())

	m.Hide()
	assert.False(t, m.Visible())
	// Hiding does not reset the active view.
	assert.Equal(t, ViewSignup, m.Active())
}

func TestSwitchRejectsUnknownView(t *testing.T) {
	m := NewAuthModal()
	assert.Error(t, m.Switch(AuthView("settings")))
	assert.Equal(t, ViewLogin, m.Active())
}

func TestBackFromMobileForms(t *testing.T) {
	m := NewAuthModal()

	assert.NoError(t, m.Switch(ViewMobile))
	assert.Equal(t, ViewSignup, m.Back())

	assert.NoError(t, m.Switch(ViewMobileLogin))
	assert.Equal(t, ViewLogin, m.Back())
}

func TestBackFromOTPFollowsPendingFlow(t *testing.T) {
	m := NewAuthModal()

	// Signup flow: OTP returns to the signup number form.
	m.SetPending(PendingMobileAuth{Phone: "+919876511001", Name: "Ravi", IsSignup: true})
	assert.NoError(t, m.Switch(ViewMobileOTP))
	assert.Equal(t, ViewMobile, m.Back())

	// Login flow: OTP returns to the login number form.
	m.SetPending(PendingMobileAuth{Phone: "+919876511001"})
	assert.NoError(t, m.Switch(ViewMobileOTP))
	assert.Equal(t, ViewMobileLogin, m.Back())

	// No context at all behaves like the login flow.
	m.ClearPending()
	assert.NoError(t, m.Switch(ViewMobileOTP))
	assert.Equal(t, ViewMobileLogin, m.Back())
}

func TestBackIsNoOpOnRootViews(t *testing.T) {
	m := NewAuthModal()

	assert.NoError(t, m.Switch(ViewLogin))
	assert.Equal(t, ViewLogin, m.Back())

	assert.NoError(t, m.Switch(ViewSignup))
	assert.Equal(t, ViewSignup, m.Back())
}

func TestPendingLifecycle(t *testing.T) {
	m := NewAuthModal()

	_, ok := m.Pending()
	assert.False(t, ok)

	m.SetPending(PendingMobileAuth{Phone: "+919876511001", Name: "Ravi", IsSignup: true})
	p, ok := m.Pending()
	assert.True(t, ok)
	assert.Equal(t, "Ravi", p.Name)

	m.ClearPending()
	_, ok = m.Pending()
	assert.False(t, ok)
}
