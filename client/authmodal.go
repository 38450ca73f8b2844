package client

import "fmt"

// AuthView names one view of the auth modal
type AuthView string

const (
	ViewLogin       AuthView = "login"
	ViewSignup      AuthView = "signup"
	ViewMobile      AuthView = "mobile"
	ViewMobileLogin AuthView = "mobile-login"
	ViewMobileOTP   AuthView = "mobile-otp"
)

// PendingMobileAuth carries the phone flow context from the number form
// to the OTP view.
type PendingMobileAuth struct {
	Phone    string
	Name     string
	IsSignup bool
}

// AuthModal is the modal's view state machine: exactly one view is
// active at a time and each view names its own back target, there is no
// history stack.
type AuthModal struct {
	visible bool
	active  AuthView
	pending *PendingMobileAuth
}

// NewAuthModal creates a hidden modal on the login view
func NewAuthModal() *AuthModal {
	return &AuthModal{active: ViewLogin}
}

// Visible reports whether the modal is shown
func (m *AuthModal) Visible() bool { return m.visible }

// Active returns the currently active view
func (m *AuthModal) Active() AuthView { return m.active }

// Show opens the modal on the given view
func (m *AuthModal) Show(view AuthView) error {
	if err := m.Switch(view); err != nil {
		return err
	}
	m.visible = true
	return nil
}

// Hide closes the modal
func (m *AuthModal) Hide() {
	m.visible = false
}

// Switch activates a named view
func (m *AuthModal) Switch(view AuthView) error {
	switch view {
	case ViewLogin, ViewSignup, ViewMobile, ViewMobileLogin, ViewMobileOTP:
		m.active = view
		return nil
	default:
		return fmt.Errorf("unknown auth view: %s", view)
	}
}

// SetPending records the in-flight mobile auth context before switching
// to the OTP view.
func (m *AuthModal) SetPending(p PendingMobileAuth) {
	m.pending = &p
}

// Pending returns the in-flight mobile auth context, if any
func (m *AuthModal) Pending() (PendingMobileAuth, bool) {
	if m.pending == nil {
		return PendingMobileAuth{}, false
	}
	return *m.pending, true
}

// ClearPending drops the mobile auth context after verification
func (m *AuthModal) ClearPending() {
	m.pending = nil
}

// Back navigates to the active view's named back target. The OTP view
// returns to whichever number form started the flow.
func (m *AuthModal) Back() AuthView {
	switch m.active {
	case ViewMobile:
		m.active = ViewSignup
	case ViewMobileLogin:
		m.active = ViewLogin
	case ViewMobileOTP:
		if m.pending != nil && m.pending.IsSignup {
			m.active = ViewMobile
		} else {
			m.active = ViewMobileLogin
		}
	}
	return m.active
}
