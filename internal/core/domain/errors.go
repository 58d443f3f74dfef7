package domain

import "errors"

// Authentication failures are terminal: nothing here is retried, and no
// failure ever falls through to an authenticated state.
var (
	// ErrUserNotFound is surfaced distinctly only at login. Session
	// resolution collapses an unknown subject into ErrUnauthenticated.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserExists signals a duplicate login handle at registration.
	ErrUserExists = errors.New("user already exists")

	// ErrInvalidCredentials covers a password mismatch at login and any
	// structurally invalid login input.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthenticated is the single category every token failure maps
	// to: missing, malformed, badly signed or expired tokens, and subjects
	// that are absent or inactive at resolution time. The causes stay
	// distinguishable in logs but never on the wire.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrForbidden means the identity is known-good but under-privileged.
	ErrForbidden = errors.New("access forbidden")

	// ErrInactiveUser is returned by the standalone activity gate.
	ErrInactiveUser = errors.New("inactive user")

	// ErrUnknownRole is raised at the data-model boundary when a stored
	// role value is outside the closed set.
	ErrUnknownRole = errors.New("unknown role")

	// ErrTooManyAttempts is returned when the login throttle trips.
	ErrTooManyAttempts = errors.New("too many login attempts")
)
