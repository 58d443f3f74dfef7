package ports

import "context"

// LoginThrottle rate-limits failed login attempts per handle. The window
// and limit are owned by the implementation.
type LoginThrottle interface {
	// TooManyAttempts reports whether the handle is currently locked out.
	TooManyAttempts(ctx context.Context, email string) (bool, error)
	// RecordFailure counts one failed attempt against the handle.
	RecordFailure(ctx context.Context, email string) error
	// Reset clears the failure count after a successful login.
	Reset(ctx context.Context, email string) error
}
