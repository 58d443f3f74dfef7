package ports

import (
	"context"
	"time"
)

// Audit action names recorded for auth outcomes.
const (
	AuditLoginSucceeded = "login_succeeded"
	AuditLoginFailed    = "login_failed"
	AuditLoginThrottled = "login_throttled"
	AuditUserRegistered = "user_registered"
)

// AuthEvent is a single audit record describing an auth outcome.
type AuthEvent struct {
	Email     string
	Action    string
	Reason    string
	Timestamp time.Time
}

// AuditRecorder persists auth events. Recording is best-effort: a failed
// write is logged and dropped, never surfaced to the auth pipeline.
type AuditRecorder interface {
	Record(ctx context.Context, event AuthEvent) error
}
