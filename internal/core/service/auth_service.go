package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/learnobots/job-portal-api/internal/core/domain"
	"github.com/learnobots/job-portal-api/internal/core/ports"
	"github.com/learnobots/job-portal-api/internal/pkg/password"
	"github.com/learnobots/job-portal-api/internal/pkg/token"
)

// AuditSink accepts auth events for asynchronous recording. Enqueueing
// must never block the login path.
type AuditSink interface {
	Enqueue(event ports.AuthEvent)
}

// AuthService verifies credentials and issues token pairs.
type AuthService struct {
	repo     ports.UserRepository
	codec    *token.Codec
	throttle ports.LoginThrottle
	audit    AuditSink
	log      zerolog.Logger
}

func NewAuthService(
	repo ports.UserRepository,
	codec *token.Codec,
	throttle ports.LoginThrottle,
	audit AuditSink,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{repo: repo, codec: codec, throttle: throttle, audit: audit, log: log}
}

// Login authenticates the handle/password pair and returns a freshly
// signed access/refresh token pair. An unknown handle and a bad password
// are surfaced as distinct errors; the password hash never leaves the
// verification call. No token is persisted.
func (s *AuthService) Login(ctx context.Context, email, pass string) (*ports.TokenPair, *domain.User, error) {
	if email == "" || pass == "" {
		return nil, nil, domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		locked, err := s.throttle.TooManyAttempts(ctx, email)
		if err != nil {
			s.log.Warn().Err(err).Str("email", email).Msg("throttle check failed, continuing")
		} else if locked {
			s.record(email, ports.AuditLoginThrottled, "lockout window active")
			return nil, nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		s.record(email, ports.AuditLoginFailed, "unknown handle")
		return nil, nil, err
	}

	if !password.Verify(pass, user.PasswordHash) {
		s.failure(ctx, email)
		s.record(email, ports.AuditLoginFailed, "password mismatch")
		return nil, nil, domain.ErrInvalidCredentials
	}

	access, err := s.codec.IssueAccess(user.ID, user.Email)
	if err != nil {
		return nil, nil, err
	}
	refresh, err := s.codec.IssueRefresh(user.ID, user.Email)
	if err != nil {
		return nil, nil, err
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, email); err != nil {
			s.log.Warn().Err(err).Str("email", email).Msg("throttle reset failed")
		}
	}
	s.record(email, ports.AuditLoginSucceeded, "")
	s.log.Info().Str("user_id", user.ID).Msg("login succeeded")

	return &ports.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
	}, user, nil
}

func (s *AuthService) failure(ctx context.Context, email string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.RecordFailure(ctx, email); err != nil {
		s.log.Warn().Err(err).Str("email", email).Msg("throttle record failed")
	}
}

func (s *AuthService) record(email, action, reason string) {
	if s.audit == nil {
		return
	}
	s.audit.Enqueue(ports.AuthEvent{
		Email:     email,
		Action:    action,
		Reason:    reason,
		Timestamp: time.Now().UTC(),
	})
}
