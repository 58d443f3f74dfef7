package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/learnobots/job-portal-api/internal/core/domain"
	"github.com/learnobots/job-portal-api/internal/core/ports"
	"github.com/learnobots/job-portal-api/internal/pkg/password"
)

// UserService owns account creation and the read-side user queries the
// HR endpoints expose.
type UserService struct {
	repo  ports.UserRepository
	audit AuditSink
	log   zerolog.Logger
}

func NewUserService(repo ports.UserRepository, audit AuditSink, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, audit: audit, log: log}
}

// Register creates a new active account with the default role. The
// plaintext password is hashed before anything else touches it.
func (s *UserService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	digest, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        input.Email,
		PasswordHash: digest,
		Role:         domain.RoleUser,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	if s.audit != nil {
		s.audit.Enqueue(ports.AuthEvent{
			Email:     created.Email,
			Action:    ports.AuditUserRegistered,
			Timestamp: now,
		})
	}
	s.log.Info().Str("user_id", created.ID).Msg("user registered")

	return created, nil
}

// Get returns a single user by id.
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}
