package ports

import (
	"context"

	"github.com/learnobots/job-portal-api/internal/core/domain"
)

// RegisterInput is the payload for creating a new account.
type RegisterInput struct {
	Email    string
	Password string
}

// UserService owns account creation and read-side user queries.
type UserService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
