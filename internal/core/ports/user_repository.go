package ports

import (
	"context"

	"github.com/learnobots/job-portal-api/internal/core/domain"
)

// UserRepository defines the persistence contract for user credentials.
// Lookups are pure reads; the unique-email invariant is enforced by the
// storage layer.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
