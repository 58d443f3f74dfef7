package ports

import (
	"context"

	"github.com/learnobots/job-portal-api/internal/core/domain"
)

// TokenPair carries the two tokens issued at login. The refresh token is
// issued but has no exchange endpoint; it expires like any other token.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// AuthService authenticates credentials and issues signed tokens.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*TokenPair, *domain.User, error)
}

// SessionService resolves an inbound bearer token to a live identity.
// Every failure mode is collapsed into domain.ErrUnauthenticated.
type SessionService interface {
	Resolve(ctx context.Context, rawToken string) (domain.Identity, error)
}
