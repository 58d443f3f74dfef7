package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/learnobots/job-portal-api/internal/core/domain"
	"github.com/learnobots/job-portal-api/internal/core/ports"
	"github.com/learnobots/job-portal-api/internal/pkg/token"
)

// SessionService resolves bearer tokens to identity snapshots.
type SessionService struct {
	repo  ports.UserRepository
	codec *token.Codec
	log   zerolog.Logger
}

func NewSessionService(repo ports.UserRepository, codec *token.Codec, log zerolog.Logger) *SessionService {
	return &SessionService{repo: repo, codec: codec, log: log}
}

// Resolve validates the raw token and maps its subject to a live user.
// Every failure — bad signature, wrong algorithm, malformed payload,
// expired token, unknown subject, inactive account — comes back as
// domain.ErrUnauthenticated. The precise cause is logged at debug level
// but deliberately not leaked to a caller holding a stale token.
func (s *SessionService) Resolve(ctx context.Context, rawToken string) (domain.Identity, error) {
	claims, err := s.codec.Decode(rawToken)
	if err != nil {
		s.log.Debug().Err(err).Msg("token rejected")
		return domain.Identity{}, domain.ErrUnauthenticated
	}

	if claims.Subject == "" {
		s.log.Debug().Msg("token rejected: empty subject")
		return domain.Identity{}, domain.ErrUnauthenticated
	}

	user, err := s.repo.FindByID(ctx, claims.Subject)
	if err != nil {
		s.log.Debug().Err(err).Str("subject", claims.Subject).Msg("token subject not resolvable")
		return domain.Identity{}, domain.ErrUnauthenticated
	}

	if !user.IsActive {
		s.log.Debug().Str("subject", claims.Subject).Msg("token subject inactive")
		return domain.Identity{}, domain.ErrUnauthenticated
	}

	return domain.Identity{
		ID:     user.ID,
		Email:  user.Email,
		Role:   user.Role,
		Active: user.IsActive,
	}, nil
}
