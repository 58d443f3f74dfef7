package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/learnobots/job-portal-api/internal/api/metrics"
	"github.com/learnobots/job-portal-api/internal/core/domain"
)

// Standing access tiers used when registering routes.
var (
	HRTier    = []domain.Role{domain.RoleHR, domain.RoleAdmin}
	AdminTier = []domain.Role{domain.RoleAdmin}
)

// RequireActive rejects identities whose account is inactive. Redundant
// under the default wiring (session resolution already drops inactive
// subjects) but usable on its own for routes that need only an activity
// gate, not a role gate.
func RequireActive() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := CurrentIdentity(c)
			if !ok {
				return domain.ErrUnauthenticated
			}
			if !identity.Active {
				return domain.ErrInactiveUser
			}
			return next(c)
		}
	}
}

// RequireRole rejects identities whose role is not in the allowed set.
// Roles are a closed enum, so an unrecognized value can never be in the
// set; it is forbidden, never silently granted.
func RequireRole(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := CurrentIdentity(c)
			if !ok {
				return domain.ErrUnauthenticated
			}
			if _, ok := allowed[identity.Role]; !ok {
				metrics.RoleDenialsTotal.WithLabelValues(string(identity.Role)).Inc()
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
