package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/learnobots/job-portal-api/internal/api/metrics"
	"github.com/learnobots/job-portal-api/internal/core/domain"
	"github.com/learnobots/job-portal-api/internal/core/ports"
)

const identityKey = "identity"

// Authenticate extracts the bearer token, resolves it to an identity and
// injects the snapshot into the request context. Any resolution failure
// surfaces as a single unauthenticated error regardless of cause.
func Authenticate(sessions ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			identity, err := sessions.Resolve(c.Request().Context(), parts[1])
			if err != nil {
				metrics.SessionResolutionsTotal.WithLabelValues("rejected").Inc()
				return err
			}
			metrics.SessionResolutionsTotal.WithLabelValues("ok").Inc()

			c.Set(identityKey, identity)
			return next(c)
		}
	}
}

// CurrentIdentity returns the identity injected by Authenticate.
func CurrentIdentity(c echo.Context) (domain.Identity, bool) {
	identity, ok := c.Get(identityKey).(domain.Identity)
	return identity, ok
}
