package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/learnobots/job-portal-api/internal/api/middleware"
	"github.com/learnobots/job-portal-api/internal/core/domain"
)

// currentIdentity extracts the identity injected by the Authenticate
// middleware. Absence means the route was registered without the
// middleware; treat it as an unauthenticated request rather than trusting
// a zero value.
func currentIdentity(c echo.Context) (domain.Identity, error) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return domain.Identity{}, domain.ErrUnauthenticated
	}
	return identity, nil
}
