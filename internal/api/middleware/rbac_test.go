package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/learnobots/job-portal-api/internal/core/domain"
)

func contextWithIdentity(e *echo.Echo, identity *domain.Identity) echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if identity != nil {
		c.Set(identityKey, *identity)
	}
	return c
}

func TestRequireRole_Admin(t *testing.T) {
	e := echo.New()

	cases := []struct {
		role    domain.Role
		wantErr error
	}{
		{domain.RoleAdmin, nil},
		{domain.RoleHR, domain.ErrForbidden},
		{domain.RoleUser, domain.ErrForbidden},
		{domain.Role("superuser"), domain.ErrForbidden}, // outside the closed set
	}

	for _, tc := range cases {
		c := contextWithIdentity(e, &domain.Identity{ID: "1", Role: tc.role, Active: true})
		handler := RequireRole(AdminTier...)(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		err := handler(c)
		if !errors.Is(err, tc.wantErr) && !(err == nil && tc.wantErr == nil) {
			t.Fatalf("role %q: expected %v, got %v", tc.role, tc.wantErr, err)
		}
	}
}

func TestRequireRole_HRTier(t *testing.T) {
	e := echo.New()

	for _, role := range []domain.Role{domain.RoleHR, domain.RoleAdmin} {
		c := contextWithIdentity(e, &domain.Identity{ID: "1", Role: role, Active: true})
		handler := RequireRole(HRTier...)(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		if err := handler(c); err != nil {
			t.Fatalf("role %q should pass the hr tier: %v", role, err)
		}
	}

	c := contextWithIdentity(e, &domain.Identity{ID: "1", Role: domain.RoleUser, Active: true})
	handler := RequireRole(HRTier...)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for plain user, got %v", err)
	}
}

func TestRequireRole_NoIdentity(t *testing.T) {
	e := echo.New()
	c := contextWithIdentity(e, nil)
	handler := RequireRole(AdminTier...)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated without identity, got %v", err)
	}
}

func TestRequireActive(t *testing.T) {
	e := echo.New()

	c := contextWithIdentity(e, &domain.Identity{ID: "1", Role: domain.RoleUser, Active: true})
	handler := RequireActive()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("active identity should pass: %v", err)
	}

	c = contextWithIdentity(e, &domain.Identity{ID: "1", Role: domain.RoleUser, Active: false})
	if err := handler(c); !errors.Is(err, domain.ErrInactiveUser) {
		t.Fatalf("expected ErrInactiveUser, got %v", err)
	}

	c = contextWithIdentity(e, nil)
	if err := handler(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated without identity, got %v", err)
	}
}
