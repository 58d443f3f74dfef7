package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/learnobots/job-portal-api/internal/core/domain"
)

type stubSessions struct {
	identity domain.Identity
	err      error
	gotToken string
}

func (s *stubSessions) Resolve(_ context.Context, rawToken string) (domain.Identity, error) {
	s.gotToken = rawToken
	if s.err != nil {
		return domain.Identity{}, s.err
	}
	return s.identity, nil
}

func TestAuthenticate_ValidToken(t *testing.T) {
	e := echo.New()
	sessions := &stubSessions{identity: domain.Identity{
		ID: "42", Email: "a@x.com", Role: domain.RoleAdmin, Active: true,
	}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Authenticate(sessions)(func(c echo.Context) error {
		called = true
		identity, ok := CurrentIdentity(c)
		if !ok {
			t.Fatalf("identity not injected")
		}
		if identity.ID != "42" || identity.Role != domain.RoleAdmin {
			t.Fatalf("unexpected identity: %+v", identity)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if sessions.gotToken != "some-token" {
		t.Fatalf("expected raw token to be forwarded, got %q", sessions.gotToken)
	}
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Authenticate(&stubSessions{})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthenticate_InvalidHeaderFormat(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Authenticate(&stubSessions{})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthenticate_ResolutionFailure(t *testing.T) {
	e := echo.New()
	sessions := &stubSessions{err: domain.ErrUnauthenticated}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer stale-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Authenticate(sessions)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	if err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated passed through, got %v", err)
	}
}
