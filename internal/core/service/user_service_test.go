package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/learnobots/job-portal-api/internal/core/domain"
	"github.com/learnobots/job-portal-api/internal/core/ports"
	"github.com/learnobots/job-portal-api/internal/pkg/password"
)

func TestUserService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	audit := &stubAudit{}
	svc := NewUserService(repo, audit, zerolog.Nop())

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:    "new@x.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.PasswordHash == "secret123" {
		t.Fatalf("password must be stored hashed")
	}
	if !password.Verify("secret123", user.PasswordHash) {
		t.Fatalf("stored hash does not match password")
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected default role user, got %s", user.Role)
	}
	if !user.IsActive {
		t.Fatalf("new accounts must start active")
	}
	if len(audit.events) != 1 || audit.events[0].Action != ports.AuditUserRegistered {
		t.Fatalf("expected a user_registered audit event, got %+v", audit.events)
	}
}

func TestUserService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, nil, zerolog.Nop())

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Email: "a@x.com", Password: "p1"}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	_, err := svc.Register(context.Background(), ports.RegisterInput{Email: "a@x.com", Password: "p2"})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserService_Register_Validation(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), nil, zerolog.Nop())

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Email: "", Password: "p"}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Register(context.Background(), ports.RegisterInput{Email: "a@x.com", Password: ""}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUserService_GetAndList(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, nil, zerolog.Nop())

	created, err := svc.Register(context.Background(), ports.RegisterInput{Email: "a@x.com", Password: "p"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Email != "a@x.com" {
		t.Fatalf("unexpected user: %+v", got)
	}

	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	users, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected one user, got %d", len(users))
	}
}
