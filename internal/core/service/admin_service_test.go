package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/corphunt/corphunt-api/internal/core/domain"
	"github.com/corphunt/corphunt-api/internal/core/ports"
)

func TestAdminService_CreateUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAdminService(repo, zerolog.Nop())

	user, err := svc.CreateUser(context.Background(), ports.CreateUserInput{
		Name:     "  Bob ",
		Email:    " Bob@Example.COM ",
		Password: "passw0rd",
		Country:  "Chile",
	})
	if err != nil {
		t.Fatalf("CreateUser returned error: %v", err)
	}

	if user.Email != "bob@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
	if user.Name != "Bob" {
		t.Fatalf("expected trimmed name, got %q", user.Name)
	}
	if !user.Verified {
		t.Fatalf("admin-created accounts must be verified")
	}
	stored := repo.users["bob@example.com"]
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("passw0rd")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAdminService_CreateUser_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	repo.users["bob@example.com"] = &domain.User{Email: "bob@example.com"}
	svc := NewAdminService(repo, zerolog.Nop())

	_, err := svc.CreateUser(context.Background(), ports.CreateUserInput{
		Name: "Bob", Email: "bob@example.com", Password: "passw0rd",
	})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAdminService_UpdateUser_NormalizesEmail(t *testing.T) {
	repo := newStubUserRepo()
	repo.users["bob@example.com"] = &domain.User{ID: "u1", Email: "bob@example.com", Name: "Bob"}
	svc := NewAdminService(repo, zerolog.Nop())

	newEmail := " Robert@Example.com "
	user, err := svc.UpdateUser(context.Background(), "u1", ports.UpdateUserInput{Email: &newEmail})
	if err != nil {
		t.Fatalf("UpdateUser returned error: %v", err)
	}
	if user.Email != "robert@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
	if user.Name != "Bob" {
		t.Fatalf("untouched fields must survive: %+v", user)
	}
}

func TestAdminService_DeleteUser_NotFound(t *testing.T) {
	svc := NewAdminService(newStubUserRepo(), zerolog.Nop())

	if err := svc.DeleteUser(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
