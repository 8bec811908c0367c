package ports

import (
	"context"

	"github.com/corphunt/corphunt-api/internal/core/domain"
)

// CreateUserInput is the admin-created account payload. Accounts created
// this way skip OTP verification and are stored pre-verified.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Country  string
	City     string
}

// AdminService exposes plain CRUD over the credential store for the
// privileged operator surface.
type AdminService interface {
	ListUsers(ctx context.Context) ([]*domain.User, error)
	CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error)
	UpdateUser(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
}
