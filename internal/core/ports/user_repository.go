package ports

import (
	"context"

	"github.com/corphunt/corphunt-api/internal/core/domain"
)

// UpdateUserInput carries the admin-editable account fields. Nil fields are
// left untouched. The password is not updatable through this path.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Phone    *string
	Country  *string
	City     *string
	Verified *bool
}

// UserRepository defines the persistence interface for verified accounts.
// Create must be atomic with the uniqueness check on email so that two
// concurrent verifications cannot both succeed for the same identity.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
