package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/corphunt/corphunt-api/internal/core/domain"
	"github.com/corphunt/corphunt-api/internal/core/ports"
)

// AdminService implements the operator CRUD surface over the credential
// store. Accounts created here bypass OTP verification and land verified.
type AdminService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewAdminService(users ports.UserRepository, logger zerolog.Logger) *AdminService {
	return &AdminService{users: users, logger: logger}
}

func (s *AdminService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

func (s *AdminService) CreateUser(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        domain.NormalizeEmail(input.Email),
		PasswordHash: string(hash),
		Phone:        strings.TrimSpace(input.Phone),
		Country:      strings.TrimSpace(input.Country),
		City:         strings.TrimSpace(input.City),
		Verified:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", created.Email).Str("user_id", created.ID).Msg("user created by admin")
	return created, nil
}

func (s *AdminService) UpdateUser(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	if input.Email != nil {
		normalized := domain.NormalizeEmail(*input.Email)
		input.Email = &normalized
	}
	return s.users.Update(ctx, id, input)
}

func (s *AdminService) DeleteUser(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("user deleted by admin")
	return nil
}
