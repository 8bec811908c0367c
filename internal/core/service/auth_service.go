package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/corphunt/corphunt-api/internal/core/domain"
	"github.com/corphunt/corphunt-api/internal/core/ports"
)

const defaultTokenTTL = 30 * 24 * time.Hour

// OperatorCredentials identifies the out-of-band privileged login. The
// password arrives pre-hashed from configuration; no literal secret lives
// in code. An empty Email disables the operator login entirely.
type OperatorCredentials struct {
	Email        string
	PasswordHash string
}

// AuthService validates credentials against the credential store and mints
// signed, time-bounded session tokens.
type AuthService struct {
	users     ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	operator  OperatorCredentials
	timingPad []byte
	logger    zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	jwtSecret string,
	tokenTTL time.Duration,
	operator OperatorCredentials,
	logger zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	// A throwaway hash compared against on unknown emails, so the miss path
	// costs the same bcrypt work as a wrong password.
	pad, _ := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
	return &AuthService{
		users:     users,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		operator:  operator,
		timingPad: pad,
		logger:    logger,
	}
}

// Login authenticates an email/password pair. Unknown email and wrong
// password collapse into the one ErrInvalidCredentials. The configured
// operator identity short-circuits the store and mints an admin token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if s.operator.Email != "" && email == domain.NormalizeEmail(s.operator.Email) {
		return s.loginOperator(email, password)
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.timingPad, []byte(password))
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("find account: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user.ID, user.Email, user.Name, domain.RoleUser)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("email", email).Msg("user logged in")
	return token, user, nil
}

func (s *AuthService) loginOperator(email, password string) (string, *domain.User, error) {
	if bcrypt.CompareHashAndPassword([]byte(s.operator.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	operator := &domain.User{Name: "Administrator", Email: email, Verified: true}
	token, err := s.generateToken("", email, operator.Name, domain.RoleAdmin)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("email", email).Msg("operator logged in")
	return token, operator, nil
}

func (s *AuthService) generateToken(id, email, name, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":   id,
		"email": email,
		"name":  name,
		"role":  role,
		"jti":   uuid.NewString(),
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
