package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/corphunt/corphunt-api/internal/core/domain"
	"github.com/corphunt/corphunt-api/internal/core/ports"
)

const (
	defaultOTPTTL         = 5 * time.Minute
	defaultMinPasswordLen = 6
)

// RegistrationConfig tunes the validation strictness of the signup flow.
// The differing rigor of the legacy flow variants is configuration here,
// not separate code paths.
type RegistrationConfig struct {
	// OTPTTL is how long an issued code stays valid. Default 5 minutes.
	OTPTTL time.Duration
	// MinPasswordLen is the minimum accepted password length after trimming.
	MinPasswordLen int
}

// RegistrationService coordinates the OTP-gated signup flow against the
// pending-registration store and the credential store. All three operations
// serialize per normalized email, so check-then-act sequences cannot
// interleave for the same identity.
type RegistrationService struct {
	users   ports.UserRepository
	pending ports.RegistrationStore
	mailer  ports.Mailer
	cfg     RegistrationConfig
	locks   *keyedMutex
	logger  zerolog.Logger
}

func NewRegistrationService(
	users ports.UserRepository,
	pending ports.RegistrationStore,
	mailer ports.Mailer,
	cfg RegistrationConfig,
	logger zerolog.Logger,
) *RegistrationService {
	if cfg.OTPTTL <= 0 {
		cfg.OTPTTL = defaultOTPTTL
	}
	if cfg.MinPasswordLen <= 0 {
		cfg.MinPasswordLen = defaultMinPasswordLen
	}
	return &RegistrationService{
		users:   users,
		pending: pending,
		mailer:  mailer,
		cfg:     cfg,
		locks:   newKeyedMutex(),
		logger:  logger,
	}
}

// RequestCode opens (or reopens) a signup flow: it rejects emails that
// already have an account, issues a fresh code, overwrites the pending entry
// for this email, and mails the code. A delivery failure is surfaced to the
// caller but leaves the pending entry in place so Resend can retry.
func (s *RegistrationService) RequestCode(ctx context.Context, input ports.SignupInput) error {
	email := domain.NormalizeEmail(input.Email)

	s.locks.lock(email)
	defer s.locks.unlock(email)

	if err := s.ensureNoAccount(ctx, email); err != nil {
		return err
	}

	code, err := generateOTP()
	if err != nil {
		return err
	}

	reg := &domain.PendingRegistration{
		Code:     code,
		Name:     strings.TrimSpace(input.Name),
		Phone:    strings.TrimSpace(input.Phone),
		IssuedAt: time.Now().UTC(),
	}
	if err := s.pending.Put(ctx, email, reg, s.storeTTL()); err != nil {
		return fmt.Errorf("store pending registration: %w", err)
	}

	if err := s.mailer.SendVerificationCode(ctx, email, reg.Name, code); err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("verification mail failed")
		return fmt.Errorf("%w: %v", domain.ErrDeliveryFailed, err)
	}

	s.logger.Info().Str("email", email).Msg("verification code issued")
	return nil
}

// VerifyCode closes a signup flow: it checks the pending entry, the code and
// its age, then promotes the candidate into a verified account and consumes
// the entry. The password is captured here and only ever stored hashed.
func (s *RegistrationService) VerifyCode(ctx context.Context, input ports.VerifyInput) (*domain.User, error) {
	email := domain.NormalizeEmail(input.Email)

	s.locks.lock(email)
	defer s.locks.unlock(email)

	reg, err := s.pending.Get(ctx, email)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if reg.ExpiredAt(now, s.cfg.OTPTTL) {
		// A stale code forces a fresh RequestCode rather than a retry.
		s.deletePending(ctx, email)
		return nil, domain.ErrOTPExpired
	}

	if subtle.ConstantTimeCompare([]byte(reg.Code), []byte(input.Code)) != 1 {
		return nil, domain.ErrOTPInvalid
	}

	password := strings.TrimSpace(input.Password)
	if len(password) < s.cfg.MinPasswordLen {
		return nil, domain.ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Name:         reg.Name,
		Email:        email,
		PasswordHash: string(hash),
		Phone:        reg.Phone,
		Country:      strings.TrimSpace(input.Country),
		City:         strings.TrimSpace(input.City),
		Verified:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			// An account appeared between request and verify; the flow is
			// dead either way, so consume the entry.
			s.deletePending(ctx, email)
		}
		return nil, err
	}

	s.deletePending(ctx, email)

	if err := s.mailer.SendWelcome(ctx, email, created.Name); err != nil {
		s.logger.Warn().Err(err).Str("email", email).Msg("welcome mail failed")
	}

	s.logger.Info().Str("email", email).Str("user_id", created.ID).Msg("account created")
	return created, nil
}

// Resend issues a new code on an already-open flow: a fresh code and
// issued-at replace the old ones in place, profile fields untouched.
func (s *RegistrationService) Resend(ctx context.Context, email string) error {
	email = domain.NormalizeEmail(email)

	s.locks.lock(email)
	defer s.locks.unlock(email)

	reg, err := s.pending.Get(ctx, email)
	if err != nil {
		return err
	}

	code, err := generateOTP()
	if err != nil {
		return err
	}
	reg.Code = code
	reg.IssuedAt = time.Now().UTC()

	if err := s.pending.Put(ctx, email, reg, s.storeTTL()); err != nil {
		return fmt.Errorf("refresh pending registration: %w", err)
	}

	if err := s.mailer.SendVerificationCode(ctx, email, reg.Name, code); err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("verification mail failed")
		return fmt.Errorf("%w: %v", domain.ErrDeliveryFailed, err)
	}

	s.logger.Info().Str("email", email).Msg("verification code reissued")
	return nil
}

func (s *RegistrationService) ensureNoAccount(ctx context.Context, email string) error {
	_, err := s.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return domain.ErrUserExists
	case errors.Is(err, domain.ErrUserNotFound):
		return nil
	default:
		return fmt.Errorf("check existing account: %w", err)
	}
}

// storeTTL keeps entries around for one extra validity window past the code
// TTL: within that window an expired code reports ErrOTPExpired instead of
// collapsing into ErrRegistrationNotFound.
func (s *RegistrationService) storeTTL() time.Duration {
	return 2 * s.cfg.OTPTTL
}

func (s *RegistrationService) deletePending(ctx context.Context, email string) {
	if err := s.pending.Delete(ctx, email); err != nil {
		s.logger.Warn().Err(err).Str("email", email).Msg("failed to delete pending registration")
	}
}
