package ports

import (
	"context"

	"github.com/corphunt/corphunt-api/internal/core/domain"
)

// SignupInput is the profile captured when a code is first requested.
// No password yet: that is only supplied at verification time.
type SignupInput struct {
	Name  string
	Email string
	Phone string
}

// VerifyInput completes a pending signup: the code delivered by mail, the
// chosen password, and the optional profile fields the client collects on
// the final step.
type VerifyInput struct {
	Email    string
	Code     string
	Password string
	Country  string
	City     string
}

// RegistrationService is the state machine coordinating the OTP-gated
// signup flow: request a code, verify it, or resend it while the flow is
// still open.
type RegistrationService interface {
	RequestCode(ctx context.Context, input SignupInput) error
	VerifyCode(ctx context.Context, input VerifyInput) (*domain.User, error)
	Resend(ctx context.Context, email string) error
}
