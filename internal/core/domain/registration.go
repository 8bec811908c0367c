package domain

import (
	"errors"
	"time"
)

var ErrRegistrationNotFound = errors.New("no pending signup found")
var ErrOTPExpired = errors.New("otp expired")
var ErrOTPInvalid = errors.New("invalid otp")
var ErrDeliveryFailed = errors.New("failed to send verification email")
var ErrWeakPassword = errors.New("password too short")

// PendingRegistration is the transient state of a signup between the code
// request and its verification. At most one exists per normalized email;
// a new request or a resend replaces it in place. It carries no password;
// that is only captured at verification time.
type PendingRegistration struct {
	Code     string    `json:"code"`
	Name     string    `json:"name"`
	Phone    string    `json:"phone,omitempty"`
	IssuedAt time.Time `json:"issued_at"`
}

// ExpiredAt reports whether the registration's code is past its validity
// window at the given instant.
func (p *PendingRegistration) ExpiredAt(now time.Time, ttl time.Duration) bool {
	return now.Sub(p.IssuedAt) > ttl
}
