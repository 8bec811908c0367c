package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// otpRange spans the six-digit codes [100000, 999999].
const (
	otpMin   = 100000
	otpRange = 900000
)

// generateOTP returns a uniformly distributed six-digit code drawn from a
// cryptographically secure source. Codes are handled as strings end to end
// so leading digits survive transport untouched.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpRange))
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+otpMin), nil
}
