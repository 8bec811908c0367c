package handler

import "github.com/corphunt/corphunt-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type signupRequest struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"omitempty,max=20"`
}

type verifyOTPRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	OTP      string `json:"otp"      validate:"required,len=6,numeric"`
	Password string `json:"password" validate:"required"`
	Country  string `json:"country"  validate:"omitempty,max=100"`
	City     string `json:"city"     validate:"omitempty,max=100"`
}

type resendOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type verifyOTPResponse struct {
	Message string       `json:"message"`
	Account *domain.User `json:"account"`
}

type loginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	Account *domain.User `json:"account"`
}
