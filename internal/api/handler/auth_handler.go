package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/corphunt/corphunt-api/internal/api/metrics"
	"github.com/corphunt/corphunt-api/internal/core/domain"
	"github.com/corphunt/corphunt-api/internal/core/ports"
)

// AuthHandler exposes the OTP-gated signup flow and login.
type AuthHandler struct {
	registration ports.RegistrationService
	auth         ports.AuthService
}

func NewAuthHandler(registration ports.RegistrationService, auth ports.AuthService) *AuthHandler {
	return &AuthHandler{registration: registration, auth: auth}
}

// Signup starts the registration flow by mailing a verification code.
//
// @Summary      Request a signup verification code
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Candidate profile"
// @Success      202   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.registration.RequestCode(c.Request().Context(), ports.SignupInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		metrics.SignupRequestsTotal.WithLabelValues(signupResult(err)).Inc()
		return err
	}

	metrics.SignupRequestsTotal.WithLabelValues("accepted").Inc()
	return c.JSON(http.StatusAccepted, messageResponse{
		Message: "OTP sent to your email. Please verify to complete registration.",
	})
}

// VerifyOTP completes the registration flow and creates the account.
//
// @Summary      Verify a signup code and create the account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      verifyOTPRequest  true  "Code and final profile fields"
// @Success      200   {object}  verifyOTPResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /auth/verify-otp [post]
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req verifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	account, err := h.registration.VerifyCode(c.Request().Context(), ports.VerifyInput{
		Email:    req.Email,
		Code:     req.OTP,
		Password: req.Password,
		Country:  req.Country,
		City:     req.City,
	})
	if err != nil {
		metrics.OTPVerificationsTotal.WithLabelValues(verifyResult(err)).Inc()
		return err
	}

	metrics.OTPVerificationsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, verifyOTPResponse{
		Message: "Account created successfully! You can now login.",
		Account: account,
	})
}

// ResendOTP reissues the verification code on an open signup flow.
//
// @Summary      Resend the signup verification code
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      resendOTPRequest  true  "Signup email"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /auth/resend-otp [post]
func (h *AuthHandler) ResendOTP(c echo.Context) error {
	var req resendOTPRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.registration.Resend(c.Request().Context(), req.Email); err != nil {
		metrics.OTPResendsTotal.WithLabelValues(resendResult(err)).Inc()
		return err
	}

	metrics.OTPResendsTotal.WithLabelValues("accepted").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "New OTP sent successfully"})
}

// Login authenticates an account and returns a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, account, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		} else {
			metrics.LoginsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		Message: "Login successful",
		Token:   token,
		Account: account,
	})
}

func signupResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrUserExists):
		return "conflict"
	case errors.Is(err, domain.ErrDeliveryFailed):
		return "delivery_failed"
	default:
		return "error"
	}
}

func verifyResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrRegistrationNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrOTPExpired):
		return "expired"
	case errors.Is(err, domain.ErrOTPInvalid):
		return "invalid_code"
	case errors.Is(err, domain.ErrUserExists):
		return "conflict"
	default:
		return "error"
	}
}

func resendResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrRegistrationNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrDeliveryFailed):
		return "delivery_failed"
	default:
		return "error"
	}
}
