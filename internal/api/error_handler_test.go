package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/corphunt/corphunt-api/internal/core/domain"
)

func handleError(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/verify-otp", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewHTTPErrorHandler(zerolog.Nop())
	h(err, c)

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec.Code, resp["error"]
}

func TestErrorHandler_DomainMapping(t *testing.T) {
	cases := []struct {
		err      error
		wantCode int
		wantMsg  string
	}{
		{domain.ErrUserExists, http.StatusConflict, "user already exists"},
		{domain.ErrRegistrationNotFound, http.StatusBadRequest, "no pending signup found, please start signup again"},
		{domain.ErrOTPExpired, http.StatusBadRequest, "otp expired, please request a new one"},
		{domain.ErrOTPInvalid, http.StatusBadRequest, "invalid otp"},
		{domain.ErrWeakPassword, http.StatusBadRequest, "password too short"},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid email or password"},
		{domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{domain.ErrDeliveryFailed, http.StatusBadGateway, "failed to send verification email"},
	}

	for _, tc := range cases {
		code, msg := handleError(t, tc.err)
		if code != tc.wantCode {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.wantCode, code)
		}
		if msg != tc.wantMsg {
			t.Fatalf("%v: expected %q, got %q", tc.err, tc.wantMsg, msg)
		}
	}
}

func TestErrorHandler_WrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("%w: dial tcp: connection refused", domain.ErrDeliveryFailed)
	code, msg := handleError(t, wrapped)
	if code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", code)
	}
	// The transport cause must not leak to the client.
	if strings.Contains(msg, "dial tcp") {
		t.Fatalf("internal detail leaked: %q", msg)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	code, msg := handleError(t, echo.NewHTTPError(http.StatusBadRequest, "email is required"))
	if code != http.StatusBadRequest || msg != "email is required" {
		t.Fatalf("unexpected mapping: %d %q", code, msg)
	}
}

func TestErrorHandler_UnknownErrorMasked(t *testing.T) {
	code, msg := handleError(t, errors.New("mongo: socket was unexpectedly closed"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "internal server error" {
		t.Fatalf("internal error leaked: %q", msg)
	}
}
