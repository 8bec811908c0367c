package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/corphunt/corphunt-api/internal/core/domain"
	"github.com/corphunt/corphunt-api/internal/core/ports"
)

type stubRegistrationService struct {
	requestFn func(ctx context.Context, input ports.SignupInput) error
	verifyFn  func(ctx context.Context, input ports.VerifyInput) (*domain.User, error)
	resendFn  func(ctx context.Context, email string) error
}

func (s *stubRegistrationService) RequestCode(ctx context.Context, input ports.SignupInput) error {
	return s.requestFn(ctx, input)
}

func (s *stubRegistrationService) VerifyCode(ctx context.Context, input ports.VerifyInput) (*domain.User, error) {
	return s.verifyFn(ctx, input)
}

func (s *stubRegistrationService) Resend(ctx context.Context, email string) error {
	return s.resendFn(ctx, email)
}

type stubAuthService struct {
	loginFn func(ctx context.Context, email, password string) (string, *domain.User, error)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func newAuthContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Signup_Accepted(t *testing.T) {
	stub := &stubRegistrationService{
		requestFn: func(ctx context.Context, input ports.SignupInput) error {
			if input.Name != "Alice" || input.Email != "a@example.com" || input.Phone != "555" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return nil
		},
	}
	h := NewAuthHandler(stub, &stubAuthService{})

	c, rec := newAuthContext(t, http.MethodPost, "/auth/signup", `{"name":"Alice","email":"a@example.com","phone":"555"}`)
	if err := h.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if msg, _ := resp["message"].(string); !strings.Contains(msg, "OTP sent") {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestAuthHandler_Signup_MissingEmail(t *testing.T) {
	stub := &stubRegistrationService{
		requestFn: func(ctx context.Context, input ports.SignupInput) error {
			t.Fatalf("should not be called")
			return nil
		},
	}
	h := NewAuthHandler(stub, &stubAuthService{})

	c, _ := newAuthContext(t, http.MethodPost, "/auth/signup", `{"name":"Alice"}`)
	err := h.Signup(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Signup_PropagatesConflict(t *testing.T) {
	stub := &stubRegistrationService{
		requestFn: func(ctx context.Context, input ports.SignupInput) error {
			return domain.ErrUserExists
		},
	}
	h := NewAuthHandler(stub, &stubAuthService{})

	c, _ := newAuthContext(t, http.MethodPost, "/auth/signup", `{"name":"Alice","email":"a@example.com"}`)
	if err := h.Signup(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthHandler_VerifyOTP_Success(t *testing.T) {
	stub := &stubRegistrationService{
		verifyFn: func(ctx context.Context, input ports.VerifyInput) (*domain.User, error) {
			if input.Code != "123456" || input.Password != "secret123" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.User{Name: "Alice", Email: input.Email, Verified: true}, nil
		},
	}
	h := NewAuthHandler(stub, &stubAuthService{})

	c, rec := newAuthContext(t, http.MethodPost, "/auth/verify-otp",
		`{"email":"a@example.com","otp":"123456","password":"secret123","country":"MX"}`)
	if err := h.VerifyOTP(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	account, ok := resp["account"].(map[string]any)
	if !ok || account["email"] != "a@example.com" || account["verified"] != true {
		t.Fatalf("unexpected account payload: %+v", resp)
	}
	if _, leaked := account["password_hash"]; leaked {
		t.Fatalf("password hash must never serialize")
	}
}

func TestAuthHandler_VerifyOTP_BadCodeShape(t *testing.T) {
	stub := &stubRegistrationService{
		verifyFn: func(ctx context.Context, input ports.VerifyInput) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub, &stubAuthService{})

	// Too short and non-numeric codes are rejected before the service runs.
	for _, otp := range []string{"123", "abcdef"} {
		c, _ := newAuthContext(t, http.MethodPost, "/auth/verify-otp",
			`{"email":"a@example.com","otp":"`+otp+`","password":"secret123"}`)
		err := h.VerifyOTP(c)
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Fatalf("otp %q: expected 400 HTTPError, got %v", otp, err)
		}
	}
}

func TestAuthHandler_ResendOTP_Success(t *testing.T) {
	stub := &stubRegistrationService{
		resendFn: func(ctx context.Context, email string) error {
			if email != "a@example.com" {
				t.Fatalf("unexpected email: %q", email)
			}
			return nil
		},
	}
	h := NewAuthHandler(stub, &stubAuthService{})

	c, rec := newAuthContext(t, http.MethodPost, "/auth/resend-otp", `{"email":"a@example.com"}`)
	if err := h.ResendOTP(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_ResendOTP_PropagatesNotFound(t *testing.T) {
	stub := &stubRegistrationService{
		resendFn: func(ctx context.Context, email string) error {
			return domain.ErrRegistrationNotFound
		},
	}
	h := NewAuthHandler(stub, &stubAuthService{})

	c, _ := newAuthContext(t, http.MethodPost, "/auth/resend-otp", `{"email":"a@example.com"}`)
	if err := h.ResendOTP(c); !errors.Is(err, domain.ErrRegistrationNotFound) {
		t.Fatalf("expected ErrRegistrationNotFound, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	auth := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			if email != "a@example.com" || password != "secret123" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "token123", &domain.User{Name: "Alice", Email: email}, nil
		},
	}
	h := NewAuthHandler(&stubRegistrationService{}, auth)

	c, rec := newAuthContext(t, http.MethodPost, "/auth/login", `{"email":"a@example.com","password":"secret123"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
}

func TestAuthHandler_Login_PropagatesInvalidCredentials(t *testing.T) {
	auth := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(&stubRegistrationService{}, auth)

	c, _ := newAuthContext(t, http.MethodPost, "/auth/login", `{"email":"a@example.com","password":"bad"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	auth := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			t.Fatalf("should not be called")
			return "", nil, nil
		},
	}
	h := NewAuthHandler(&stubRegistrationService{}, auth)

	c, _ := newAuthContext(t, http.MethodPost, "/auth/login", "{")
	err := h.Login(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}
