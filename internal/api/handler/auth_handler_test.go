package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/socialserv/marketplace-api/internal/core/domain"
	"github.com/socialserv/marketplace-api/internal/core/ports"
)

type stubAuthService struct {
	registerCustomerFn func(ctx context.Context, in ports.RegisterCustomerInput) (*domain.Customer, error)
	registerWorkerFn   func(ctx context.Context, in ports.RegisterWorkerInput) (*domain.Worker, error)
	loginFn            func(ctx context.Context, email, password string) (*ports.LoginResult, error)
}

func (s *stubAuthService) RegisterCustomer(ctx context.Context, in ports.RegisterCustomerInput) (*domain.Customer, error) {
	return s.registerCustomerFn(ctx, in)
}

func (s *stubAuthService) RegisterWorker(ctx context.Context, in ports.RegisterWorkerInput) (*domain.Worker, error) {
	return s.registerWorkerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, email, password)
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_RegisterCustomer_Success(t *testing.T) {
	stub := &stubAuthService{
		registerCustomerFn: func(ctx context.Context, in ports.RegisterCustomerInput) (*domain.Customer, error) {
			if in.Name != "Alice" || in.Email != "alice@example.com" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Customer{
				ID:       "cust_1",
				Name:     in.Name,
				Email:    in.Email,
				Role:     domain.RoleCustomer,
				JoinedAt: time.Now(),
			}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/v1/auth/register/customer",
		`{"name":"Alice","email":"alice@example.com","password":"supersecret"}`)

	if err := h.RegisterCustomer(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "cust_1" || resp["role"] != domain.RoleCustomer {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if _, leaked := resp["password"]; leaked {
		t.Fatal("password must not appear in the response")
	}
}

func TestAuthHandler_RegisterCustomer_ShortPassword(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newTestContext(t, http.MethodPost, "/v1/auth/register/customer",
		`{"name":"Alice","email":"alice@example.com","password":"short"}`)

	err := h.RegisterCustomer(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 validation error, got %v", err)
	}
}

func TestAuthHandler_RegisterWorker_RequiresServices(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newTestContext(t, http.MethodPost, "/v1/auth/register/worker",
		`{"name":"Wanda","email":"wanda@example.com","password":"supersecret","services":[]}`)

	err := h.RegisterWorker(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 validation error, got %v", err)
	}
}

func TestAuthHandler_RegisterWorker_Success(t *testing.T) {
	stub := &stubAuthService{
		registerWorkerFn: func(ctx context.Context, in ports.RegisterWorkerInput) (*domain.Worker, error) {
			return &domain.Worker{
				ID:       "work_1",
				Name:     in.Name,
				Email:    in.Email,
				Services: in.Services,
				Role:     domain.RoleWorker,
			}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/v1/auth/register/worker",
		`{"name":"Wanda","email":"wanda@example.com","password":"supersecret","services":["plumbing"]}`)

	if err := h.RegisterWorker(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	stats, ok := resp["stats"].(map[string]any)
	if !ok {
		t.Fatalf("expected stats in response, got %+v", resp)
	}
	if stats["total_jobs"] != float64(0) {
		t.Fatalf("expected zeroed stats, got %+v", stats)
	}
}

func TestAuthHandler_Login_CustomerResult(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*ports.LoginResult, error) {
			return &ports.LoginResult{
				Token:    "tok_abc",
				Customer: &domain.Customer{ID: "cust_1", Role: domain.RoleCustomer},
			}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/v1/auth/login",
		`{"email":"alice@example.com","password":"supersecret"}`)

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
	if resp["token"] != "tok_abc" || resp["role"] != domain.RoleCustomer {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if _, hasWorker := resp["worker"]; hasWorker {
		t.Fatal("worker must be omitted when a customer logs in")
	}
}

func TestAuthHandler_Login_InvalidCredentialsPassedThrough(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*ports.LoginResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/v1/auth/login",
		`{"email":"alice@example.com","password":"wrongwrong"}`)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
