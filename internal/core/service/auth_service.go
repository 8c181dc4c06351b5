package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/socialserv/marketplace-api/internal/core/domain"
	"github.com/socialserv/marketplace-api/internal/core/ports"
)

// AuthService implements registration and login against the customer and
// worker directories.
type AuthService struct {
	customers ports.CustomerRepository
	workers   ports.WorkerRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(
	customers ports.CustomerRepository,
	workers ports.WorkerRepository,
	jwtSecret string,
	tokenTTL time.Duration,
	logger zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		customers: customers,
		workers:   workers,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// RegisterCustomer creates a customer account. The email must be unused
// within the customers collection; a worker with the same email is accepted.
func (s *AuthService) RegisterCustomer(ctx context.Context, in ports.RegisterCustomerInput) (*domain.Customer, error) {
	if in.Email == "" || in.Password == "" || in.Name == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	customer := &domain.Customer{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        normalizeEmail(in.Email),
		PasswordHash: string(hash),
		Phone:        in.Phone,
		Address:      in.Address,
		Role:         domain.RoleCustomer,
		JoinedAt:     now,
		UpdatedAt:    now,
	}

	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, err
	}

	s.logger.Info().Str("customer_id", customer.ID).Msg("customer registered")
	return customer, nil
}

// RegisterWorker creates a worker account with zeroed statistics and the
// availability flag set.
func (s *AuthService) RegisterWorker(ctx context.Context, in ports.RegisterWorkerInput) (*domain.Worker, error) {
	if in.Email == "" || in.Password == "" || in.Name == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	worker := &domain.Worker{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        normalizeEmail(in.Email),
		PasswordHash: string(hash),
		Phone:        in.Phone,
		Services:     in.Services,
		Stats:        domain.WorkerStats{},
		Available:    true,
		Role:         domain.RoleWorker,
		JoinedAt:     now,
		UpdatedAt:    now,
	}

	if err := s.workers.Create(ctx, worker); err != nil {
		return nil, err
	}

	s.logger.Info().Str("worker_id", worker.ID).Strs("services", worker.Services).Msg("worker registered")
	return worker, nil
}

// Login resolves the credentials against customers first, then workers.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	email = normalizeEmail(email)

	customer, err := s.customers.FindByEmail(ctx, email)
	switch {
	case err == nil:
		if bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(password)) != nil {
			return nil, domain.ErrInvalidCredentials
		}
		token, err := s.generateToken(customer.ID, customer.Name, domain.RoleCustomer)
		if err != nil {
			return nil, err
		}
		return &ports.LoginResult{Token: token, Customer: customer}, nil
	case errors.Is(err, domain.ErrCustomerNotFound):
		// fall through to the workers collection
	default:
		return nil, err
	}

	worker, err := s.workers.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrWorkerNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(worker.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(worker.ID, worker.Name, domain.RoleWorker)
	if err != nil {
		return nil, err
	}
	return &ports.LoginResult{Token: token, Worker: worker}, nil
}

func (s *AuthService) generateToken(id, name, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  id,
		"name": name,
		"role": role,
		"exp":  time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
