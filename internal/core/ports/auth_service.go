package ports

import (
	"context"

	"github.com/socialserv/marketplace-api/internal/core/domain"
)

// RegisterCustomerInput carries the data needed to create a customer account.
type RegisterCustomerInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Address  string
}

// RegisterWorkerInput carries the data needed to create a worker account.
type RegisterWorkerInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Services []string
}

// LoginResult is returned on a successful login. Exactly one of Customer and
// Worker is set, matching the collection the credentials resolved against.
type LoginResult struct {
	Token    string
	Customer *domain.Customer
	Worker   *domain.Worker
}

// AuthService implements account registration and credential checks.
type AuthService interface {
	RegisterCustomer(ctx context.Context, in RegisterCustomerInput) (*domain.Customer, error)
	RegisterWorker(ctx context.Context, in RegisterWorkerInput) (*domain.Worker, error)
	// Login resolves the credentials against customers first, then workers.
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}
