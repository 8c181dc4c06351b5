package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/socialserv/marketplace-api/internal/core/domain"
	"github.com/socialserv/marketplace-api/internal/core/ports"
)

// CustomerService exposes the customer directory. Read-only: account
// creation goes through registration and no profile mutation is exposed.
type CustomerService struct {
	customers ports.CustomerRepository
	logger    zerolog.Logger
}

func NewCustomerService(customers ports.CustomerRepository, logger zerolog.Logger) *CustomerService {
	return &CustomerService{customers: customers, logger: logger}
}

func (s *CustomerService) Get(ctx context.Context, id string) (*domain.Customer, error) {
	return s.customers.FindByID(ctx, id)
}

func (s *CustomerService) List(ctx context.Context) ([]*domain.Customer, error) {
	return s.customers.List(ctx)
}
