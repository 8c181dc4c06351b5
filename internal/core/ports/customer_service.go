package ports

import (
	"context"

	"github.com/socialserv/marketplace-api/internal/core/domain"
)

// CustomerService exposes customer directory operations.
type CustomerService interface {
	Get(ctx context.Context, id string) (*domain.Customer, error)
	List(ctx context.Context) ([]*domain.Customer, error)
}
