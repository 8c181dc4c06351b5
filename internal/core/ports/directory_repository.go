package ports

import (
	"context"

	"github.com/socialserv/marketplace-api/internal/core/domain"
)

// CustomerRepository defines persistence operations for customer accounts.
type CustomerRepository interface {
	// Create inserts a new customer. Returns domain.ErrEmailTaken when the
	// email is already registered in the customers collection.
	Create(ctx context.Context, c *domain.Customer) error
	FindByID(ctx context.Context, id string) (*domain.Customer, error)
	FindByEmail(ctx context.Context, email string) (*domain.Customer, error)
	List(ctx context.Context) ([]*domain.Customer, error)
	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) error
}

// WorkerRepository defines persistence operations for worker accounts.
type WorkerRepository interface {
	// Create inserts a new worker. Returns domain.ErrEmailTaken when the
	// email is already registered in the workers collection.
	Create(ctx context.Context, w *domain.Worker) error
	FindByID(ctx context.Context, id string) (*domain.Worker, error)
	FindByEmail(ctx context.Context, email string) (*domain.Worker, error)
	List(ctx context.Context) ([]*domain.Worker, error)
	// Update replaces the stored worker record.
	Update(ctx context.Context, w *domain.Worker) error
	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) error
}
