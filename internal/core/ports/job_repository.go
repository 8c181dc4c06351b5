package ports

import (
	"context"

	"github.com/socialserv/marketplace-api/internal/core/domain"
)

// JobRepository defines persistence operations for jobs.
type JobRepository interface {
	Create(ctx context.Context, j *domain.Job) error
	FindByID(ctx context.Context, id string) (*domain.Job, error)
	List(ctx context.Context) ([]*domain.Job, error)
	// ListOpenByServices returns jobs in status "available" whose service
	// category is one of the given services.
	ListOpenByServices(ctx context.Context, services []string) ([]*domain.Job, error)
	// ListByWorker returns every job assigned to the worker, in any status.
	ListByWorker(ctx context.Context, workerID string) ([]*domain.Job, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*domain.Job, error)
	// ReplaceIfStatus replaces the stored job only when its current status
	// equals expected, making concurrent transitions on the same job mutually
	// exclusive. Returns domain.ErrInvalidTransition when the job has moved
	// on since it was read, domain.ErrJobNotFound when it no longer exists.
	ReplaceIfStatus(ctx context.Context, j *domain.Job, expected domain.JobStatus) error
	// Update replaces the stored job unconditionally (non-transition fields
	// such as rating).
	Update(ctx context.Context, j *domain.Job) error
	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) error
}
