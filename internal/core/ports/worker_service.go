package ports

import (
	"context"

	"github.com/socialserv/marketplace-api/internal/core/domain"
)

// UpdateWorkerProfileInput carries the mutable profile fields of a worker.
// Statistics are deliberately absent: they are owned by the job lifecycle
// engine and cannot be set through profile updates.
type UpdateWorkerProfileInput struct {
	Name      *string
	Phone     *string
	Services  []string
	Available *bool
}

// WorkerService exposes worker directory operations.
type WorkerService interface {
	Get(ctx context.Context, id string) (*domain.Worker, error)
	List(ctx context.Context) ([]*domain.Worker, error)
	// UpdateProfile merges the supplied fields into the worker record.
	// Nil pointer fields and a nil Services slice are left untouched.
	UpdateProfile(ctx context.Context, id string, in UpdateWorkerProfileInput) (*domain.Worker, error)
}
