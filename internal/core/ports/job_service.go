package ports

import (
	"context"

	"github.com/socialserv/marketplace-api/internal/core/domain"
)

// CreateJobInput carries all data needed to post a new job.
type CreateJobInput struct {
	Service      string
	Description  string
	Address      string
	Price        float64
	CustomerID   string
	CustomerName string
}

// UpdateJobDetailsInput carries the mutable detail fields of a job. Status,
// worker assignment and rating are owned by the lifecycle operations and
// cannot be set here. Nil pointer fields are left untouched.
type UpdateJobDetailsInput struct {
	Description *string
	Address     *string
	Price       *float64
}

// RateJobInput carries the customer's rating of a completed job.
type RateJobInput struct {
	Rating int
	Review string
}

// WorkerJobs is the matching view for a single worker: the open jobs the
// worker could accept, and the jobs already associated with the worker.
type WorkerJobs struct {
	Available []*domain.Job
	Assigned  []*domain.Job
}

// ArriveResult is returned when a worker reports arrival: the updated job and
// the freshly issued one-time passcode the customer must confirm.
type ArriveResult struct {
	Job      *domain.Job
	Passcode string
}

// JobService is the job lifecycle engine: it validates each transition
// against the current status and the acting party, mutates the job, and
// applies side effects to worker statistics.
type JobService interface {
	Create(ctx context.Context, in CreateJobInput) (*domain.Job, error)
	Get(ctx context.Context, id string) (*domain.Job, error)
	List(ctx context.Context) ([]*domain.Job, error)
	// UpdateDetails merges the supplied detail fields into an available job
	// owned by the given customer.
	UpdateDetails(ctx context.Context, jobID, customerID string, in UpdateJobDetailsInput) (*domain.Job, error)

	JobsForWorker(ctx context.Context, workerID string) (*WorkerJobs, error)
	JobsForCustomer(ctx context.Context, customerID string) ([]*domain.Job, error)

	Accept(ctx context.Context, jobID, workerID string) (*domain.Job, error)
	Arrive(ctx context.Context, jobID, workerID string) (*ArriveResult, error)
	Start(ctx context.Context, jobID, passcode string) (*domain.Job, error)
	Complete(ctx context.Context, jobID, workerID string) (*domain.Job, error)
	Rate(ctx context.Context, jobID string, in RateJobInput) (*domain.Job, error)
	Cancel(ctx context.Context, jobID, customerID string) (*domain.Job, error)
}
