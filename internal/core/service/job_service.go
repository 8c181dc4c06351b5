package service

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/socialserv/marketplace-api/internal/core/domain"
	"github.com/socialserv/marketplace-api/internal/core/ports"
)

// JobService is the job lifecycle engine. Every transition is validated
// against the job's current status and the acting party before the record is
// mutated; side effects on worker statistics happen only here.
type JobService struct {
	jobs      ports.JobRepository
	workers   ports.WorkerRepository
	passcodes ports.PasscodeStore
	logger    zerolog.Logger
}

func NewJobService(
	jobs ports.JobRepository,
	workers ports.WorkerRepository,
	passcodes ports.PasscodeStore,
	logger zerolog.Logger,
) *JobService {
	return &JobService{
		jobs:      jobs,
		workers:   workers,
		passcodes: passcodes,
		logger:    logger,
	}
}

// Create posts a new job in status "available".
func (s *JobService) Create(ctx context.Context, in ports.CreateJobInput) (*domain.Job, error) {
	now := time.Now().UTC()
	job := &domain.Job{
		ID:           uuid.NewString(),
		Service:      in.Service,
		Description:  in.Description,
		Address:      in.Address,
		CustomerID:   in.CustomerID,
		CustomerName: in.CustomerName,
		Price:        in.Price,
		Status:       domain.StatusAvailable,
		CreatedAt:    now,
		UpdatedAt:    now,
		StatusHistory: []domain.StatusHistoryEntry{
			{Status: domain.StatusAvailable, Timestamp: now},
		},
	}

	if err := s.jobs.Create(ctx, job); err != nil {
		s.logger.Error().Err(err).Msg("failed to create job")
		return nil, err
	}

	s.logger.Info().
		Str("job_id", job.ID).
		Str("service", job.Service).
		Str("customer_id", job.CustomerID).
		Msg("job created")
	return job, nil
}

func (s *JobService) Get(ctx context.Context, id string) (*domain.Job, error) {
	return s.jobs.FindByID(ctx, id)
}

func (s *JobService) List(ctx context.Context) ([]*domain.Job, error) {
	return s.jobs.List(ctx)
}

// UpdateDetails merges the mutable detail fields into a job the customer
// owns. Only available jobs can be edited; once a worker has accepted, the
// posted terms are frozen.
func (s *JobService) UpdateDetails(ctx context.Context, jobID, customerID string, in ports.UpdateJobDetailsInput) (*domain.Job, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.CustomerID != customerID {
		return nil, domain.ErrForbidden
	}
	if job.Status != domain.StatusAvailable {
		return nil, fmt.Errorf("%w: job can only be edited while available (status %s)", domain.ErrInvalidTransition, job.Status)
	}

	if in.Description != nil {
		job.Description = *in.Description
	}
	if in.Address != nil {
		job.Address = *in.Address
	}
	if in.Price != nil {
		job.Price = *in.Price
	}
	job.UpdatedAt = time.Now().UTC()

	// Status-guarded write so an accept racing this edit cannot be clobbered.
	if err := s.jobs.ReplaceIfStatus(ctx, job, domain.StatusAvailable); err != nil {
		return nil, err
	}

	s.logger.Info().Str("job_id", job.ID).Msg("job details updated")
	return job, nil
}

// JobsForWorker returns the open jobs matching the worker's declared
// services, and the jobs already associated with the worker in any
// post-acceptance status.
func (s *JobService) JobsForWorker(ctx context.Context, workerID string) (*ports.WorkerJobs, error) {
	worker, err := s.workers.FindByID(ctx, workerID)
	if err != nil {
		return nil, err
	}

	available, err := s.jobs.ListOpenByServices(ctx, worker.Services)
	if err != nil {
		return nil, err
	}
	assigned, err := s.jobs.ListByWorker(ctx, workerID)
	if err != nil {
		return nil, err
	}

	return &ports.WorkerJobs{Available: available, Assigned: assigned}, nil
}

func (s *JobService) JobsForCustomer(ctx context.Context, customerID string) ([]*domain.Job, error) {
	return s.jobs.ListByCustomer(ctx, customerID)
}

// Accept assigns the job to the worker. The job must still be available and
// the worker must declare the job's service category. On success the worker's
// total job counter is incremented.
func (s *JobService) Accept(ctx context.Context, jobID, workerID string) (*domain.Job, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	worker, err := s.workers.FindByID(ctx, workerID)
	if err != nil {
		return nil, err
	}

	if job.Status != domain.StatusAvailable {
		return nil, domain.ErrJobNotAvailable
	}
	if !worker.ProvidesService(job.Service) {
		return nil, domain.ErrServiceMismatch
	}

	job.Status = domain.StatusAccepted
	job.WorkerID = worker.ID
	job.WorkerName = worker.Name
	s.stamp(job, "accepted by "+worker.Name)

	if err := s.jobs.ReplaceIfStatus(ctx, job, domain.StatusAvailable); err != nil {
		// Another worker won the race between our read and the write.
		if errors.Is(err, domain.ErrInvalidTransition) {
			return nil, domain.ErrJobNotAvailable
		}
		return nil, err
	}

	worker.Stats.TotalJobs++
	worker.UpdatedAt = time.Now().UTC()
	if err := s.workers.Update(ctx, worker); err != nil {
		s.logger.Error().Err(err).Str("worker_id", worker.ID).Msg("failed to update worker stats after accept")
		return nil, err
	}

	s.logger.Info().Str("job_id", job.ID).Str("worker_id", worker.ID).Msg("job accepted")
	return job, nil
}

// Arrive marks the assigned worker as on site and issues a fresh one-time
// passcode the customer must confirm before work starts.
func (s *JobService) Arrive(ctx context.Context, jobID, workerID string) (*ports.ArriveResult, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.WorkerID != workerID {
		return nil, domain.ErrForbidden
	}
	if !job.Status.CanTransitionTo(domain.StatusArrived) {
		return nil, transitionError(job.Status, domain.StatusArrived)
	}

	code, err := generatePasscode()
	if err != nil {
		return nil, fmt.Errorf("generate passcode: %w", err)
	}

	// Issue before the status write: if the store is down the job stays
	// accepted and arrive can be retried. A stale code for a job that never
	// arrived is unredeemable (start requires arrived) and expires with its
	// TTL. The reverse order would strand an arrived job with no code.
	if err := s.passcodes.Issue(ctx, job.ID, code); err != nil {
		return nil, fmt.Errorf("issue passcode: %w", err)
	}

	prev := job.Status
	now := time.Now().UTC()
	job.Status = domain.StatusArrived
	job.ArrivedAt = &now
	s.stamp(job, "worker on site")

	if err := s.jobs.ReplaceIfStatus(ctx, job, prev); err != nil {
		return nil, err
	}

	s.logger.Info().Str("job_id", job.ID).Str("worker_id", workerID).Msg("worker arrived, passcode issued")
	return &ports.ArriveResult{Job: job, Passcode: code}, nil
}

// Start verifies the one-time passcode and moves the job to in-progress.
// Redemption consumes the code, so a second start with the same code fails.
func (s *JobService) Start(ctx context.Context, jobID, passcode string) (*domain.Job, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !job.Status.CanTransitionTo(domain.StatusInProgress) {
		return nil, transitionError(job.Status, domain.StatusInProgress)
	}

	ok, err := s.passcodes.Redeem(ctx, job.ID, passcode)
	if err != nil {
		return nil, fmt.Errorf("redeem passcode: %w", err)
	}
	if !ok {
		return nil, domain.ErrInvalidPasscode
	}

	prev := job.Status
	now := time.Now().UTC()
	job.Status = domain.StatusInProgress
	job.StartedAt = &now
	s.stamp(job, "passcode verified")

	if err := s.jobs.ReplaceIfStatus(ctx, job, prev); err != nil {
		// Redemption already consumed the code; put it back so a retry
		// after a transient write failure is not locked out.
		if issueErr := s.passcodes.Issue(ctx, job.ID, passcode); issueErr != nil {
			s.logger.Warn().Err(issueErr).Str("job_id", job.ID).Msg("failed to restore passcode after write failure")
		}
		return nil, err
	}

	s.logger.Info().Str("job_id", job.ID).Msg("work started")
	return job, nil
}

// Complete marks the job finished and credits the assigned worker. The job
// must be in progress; completing twice fails. A vanished worker record is
// tolerated so a back-end inconsistency cannot block the customer-side
// completion.
func (s *JobService) Complete(ctx context.Context, jobID, workerID string) (*domain.Job, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.WorkerID != workerID {
		return nil, domain.ErrForbidden
	}
	if !job.Status.CanTransitionTo(domain.StatusCompleted) {
		return nil, transitionError(job.Status, domain.StatusCompleted)
	}

	prev := job.Status
	now := time.Now().UTC()
	job.Status = domain.StatusCompleted
	job.CompletedAt = &now
	s.stamp(job, "work completed")

	if err := s.jobs.ReplaceIfStatus(ctx, job, prev); err != nil {
		return nil, err
	}

	worker, err := s.workers.FindByID(ctx, workerID)
	if err != nil {
		s.logger.Warn().Err(err).Str("worker_id", workerID).Msg("worker missing on complete, stats not updated")
		return job, nil
	}
	worker.Stats.CompletedJobs++
	worker.Stats.Earnings += job.Price
	worker.UpdatedAt = now
	if err := s.workers.Update(ctx, worker); err != nil {
		s.logger.Warn().Err(err).Str("worker_id", workerID).Msg("failed to update worker stats after complete")
		return job, nil
	}

	s.logger.Info().Str("job_id", job.ID).Str("worker_id", workerID).Float64("price", job.Price).Msg("job completed")
	return job, nil
}

// Rate records the customer's rating on a completed job and recomputes the
// worker's displayed reputation score. Re-rating overwrites the previous
// rating. A worker that cannot be resolved leaves the job rated but the
// reputation untouched.
func (s *JobService) Rate(ctx context.Context, jobID string, in ports.RateJobInput) (*domain.Job, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, domain.ErrInvalidRating
	}

	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status != domain.StatusCompleted {
		return nil, fmt.Errorf("%w: job must be completed to be rated (status %s)", domain.ErrInvalidTransition, job.Status)
	}

	now := time.Now().UTC()
	job.Rating = in.Rating
	job.Review = in.Review
	job.RatedAt = &now
	job.UpdatedAt = now

	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, err
	}

	if err := s.refreshWorkerRating(ctx, job.WorkerID); err != nil {
		s.logger.Warn().Err(err).Str("worker_id", job.WorkerID).Msg("worker rating not refreshed")
	}

	s.logger.Info().Str("job_id", job.ID).Int("rating", in.Rating).Msg("job rated")
	return job, nil
}

// Cancel terminates the job on behalf of its owning customer. Completed and
// already-cancelled jobs cannot be cancelled.
func (s *JobService) Cancel(ctx context.Context, jobID, customerID string) (*domain.Job, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.CustomerID != customerID {
		return nil, domain.ErrForbidden
	}
	if !job.Status.CanTransitionTo(domain.StatusCancelled) {
		return nil, transitionError(job.Status, domain.StatusCancelled)
	}

	prev := job.Status
	job.Status = domain.StatusCancelled
	s.stamp(job, "cancelled by customer")

	if err := s.jobs.ReplaceIfStatus(ctx, job, prev); err != nil {
		return nil, err
	}

	s.logger.Info().Str("job_id", job.ID).Str("customer_id", customerID).Msg("job cancelled")
	return job, nil
}

// refreshWorkerRating recomputes the worker's displayed rating as the mean of
// all rated jobs, rounded to one decimal.
func (s *JobService) refreshWorkerRating(ctx context.Context, workerID string) error {
	worker, err := s.workers.FindByID(ctx, workerID)
	if err != nil {
		return err
	}
	jobs, err := s.jobs.ListByWorker(ctx, workerID)
	if err != nil {
		return err
	}

	worker.Stats.Rating = AverageRating(jobs)
	worker.UpdatedAt = time.Now().UTC()
	return s.workers.Update(ctx, worker)
}

// stamp appends a history entry for the job's current status and refreshes
// the update timestamp.
func (s *JobService) stamp(job *domain.Job, notes string) {
	now := time.Now().UTC()
	job.UpdatedAt = now
	job.StatusHistory = append(job.StatusHistory, domain.StatusHistoryEntry{
		Status:    job.Status,
		Timestamp: now,
		Notes:     notes,
	})
}

func transitionError(from, to domain.JobStatus) error {
	return fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, from, to)
}

// generatePasscode returns a 6-digit code drawn uniformly from
// [100000, 999999].
func generatePasscode() (string, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	n := binary.BigEndian.Uint64(b[:]) % 900000
	return fmt.Sprintf("%06d", 100000+n), nil
}
