package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/socialserv/marketplace-api/internal/core/domain"
	"github.com/socialserv/marketplace-api/internal/core/ports"
)

// WorkerService exposes the worker directory. Profile updates go through a
// narrow contract: only name, phone, services and availability are mutable
// here. Statistics belong to the job lifecycle engine and cannot be touched.
type WorkerService struct {
	workers ports.WorkerRepository
	logger  zerolog.Logger
}

func NewWorkerService(workers ports.WorkerRepository, logger zerolog.Logger) *WorkerService {
	return &WorkerService{workers: workers, logger: logger}
}

func (s *WorkerService) Get(ctx context.Context, id string) (*domain.Worker, error) {
	return s.workers.FindByID(ctx, id)
}

func (s *WorkerService) List(ctx context.Context) ([]*domain.Worker, error) {
	return s.workers.List(ctx)
}

// UpdateProfile merges the supplied fields into the worker record. Nil
// pointer fields and a nil Services slice leave the stored value untouched.
func (s *WorkerService) UpdateProfile(ctx context.Context, id string, in ports.UpdateWorkerProfileInput) (*domain.Worker, error) {
	worker, err := s.workers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		worker.Name = *in.Name
	}
	if in.Phone != nil {
		worker.Phone = *in.Phone
	}
	if in.Services != nil {
		worker.Services = in.Services
	}
	if in.Available != nil {
		worker.Available = *in.Available
	}
	worker.UpdatedAt = time.Now().UTC()

	if err := s.workers.Update(ctx, worker); err != nil {
		return nil, err
	}

	s.logger.Info().Str("worker_id", worker.ID).Msg("worker profile updated")
	return worker, nil
}
