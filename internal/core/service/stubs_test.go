package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/socialserv/marketplace-api/internal/core/domain"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubCustomerRepo struct {
	byID    map[string]*domain.Customer
	byEmail map[string]*domain.Customer
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{
		byID:    make(map[string]*domain.Customer),
		byEmail: make(map[string]*domain.Customer),
	}
}

func (r *stubCustomerRepo) Create(_ context.Context, c *domain.Customer) error {
	if _, ok := r.byEmail[c.Email]; ok {
		return domain.ErrEmailTaken
	}
	clone := *c
	r.byID[c.ID] = &clone
	r.byEmail[c.Email] = &clone
	return nil
}

func (r *stubCustomerRepo) FindByID(_ context.Context, id string) (*domain.Customer, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCustomerRepo) FindByEmail(_ context.Context, email string) (*domain.Customer, error) {
	c, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCustomerRepo) List(_ context.Context) ([]*domain.Customer, error) {
	out := make([]*domain.Customer, 0, len(r.byID))
	for _, c := range r.byID {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubCustomerRepo) Count(_ context.Context) (int64, error) { return int64(len(r.byID)), nil }

func (r *stubCustomerRepo) DeleteAll(_ context.Context) error {
	r.byID = make(map[string]*domain.Customer)
	r.byEmail = make(map[string]*domain.Customer)
	return nil
}

type stubWorkerRepo struct {
	byID      map[string]*domain.Worker
	byEmail   map[string]*domain.Worker
	updateErr error // if set, Update returns this error
	findErr   error // if set, FindByID returns this error
}

func newStubWorkerRepo() *stubWorkerRepo {
	return &stubWorkerRepo{
		byID:    make(map[string]*domain.Worker),
		byEmail: make(map[string]*domain.Worker),
	}
}

func (r *stubWorkerRepo) Create(_ context.Context, w *domain.Worker) error {
	if _, ok := r.byEmail[w.Email]; ok {
		return domain.ErrEmailTaken
	}
	clone := *w
	r.byID[w.ID] = &clone
	r.byEmail[w.Email] = &clone
	return nil
}

func (r *stubWorkerRepo) FindByID(_ context.Context, id string) (*domain.Worker, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	w, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrWorkerNotFound
	}
	clone := *w
	return &clone, nil
}

func (r *stubWorkerRepo) FindByEmail(_ context.Context, email string) (*domain.Worker, error) {
	w, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrWorkerNotFound
	}
	clone := *w
	return &clone, nil
}

func (r *stubWorkerRepo) List(_ context.Context) ([]*domain.Worker, error) {
	out := make([]*domain.Worker, 0, len(r.byID))
	for _, w := range r.byID {
		clone := *w
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubWorkerRepo) Update(_ context.Context, w *domain.Worker) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.byID[w.ID]; !ok {
		return domain.ErrWorkerNotFound
	}
	clone := *w
	r.byID[w.ID] = &clone
	r.byEmail[w.Email] = &clone
	return nil
}

func (r *stubWorkerRepo) Count(_ context.Context) (int64, error) { return int64(len(r.byID)), nil }

func (r *stubWorkerRepo) DeleteAll(_ context.Context) error {
	r.byID = make(map[string]*domain.Worker)
	r.byEmail = make(map[string]*domain.Worker)
	return nil
}

type stubJobRepo struct {
	byID       map[string]*domain.Job
	createErr  error // if set, Create returns this error
	replaceErr error // if set, ReplaceIfStatus returns this error
}

func newStubJobRepo() *stubJobRepo {
	return &stubJobRepo{byID: make(map[string]*domain.Job)}
}

func (r *stubJobRepo) Create(_ context.Context, j *domain.Job) error {
	if r.createErr != nil {
		return r.createErr
	}
	clone := *j
	r.byID[j.ID] = &clone
	return nil
}

func (r *stubJobRepo) FindByID(_ context.Context, id string) (*domain.Job, error) {
	j, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	clone := *j
	return &clone, nil
}

func (r *stubJobRepo) List(_ context.Context) ([]*domain.Job, error) {
	out := make([]*domain.Job, 0, len(r.byID))
	for _, j := range r.byID {
		clone := *j
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubJobRepo) ListOpenByServices(_ context.Context, services []string) ([]*domain.Job, error) {
	set := make(map[string]struct{}, len(services))
	for _, s := range services {
		set[s] = struct{}{}
	}
	var out []*domain.Job
	for _, j := range r.byID {
		if j.Status != domain.StatusAvailable {
			continue
		}
		if _, ok := set[j.Service]; !ok {
			continue
		}
		clone := *j
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubJobRepo) ListByWorker(_ context.Context, workerID string) ([]*domain.Job, error) {
	var out []*domain.Job
	for _, j := range r.byID {
		if j.WorkerID == workerID {
			clone := *j
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubJobRepo) ListByCustomer(_ context.Context, customerID string) ([]*domain.Job, error) {
	var out []*domain.Job
	for _, j := range r.byID {
		if j.CustomerID == customerID {
			clone := *j
			out = append(out, &clone)
		}
	}
	return out, nil
}

// ReplaceIfStatus mirrors the compare-and-set filter of the Mongo repo.
func (r *stubJobRepo) ReplaceIfStatus(_ context.Context, j *domain.Job, expected domain.JobStatus) error {
	if r.replaceErr != nil {
		return r.replaceErr
	}
	stored, ok := r.byID[j.ID]
	if !ok {
		return domain.ErrJobNotFound
	}
	if stored.Status != expected {
		return domain.ErrInvalidTransition
	}
	clone := *j
	r.byID[j.ID] = &clone
	return nil
}

func (r *stubJobRepo) Update(_ context.Context, j *domain.Job) error {
	if _, ok := r.byID[j.ID]; !ok {
		return domain.ErrJobNotFound
	}
	clone := *j
	r.byID[j.ID] = &clone
	return nil
}

func (r *stubJobRepo) Count(_ context.Context) (int64, error) { return int64(len(r.byID)), nil }

func (r *stubJobRepo) DeleteAll(_ context.Context) error {
	r.byID = make(map[string]*domain.Job)
	return nil
}

// stubPasscodeStore keeps issued codes in a map and consumes them on redeem.
type stubPasscodeStore struct {
	codes    map[string]string
	issueErr error
}

func newStubPasscodeStore() *stubPasscodeStore {
	return &stubPasscodeStore{codes: make(map[string]string)}
}

func (s *stubPasscodeStore) Issue(_ context.Context, jobID, code string) error {
	if s.issueErr != nil {
		return s.issueErr
	}
	s.codes[jobID] = code
	return nil
}

func (s *stubPasscodeStore) Redeem(_ context.Context, jobID, code string) (bool, error) {
	stored, ok := s.codes[jobID]
	if !ok || stored != code {
		return false, nil
	}
	delete(s.codes, jobID)
	return true, nil
}
