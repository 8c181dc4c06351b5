package domain

import (
	"errors"
	"time"
)

// JobStatus represents the lifecycle state of a job.
type JobStatus string

const (
	StatusAvailable  JobStatus = "available"
	StatusAccepted   JobStatus = "accepted"
	StatusArrived    JobStatus = "arrived"
	StatusInProgress JobStatus = "in-progress"
	StatusCompleted  JobStatus = "completed"
	StatusCancelled  JobStatus = "cancelled"
)

// validTransitions defines the allowed state machine transitions.
// Cancellation is reachable from every non-terminal state.
var validTransitions = map[JobStatus][]JobStatus{
	StatusAvailable:  {StatusAccepted, StatusCancelled},
	StatusAccepted:   {StatusArrived, StatusCancelled},
	StatusArrived:    {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
}

var ErrInvalidTransition = errors.New("invalid status transition")
var ErrJobNotFound = errors.New("job not found")
var ErrJobNotAvailable = errors.New("job is no longer available")
var ErrServiceMismatch = errors.New("worker does not provide this service")
var ErrInvalidPasscode = errors.New("invalid passcode")
var ErrInvalidRating = errors.New("rating must be between 1 and 5")
var ErrForbidden = errors.New("access forbidden")

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s JobStatus) CanTransitionTo(next JobStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether the status admits no further transitions.
func (s JobStatus) Terminal() bool {
	return len(validTransitions[s]) == 0
}

// StatusHistoryEntry records a single status transition on a job.
type StatusHistoryEntry struct {
	Status    JobStatus `json:"status" bson:"status"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
	Notes     string    `json:"notes,omitempty" bson:"notes,omitempty"`
}

// Job is the core aggregate root: a single requested unit of service work
// tracked from creation through completion and rating.
type Job struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Service      string    `json:"service" bson:"service"`
	Description  string    `json:"description,omitempty" bson:"description,omitempty"`
	Address      string    `json:"address,omitempty" bson:"address,omitempty"`
	CustomerID   string    `json:"customer_id" bson:"customer_id"`
	CustomerName string    `json:"customer_name" bson:"customer_name"`
	Price        float64   `json:"price" bson:"price"`
	Status       JobStatus `json:"status" bson:"status"`

	// Set once a worker accepts the job.
	WorkerID   string `json:"worker_id,omitempty" bson:"worker_id,omitempty"`
	WorkerName string `json:"worker_name,omitempty" bson:"worker_name,omitempty"`

	// Set once the customer rates the completed job.
	Rating  int    `json:"rating,omitempty" bson:"rating,omitempty"`
	Review  string `json:"review,omitempty" bson:"review,omitempty"`

	CreatedAt   time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" bson:"updated_at"`
	ArrivedAt   *time.Time `json:"arrived_at,omitempty" bson:"arrived_at,omitempty"`
	StartedAt   *time.Time `json:"started_at,omitempty" bson:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty" bson:"completed_at,omitempty"`
	RatedAt     *time.Time `json:"rated_at,omitempty" bson:"rated_at,omitempty"`

	StatusHistory []StatusHistoryEntry `json:"status_history" bson:"status_history"`
}
