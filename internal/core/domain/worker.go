package domain

import (
	"errors"
	"time"
)

var ErrWorkerNotFound = errors.New("worker not found")

// WorkerStats holds the reputation counters owned by the job lifecycle
// engine. They are never writable through profile updates.
type WorkerStats struct {
	Rating        float64 `json:"rating" bson:"rating"`
	TotalJobs     int     `json:"total_jobs" bson:"total_jobs"`
	CompletedJobs int     `json:"completed_jobs" bson:"completed_jobs"`
	Earnings      float64 `json:"earnings" bson:"earnings"`
}

// Worker is a service provider able to fulfil jobs matching its declared
// service categories.
type Worker struct {
	ID           string      `json:"id" bson:"_id,omitempty"`
	Name         string      `json:"name" bson:"name"`
	Email        string      `json:"email" bson:"email"`
	PasswordHash string      `json:"-" bson:"password_hash"`
	Phone        string      `json:"phone,omitempty" bson:"phone,omitempty"`
	Services     []string    `json:"services" bson:"services"`
	Stats        WorkerStats `json:"stats" bson:"stats"`
	Available    bool        `json:"available" bson:"available"`
	Role         string      `json:"role" bson:"role"`
	JoinedAt     time.Time   `json:"joined_at" bson:"joined_at"`
	UpdatedAt    time.Time   `json:"updated_at" bson:"updated_at"`
}

// ProvidesService reports whether the worker declares the given service category.
func (w *Worker) ProvidesService(service string) bool {
	for _, s := range w.Services {
		if s == service {
			return true
		}
	}
	return false
}
