package handler

import (
	"time"

	"github.com/socialserv/marketplace-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type createJobRequest struct {
	Service     string  `json:"service"     validate:"required"`
	Description string  `json:"description"`
	Address     string  `json:"address"`
	Price       float64 `json:"price"       validate:"gte=0"`
}

type updateJobRequest struct {
	Description *string  `json:"description,omitempty"`
	Address     *string  `json:"address,omitempty"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
}

type acceptJobRequest struct {
	WorkerID string `json:"worker_id" validate:"required"`
}

type arriveJobRequest struct {
	WorkerID string `json:"worker_id" validate:"required"`
}

type startJobRequest struct {
	Passcode string `json:"passcode" validate:"required,len=6"`
}

type completeJobRequest struct {
	WorkerID string `json:"worker_id" validate:"required"`
}

type rateJobRequest struct {
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Review string `json:"review"`
}

// --- Response types ---
// Response-only types owned by the transport layer, intentionally separate
// from domain types so the JSON contract is not coupled to internal changes.

type statusHistoryItemResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Notes     string    `json:"notes,omitempty"`
}

type jobResponse struct {
	ID           string     `json:"id"`
	Service      string     `json:"service"`
	Description  string     `json:"description,omitempty"`
	Address      string     `json:"address,omitempty"`
	CustomerID   string     `json:"customer_id"`
	CustomerName string     `json:"customer_name"`
	Price        float64    `json:"price"`
	Status       string     `json:"status"`
	WorkerID     string     `json:"worker_id,omitempty"`
	WorkerName   string     `json:"worker_name,omitempty"`
	Rating       int        `json:"rating,omitempty"`
	Review       string     `json:"review,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	ArrivedAt    *time.Time `json:"arrived_at,omitempty"`
	StartedAt    *time.Time `json:"started_at,omitempty"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	RatedAt      *time.Time `json:"rated_at,omitempty"`

	StatusHistory []statusHistoryItemResponse `json:"status_history,omitempty"`
}

type arriveJobResponse struct {
	Passcode string      `json:"passcode"`
	Job      jobResponse `json:"job"`
}

type workerJobsResponse struct {
	Available []jobResponse `json:"available"`
	Assigned  []jobResponse `json:"assigned"`
}

// --- Mappers ---

func toJobResponse(j *domain.Job) jobResponse {
	history := make([]statusHistoryItemResponse, len(j.StatusHistory))
	for i, h := range j.StatusHistory {
		history[i] = statusHistoryItemResponse{
			Status:    string(h.Status),
			Timestamp: h.Timestamp.UTC(),
			Notes:     h.Notes,
		}
	}

	return jobResponse{
		ID:            j.ID,
		Service:       j.Service,
		Description:   j.Description,
		Address:       j.Address,
		CustomerID:    j.CustomerID,
		CustomerName:  j.CustomerName,
		Price:         j.Price,
		Status:        string(j.Status),
		WorkerID:      j.WorkerID,
		WorkerName:    j.WorkerName,
		Rating:        j.Rating,
		Review:        j.Review,
		CreatedAt:     j.CreatedAt.UTC(),
		UpdatedAt:     j.UpdatedAt.UTC(),
		ArrivedAt:     j.ArrivedAt,
		StartedAt:     j.StartedAt,
		CompletedAt:   j.CompletedAt,
		RatedAt:       j.RatedAt,
		StatusHistory: history,
	}
}

func toJobListResponse(jobs []*domain.Job) []jobResponse {
	out := make([]jobResponse, len(jobs))
	for i, j := range jobs {
		out[i] = toJobResponse(j)
	}
	return out
}
