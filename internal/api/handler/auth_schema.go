package handler

import (
	"time"

	"github.com/socialserv/marketplace-api/internal/core/domain"
)

type registerCustomerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type registerWorkerRequest struct {
	Name     string   `json:"name"     validate:"required"`
	Email    string   `json:"email"    validate:"required,email"`
	Password string   `json:"password" validate:"required,min=8"`
	Phone    string   `json:"phone"`
	Services []string `json:"services" validate:"required,min=1,dive,required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type customerResponse struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone,omitempty"`
	Address  string    `json:"address,omitempty"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

type workerStatsResponse struct {
	Rating        float64 `json:"rating"`
	TotalJobs     int     `json:"total_jobs"`
	CompletedJobs int     `json:"completed_jobs"`
	Earnings      float64 `json:"earnings"`
}

type workerResponse struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	Email     string              `json:"email"`
	Phone     string              `json:"phone,omitempty"`
	Services  []string            `json:"services"`
	Stats     workerStatsResponse `json:"stats"`
	Available bool                `json:"available"`
	Role      string              `json:"role"`
	JoinedAt  time.Time           `json:"joined_at"`
}

// loginResponse carries the signed token plus the matched account. Exactly
// one of customer and worker is present, matching the resolved role.
type loginResponse struct {
	Token    string            `json:"token"`
	Role     string            `json:"role"`
	Customer *customerResponse `json:"customer,omitempty"`
	Worker   *workerResponse   `json:"worker,omitempty"`
}

func toCustomerResponse(c *domain.Customer) customerResponse {
	return customerResponse{
		ID:       c.ID,
		Name:     c.Name,
		Email:    c.Email,
		Phone:    c.Phone,
		Address:  c.Address,
		Role:     c.Role,
		JoinedAt: c.JoinedAt.UTC(),
	}
}

func toCustomerListResponse(customers []*domain.Customer) []customerResponse {
	out := make([]customerResponse, len(customers))
	for i, c := range customers {
		out[i] = toCustomerResponse(c)
	}
	return out
}

func toWorkerResponse(w *domain.Worker) workerResponse {
	return workerResponse{
		ID:       w.ID,
		Name:     w.Name,
		Email:    w.Email,
		Phone:    w.Phone,
		Services: w.Services,
		Stats: workerStatsResponse{
			Rating:        w.Stats.Rating,
			TotalJobs:     w.Stats.TotalJobs,
			CompletedJobs: w.Stats.CompletedJobs,
			Earnings:      w.Stats.Earnings,
		},
		Available: w.Available,
		Role:      w.Role,
		JoinedAt:  w.JoinedAt.UTC(),
	}
}

func toWorkerListResponse(workers []*domain.Worker) []workerResponse {
	out := make([]workerResponse, len(workers))
	for i, w := range workers {
		out[i] = toWorkerResponse(w)
	}
	return out
}
