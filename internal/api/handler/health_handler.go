package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/socialserv/marketplace-api/internal/core/ports"
)

// HealthHandler handles GET /health — liveness probe.
// Returns 200 immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// HealthDependenciesHandler handles GET /health/ready — readiness probe.
// Checks MongoDB and Redis connectivity before declaring the service ready.
type HealthDependenciesHandler struct {
	mongo *mongo.Database
	redis *redis.Client
}

func NewHealthDependenciesHandler(db *mongo.Database, rdb *redis.Client) *HealthDependenciesHandler {
	return &HealthDependenciesHandler{
		mongo: db,
		redis: rdb,
	}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

func (h *HealthDependenciesHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	deps := make(map[string]dependencyStatus)
	healthy := true

	// --- MongoDB ping ---
	if err := h.mongo.Client().Ping(ctx, nil); err != nil {
		deps["mongodb"] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
		healthy = false
	} else {
		deps["mongodb"] = dependencyStatus{Status: "ok"}
	}

	// --- MongoDB database reachable ---
	if healthy {
		if err := h.mongo.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
			deps["mongodb"] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
			healthy = false
		}
	}

	// --- Redis ping ---
	if _, err := h.redis.Ping(ctx).Result(); err != nil {
		deps["redis"] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
		healthy = false
	} else {
		deps["redis"] = dependencyStatus{Status: "ok"}
	}

	status := "ok"
	httpStatus := http.StatusOK
	if !healthy {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, readinessResponse{
		Status:       status,
		Dependencies: deps,
	})
}

// StatsHandler handles GET /health/stats — record counts per collection plus
// the service identity, for dashboards and smoke checks.
type StatsHandler struct {
	service string
	version string

	customers ports.CustomerRepository
	workers   ports.WorkerRepository
	jobs      ports.JobRepository
}

func NewStatsHandler(service, version string, customers ports.CustomerRepository, workers ports.WorkerRepository, jobs ports.JobRepository) *StatsHandler {
	return &StatsHandler{
		service:   service,
		version:   version,
		customers: customers,
		workers:   workers,
		jobs:      jobs,
	}
}

type statsResponse struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	Customers int64  `json:"customers"`
	Workers   int64  `json:"workers"`
	Jobs      int64  `json:"jobs"`
}

func (h *StatsHandler) Stats(c echo.Context) error {
	ctx := c.Request().Context()

	customers, err := h.customers.Count(ctx)
	if err != nil {
		return err
	}
	workers, err := h.workers.Count(ctx)
	if err != nil {
		return err
	}
	jobs, err := h.jobs.Count(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, statsResponse{
		Service:   h.service,
		Version:   h.version,
		Customers: customers,
		Workers:   workers,
		Jobs:      jobs,
	})
}
