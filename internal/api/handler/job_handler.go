package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/socialserv/marketplace-api/internal/api/metrics"
	"github.com/socialserv/marketplace-api/internal/core/domain"
	"github.com/socialserv/marketplace-api/internal/core/ports"
)

// JobHandler handles HTTP requests for job operations.
type JobHandler struct {
	service ports.JobService
}

func NewJobHandler(service ports.JobService) *JobHandler {
	return &JobHandler{service: service}
}

// Create handles POST /v1/jobs.
//
// @Summary      Post a new job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createJobRequest  true  "Job details"
// @Success      201   {object}  jobResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	customerID, _, err := ctxAccount(c)
	if err != nil {
		return err
	}

	job, err := h.service.Create(c.Request().Context(), ports.CreateJobInput{
		Service:      req.Service,
		Description:  req.Description,
		Address:      req.Address,
		Price:        req.Price,
		CustomerID:   customerID,
		CustomerName: ctxAccountName(c),
	})
	if err != nil {
		return err
	}

	metrics.JobsCreatedTotal.WithLabelValues(job.Service).Inc()
	return c.JSON(http.StatusCreated, toJobResponse(job))
}

// List handles GET /v1/jobs.
//
// @Summary      List all jobs
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   jobResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	jobs, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toJobListResponse(jobs))
}

// Get handles GET /v1/jobs/:id.
//
// @Summary      Get a job by id
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job id"
// @Success      200  {object}  jobResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/jobs/{id} [get]
func (h *JobHandler) Get(c echo.Context) error {
	job, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toJobResponse(job))
}

// Update handles PUT /v1/jobs/:id — edits the posted details of an
// available job. Lifecycle state, worker assignment and rating cannot be
// changed through this endpoint.
//
// @Summary      Edit an available job's details
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Job id"
// @Param        body  body      updateJobRequest  true  "Fields to change"
// @Success      200   {object}  jobResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/jobs/{id} [put]
func (h *JobHandler) Update(c echo.Context) error {
	var req updateJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	customerID, _, err := ctxAccount(c)
	if err != nil {
		return err
	}

	job, err := h.service.UpdateDetails(c.Request().Context(), c.Param("id"), customerID, ports.UpdateJobDetailsInput{
		Description: req.Description,
		Address:     req.Address,
		Price:       req.Price,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toJobResponse(job))
}

// JobsForWorker handles GET /v1/jobs/worker/:worker_id — the matching view.
//
// @Summary      Jobs relevant to a worker
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        worker_id  path      string  true  "Worker id"
// @Success      200        {object}  workerJobsResponse
// @Failure      404        {object}  errorResponse
// @Router       /v1/jobs/worker/{worker_id} [get]
func (h *JobHandler) JobsForWorker(c echo.Context) error {
	jobs, err := h.service.JobsForWorker(c.Request().Context(), c.Param("worker_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, workerJobsResponse{
		Available: toJobListResponse(jobs.Available),
		Assigned:  toJobListResponse(jobs.Assigned),
	})
}

// JobsForCustomer handles GET /v1/jobs/customer/:customer_id.
//
// @Summary      Jobs posted by a customer
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        customer_id  path      string  true  "Customer id"
// @Success      200          {array}   jobResponse
// @Router       /v1/jobs/customer/{customer_id} [get]
func (h *JobHandler) JobsForCustomer(c echo.Context) error {
	jobs, err := h.service.JobsForCustomer(c.Request().Context(), c.Param("customer_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toJobListResponse(jobs))
}

// Accept handles POST /v1/jobs/:id/accept.
//
// @Summary      Accept an available job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Job id"
// @Param        body  body      acceptJobRequest  true  "Accepting worker"
// @Success      200   {object}  jobResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/jobs/{id}/accept [post]
func (h *JobHandler) Accept(c echo.Context) error {
	var req acceptJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	job, err := h.service.Accept(c.Request().Context(), c.Param("id"), req.WorkerID)
	if err != nil {
		return err
	}

	metrics.JobTransitionsTotal.WithLabelValues(string(domain.StatusAccepted)).Inc()
	return c.JSON(http.StatusOK, toJobResponse(job))
}

// Arrive handles POST /v1/jobs/:id/arrive — returns the one-time passcode.
//
// @Summary      Report arrival and issue a passcode
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Job id"
// @Param        body  body      arriveJobRequest  true  "Assigned worker"
// @Success      200   {object}  arriveJobResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/jobs/{id}/arrive [post]
func (h *JobHandler) Arrive(c echo.Context) error {
	var req arriveJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	res, err := h.service.Arrive(c.Request().Context(), c.Param("id"), req.WorkerID)
	if err != nil {
		return err
	}

	metrics.JobTransitionsTotal.WithLabelValues(string(domain.StatusArrived)).Inc()
	return c.JSON(http.StatusOK, arriveJobResponse{
		Passcode: res.Passcode,
		Job:      toJobResponse(res.Job),
	})
}

// Start handles POST /v1/jobs/:id/start — verifies the passcode.
//
// @Summary      Verify the passcode and start work
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Job id"
// @Param        body  body      startJobRequest  true  "One-time passcode"
// @Success      200   {object}  jobResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/jobs/{id}/start [post]
func (h *JobHandler) Start(c echo.Context) error {
	var req startJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	job, err := h.service.Start(c.Request().Context(), c.Param("id"), req.Passcode)
	if err != nil {
		return err
	}

	metrics.JobTransitionsTotal.WithLabelValues(string(domain.StatusInProgress)).Inc()
	return c.JSON(http.StatusOK, toJobResponse(job))
}

// Complete handles POST /v1/jobs/:id/complete.
//
// @Summary      Complete work on a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Job id"
// @Param        body  body      completeJobRequest  true  "Assigned worker"
// @Success      200   {object}  jobResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/jobs/{id}/complete [post]
func (h *JobHandler) Complete(c echo.Context) error {
	var req completeJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	job, err := h.service.Complete(c.Request().Context(), c.Param("id"), req.WorkerID)
	if err != nil {
		return err
	}

	metrics.JobTransitionsTotal.WithLabelValues(string(domain.StatusCompleted)).Inc()
	return c.JSON(http.StatusOK, toJobResponse(job))
}

// Rate handles POST /v1/jobs/:id/rate.
//
// @Summary      Rate a completed job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Job id"
// @Param        body  body      rateJobRequest  true  "Rating and review"
// @Success      200   {object}  jobResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/jobs/{id}/rate [post]
func (h *JobHandler) Rate(c echo.Context) error {
	var req rateJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	job, err := h.service.Rate(c.Request().Context(), c.Param("id"), ports.RateJobInput{
		Rating: req.Rating,
		Review: req.Review,
	})
	if err != nil {
		return err
	}

	metrics.RatingsSubmittedTotal.WithLabelValues(strconv.Itoa(req.Rating)).Inc()
	return c.JSON(http.StatusOK, toJobResponse(job))
}

// Cancel handles POST /v1/jobs/:id/cancel.
//
// @Summary      Cancel a job
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job id"
// @Success      200  {object}  jobResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/jobs/{id}/cancel [post]
func (h *JobHandler) Cancel(c echo.Context) error {
	customerID, _, err := ctxAccount(c)
	if err != nil {
		return err
	}

	job, err := h.service.Cancel(c.Request().Context(), c.Param("id"), customerID)
	if err != nil {
		return err
	}

	metrics.JobTransitionsTotal.WithLabelValues(string(domain.StatusCancelled)).Inc()
	return c.JSON(http.StatusOK, toJobResponse(job))
}
