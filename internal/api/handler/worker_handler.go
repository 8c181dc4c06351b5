package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/socialserv/marketplace-api/internal/core/domain"
	"github.com/socialserv/marketplace-api/internal/core/ports"
)

// WorkerHandler exposes the worker directory.
type WorkerHandler struct {
	service ports.WorkerService
}

func NewWorkerHandler(service ports.WorkerService) *WorkerHandler {
	return &WorkerHandler{service: service}
}

type updateWorkerProfileRequest struct {
	Name      *string  `json:"name,omitempty"`
	Phone     *string  `json:"phone,omitempty"`
	Services  []string `json:"services,omitempty" validate:"omitempty,min=1,dive,required"`
	Available *bool    `json:"available,omitempty"`
}

// List handles GET /v1/workers.
//
// @Summary      List registered workers
// @Tags         workers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   workerResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/workers [get]
func (h *WorkerHandler) List(c echo.Context) error {
	workers, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toWorkerListResponse(workers))
}

// UpdateProfile handles PUT /v1/workers/me. The target worker is the
// authenticated account; statistics cannot be set through this endpoint.
//
// @Summary      Update the authenticated worker's profile
// @Tags         workers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateWorkerProfileRequest  true  "Profile fields to change"
// @Success      200   {object}  workerResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/workers/me [put]
func (h *WorkerHandler) UpdateProfile(c echo.Context) error {
	accountID, role, err := ctxAccount(c)
	if err != nil {
		return err
	}
	if role != domain.RoleWorker {
		return domain.ErrForbidden
	}

	var req updateWorkerProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	worker, err := h.service.UpdateProfile(c.Request().Context(), accountID, ports.UpdateWorkerProfileInput{
		Name:      req.Name,
		Phone:     req.Phone,
		Services:  req.Services,
		Available: req.Available,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toWorkerResponse(worker))
}
