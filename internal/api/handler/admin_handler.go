package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/socialserv/marketplace-api/internal/core/ports"
)

// AdminHandler exposes destructive maintenance operations. Routes using it
// must sit behind the admin role check.
type AdminHandler struct {
	customers ports.CustomerRepository
	workers   ports.WorkerRepository
	jobs      ports.JobRepository
	log       zerolog.Logger
}

func NewAdminHandler(customers ports.CustomerRepository, workers ports.WorkerRepository, jobs ports.JobRepository, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		customers: customers,
		workers:   workers,
		jobs:      jobs,
		log:       log,
	}
}

// PurgeData handles DELETE /v1/admin/data — wipes every record collection.
// Intended for test environments; the logs keep an audit trail of each purge.
//
// @Summary      Delete all stored records
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/data [delete]
func (h *AdminHandler) PurgeData(c echo.Context) error {
	accountID, _, err := ctxAccount(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	if err := h.jobs.DeleteAll(ctx); err != nil {
		return err
	}
	if err := h.workers.DeleteAll(ctx); err != nil {
		return err
	}
	if err := h.customers.DeleteAll(ctx); err != nil {
		return err
	}

	h.log.Warn().
		Str("requested_by", accountID).
		Msg("all records purged")

	return c.JSON(http.StatusOK, map[string]string{
		"status": "all data deleted",
	})
}
