package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/socialserv/marketplace-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// notFoundResponse is rendered for unknown routes, enumerating the supported
// operation set.
type notFoundResponse struct {
	Error     string   `json:"error"`
	Endpoints []string `json:"endpoints"`
}

// supportedEndpoints lists the operations the API exposes, rendered on
// unknown-route errors.
var supportedEndpoints = []string{
	"GET /health",
	"GET /health/ready",
	"GET /health/stats",
	"POST /v1/auth/register/customer",
	"POST /v1/auth/register/worker",
	"POST /v1/auth/login",
	"GET /v1/customers",
	"GET /v1/workers",
	"PUT /v1/workers/me",
	"GET /v1/jobs",
	"POST /v1/jobs",
	"GET /v1/jobs/:id",
	"PUT /v1/jobs/:id",
	"GET /v1/jobs/worker/:worker_id",
	"GET /v1/jobs/customer/:customer_id",
	"POST /v1/jobs/:id/accept",
	"POST /v1/jobs/:id/arrive",
	"POST /v1/jobs/:id/start",
	"POST /v1/jobs/:id/complete",
	"POST /v1/jobs/:id/rate",
	"POST /v1/jobs/:id/cancel",
	"DELETE /v1/admin/data",
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		// Unknown route: report the supported operation set.
		if errors.Is(err, echo.ErrNotFound) {
			_ = c.JSON(http.StatusNotFound, notFoundResponse{
				Error:     "endpoint not found",
				Endpoints: supportedEndpoints,
			})
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 405 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrJobNotFound):
		return http.StatusNotFound, "job not found"
	case errors.Is(err, domain.ErrWorkerNotFound):
		return http.StatusNotFound, "worker not found"
	case errors.Is(err, domain.ErrCustomerNotFound):
		return http.StatusNotFound, "customer not found"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden"
	case errors.Is(err, domain.ErrJobNotAvailable):
		return http.StatusConflict, "job is no longer available"
	case errors.Is(err, domain.ErrServiceMismatch):
		return http.StatusUnprocessableEntity, "worker does not provide this service"
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, domain.ErrInvalidPasscode):
		return http.StatusBadRequest, "invalid passcode"
	case errors.Is(err, domain.ErrInvalidRating):
		return http.StatusBadRequest, "rating must be between 1 and 5"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid email or password"
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict, "email already registered"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
