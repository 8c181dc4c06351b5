package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/socialserv/marketplace-api/internal/api/metrics"
	"github.com/socialserv/marketplace-api/internal/core/domain"
	"github.com/socialserv/marketplace-api/internal/core/ports"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	service ports.AuthService
}

func NewAuthHandler(service ports.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// RegisterCustomer handles POST /v1/auth/register/customer.
//
// @Summary      Register a customer account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerCustomerRequest  true  "Account details"
// @Success      201   {object}  customerResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/auth/register/customer [post]
func (h *AuthHandler) RegisterCustomer(c echo.Context) error {
	var req registerCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	customer, err := h.service.RegisterCustomer(c.Request().Context(), ports.RegisterCustomerInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(domain.RoleCustomer).Inc()
	return c.JSON(http.StatusCreated, toCustomerResponse(customer))
}

// RegisterWorker handles POST /v1/auth/register/worker.
//
// @Summary      Register a worker account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerWorkerRequest  true  "Account details"
// @Success      201   {object}  workerResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/auth/register/worker [post]
func (h *AuthHandler) RegisterWorker(c echo.Context) error {
	var req registerWorkerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	worker, err := h.service.RegisterWorker(c.Request().Context(), ports.RegisterWorkerInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Services: req.Services,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(domain.RoleWorker).Inc()
	return c.JSON(http.StatusCreated, toWorkerResponse(worker))
}

// Login handles POST /v1/auth/login.
//
// @Summary      Log in with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	resp := loginResponse{Token: result.Token}
	switch {
	case result.Customer != nil:
		resp.Role = result.Customer.Role
		cr := toCustomerResponse(result.Customer)
		resp.Customer = &cr
	case result.Worker != nil:
		resp.Role = result.Worker.Role
		wr := toWorkerResponse(result.Worker)
		resp.Worker = &wr
	}

	return c.JSON(http.StatusOK, resp)
}
