package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/socialserv/marketplace-api/internal/core/ports"
)

// CustomerHandler exposes the customer directory.
type CustomerHandler struct {
	service ports.CustomerService
}

func NewCustomerHandler(service ports.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

// List handles GET /v1/customers.
//
// @Summary      List registered customers
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   customerResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/customers [get]
func (h *CustomerHandler) List(c echo.Context) error {
	customers, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCustomerListResponse(customers))
}
