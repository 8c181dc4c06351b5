package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxAccount extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: both the account id and
// the role must be present — presence proves the middleware ran.
func ctxAccount(c echo.Context) (accountID, role string, err error) {
	accountID, _ = c.Get("account_id").(string)
	role, _ = c.Get("role").(string)
	if accountID == "" || role == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return accountID, role, nil
}

// ctxAccountName returns the display name claim, if any.
func ctxAccountName(c echo.Context) string {
	name, _ := c.Get("account_name").(string)
	return name
}
