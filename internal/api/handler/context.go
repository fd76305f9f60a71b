package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/moviehub/rental-system/internal/core/ports"
)

// ctxCaller extracts the identity injected by the Auth middleware and
// performs a fast-fail check before any service call: a missing email claim
// means the middleware did not run or the token carries no usable identity.
func ctxCaller(c echo.Context) (ports.Caller, error) {
	email, _ := c.Get("email").(string)
	if email == "" {
		return ports.Caller{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	role, _ := c.Get("role").(string)
	return ports.Caller{Email: email, Role: role}, nil
}
