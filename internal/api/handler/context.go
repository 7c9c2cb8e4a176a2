package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/driverapp/ride-booking/internal/api/middleware"
)

// ctxUserID extracts the authenticated user id injected by the Auth
// middleware. A zero id means the middleware never ran on this route,
// so fail before any service call.
func ctxUserID(c echo.Context) (uint, error) {
	id, _ := c.Get(middleware.ContextUserID).(uint)
	if id == 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
