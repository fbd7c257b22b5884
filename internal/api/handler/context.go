package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/receptionhq/queue-calling/internal/api/middleware"
)

// ctxUsername returns the username injected by the Auth middleware. Empty
// means the middleware did not run, which only happens on public routes.
func ctxUsername(c echo.Context) string {
	username, _ := c.Get(middleware.CtxUsername).(string)
	return username
}
