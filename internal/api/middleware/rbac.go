package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/receptionhq/queue-calling/internal/core/domain"
)

// RequireRole enforces role-based access control. It must run after Auth: a
// valid session with an insufficient role is a 403, never a 401.
func RequireRole(need string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(string)
			if !domain.RoleSatisfies(role, need) {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
