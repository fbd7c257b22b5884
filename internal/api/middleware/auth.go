package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/receptionhq/queue-calling/internal/core/domain"
	"github.com/receptionhq/queue-calling/internal/core/ports"
)

// Context keys set by Auth for downstream handlers.
const (
	CtxUsername = "username"
	CtxRole     = "role"
)

// BearerToken extracts the token from the Authorization header. A missing or
// malformed header yields the empty string, indistinguishable from no session.
func BearerToken(c echo.Context) string {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// Auth resolves the bearer token to a live session and injects the session's
// username and role into the request context. Absent, malformed, unknown, and
// expired tokens are all rejected identically.
func Auth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := BearerToken(c)
			if token == "" {
				return domain.ErrUnauthorized
			}

			session, err := auth.Validate(c.Request().Context(), token)
			if err != nil {
				return err
			}

			c.Set(CtxUsername, session.Username)
			c.Set(CtxRole, session.Role)
			return next(c)
		}
	}
}
