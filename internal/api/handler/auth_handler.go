package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/receptionhq/queue-calling/internal/api/metrics"
	"github.com/receptionhq/queue-calling/internal/api/middleware"
	"github.com/receptionhq/queue-calling/internal/core/domain"
	"github.com/receptionhq/queue-calling/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates a user and issues a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorEnvelope
// @Failure      401   {object}  errorEnvelope
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	_ = c.Bind(&req)
	if err := c.Validate(&req); err != nil {
		return err
	}

	session, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if err == domain.ErrInvalidLogin {
			metrics.LoginAttemptsTotal.WithLabelValues("invalid").Inc()
		} else if err != domain.ErrMissingFields {
			metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		OK:       true,
		Token:    session.Token,
		Username: session.Username,
		Role:     session.Role,
	})
}

// Logout revokes the caller's session. It always succeeds, with or without a
// token.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  okResponse
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token := middleware.BearerToken(c)
	if token != "" {
		if err := h.authService.Logout(c.Request().Context(), token); err != nil {
			return err
		}
		metrics.SessionsRevokedTotal.WithLabelValues("logout").Inc()
	}
	return c.JSON(http.StatusOK, responseOK)
}
