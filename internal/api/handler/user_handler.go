package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/receptionhq/queue-calling/internal/api/metrics"
	"github.com/receptionhq/queue-calling/internal/core/domain"
	"github.com/receptionhq/queue-calling/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List returns all users without their password hashes.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  usersResponse
// @Failure      401  {object}  errorEnvelope
// @Failure      403  {object}  errorEnvelope
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return err
	}
	if users == nil {
		users = []domain.User{}
	}
	return c.JSON(http.StatusOK, usersResponse{OK: true, Users: users})
}

// Create adds a new staff or admin account.
//
// @Summary      Add a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "New account"
// @Success      200   {object}  okResponse
// @Failure      400   {object}  errorEnvelope
// @Failure      409   {object}  errorEnvelope
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	_ = c.Bind(&req)
	if err := c.Validate(&req); err != nil {
		return err
	}

	if _, err := h.userService.Add(c.Request().Context(), req.Username, req.Password, req.Role); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, responseOK)
}

// ResetPassword overwrites a user's password and revokes their sessions.
//
// @Summary      Reset a user's password
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string                true  "Username"
// @Param        body      body      resetPasswordRequest  true  "New password"
// @Success      200       {object}  okResponse
// @Failure      400       {object}  errorEnvelope
// @Failure      404       {object}  errorEnvelope
// @Router       /users/{username}/password [put]
func (h *UserHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	_ = c.Bind(&req)
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.userService.ResetPassword(c.Request().Context(), c.Param("username"), req.Password); err != nil {
		return err
	}

	metrics.SessionsRevokedTotal.WithLabelValues("password_reset").Inc()
	return c.JSON(http.StatusOK, responseOK)
}

// Delete removes a user. The seeded admin account is refused.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  okResponse
// @Failure      400       {object}  errorEnvelope
// @Failure      404       {object}  errorEnvelope
// @Router       /users/{username} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.userService.Delete(c.Request().Context(), c.Param("username")); err != nil {
		return err
	}

	metrics.SessionsRevokedTotal.WithLabelValues("user_deleted").Inc()
	return c.JSON(http.StatusOK, responseOK)
}
