package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/receptionhq/queue-calling/internal/api/metrics"
	"github.com/receptionhq/queue-calling/internal/core/ports"
)

// DisplayHandler manages the side-channel fields of the display screen:
// ticker, display message, note, center image, and the staff/admin mailboxes.
type DisplayHandler struct {
	queueService ports.QueueService
}

func NewDisplayHandler(queueService ports.QueueService) *DisplayHandler {
	return &DisplayHandler{queueService: queueService}
}

// SetBroadcast returns a handler writing the given side-channel field.
func (h *DisplayHandler) SetBroadcast(field ports.BroadcastField) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req broadcastRequest
		_ = c.Bind(&req)
		if err := c.Validate(&req); err != nil {
			return err
		}

		start := time.Now()
		if err := h.queueService.SetBroadcast(c.Request().Context(), field, req.Text, ctxUsername(c)); err != nil {
			return err
		}

		metrics.BroadcastUpdatesTotal.WithLabelValues(string(field), "set").Inc()
		metrics.MutationDuration.WithLabelValues("broadcast").Observe(time.Since(start).Seconds())
		return c.JSON(http.StatusOK, responseOK)
	}
}

// ClearBroadcast returns a handler emptying the given side-channel field and
// marking it inactive.
func (h *DisplayHandler) ClearBroadcast(field ports.BroadcastField) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := h.queueService.ClearBroadcast(c.Request().Context(), field); err != nil {
			return err
		}

		metrics.BroadcastUpdatesTotal.WithLabelValues(string(field), "clear").Inc()
		return c.JSON(http.StatusOK, responseOK)
	}
}

// SetCenterImage stores a data-URL image for the display center slot.
//
// @Summary      Set the center image
// @Tags         display
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      imageRequest  true  "Data-URL image"
// @Success      200   {object}  okResponse
// @Failure      400   {object}  errorEnvelope
// @Router       /center-image [post]
func (h *DisplayHandler) SetCenterImage(c echo.Context) error {
	var req imageRequest
	_ = c.Bind(&req)

	if err := h.queueService.SetCenterImage(c.Request().Context(), req.Image); err != nil {
		return err
	}

	metrics.BroadcastUpdatesTotal.WithLabelValues("center_image", "set").Inc()
	return c.JSON(http.StatusOK, responseOK)
}

// ClearCenterImage removes the center image.
//
// @Summary      Clear the center image
// @Tags         display
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  okResponse
// @Router       /center-image [delete]
func (h *DisplayHandler) ClearCenterImage(c echo.Context) error {
	if err := h.queueService.ClearCenterImage(c.Request().Context()); err != nil {
		return err
	}

	metrics.BroadcastUpdatesTotal.WithLabelValues("center_image", "clear").Inc()
	return c.JSON(http.StatusOK, responseOK)
}
