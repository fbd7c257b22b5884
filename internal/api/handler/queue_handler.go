package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/receptionhq/queue-calling/internal/api/metrics"
	"github.com/receptionhq/queue-calling/internal/core/domain"
	"github.com/receptionhq/queue-calling/internal/core/ports"
)

type QueueHandler struct {
	queueService ports.QueueService
}

func NewQueueHandler(queueService ports.QueueService) *QueueHandler {
	return &QueueHandler{queueService: queueService}
}

// State returns the current queue snapshot for the display screen.
//
// @Summary      Current queue state
// @Tags         queue
// @Produce      json
// @Success      200  {object}  stateResponse
// @Router       /state [get]
func (h *QueueHandler) State(c echo.Context) error {
	state, err := h.queueService.State(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stateResponse{OK: true, State: state})
}

// Next calls the next ticket on a lane.
//
// @Summary      Call next ticket
// @Tags         queue
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      callNextRequest  true  "Ticket number and lane"
// @Success      200   {object}  currentResponse
// @Failure      400   {object}  errorEnvelope
// @Failure      401   {object}  errorEnvelope
// @Router       /next [post]
func (h *QueueHandler) Next(c echo.Context) error {
	var req callNextRequest
	_ = c.Bind(&req)
	if err := c.Validate(&req); err != nil {
		return err
	}

	start := time.Now()
	state, err := h.queueService.CallNext(c.Request().Context(), ports.CallInput{
		Number:   req.Number,
		Lane:     req.Gender,
		CalledBy: ctxUsername(c),
	})
	if err != nil {
		return err
	}

	metrics.CallsTotal.WithLabelValues(req.Gender).Inc()
	metrics.MutationDuration.WithLabelValues("next").Observe(time.Since(start).Seconds())
	return c.JSON(http.StatusOK, currentResponse{OK: true, Current: state.Current})
}

// Prev recalls the previously called ticket.
//
// @Summary      Recall previous ticket
// @Tags         queue
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  currentResponse
// @Failure      400  {object}  errorEnvelope
// @Failure      401  {object}  errorEnvelope
// @Router       /prev [post]
func (h *QueueHandler) Prev(c echo.Context) error {
	var req recallRequest
	_ = c.Bind(&req) // lane is accepted but ignored: recall is combined-stack

	start := time.Now()
	state, err := h.queueService.Recall(c.Request().Context())
	if err != nil {
		if err == domain.ErrNoPrevious {
			metrics.RecallsTotal.WithLabelValues("empty").Inc()
		}
		return err
	}

	metrics.RecallsTotal.WithLabelValues("ok").Inc()
	metrics.MutationDuration.WithLabelValues("prev").Observe(time.Since(start).Seconds())
	return c.JSON(http.StatusOK, currentResponse{OK: true, Current: state.Current})
}

// Reset clears the current ticket and all call history. Side-channel fields
// survive a reset.
//
// @Summary      Reset the queue
// @Tags         queue
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  okResponse
// @Failure      401  {object}  errorEnvelope
// @Failure      403  {object}  errorEnvelope
// @Router       /queue/reset [post]
func (h *QueueHandler) Reset(c echo.Context) error {
	start := time.Now()
	if err := h.queueService.ResetQueue(c.Request().Context()); err != nil {
		return err
	}

	metrics.ResetsTotal.Inc()
	metrics.MutationDuration.WithLabelValues("reset").Observe(time.Since(start).Seconds())
	return c.JSON(http.StatusOK, responseOK)
}
