package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/calendar"
	"github.com/iliyamo/hotel-reservation/internal/engine"
	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/queue"
)

// EventPublisher sends a reservation lifecycle event to the broker.
// Implemented by queue_publisher.Publisher; nil disables publishing.
type EventPublisher interface {
	PublishReservationEvent(ctx context.Context, ev queue.ReservationEvent) error
}

// OperatorHandler serves every authenticated endpoint: room and guest
// registration, listings, reservations and availability queries. All
// state access goes through the engine, which serializes it.
type OperatorHandler struct {
	Engine *engine.Engine
	Events EventPublisher // may be nil when no broker is configured
}

// NewOperatorHandler constructs an OperatorHandler. The engine is
// required; events may be nil.
func NewOperatorHandler(eng *engine.Engine, events EventPublisher) *OperatorHandler {
	if eng == nil {
		panic("nil engine passed to NewOperatorHandler")
	}
	return &OperatorHandler{Engine: eng, Events: events}
}

// publish sends a lifecycle event when a publisher is configured.
// Failures are already logged by the publisher and never fail the
// request that triggered them.
func (h *OperatorHandler) publish(c echo.Context, kind string, res model.Reservation) {
	if h.Events == nil {
		return
	}
	_ = h.Events.PublishReservationEvent(c.Request().Context(), queue.NewReservationEvent(kind, res))
}

// parseDateQuery reads a DD/MM/YYYY query parameter. The bool result
// reports success; on failure a 400 response has already been written.
func parseDateQuery(c echo.Context, name string) (calendar.Date, bool) {
	d, err := calendar.Parse(c.QueryParam(name))
	if err != nil {
		_ = c.JSON(http.StatusBadRequest, echo.Map{"error": name + " must be a DD/MM/YYYY date"})
		return calendar.Date{}, false
	}
	return d, true
}
