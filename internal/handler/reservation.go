package handler // handler contains reservation booking and lifecycle endpoints

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/calendar"
	"github.com/iliyamo/hotel-reservation/internal/engine"
	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/queue"
	"github.com/iliyamo/hotel-reservation/internal/repository"
)

// reservationResp is the wire representation of a reservation. The
// night count and the locked-in total are included so clients never
// recompute pricing themselves.
type reservationResp struct {
	ID               int64  `json:"id"`
	RoomNumber       int    `json:"room_number"`
	GuestID          int64  `json:"guest_id"`
	CheckIn          string `json:"check_in"`
	CheckOut         string `json:"check_out"`
	Status           string `json:"status"`
	Nights           int    `json:"nights"`
	TotalAmountCents int64  `json:"total_amount_cents"`
}

func toReservationResp(r model.Reservation) reservationResp {
	return reservationResp{
		ID:               r.ID,
		RoomNumber:       r.RoomNumber,
		GuestID:          r.GuestID,
		CheckIn:          r.CheckIn.String(),
		CheckOut:         r.CheckOut.String(),
		Status:           string(r.Status),
		Nights:           calendar.NightsBetween(r.CheckIn, r.CheckOut),
		TotalAmountCents: r.TotalAmountCents,
	}
}

// CreateReservation handles POST /v1/reservations. Dates cross the API
// as DD/MM/YYYY strings. The engine performs the free-room gate and
// the insert atomically, so two concurrent bookings cannot both pass
// the check.
func (h *OperatorHandler) CreateReservation(c echo.Context) error {
	var body struct {
		NationalID string `json:"national_id"`
		RoomNumber int    `json:"room_number"`
		CheckIn    string `json:"check_in"`
		CheckOut   string `json:"check_out"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(body.NationalID) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "national_id is required"})
	}
	checkIn, err := calendar.Parse(body.CheckIn)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_in must be a DD/MM/YYYY date"})
	}
	checkOut, err := calendar.Parse(body.CheckOut)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_out must be a DD/MM/YYYY date"})
	}

	res, err := h.Engine.CreateReservation(strings.TrimSpace(body.NationalID), body.RoomNumber, checkIn, checkOut)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrGuestNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "guest not found"})
		case errors.Is(err, repository.ErrRoomNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		case errors.Is(err, engine.ErrRoomNotFree):
			return c.JSON(http.StatusConflict, echo.Map{"error": "room is occupied or under maintenance"})
		case errors.Is(err, engine.ErrInvalidDateRange):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_out must be after check_in"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create reservation"})
	}

	h.publish(c, queue.KindReservationCreated, res)
	return c.JSON(http.StatusCreated, toReservationResp(res))
}

// CancelReservation handles POST /v1/reservations/:id/cancel.
func (h *OperatorHandler) CancelReservation(c echo.Context) error {
	return h.resolveReservation(c, engine.ActionCancel, queue.KindReservationCancelled)
}

// CompleteReservation handles POST /v1/reservations/:id/complete, the
// check-out action.
func (h *OperatorHandler) CompleteReservation(c echo.Context) error {
	return h.resolveReservation(c, engine.ActionComplete, queue.KindReservationCompleted)
}

// resolveReservation moves an active reservation into a terminal
// status and reports the updated record.
func (h *OperatorHandler) resolveReservation(c echo.Context, action engine.Action, eventKind string) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}

	res, err := h.Engine.ResolveReservation(id, action)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrReservationNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		case errors.Is(err, engine.ErrReservationNotActive):
			return c.JSON(http.StatusConflict, echo.Map{"error": "reservation is not active"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not resolve reservation"})
	}

	h.publish(c, eventKind, res)
	return c.JSON(http.StatusOK, toReservationResp(res))
}

// ListActiveReservations handles GET /v1/reservations/active and
// returns all ACTIVE reservations in store order.
func (h *OperatorHandler) ListActiveReservations(c echo.Context) error {
	active := h.Engine.ActiveReservations()
	items := make([]reservationResp, len(active))
	for i, r := range active {
		items[i] = toReservationResp(r)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
