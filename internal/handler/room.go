package handler // handler contains room registration and listing endpoints

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/engine"
	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/repository"
)

// roomResp is the wire representation of a room.
type roomResp struct {
	Number           int    `json:"number"`
	Type             string `json:"type"`
	NightlyRateCents int64  `json:"nightly_rate_cents"`
	Status           string `json:"status"`
}

func toRoomResp(r model.Room) roomResp {
	return roomResp{
		Number:           r.Number,
		Type:             r.Type,
		NightlyRateCents: r.NightlyRateCents,
		Status:           string(r.Status),
	}
}

// CreateRoom handles POST /v1/rooms. The status is optional and
// defaults to FREE; after registration only the engine mutates it.
func (h *OperatorHandler) CreateRoom(c echo.Context) error {
	var body struct {
		Number           int    `json:"number"`
		Type             string `json:"type"`
		NightlyRateCents int64  `json:"nightly_rate_cents"`
		Status           string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	status := model.RoomStatus(strings.ToUpper(strings.TrimSpace(body.Status)))
	room, err := h.Engine.AddRoom(body.Number, body.Type, body.NightlyRateCents, status)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateRoom) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "room number already exists"})
		}
		if errors.Is(err, engine.ErrInvalidRoom) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "number must be positive, type non-empty, rate non-negative and status one of FREE/OCCUPIED/MAINTENANCE"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create room"})
	}
	return c.JSON(http.StatusCreated, toRoomResp(room))
}

// ListRooms handles GET /v1/rooms and returns every room in
// registration order.
func (h *OperatorHandler) ListRooms(c echo.Context) error {
	rooms := h.Engine.Rooms()
	items := make([]roomResp, len(rooms))
	for i, r := range rooms {
		items[i] = toRoomResp(r)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// AvailableRooms handles GET /v1/rooms/available?check_in=..&check_out=..
// and lists the rooms with no conflicting non-cancelled reservation in
// the candidate range. The coarse status flag is not consulted.
func (h *OperatorHandler) AvailableRooms(c echo.Context) error {
	checkIn, ok := parseDateQuery(c, "check_in")
	if !ok {
		return nil
	}
	checkOut, ok := parseDateQuery(c, "check_out")
	if !ok {
		return nil
	}

	rooms := h.Engine.AvailableRooms(checkIn, checkOut)
	items := make([]roomResp, len(rooms))
	for i, r := range rooms {
		items[i] = toRoomResp(r)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"check_in":  checkIn.String(),
		"check_out": checkOut.String(),
		"items":     items,
	})
}
