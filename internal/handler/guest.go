package handler // handler contains guest registration, listing and history endpoints

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/repository"
)

// guestResp is the wire representation of a guest. The history itself
// is served by its own endpoint; listings carry only the count, which
// is what the operator console of old printed.
type guestResp struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	NationalID   string `json:"national_id"`
	Phone        string `json:"phone"`
	HistoryCount int    `json:"history_count"`
}

func toGuestResp(g model.Guest) guestResp {
	return guestResp{
		ID:           g.ID,
		Name:         g.Name,
		NationalID:   g.NationalID,
		Phone:        g.Phone,
		HistoryCount: len(g.History),
	}
}

// CreateGuest handles POST /v1/guests. A guest is registered once per
// national ID and receives the next sequential guest ID.
func (h *OperatorHandler) CreateGuest(c echo.Context) error {
	var body struct {
		NationalID string `json:"national_id"`
		Name       string `json:"name"`
		Phone      string `json:"phone"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(body.NationalID) == "" || strings.TrimSpace(body.Name) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "national_id and name are required"})
	}

	guest, err := h.Engine.RegisterGuest(body.NationalID, body.Name, body.Phone)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateGuest) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "national id already registered"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create guest"})
	}
	return c.JSON(http.StatusCreated, toGuestResp(guest))
}

// ListGuests handles GET /v1/guests and returns every guest in
// registration order.
func (h *OperatorHandler) ListGuests(c echo.Context) error {
	guests := h.Engine.Guests()
	items := make([]guestResp, len(guests))
	for i, g := range guests {
		items[i] = toGuestResp(g)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GuestHistory handles GET /v1/guests/:national_id/history. It returns
// the IDs of the guest's completed and cancelled reservations in
// resolution order.
func (h *OperatorHandler) GuestHistory(c echo.Context) error {
	nationalID := strings.TrimSpace(c.Param("national_id"))
	history, err := h.Engine.GuestHistory(nationalID)
	if err != nil {
		if errors.Is(err, repository.ErrGuestNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "guest not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load history"})
	}
	if history == nil {
		history = []int64{}
	}
	return c.JSON(http.StatusOK, echo.Map{"national_id": nationalID, "items": history})
}
