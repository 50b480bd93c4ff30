package engine

import (
	"github.com/iliyamo/hotel-reservation/internal/calendar"
	"github.com/iliyamo/hotel-reservation/internal/model"
)

// Overlaps reports whether the half-open day ranges [inA, outA) and
// [inB, outB) intersect. The test is symmetric in its two ranges.
func Overlaps(inA, outA, inB, outB calendar.Date) bool {
	return calendar.AbsoluteDay(inA) < calendar.AbsoluteDay(outB) &&
		calendar.AbsoluteDay(outA) > calendar.AbsoluteDay(inB)
}

// IsRoomAvailable reports whether no non-cancelled reservation on the
// room overlaps [checkIn, checkOut). The coarse status flag is not
// consulted: a room marked OCCUPIED today can still be available for a
// later window, and a FREE room can be blocked by a future booking.
// A room number with no reservations, including an unknown one, is
// available.
func (e *Engine) IsRoomAvailable(roomNumber int, checkIn, checkOut calendar.Date) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.roomAvailableLocked(roomNumber, checkIn, checkOut)
}

// AvailableRooms returns every room available for the candidate range,
// in registration order.
func (e *Engine) AvailableRooms(checkIn, checkOut calendar.Date) []model.Room {
	e.mu.RLock()
	defer e.mu.RUnlock()

	var out []model.Room
	for _, room := range e.rooms.List() {
		if e.roomAvailableLocked(room.Number, checkIn, checkOut) {
			out = append(out, *room)
		}
	}
	return out
}

// roomAvailableLocked scans the room's reservations for a conflict.
// Caller must hold at least the read lock.
func (e *Engine) roomAvailableLocked(roomNumber int, checkIn, checkOut calendar.Date) bool {
	for _, res := range e.reservations.ListByRoom(roomNumber) {
		if res.Status == model.ReservationStatusCancelled {
			continue
		}
		if Overlaps(checkIn, checkOut, res.CheckIn, res.CheckOut) {
			return false
		}
	}
	return true
}
