// Package engine implements the reservation engine: registration of
// rooms and guests, reservation creation and resolution, availability
// queries and guest history. It is the only writer of the three
// stores; every operation takes the engine's single lock so that
// check-then-act sequences such as the room-free gate inside
// CreateReservation are atomic with the insert that follows them.
package engine

import (
	"errors"
	"strings"
	"sync"

	"github.com/iliyamo/hotel-reservation/internal/calendar"
	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/repository"
)

// ErrInvalidDateRange is returned when check-out does not fall
// strictly after check-in in absolute day terms. This also rejects
// swapped dates: the night count alone cannot tell them apart because
// it is an absolute difference.
var ErrInvalidDateRange = errors.New("check-out must be after check-in")

// ErrRoomNotFree is returned when booking a room whose coarse status
// is not FREE. The gate checks the flag, not interval availability;
// the two answer different questions.
var ErrRoomNotFree = errors.New("room is occupied or under maintenance")

// ErrReservationNotActive is returned when resolving a reservation
// that already reached a terminal status.
var ErrReservationNotActive = errors.New("reservation is not active")

// ErrInvalidRoom is returned when registering a room with a
// non-positive number, a negative rate or an unknown status.
var ErrInvalidRoom = errors.New("invalid room")

// Engine owns the stores and serializes access to them. Mutating
// operations take the write lock; queries take the read lock and
// return copies so callers never observe a record mid-mutation.
type Engine struct {
	mu           sync.RWMutex
	rooms        *repository.RoomRepo
	guests       *repository.GuestRepo
	reservations *repository.ReservationRepo
	now          func() calendar.Date // injected clock, calendar.Today in production
}

// New constructs an Engine over the given stores. The stores must not
// be shared with any other writer.
func New(rooms *repository.RoomRepo, guests *repository.GuestRepo, reservations *repository.ReservationRepo) *Engine {
	if rooms == nil || guests == nil || reservations == nil {
		panic("nil store passed to engine.New")
	}
	return &Engine{
		rooms:        rooms,
		guests:       guests,
		reservations: reservations,
		now:          calendar.Today,
	}
}

// AddRoom registers a new room. The status defaults to FREE when
// empty; afterwards only the engine mutates it. Returns
// repository.ErrDuplicateRoom when the number is taken.
func (e *Engine) AddRoom(number int, roomType string, nightlyRateCents int64, status model.RoomStatus) (model.Room, error) {
	if status == "" {
		status = model.RoomStatusFree
	}
	roomType = strings.TrimSpace(roomType)
	if number <= 0 || roomType == "" || nightlyRateCents < 0 || !model.ValidRoomStatus(status) {
		return model.Room{}, ErrInvalidRoom
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	room := &model.Room{Number: number, Type: roomType, NightlyRateCents: nightlyRateCents, Status: status}
	if err := e.rooms.Create(room); err != nil {
		return model.Room{}, err
	}
	return *room, nil
}

// Rooms returns all rooms in registration order.
func (e *Engine) Rooms() []model.Room {
	e.mu.RLock()
	defer e.mu.RUnlock()

	list := e.rooms.List()
	out := make([]model.Room, len(list))
	for i, r := range list {
		out[i] = *r
	}
	return out
}

// RegisterGuest registers a new guest and assigns the next sequential
// guest ID. Returns repository.ErrDuplicateGuest when the national ID
// is already registered; a rejected registration consumes no ID.
func (e *Engine) RegisterGuest(nationalID, name, phone string) (model.Guest, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	guest := &model.Guest{
		Name:       strings.TrimSpace(name),
		NationalID: strings.TrimSpace(nationalID),
		Phone:      strings.TrimSpace(phone),
	}
	if err := e.guests.Create(guest); err != nil {
		return model.Guest{}, err
	}
	return copyGuest(guest), nil
}

// Guests returns all guests in registration order.
func (e *Engine) Guests() []model.Guest {
	e.mu.RLock()
	defer e.mu.RUnlock()

	list := e.guests.List()
	out := make([]model.Guest, len(list))
	for i, g := range list {
		out[i] = copyGuest(g)
	}
	return out
}

// GuestHistory returns the reservation IDs of the guest's terminal
// reservations in resolution order, or repository.ErrGuestNotFound.
func (e *Engine) GuestHistory(nationalID string) ([]int64, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	guest, err := e.guests.GetByNationalID(nationalID)
	if err != nil {
		return nil, err
	}
	out := make([]int64, len(guest.History))
	copy(out, guest.History)
	return out, nil
}

// copyGuest clones a guest including its history slice so callers
// cannot alias the stored record.
func copyGuest(g *model.Guest) model.Guest {
	out := *g
	out.History = make([]int64, len(g.History))
	copy(out.History, g.History)
	return out
}
