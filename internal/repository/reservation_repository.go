package repository

import "github.com/iliyamo/hotel-reservation/internal/model"

// ReservationRepo stores reservations with sequential IDs starting at
// 1. Iteration order is insertion order, which is also creation order.
type ReservationRepo struct {
	reservations []*model.Reservation // records in insertion order
	byID         map[int64]int        // reservation ID -> index
	nextID       int64                // next reservation ID to assign
}

// NewReservationRepo constructs an empty reservation store.
func NewReservationRepo() *ReservationRepo {
	return &ReservationRepo{byID: make(map[int64]int), nextID: 1}
}

// Create inserts a new reservation and assigns its sequential ID.
func (r *ReservationRepo) Create(res *model.Reservation) {
	res.ID = r.nextID
	r.nextID++
	r.byID[res.ID] = len(r.reservations)
	r.reservations = append(r.reservations, res)
}

// GetByID returns the reservation with the given ID or
// ErrReservationNotFound.
func (r *ReservationRepo) GetByID(id int64) (*model.Reservation, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, ErrReservationNotFound
	}
	return r.reservations[i], nil
}

// List returns all reservations in insertion order.
func (r *ReservationRepo) List() []*model.Reservation {
	out := make([]*model.Reservation, len(r.reservations))
	copy(out, r.reservations)
	return out
}

// ListActive returns reservations whose status is ACTIVE, in store order.
func (r *ReservationRepo) ListActive() []*model.Reservation {
	var out []*model.Reservation
	for _, res := range r.reservations {
		if res.Status == model.ReservationStatusActive {
			out = append(out, res)
		}
	}
	return out
}

// ListByRoom returns all reservations on the given room, in store
// order, regardless of status.
func (r *ReservationRepo) ListByRoom(roomNumber int) []*model.Reservation {
	var out []*model.Reservation
	for _, res := range r.reservations {
		if res.RoomNumber == roomNumber {
			out = append(out, res)
		}
	}
	return out
}
