package repository // repository holds in-memory stores for domain entities

import "github.com/iliyamo/hotel-reservation/internal/model"

// RoomRepo stores rooms keyed by their natural room number. Iteration
// order is insertion order.
type RoomRepo struct {
	rooms    []*model.Room // records in insertion order
	byNumber map[int]int   // room number -> index into rooms
}

// NewRoomRepo constructs an empty room store.
func NewRoomRepo() *RoomRepo {
	return &RoomRepo{byNumber: make(map[int]int)}
}

// Create inserts a new room. It returns ErrDuplicateRoom when the
// number is already taken; on error the store is unchanged.
func (r *RoomRepo) Create(room *model.Room) error {
	if _, ok := r.byNumber[room.Number]; ok {
		return ErrDuplicateRoom
	}
	r.byNumber[room.Number] = len(r.rooms)
	r.rooms = append(r.rooms, room)
	return nil
}

// GetByNumber returns the room with the given number or ErrRoomNotFound.
func (r *RoomRepo) GetByNumber(number int) (*model.Room, error) {
	i, ok := r.byNumber[number]
	if !ok {
		return nil, ErrRoomNotFound
	}
	return r.rooms[i], nil
}

// List returns all rooms in insertion order. The slice is a copy but
// the elements are the live records.
func (r *RoomRepo) List() []*model.Room {
	out := make([]*model.Room, len(r.rooms))
	copy(out, r.rooms)
	return out
}

// Count returns the number of registered rooms.
func (r *RoomRepo) Count() int {
	return len(r.rooms)
}
