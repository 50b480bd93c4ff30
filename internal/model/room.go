package model

// RoomStatus is the coarse occupancy flag of a room. It tracks whether
// someone is checked in right now as recorded by the last booking or
// resolution action; it is distinct from interval availability, which
// is computed from the reservation set.
type RoomStatus string

const (
	RoomStatusFree        RoomStatus = "FREE"        // no guest checked in
	RoomStatusOccupied    RoomStatus = "OCCUPIED"    // a reservation is currently active on the room
	RoomStatusMaintenance RoomStatus = "MAINTENANCE" // the room is out of service
)

// ValidRoomStatus reports whether s is one of the three room statuses.
func ValidRoomStatus(s RoomStatus) bool {
	switch s {
	case RoomStatusFree, RoomStatusOccupied, RoomStatusMaintenance:
		return true
	}
	return false
}

// Room represents a hotel room. The room number is its natural key
// and never changes; rooms are never deleted. The json tags are
// omitted here because handlers define separate response types.
//
// Fields:
//  Number           – natural unique key of the room.
//  Type             – short label such as "Standard" or "Deluxe".
//  NightlyRateCents – non-negative price per night in cents.
//  Status           – coarse occupancy flag, mutated only by the engine
//                     after registration.
type Room struct {
	Number           int        // unique room number
	Type             string     // room type label
	NightlyRateCents int64      // price per night in cents
	Status           RoomStatus // FREE, OCCUPIED or MAINTENANCE
}
