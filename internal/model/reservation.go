package model

import "github.com/iliyamo/hotel-reservation/internal/calendar"

// ReservationStatus is the lifecycle state of a reservation. The only
// permitted transitions are ACTIVE to COMPLETED and ACTIVE to
// CANCELLED; both are terminal.
type ReservationStatus string

const (
	ReservationStatusActive    ReservationStatus = "ACTIVE"
	ReservationStatusCompleted ReservationStatus = "COMPLETED"
	ReservationStatusCancelled ReservationStatus = "CANCELLED"
)

// Reservation records a guest's booking of a room over a half-open
// date range [CheckIn, CheckOut). Room and guest are referenced by
// their keys, never owned: both outlive any single reservation.
//
// Fields:
//  ID               – sequential identifier, immutable after creation.
//  RoomNumber       – key of the booked room.
//  GuestID          – ID of the booking guest.
//  CheckIn          – first night of the stay.
//  CheckOut         – day of departure; strictly after CheckIn in
//                     absolute day terms.
//  Status           – ACTIVE, COMPLETED or CANCELLED.
//  TotalAmountCents – nightly rate × nights, fixed at creation and
//                     never recomputed even if the room rate changes.
type Reservation struct {
	ID               int64             // sequential reservation ID
	RoomNumber       int               // booked room key
	GuestID          int64             // booking guest ID
	CheckIn          calendar.Date     // first night
	CheckOut         calendar.Date     // departure day (exclusive)
	Status           ReservationStatus // lifecycle state
	TotalAmountCents int64             // price locked in at creation
}
