// Package queue defines message payloads exchanged over the message broker.
package queue

import (
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// Event kinds published to the reservation.events queue.
const (
	KindReservationCreated   = "reservation.created"
	KindReservationCancelled = "reservation.cancelled"
	KindReservationCompleted = "reservation.completed"
)

// QueueName is the durable queue all reservation lifecycle events go to.
const QueueName = "reservation.events"

// ReservationEvent is published whenever a reservation is created or
// reaches a terminal status. It carries enough information for
// downstream consumers to log or notify without querying the service.
type ReservationEvent struct {
	EventID          string `json:"event_id"`
	Kind             string `json:"kind"`
	ReservationID    int64  `json:"reservation_id"`
	RoomNumber       int    `json:"room_number"`
	GuestID          int64  `json:"guest_id"`
	CheckIn          string `json:"check_in"`
	CheckOut         string `json:"check_out"`
	TotalAmountCents int64  `json:"total_amount_cents"`
	OccurredAt       string `json:"occurred_at"`
}

// NewReservationEvent builds an event of the given kind from a
// reservation snapshot, stamping a fresh event ID and timestamp.
func NewReservationEvent(kind string, r model.Reservation) ReservationEvent {
	return ReservationEvent{
		EventID:          uuid.NewString(),
		Kind:             kind,
		ReservationID:    r.ID,
		RoomNumber:       r.RoomNumber,
		GuestID:          r.GuestID,
		CheckIn:          r.CheckIn.String(),
		CheckOut:         r.CheckOut.String(),
		TotalAmountCents: r.TotalAmountCents,
		OccurredAt:       time.Now().UTC().Format(time.RFC3339),
	}
}
