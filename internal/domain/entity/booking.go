package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReservationStatus is the settlement state of a group-class reservation.
type ReservationStatus string

const (
	ReservationPaid  ReservationStatus = "PAID"
	ReservationToPay ReservationStatus = "TO_PAY"
)

// Booking is a client's seat in a group class. At most one booking exists per
// (client, group class) pair; the storage layer enforces this with a unique
// index as a backstop against concurrent inserts.
type Booking struct {
	ID           uuid.UUID
	ClientID     uuid.UUID
	GroupClassID uuid.UUID
	BookedAt     time.Time
}

// BookingDetail is the companion record of a booking, capturing which
// membership (if any) and staff member authorized it and the derived
// reservation status.
type BookingDetail struct {
	ClientID     uuid.UUID
	GroupClassID uuid.UUID
	MembershipID *uuid.UUID
	Status       ReservationStatus
	BookedByID   *uuid.UUID // receptionist, nil for self-service bookings
	CreatedAt    time.Time
}

// BookingWithClass is the read model for a client's booking history.
type BookingWithClass struct {
	Booking   Booking
	ClassName string
	Room      string
	Slot      TimeSlot
}

// GroupClassWithCount is the read model for the public schedule listing.
type GroupClassWithCount struct {
	Class       Class
	BookedSeats int
}
