package usecase

import (
	"context"

	"github.com/google/uuid"

	"fitclub/internal/domain/entity"
)

// BookingResult is the outward view of a created booking.
type BookingResult struct {
	BookingID    uuid.UUID                `json:"booking_id"`
	ClientID     uuid.UUID                `json:"client_id"`
	GroupClassID uuid.UUID                `json:"group_class_id"`
	Status       entity.ReservationStatus `json:"status"`
}

// ReserveInput is a receptionist-assisted reservation, optionally charged
// against an existing membership of the client.
type ReserveInput struct {
	ReceptionistID uuid.UUID
	ClientID       uuid.UUID
	GroupClassID   uuid.UUID
	MembershipID   *uuid.UUID
}

// BookingUsecase covers capacity-bounded group-class booking.
type BookingUsecase interface {
	// BookClass books a client into a group class, enforcing the capacity
	// ceiling and the one-booking-per-client invariant atomically.
	BookClass(ctx context.Context, clientID, groupClassID uuid.UUID) (*BookingResult, error)

	// ReserveForClient reserves a seat on behalf of a client, validating the
	// optional membership and deriving the reservation's payment status.
	ReserveForClient(ctx context.Context, input *ReserveInput) (*BookingResult, error)

	// ListClientBookings returns the client's booking history.
	ListClientBookings(ctx context.Context, clientID uuid.UUID) ([]*entity.BookingWithClass, error)
}
