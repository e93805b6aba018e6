package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"fitclub/internal/domain/entity"
)

// ErrDuplicateBooking is returned when an insert violates the unique
// (client, group class) constraint. It backstops the application-level
// duplicate check against races.
var ErrDuplicateBooking = errors.New("booking already exists")

// BookingRepository manages group-class bookings and their companion details.
type BookingRepository interface {
	// Create persists a new booking row.
	Create(ctx context.Context, booking *entity.Booking) error

	// CreateDetail persists the booking's companion metadata record.
	CreateDetail(ctx context.Context, detail *entity.BookingDetail) error

	// CountByGroupClass returns the current number of bookings for a class.
	CountByGroupClass(ctx context.Context, groupClassID uuid.UUID) (int64, error)

	// CountByGroupClasses returns booking counts keyed by class id.
	CountByGroupClasses(ctx context.Context, groupClassIDs []uuid.UUID) (map[uuid.UUID]int64, error)

	// Exists reports whether the client already holds a booking for the class.
	Exists(ctx context.Context, clientID, groupClassID uuid.UUID) (bool, error)

	// ListByClient returns the client's bookings joined with class info,
	// newest first.
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.BookingWithClass, error)

	// DeleteByClient removes all bookings of a client (account deletion cascade).
	DeleteByClient(ctx context.Context, clientID uuid.UUID) error

	// DeleteDetailsByClient removes all booking details of a client.
	DeleteDetailsByClient(ctx context.Context, clientID uuid.UUID) error
}
