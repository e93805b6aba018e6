package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"fitclub/internal/domain/entity"
)

// ErrMembershipNotFound is returned when no membership matches the query.
var ErrMembershipNotFound = errors.New("membership not found")

// MembershipWithPayment pairs a membership with its payment record for history
// listings. Payment may be nil for legacy rows.
type MembershipWithPayment struct {
	Membership entity.Membership
	Payment    *entity.MembershipPayment
}

// MembershipRepository manages memberships and their payment records.
type MembershipRepository interface {
	// Create persists a new membership.
	Create(ctx context.Context, membership *entity.Membership) error

	// CreatePayment persists the one-to-one payment record.
	CreatePayment(ctx context.Context, payment *entity.MembershipPayment) error

	// FindByID retrieves a membership.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Membership, error)

	// FindPayment retrieves the payment record of a membership.
	FindPayment(ctx context.Context, membershipID uuid.UUID) (*entity.MembershipPayment, error)

	// ListByClient returns the client's memberships with payments, newest first.
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]*MembershipWithPayment, error)

	// DeletePaymentsByClient removes all payment records of a client's
	// memberships (account deletion cascade).
	DeletePaymentsByClient(ctx context.Context, clientID uuid.UUID) error

	// DeleteByClient removes all memberships of a client.
	DeleteByClient(ctx context.Context, clientID uuid.UUID) error
}
