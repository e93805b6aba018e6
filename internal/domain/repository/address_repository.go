package repository

import (
	"context"

	"github.com/google/uuid"

	"fitclub/internal/domain/entity"
)

// AddressRepository manages standalone address records.
type AddressRepository interface {
	// Create persists a new address.
	Create(ctx context.Context, address *entity.Address) error

	// DeleteIfOrphaned removes the address when no user references it anymore.
	DeleteIfOrphaned(ctx context.Context, id uuid.UUID) error
}
