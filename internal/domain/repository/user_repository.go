// Package repository defines the persistence interfaces the use case layer
// depends on; concrete implementations live under internal/infra/persistence.
package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"fitclub/internal/domain/entity"
)

var (
	// ErrUserNotFound is returned when no user matches the query.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when an insert violates the unique email constraint.
	ErrDuplicateEmail = errors.New("email already exists")
)

// UserRepository manages the role-tagged user records.
type UserRepository interface {
	// Create persists a new user together with its employee profile, if any.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by its unique email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByIDAndRole retrieves a user only if it carries the given role.
	// Returns ErrUserNotFound when the id exists but the role differs.
	FindByIDAndRole(ctx context.Context, id uuid.UUID, role entity.Role) (*entity.User, error)

	// ListStaff returns staff users newest first, optionally filtered by role.
	ListStaff(ctx context.Context, role *entity.Role) ([]*entity.User, error)

	// Delete removes the user row.
	Delete(ctx context.Context, id uuid.UUID) error
}
