package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"fitclub/internal/domain/entity"
)

// ErrClassNotFound is returned when no class matches the query.
var ErrClassNotFound = errors.New("class not found")

// ClassRepository manages scheduled classes and their overlap queries.
// The overlap-counting methods apply the half-open interval rule
// (s1 < e2 AND s2 < e1) in SQL so they see the committed state of the store.
type ClassRepository interface {
	// CreateIndividual persists the class row and its individual payload as one unit.
	CreateIndividual(ctx context.Context, class *entity.Class) error

	// CreateGroup persists the class row and its group payload as one unit.
	CreateGroup(ctx context.Context, class *entity.Class) error

	// FindGroupClassByID retrieves a group class.
	FindGroupClassByID(ctx context.Context, id uuid.UUID) (*entity.Class, error)

	// FindGroupClassByIDForUpdate retrieves a group class taking a row-level
	// lock, serializing concurrent capacity checks on the same class. Must be
	// called inside a transaction.
	FindGroupClassByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Class, error)

	// ListGroupClasses returns all group classes.
	ListGroupClasses(ctx context.Context) ([]*entity.Class, error)

	// CountRoomOverlaps counts classes of any type in the room whose slot
	// overlaps the candidate.
	CountRoomOverlaps(ctx context.Context, room string, slot entity.TimeSlot) (int64, error)

	// CountTrainerOverlaps counts the trainer's individual classes overlapping
	// the candidate slot.
	CountTrainerOverlaps(ctx context.Context, trainerID uuid.UUID, slot entity.TimeSlot) (int64, error)

	// CountInstructorOverlaps counts the instructor's group classes overlapping
	// the candidate slot.
	CountInstructorOverlaps(ctx context.Context, instructorID uuid.UUID, slot entity.TimeSlot) (int64, error)

	// LockResource takes a transaction-scoped exclusive lock on an arbitrary
	// resource key (room or staff member). Rooms and staff have no single row
	// to lock, so check-then-insert sequences lock the resource key instead.
	// Must be called inside a transaction; the lock is released at commit or
	// rollback.
	LockResource(ctx context.Context, key string) error

	// DetachClientFromIndividualClasses clears the client assignment on the
	// client's individual classes (account deletion cascade).
	DetachClientFromIndividualClasses(ctx context.Context, clientID uuid.UUID) error
}
