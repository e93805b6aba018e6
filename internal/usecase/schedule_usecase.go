package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"fitclub/internal/domain/entity"
)

// ScheduleIndividualInput describes a one-on-one session to be scheduled.
type ScheduleIndividualInput struct {
	TrainerID uuid.UUID
	ClientID  uuid.UUID
	Room      string
	Date      time.Time
	StartTime time.Time
	EndTime   time.Time
	Note      string
}

// CreateGroupClassInput describes a group class to be scheduled by a manager.
type CreateGroupClassInput struct {
	ManagerID    uuid.UUID
	InstructorID uuid.UUID
	Name         string
	Description  string
	Room         string
	Date         time.Time
	StartTime    time.Time
	EndTime      time.Time
	MaxCapacity  int // 0 means the configured default
}

// ScheduleUsecase covers class scheduling and the public schedule listing.
type ScheduleUsecase interface {
	// ScheduleIndividual schedules a one-on-one session, enforcing room
	// availability and the per-trainer overlap limit.
	ScheduleIndividual(ctx context.Context, input *ScheduleIndividualInput) (uuid.UUID, error)

	// CreateGroupClass schedules a group class (manager only), enforcing room
	// availability and the instructor's single-assignment rule.
	CreateGroupClass(ctx context.Context, input *CreateGroupClassInput) (uuid.UUID, error)

	// ListGroupClasses returns all group classes with their booking counts.
	ListGroupClasses(ctx context.Context) ([]*entity.GroupClassWithCount, error)
}
