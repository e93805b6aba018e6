package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"fitclub/config"
	"fitclub/internal/domain/entity"
	domainerrors "fitclub/internal/domain/errors"
	"fitclub/internal/domain/repository"
	"fitclub/internal/usecase"
)

// scheduleService implements the ScheduleUsecase interface.
//
// Rooms and staff members have no single row to lock, so each scheduling flow
// takes a transaction-scoped advisory lock on the resource key before running
// its overlap query. The lock is released when the transaction ends.
type scheduleService struct {
	txManager   repository.TransactionManager
	classRepo   repository.ClassRepository
	bookingRepo repository.BookingRepository
	policy      config.PolicyConfig
	logger      *slog.Logger
}

// ScheduleServiceParams holds dependencies for ScheduleService, injected by Fx.
type ScheduleServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ClassRepo   repository.ClassRepository
	BookingRepo repository.BookingRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewScheduleService is the constructor for scheduleService.
func NewScheduleService(params ScheduleServiceParams) usecase.ScheduleUsecase {
	return &scheduleService{
		txManager:   params.TxManager,
		classRepo:   params.ClassRepo,
		bookingRepo: params.BookingRepo,
		policy:      params.Config.Policy,
		logger:      params.Logger,
	}
}

// ScheduleIndividual schedules a one-on-one session. Validation order: slot,
// trainer and client roles, room availability, trainer overlap limit.
func (srv *scheduleService) ScheduleIndividual(ctx context.Context, input *usecase.ScheduleIndividualInput) (uuid.UUID, error) {
	slot := entity.NewTimeSlot(input.Date, input.StartTime, input.EndTime)
	if !slot.IsValid() {
		return uuid.Nil, domainerrors.ErrInvalidInterval
	}

	var classID uuid.UUID

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		users := repos.NewUserRepository()
		classes := repos.NewClassRepository()

		if _, err := users.FindByIDAndRole(ctx, input.TrainerID, entity.RolePersonalTrainer); err != nil {
			return roleLookupError(err)
		}
		if _, err := users.FindByIDAndRole(ctx, input.ClientID, entity.RoleClient); err != nil {
			return roleLookupError(err)
		}

		if err := srv.ensureRoomFree(ctx, classes, input.Room, slot); err != nil {
			return err
		}

		if err := classes.LockResource(ctx, "trainer:"+input.TrainerID.String()); err != nil {
			return errors.Wrap(err, "failed to lock trainer")
		}
		overlapping, err := classes.CountTrainerOverlaps(ctx, input.TrainerID, slot)
		if err != nil {
			return errors.Wrap(err, "failed to count trainer overlaps")
		}
		if overlapping >= int64(srv.policy.TrainerOverlapLimit) {
			return domainerrors.ErrTrainerOverbooked
		}

		clientID := input.ClientID
		class := &entity.Class{
			ID:        uuid.New(),
			Name:      "Individual training",
			Room:      input.Room,
			Slot:      slot,
			Type:      entity.ClassIndividual,
			CreatedAt: time.Now().UTC(),
			Individual: &entity.IndividualClass{
				TrainerID: input.TrainerID,
				ClientID:  &clientID,
				Note:      input.Note,
			},
		}
		if err := classes.CreateIndividual(ctx, class); err != nil {
			return errors.Wrap(err, "failed to create individual class")
		}
		classID = class.ID

		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	srv.logger.Info("individual class scheduled",
		slog.String("classId", classID.String()),
		slog.String("trainerId", input.TrainerID.String()),
		slog.String("room", input.Room),
	)

	return classID, nil
}

// CreateGroupClass schedules a group class. Manager only; the instructor may
// run a single group class at a time.
func (srv *scheduleService) CreateGroupClass(ctx context.Context, input *usecase.CreateGroupClassInput) (uuid.UUID, error) {
	slot := entity.NewTimeSlot(input.Date, input.StartTime, input.EndTime)
	if !slot.IsValid() {
		return uuid.Nil, domainerrors.ErrInvalidInterval
	}

	capacity := input.MaxCapacity
	if capacity == 0 {
		capacity = srv.policy.MaxClassCapacity
	}
	if capacity < 1 || capacity > srv.policy.MaxClassCapacity {
		return uuid.Nil, domainerrors.ErrInvalidCapacity
	}

	var classID uuid.UUID

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		users := repos.NewUserRepository()
		classes := repos.NewClassRepository()

		if _, err := users.FindByIDAndRole(ctx, input.ManagerID, entity.RoleManager); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrManagerOnly
			}

			return errors.Wrap(err, "failed to resolve manager")
		}
		if _, err := users.FindByIDAndRole(ctx, input.InstructorID, entity.RoleInstructor); err != nil {
			return roleLookupError(err)
		}

		if err := srv.ensureRoomFree(ctx, classes, input.Room, slot); err != nil {
			return err
		}

		if err := classes.LockResource(ctx, "instructor:"+input.InstructorID.String()); err != nil {
			return errors.Wrap(err, "failed to lock instructor")
		}
		overlapping, err := classes.CountInstructorOverlaps(ctx, input.InstructorID, slot)
		if err != nil {
			return errors.Wrap(err, "failed to count instructor overlaps")
		}
		if overlapping > 0 {
			return domainerrors.ErrInstructorBusy
		}

		managerID := input.ManagerID
		class := &entity.Class{
			ID:          uuid.New(),
			Name:        input.Name,
			Description: input.Description,
			Room:        input.Room,
			Slot:        slot,
			Type:        entity.ClassGroup,
			CreatedAt:   time.Now().UTC(),
			Group: &entity.GroupClass{
				InstructorID: input.InstructorID,
				MaxCapacity:  capacity,
				CreatedByID:  &managerID,
			},
		}
		if err := classes.CreateGroup(ctx, class); err != nil {
			return errors.Wrap(err, "failed to create group class")
		}
		classID = class.ID

		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	srv.logger.Info("group class created",
		slog.String("classId", classID.String()),
		slog.String("instructorId", input.InstructorID.String()),
		slog.String("room", input.Room),
	)

	return classID, nil
}

// ListGroupClasses returns all group classes with their booking counts.
func (srv *scheduleService) ListGroupClasses(ctx context.Context) ([]*entity.GroupClassWithCount, error) {
	classes, err := srv.classRepo.ListGroupClasses(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list group classes")
	}

	ids := make([]uuid.UUID, 0, len(classes))
	for _, class := range classes {
		ids = append(ids, class.ID)
	}

	counts, err := srv.bookingRepo.CountByGroupClasses(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count bookings per class")
	}

	listing := make([]*entity.GroupClassWithCount, 0, len(classes))
	for _, class := range classes {
		listing = append(listing, &entity.GroupClassWithCount{
			Class:       *class,
			BookedSeats: int(counts[class.ID]),
		})
	}

	return listing, nil
}

// ensureRoomFree locks the room and checks for overlapping classes of any type.
func (srv *scheduleService) ensureRoomFree(ctx context.Context, classes repository.ClassRepository, room string, slot entity.TimeSlot) error {
	if err := classes.LockResource(ctx, "room:"+room); err != nil {
		return errors.Wrap(err, "failed to lock room")
	}

	overlapping, err := classes.CountRoomOverlaps(ctx, room, slot)
	if err != nil {
		return errors.Wrap(err, "failed to count room overlaps")
	}
	if overlapping > 0 {
		return domainerrors.ErrRoomOccupied
	}

	return nil
}
