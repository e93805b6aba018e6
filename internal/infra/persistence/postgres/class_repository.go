package postgres

import (
	"context"

	"fitclub/internal/domain/entity"
	"fitclub/internal/domain/repository"
	"fitclub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// classRepository implements the repository.ClassRepository interface using GORM.
//
// Overlap checks use the half-open interval rule in SQL: two windows conflict
// when starts_at < candidate_end AND ends_at > candidate_start.
type classRepository struct {
	db *gorm.DB
}

// NewClassRepository is the constructor for classRepository.
func NewClassRepository(db *gorm.DB) repository.ClassRepository {
	return &classRepository{db: db}
}

// CreateIndividual persists the class row and its individual payload.
func (repo *classRepository) CreateIndividual(ctx context.Context, class *entity.Class) error {
	classM := toClassModel(class)
	if class.Individual != nil {
		classM.Individual = &model.IndividualClassModel{
			ClassID:   class.ID,
			TrainerID: class.Individual.TrainerID,
			ClientID:  class.Individual.ClientID,
			Note:      class.Individual.Note,
		}
	}

	if err := repo.db.WithContext(ctx).Create(classM).Error; err != nil {
		return errors.Wrap(err, "failed to create individual class")
	}

	return nil
}

// CreateGroup persists the class row and its group payload.
func (repo *classRepository) CreateGroup(ctx context.Context, class *entity.Class) error {
	classM := toClassModel(class)
	if class.Group != nil {
		classM.Group = &model.GroupClassModel{
			ClassID:      class.ID,
			InstructorID: class.Group.InstructorID,
			MaxCapacity:  class.Group.MaxCapacity,
			CreatedByID:  class.Group.CreatedByID,
		}
	}

	if err := repo.db.WithContext(ctx).Create(classM).Error; err != nil {
		return errors.Wrap(err, "failed to create group class")
	}

	return nil
}

// FindGroupClassByID retrieves a group class.
func (repo *classRepository) FindGroupClassByID(ctx context.Context, id uuid.UUID) (*entity.Class, error) {
	return repo.findGroupClass(ctx, repo.db.WithContext(ctx), id)
}

// FindGroupClassByIDForUpdate retrieves a group class taking a row-level lock
// on the class row. Concurrent capacity checks on the same class serialize on
// this lock until the surrounding transaction ends.
func (repo *classRepository) FindGroupClassByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Class, error) {
	locked := repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})

	return repo.findGroupClass(ctx, locked, id)
}

func (repo *classRepository) findGroupClass(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Class, error) {
	var classM model.ClassModel
	err := db.
		Preload("Group").
		Where("id = ? AND class_type = ?", id, string(entity.ClassGroup)).
		First(&classM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrClassNotFound
		}

		return nil, errors.Wrap(err, "failed to find group class")
	}

	return toClassDomain(&classM), nil
}

// ListGroupClasses returns all group classes ordered by start time.
func (repo *classRepository) ListGroupClasses(ctx context.Context) ([]*entity.Class, error) {
	var models []model.ClassModel
	err := repo.db.WithContext(ctx).
		Preload("Group").
		Where("class_type = ?", string(entity.ClassGroup)).
		Order("starts_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list group classes")
	}

	classes := make([]*entity.Class, 0, len(models))
	for i := range models {
		classes = append(classes, toClassDomain(&models[i]))
	}

	return classes, nil
}

// CountRoomOverlaps counts classes of any type in the room whose window
// overlaps the candidate slot.
func (repo *classRepository) CountRoomOverlaps(ctx context.Context, room string, slot entity.TimeSlot) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.ClassModel{}).
		Where("room = ? AND starts_at < ? AND ends_at > ?", room, slot.End, slot.Start).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count room overlaps")
	}

	return count, nil
}

// CountTrainerOverlaps counts the trainer's individual classes overlapping the
// candidate slot.
func (repo *classRepository) CountTrainerOverlaps(ctx context.Context, trainerID uuid.UUID, slot entity.TimeSlot) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.ClassModel{}).
		Joins("JOIN individual_classes ON individual_classes.class_id = classes.id").
		Where("individual_classes.trainer_id = ? AND classes.starts_at < ? AND classes.ends_at > ?", trainerID, slot.End, slot.Start).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count trainer overlaps")
	}

	return count, nil
}

// CountInstructorOverlaps counts the instructor's group classes overlapping the
// candidate slot.
func (repo *classRepository) CountInstructorOverlaps(ctx context.Context, instructorID uuid.UUID, slot entity.TimeSlot) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.ClassModel{}).
		Joins("JOIN group_classes ON group_classes.class_id = classes.id").
		Where("group_classes.instructor_id = ? AND classes.starts_at < ? AND classes.ends_at > ?", instructorID, slot.End, slot.Start).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count instructor overlaps")
	}

	return count, nil
}

// LockResource takes a transaction-scoped advisory lock on an arbitrary
// resource key. Rooms and staff members have no single row to lock, so
// check-then-insert sequences serialize on the hashed key instead. The lock is
// released automatically at commit or rollback.
func (repo *classRepository) LockResource(ctx context.Context, key string) error {
	err := repo.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(hashtext(?))", key).Error
	if err != nil {
		return errors.Wrapf(err, "failed to lock resource %s", key)
	}

	return nil
}

// DetachClientFromIndividualClasses clears the client assignment on the
// client's individual classes. The class itself stays on the trainer's
// schedule.
func (repo *classRepository) DetachClientFromIndividualClasses(ctx context.Context, clientID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Model(&model.IndividualClassModel{}).
		Where("client_id = ?", clientID).
		Update("client_id", nil).Error
	if err != nil {
		return errors.Wrap(err, "failed to detach client from individual classes")
	}

	return nil
}

func toClassModel(class *entity.Class) *model.ClassModel {
	return &model.ClassModel{
		ID:          class.ID,
		Name:        class.Name,
		Description: class.Description,
		Room:        class.Room,
		ClassDate:   class.Slot.Date,
		StartsAt:    class.Slot.Start,
		EndsAt:      class.Slot.End,
		ClassType:   string(class.Type),
		CreatedAt:   class.CreatedAt,
	}
}

func toClassDomain(classM *model.ClassModel) *entity.Class {
	class := &entity.Class{
		ID:          classM.ID,
		Name:        classM.Name,
		Description: classM.Description,
		Room:        classM.Room,
		Slot: entity.TimeSlot{
			Date:  classM.ClassDate,
			Start: classM.StartsAt,
			End:   classM.EndsAt,
		},
		Type:      entity.ClassType(classM.ClassType),
		CreatedAt: classM.CreatedAt,
	}
	if classM.Individual != nil {
		class.Individual = &entity.IndividualClass{
			TrainerID: classM.Individual.TrainerID,
			ClientID:  classM.Individual.ClientID,
			Note:      classM.Individual.Note,
		}
	}
	if classM.Group != nil {
		class.Group = &entity.GroupClass{
			InstructorID: classM.Group.InstructorID,
			MaxCapacity:  classM.Group.MaxCapacity,
			CreatedByID:  classM.Group.CreatedByID,
		}
	}

	return class
}
