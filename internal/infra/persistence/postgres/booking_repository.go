package postgres

import (
	"context"
	"time"

	"fitclub/internal/domain/entity"
	"fitclub/internal/domain/repository"
	"fitclub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// bookingRepository implements the repository.BookingRepository interface using GORM.
type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository is the constructor for bookingRepository.
func NewBookingRepository(db *gorm.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

// Create persists a new booking row. A unique-index violation on
// (client_id, group_class_id) surfaces as ErrDuplicateBooking.
func (repo *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	bookingM := &model.ClassBookingModel{
		ID:           booking.ID,
		ClientID:     booking.ClientID,
		GroupClassID: booking.GroupClassID,
		BookedAt:     booking.BookedAt,
	}

	if err := repo.db.WithContext(ctx).Create(bookingM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateBooking
		}
		// The referenced class was deleted between the lookup and the insert.
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrClassNotFound
		}

		return errors.Wrap(err, "failed to create booking")
	}

	return nil
}

// CreateDetail persists the booking's companion metadata record.
func (repo *bookingRepository) CreateDetail(ctx context.Context, detail *entity.BookingDetail) error {
	detailM := &model.BookingDetailModel{
		ID:           uuid.New(),
		ClientID:     detail.ClientID,
		GroupClassID: detail.GroupClassID,
		MembershipID: detail.MembershipID,
		Status:       string(detail.Status),
		BookedByID:   detail.BookedByID,
		CreatedAt:    detail.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(detailM).Error; err != nil {
		return errors.Wrap(err, "failed to create booking detail")
	}

	return nil
}

// CountByGroupClass returns the current number of bookings for a class.
func (repo *bookingRepository) CountByGroupClass(ctx context.Context, groupClassID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.ClassBookingModel{}).
		Where("group_class_id = ?", groupClassID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count bookings")
	}

	return count, nil
}

// CountByGroupClasses returns booking counts keyed by class id. Classes with
// no bookings are absent from the map.
func (repo *bookingRepository) CountByGroupClasses(ctx context.Context, groupClassIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(groupClassIDs))
	if len(groupClassIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		GroupClassID uuid.UUID
		Total        int64
	}
	err := repo.db.WithContext(ctx).
		Model(&model.ClassBookingModel{}).
		Select("group_class_id, COUNT(*) AS total").
		Where("group_class_id IN ?", groupClassIDs).
		Group("group_class_id").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to count bookings per class")
	}

	for _, row := range rows {
		counts[row.GroupClassID] = row.Total
	}

	return counts, nil
}

// Exists reports whether the client already holds a booking for the class.
func (repo *bookingRepository) Exists(ctx context.Context, clientID, groupClassID uuid.UUID) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.ClassBookingModel{}).
		Where("client_id = ? AND group_class_id = ?", clientID, groupClassID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check existing booking")
	}

	return count > 0, nil
}

// ListByClient returns the client's bookings joined with class info, newest first.
func (repo *bookingRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.BookingWithClass, error) {
	var rows []struct {
		ID           uuid.UUID
		ClientID     uuid.UUID
		GroupClassID uuid.UUID
		BookedAt     time.Time
		ClassName    string
		Room         string
		ClassDate    time.Time
		StartsAt     time.Time
		EndsAt       time.Time
	}
	err := repo.db.WithContext(ctx).
		Model(&model.ClassBookingModel{}).
		Select("class_bookings.id, class_bookings.client_id, class_bookings.group_class_id, class_bookings.booked_at, "+
			"classes.name AS class_name, classes.room, classes.class_date, classes.starts_at, classes.ends_at").
		Joins("JOIN classes ON classes.id = class_bookings.group_class_id").
		Where("class_bookings.client_id = ?", clientID).
		Order("class_bookings.booked_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list client bookings")
	}

	bookings := make([]*entity.BookingWithClass, 0, len(rows))
	for _, row := range rows {
		bookings = append(bookings, &entity.BookingWithClass{
			Booking: entity.Booking{
				ID:           row.ID,
				ClientID:     row.ClientID,
				GroupClassID: row.GroupClassID,
				BookedAt:     row.BookedAt,
			},
			ClassName: row.ClassName,
			Room:      row.Room,
			Slot: entity.TimeSlot{
				Date:  row.ClassDate,
				Start: row.StartsAt,
				End:   row.EndsAt,
			},
		})
	}

	return bookings, nil
}

// DeleteByClient removes all bookings of a client.
func (repo *bookingRepository) DeleteByClient(ctx context.Context, clientID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Delete(&model.ClassBookingModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete client bookings")
	}

	return nil
}

// DeleteDetailsByClient removes all booking details of a client.
func (repo *bookingRepository) DeleteDetailsByClient(ctx context.Context, clientID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Delete(&model.BookingDetailModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete client booking details")
	}

	return nil
}
