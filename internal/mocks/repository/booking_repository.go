package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"fitclub/internal/domain/entity"
)

// MockBookingRepository is a testify mock of repository.BookingRepository.
type MockBookingRepository struct {
	mock.Mock
}

// NewMockBookingRepository creates the mock and registers the expectation check.
func NewMockBookingRepository(t *testing.T) *MockBookingRepository {
	m := &MockBookingRepository{}
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	args := m.Called(ctx, booking)

	return args.Error(0)
}

func (m *MockBookingRepository) CreateDetail(ctx context.Context, detail *entity.BookingDetail) error {
	args := m.Called(ctx, detail)

	return args.Error(0)
}

func (m *MockBookingRepository) CountByGroupClass(ctx context.Context, groupClassID uuid.UUID) (int64, error) {
	args := m.Called(ctx, groupClassID)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) CountByGroupClasses(ctx context.Context, groupClassIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	args := m.Called(ctx, groupClassIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(map[uuid.UUID]int64), args.Error(1)
}

func (m *MockBookingRepository) Exists(ctx context.Context, clientID, groupClassID uuid.UUID) (bool, error) {
	args := m.Called(ctx, clientID, groupClassID)

	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.BookingWithClass, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.BookingWithClass), args.Error(1)
}

func (m *MockBookingRepository) DeleteByClient(ctx context.Context, clientID uuid.UUID) error {
	args := m.Called(ctx, clientID)

	return args.Error(0)
}

func (m *MockBookingRepository) DeleteDetailsByClient(ctx context.Context, clientID uuid.UUID) error {
	args := m.Called(ctx, clientID)

	return args.Error(0)
}
