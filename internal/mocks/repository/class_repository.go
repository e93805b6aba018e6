package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"fitclub/internal/domain/entity"
)

// MockClassRepository is a testify mock of repository.ClassRepository.
type MockClassRepository struct {
	mock.Mock
}

// NewMockClassRepository creates the mock and registers the expectation check.
func NewMockClassRepository(t *testing.T) *MockClassRepository {
	m := &MockClassRepository{}
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockClassRepository) CreateIndividual(ctx context.Context, class *entity.Class) error {
	args := m.Called(ctx, class)

	return args.Error(0)
}

func (m *MockClassRepository) CreateGroup(ctx context.Context, class *entity.Class) error {
	args := m.Called(ctx, class)

	return args.Error(0)
}

func (m *MockClassRepository) FindGroupClassByID(ctx context.Context, id uuid.UUID) (*entity.Class, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Class), args.Error(1)
}

func (m *MockClassRepository) FindGroupClassByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Class, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Class), args.Error(1)
}

func (m *MockClassRepository) ListGroupClasses(ctx context.Context) ([]*entity.Class, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Class), args.Error(1)
}

func (m *MockClassRepository) CountRoomOverlaps(ctx context.Context, room string, slot entity.TimeSlot) (int64, error) {
	args := m.Called(ctx, room, slot)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockClassRepository) CountTrainerOverlaps(ctx context.Context, trainerID uuid.UUID, slot entity.TimeSlot) (int64, error) {
	args := m.Called(ctx, trainerID, slot)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockClassRepository) CountInstructorOverlaps(ctx context.Context, instructorID uuid.UUID, slot entity.TimeSlot) (int64, error) {
	args := m.Called(ctx, instructorID, slot)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockClassRepository) LockResource(ctx context.Context, key string) error {
	args := m.Called(ctx, key)

	return args.Error(0)
}

func (m *MockClassRepository) DetachClientFromIndividualClasses(ctx context.Context, clientID uuid.UUID) error {
	args := m.Called(ctx, clientID)

	return args.Error(0)
}
