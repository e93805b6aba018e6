package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"fitclub/internal/domain/entity"
	"fitclub/internal/domain/repository"
)

// MockMembershipRepository is a testify mock of repository.MembershipRepository.
type MockMembershipRepository struct {
	mock.Mock
}

// NewMockMembershipRepository creates the mock and registers the expectation check.
func NewMockMembershipRepository(t *testing.T) *MockMembershipRepository {
	m := &MockMembershipRepository{}
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockMembershipRepository) Create(ctx context.Context, membership *entity.Membership) error {
	args := m.Called(ctx, membership)

	return args.Error(0)
}

func (m *MockMembershipRepository) CreatePayment(ctx context.Context, payment *entity.MembershipPayment) error {
	args := m.Called(ctx, payment)

	return args.Error(0)
}

func (m *MockMembershipRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Membership, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Membership), args.Error(1)
}

func (m *MockMembershipRepository) FindPayment(ctx context.Context, membershipID uuid.UUID) (*entity.MembershipPayment, error) {
	args := m.Called(ctx, membershipID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.MembershipPayment), args.Error(1)
}

func (m *MockMembershipRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*repository.MembershipWithPayment, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*repository.MembershipWithPayment), args.Error(1)
}

func (m *MockMembershipRepository) DeletePaymentsByClient(ctx context.Context, clientID uuid.UUID) error {
	args := m.Called(ctx, clientID)

	return args.Error(0)
}

func (m *MockMembershipRepository) DeleteByClient(ctx context.Context, clientID uuid.UUID) error {
	args := m.Called(ctx, clientID)

	return args.Error(0)
}
