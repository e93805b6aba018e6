package impl

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fitclub/internal/domain/entity"
	domainerrors "fitclub/internal/domain/errors"
	"fitclub/internal/domain/repository"
	mockRepo "fitclub/internal/mocks/repository"
	"fitclub/internal/usecase"
)

type bookingServiceFixtures struct {
	service     usecase.BookingUsecase
	users       *mockRepo.MockUserRepository
	classes     *mockRepo.MockClassRepository
	bookings    *mockRepo.MockBookingRepository
	memberships *mockRepo.MockMembershipRepository
}

func createTestBookingService(t *testing.T) bookingServiceFixtures {
	users := mockRepo.NewMockUserRepository(t)
	classes := mockRepo.NewMockClassRepository(t)
	bookings := mockRepo.NewMockBookingRepository(t)
	memberships := mockRepo.NewMockMembershipRepository(t)

	factory := &mockRepo.StubRepositoryFactory{
		Users:       users,
		Classes:     classes,
		Bookings:    bookings,
		Memberships: memberships,
	}
	service := NewBookingService(BookingServiceParams{
		TxManager:   &mockRepo.PassthroughTxManager{Factory: factory},
		UserRepo:    users,
		BookingRepo: bookings,
		Config:      testConfig(),
		Logger:      testLogger(),
	})

	return bookingServiceFixtures{
		service:     service,
		users:       users,
		classes:     classes,
		bookings:    bookings,
		memberships: memberships,
	}
}

func groupClassFixture(capacity int) *entity.Class {
	return &entity.Class{
		ID:   uuid.New(),
		Name: "Morning Yoga",
		Room: "Studio A",
		Slot: entity.NewTimeSlot(date(2025, time.September, 1), clock(9, 0), clock(10, 0)),
		Type: entity.ClassGroup,
		Group: &entity.GroupClass{
			InstructorID: uuid.New(),
			MaxCapacity:  capacity,
		},
	}
}

func TestBookingService_BookClass_Success(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()
	clientID := uuid.New()
	class := groupClassFixture(10)

	fx.classes.On("FindGroupClassByIDForUpdate", ctx, class.ID).Return(class, nil)
	fx.bookings.On("CountByGroupClass", ctx, class.ID).Return(int64(3), nil)
	fx.bookings.On("Exists", ctx, clientID, class.ID).Return(false, nil)
	fx.bookings.On("Create", ctx, mock.AnythingOfType("*entity.Booking")).Return(nil)
	fx.bookings.On("CreateDetail", ctx, mock.AnythingOfType("*entity.BookingDetail")).Return(nil)

	result, err := fx.service.BookClass(ctx, clientID, class.ID)
	require.NoError(t, err)
	assert.Equal(t, clientID, result.ClientID)
	assert.Equal(t, class.ID, result.GroupClassID)
	assert.Equal(t, entity.ReservationToPay, result.Status)
	assert.NotEqual(t, uuid.Nil, result.BookingID)
}

func TestBookingService_BookClass_ClassNotFound(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()
	classID := uuid.New()

	fx.classes.On("FindGroupClassByIDForUpdate", ctx, classID).
		Return(nil, repository.ErrClassNotFound)

	result, err := fx.service.BookClass(ctx, uuid.New(), classID)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrClassNotFound)
}

func TestBookingService_BookClass_ClassFull(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()
	clientID := uuid.New()
	class := groupClassFixture(10)

	fx.classes.On("FindGroupClassByIDForUpdate", ctx, class.ID).Return(class, nil)
	fx.bookings.On("CountByGroupClass", ctx, class.ID).Return(int64(10), nil)

	result, err := fx.service.BookClass(ctx, clientID, class.ID)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrClassFull)
	fx.bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBookingService_BookClass_DuplicateBooking(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()
	clientID := uuid.New()
	class := groupClassFixture(10)

	fx.classes.On("FindGroupClassByIDForUpdate", ctx, class.ID).Return(class, nil)
	fx.bookings.On("CountByGroupClass", ctx, class.ID).Return(int64(2), nil)
	fx.bookings.On("Exists", ctx, clientID, class.ID).Return(true, nil)

	result, err := fx.service.BookClass(ctx, clientID, class.ID)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyBooked)
}

func TestBookingService_BookClass_DuplicateRaceOnInsert(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()
	clientID := uuid.New()
	class := groupClassFixture(10)

	fx.classes.On("FindGroupClassByIDForUpdate", ctx, class.ID).Return(class, nil)
	fx.bookings.On("CountByGroupClass", ctx, class.ID).Return(int64(2), nil)
	fx.bookings.On("Exists", ctx, clientID, class.ID).Return(false, nil)
	fx.bookings.On("Create", ctx, mock.AnythingOfType("*entity.Booking")).
		Return(repository.ErrDuplicateBooking)

	result, err := fx.service.BookClass(ctx, clientID, class.ID)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyBooked)
}

func TestBookingService_BookClass_ZeroCapacityFallsBackToPolicy(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()
	clientID := uuid.New()
	class := groupClassFixture(0)

	fx.classes.On("FindGroupClassByIDForUpdate", ctx, class.ID).Return(class, nil)
	fx.bookings.On("CountByGroupClass", ctx, class.ID).Return(int64(20), nil)

	_, err := fx.service.BookClass(ctx, clientID, class.ID)
	assert.ErrorIs(t, err, domainerrors.ErrClassFull)
}

func reserveFixture(fx bookingServiceFixtures, ctx context.Context, receptionistID, clientID uuid.UUID) {
	fx.users.On("FindByIDAndRole", ctx, receptionistID, entity.RoleReceptionist).
		Return(&entity.User{ID: receptionistID, Role: entity.RoleReceptionist}, nil)
	fx.users.On("FindByIDAndRole", ctx, clientID, entity.RoleClient).
		Return(&entity.User{ID: clientID, Role: entity.RoleClient}, nil)
}

func TestBookingService_ReserveForClient_PaidWithActivatedMembership(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()
	receptionistID := uuid.New()
	clientID := uuid.New()
	class := groupClassFixture(10)
	membershipID := uuid.New()

	reserveFixture(fx, ctx, receptionistID, clientID)
	fx.classes.On("FindGroupClassByIDForUpdate", ctx, class.ID).Return(class, nil)
	fx.bookings.On("CountByGroupClass", ctx, class.ID).Return(int64(3), nil)
	fx.bookings.On("Exists", ctx, clientID, class.ID).Return(false, nil)
	fx.memberships.On("FindByID", ctx, membershipID).Return(&entity.Membership{
		ID:        membershipID,
		ClientID:  clientID,
		StartDate: date(2025, time.August, 1),
		EndDate:   date(2025, time.October, 1),
	}, nil)
	fx.memberships.On("FindPayment", ctx, membershipID).Return(&entity.MembershipPayment{
		MembershipID: membershipID,
		Status:       entity.PaymentActivated,
		Method:       entity.PaymentOnline,
	}, nil)
	fx.bookings.On("Create", ctx, mock.AnythingOfType("*entity.Booking")).Return(nil)
	fx.bookings.On("CreateDetail", ctx, mock.MatchedBy(func(d *entity.BookingDetail) bool {
		return d.Status == entity.ReservationPaid && d.BookedByID != nil && *d.BookedByID == receptionistID
	})).Return(nil)

	result, err := fx.service.ReserveForClient(ctx, &usecase.ReserveInput{
		ReceptionistID: receptionistID,
		ClientID:       clientID,
		GroupClassID:   class.ID,
		MembershipID:   &membershipID,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ReservationPaid, result.Status)
}

func TestBookingService_ReserveForClient_ForeignMembershipRejected(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()
	receptionistID := uuid.New()
	clientID := uuid.New()
	class := groupClassFixture(10)
	membershipID := uuid.New()

	reserveFixture(fx, ctx, receptionistID, clientID)
	fx.classes.On("FindGroupClassByIDForUpdate", ctx, class.ID).Return(class, nil)
	fx.bookings.On("CountByGroupClass", ctx, class.ID).Return(int64(0), nil)
	fx.bookings.On("Exists", ctx, clientID, class.ID).Return(false, nil)
	fx.memberships.On("FindByID", ctx, membershipID).Return(&entity.Membership{
		ID:        membershipID,
		ClientID:  uuid.New(), // someone else's membership
		StartDate: date(2025, time.August, 1),
		EndDate:   date(2025, time.October, 1),
	}, nil)

	result, err := fx.service.ReserveForClient(ctx, &usecase.ReserveInput{
		ReceptionistID: receptionistID,
		ClientID:       clientID,
		GroupClassID:   class.ID,
		MembershipID:   &membershipID,
	})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidMembership)
}

func TestBookingService_ReserveForClient_ExpiredMembershipRejected(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()
	receptionistID := uuid.New()
	clientID := uuid.New()
	class := groupClassFixture(10)
	membershipID := uuid.New()

	reserveFixture(fx, ctx, receptionistID, clientID)
	fx.classes.On("FindGroupClassByIDForUpdate", ctx, class.ID).Return(class, nil)
	fx.bookings.On("CountByGroupClass", ctx, class.ID).Return(int64(0), nil)
	fx.bookings.On("Exists", ctx, clientID, class.ID).Return(false, nil)
	fx.memberships.On("FindByID", ctx, membershipID).Return(&entity.Membership{
		ID:        membershipID,
		ClientID:  clientID,
		StartDate: date(2025, time.June, 1),
		EndDate:   date(2025, time.July, 1), // expired before the class date
	}, nil)

	result, err := fx.service.ReserveForClient(ctx, &usecase.ReserveInput{
		ReceptionistID: receptionistID,
		ClientID:       clientID,
		GroupClassID:   class.ID,
		MembershipID:   &membershipID,
	})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrMembershipNotValid)
}

func TestBookingService_ReserveForClient_WithoutMembershipStaysToPay(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()
	receptionistID := uuid.New()
	clientID := uuid.New()
	class := groupClassFixture(10)

	reserveFixture(fx, ctx, receptionistID, clientID)
	fx.classes.On("FindGroupClassByIDForUpdate", ctx, class.ID).Return(class, nil)
	fx.bookings.On("CountByGroupClass", ctx, class.ID).Return(int64(0), nil)
	fx.bookings.On("Exists", ctx, clientID, class.ID).Return(false, nil)
	fx.bookings.On("Create", ctx, mock.AnythingOfType("*entity.Booking")).Return(nil)
	fx.bookings.On("CreateDetail", ctx, mock.AnythingOfType("*entity.BookingDetail")).Return(nil)

	result, err := fx.service.ReserveForClient(ctx, &usecase.ReserveInput{
		ReceptionistID: receptionistID,
		ClientID:       clientID,
		GroupClassID:   class.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ReservationToPay, result.Status)
}

func TestBookingService_ReserveForClient_ReceptionistRoleRequired(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()
	receptionistID := uuid.New()

	fx.users.On("FindByIDAndRole", ctx, receptionistID, entity.RoleReceptionist).
		Return(nil, repository.ErrUserNotFound)

	result, err := fx.service.ReserveForClient(ctx, &usecase.ReserveInput{
		ReceptionistID: receptionistID,
		ClientID:       uuid.New(),
		GroupClassID:   uuid.New(),
	})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrRoleMismatch)
}

func TestBookingService_ListClientBookings(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()
	clientID := uuid.New()
	history := []*entity.BookingWithClass{
		{
			Booking:   entity.Booking{ID: uuid.New(), ClientID: clientID},
			ClassName: "Morning Yoga",
			Room:      "Studio A",
		},
	}

	fx.bookings.On("ListByClient", ctx, clientID).Return(history, nil)

	result, err := fx.service.ListClientBookings(ctx, clientID)
	require.NoError(t, err)
	assert.Equal(t, history, result)
}
