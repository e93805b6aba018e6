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
	mockService "fitclub/internal/mocks/service"
	"fitclub/internal/usecase"
)

type staffServiceFixtures struct {
	service   usecase.StaffUsecase
	users     *mockRepo.MockUserRepository
	addresses *mockRepo.MockAddressRepository
	hasher    *mockService.MockPasswordHasher
}

func createTestStaffService(t *testing.T) staffServiceFixtures {
	users := mockRepo.NewMockUserRepository(t)
	addresses := mockRepo.NewMockAddressRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)

	factory := &mockRepo.StubRepositoryFactory{
		Users:     users,
		Addresses: addresses,
	}
	service := NewStaffService(StaffServiceParams{
		TxManager: &mockRepo.PassthroughTxManager{Factory: factory},
		UserRepo:  users,
		Hasher:    hasher,
		Logger:    testLogger(),
	})

	return staffServiceFixtures{
		service:   service,
		users:     users,
		addresses: addresses,
		hasher:    hasher,
	}
}

func createStaffInput(managerID uuid.UUID, role entity.Role) *usecase.CreateStaffInput {
	salary := 2800

	return &usecase.CreateStaffInput{
		ManagerID:    managerID,
		Role:         role,
		FirstName:    "Imre",
		LastName:     "Nagy",
		BirthDate:    date(1988, time.October, 3),
		Email:        "imre.nagy@example.com",
		Phone:        "+36301112233",
		Gender:       entity.GenderMale,
		Password:     "trainerpass1",
		ContractType: "FULL_TIME",
		Salary:       &salary,
		Bio:          "Strength and conditioning coach.",
		Address: usecase.AddressInput{
			City:         "Budapest",
			PostalCode:   "1063",
			StreetName:   "Szinyei Merse",
			StreetNumber: "10",
		},
	}
}

func expectManager(fx staffServiceFixtures, ctx context.Context, managerID uuid.UUID) {
	fx.users.On("FindByIDAndRole", ctx, managerID, entity.RoleManager).
		Return(&entity.User{ID: managerID, Role: entity.RoleManager}, nil)
}

func TestStaffService_CreateStaff_Success(t *testing.T) {
	fx := createTestStaffService(t)
	ctx := context.Background()
	managerID := uuid.New()
	input := createStaffInput(managerID, entity.RolePersonalTrainer)

	expectManager(fx, ctx, managerID)
	fx.hasher.On("Hash", input.Password).Return("$2a$10$staffhash", nil)
	fx.users.On("FindByEmail", ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.addresses.On("Create", ctx, mock.MatchedBy(func(a *entity.Address) bool {
		return a.City == "Budapest" && a.PostalCode == "1063"
	})).Return(nil)
	fx.users.On("Create", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Role == entity.RolePersonalTrainer &&
			u.AddressID != nil &&
			u.Employee != nil &&
			u.Employee.ContractType == "FULL_TIME" &&
			u.Employee.HireDate.Equal(u.Employee.HireDate.Truncate(24*time.Hour))
	})).Return(nil)

	result, err := fx.service.CreateStaff(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, entity.RolePersonalTrainer, result.Role)
	assert.NotNil(t, result.HireDate)
	assert.NotNil(t, result.AddressID)
	require.NotNil(t, result.Salary)
	assert.Equal(t, 2800, *result.Salary)
}

func TestStaffService_CreateStaff_ManagerOnly(t *testing.T) {
	fx := createTestStaffService(t)
	ctx := context.Background()
	managerID := uuid.New()

	fx.users.On("FindByIDAndRole", ctx, managerID, entity.RoleManager).
		Return(nil, repository.ErrUserNotFound)

	result, err := fx.service.CreateStaff(ctx, createStaffInput(managerID, entity.RoleReceptionist))
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrManagerOnly)
}

func TestStaffService_CreateStaff_RejectsNonStaffRoles(t *testing.T) {
	fx := createTestStaffService(t)
	ctx := context.Background()
	managerID := uuid.New()

	for _, role := range []entity.Role{entity.RoleClient, entity.RoleManager, entity.Role("JANITOR")} {
		expectManager(fx, ctx, managerID)

		_, err := fx.service.CreateStaff(ctx, createStaffInput(managerID, role))
		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr, "role %s", role)
		assert.Equal(t, "ROLE_MISMATCH", appErr.ErrorCode())
	}
	fx.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestStaffService_CreateStaff_EmailTaken(t *testing.T) {
	fx := createTestStaffService(t)
	ctx := context.Background()
	managerID := uuid.New()
	input := createStaffInput(managerID, entity.RoleInstructor)

	expectManager(fx, ctx, managerID)
	fx.hasher.On("Hash", input.Password).Return("$2a$10$staffhash", nil)
	fx.users.On("FindByEmail", ctx, input.Email).
		Return(&entity.User{ID: uuid.New(), Email: input.Email}, nil)

	_, err := fx.service.CreateStaff(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyExists)
	fx.addresses.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestStaffService_ListStaff(t *testing.T) {
	fx := createTestStaffService(t)
	ctx := context.Background()
	managerID := uuid.New()
	role := entity.RoleInstructor

	expectManager(fx, ctx, managerID)
	fx.users.On("ListStaff", ctx, &role).Return([]*entity.User{
		{ID: uuid.New(), Role: entity.RoleInstructor, FirstName: "Eva"},
	}, nil)

	results, err := fx.service.ListStaff(ctx, managerID, &role)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, entity.RoleInstructor, results[0].Role)
}

func TestStaffService_ListStaff_RejectsClientFilter(t *testing.T) {
	fx := createTestStaffService(t)
	ctx := context.Background()
	managerID := uuid.New()
	role := entity.RoleClient

	expectManager(fx, ctx, managerID)

	_, err := fx.service.ListStaff(ctx, managerID, &role)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ROLE_MISMATCH", appErr.ErrorCode())
	fx.users.AssertNotCalled(t, "ListStaff", mock.Anything, mock.Anything)
}
