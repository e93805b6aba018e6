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

type membershipServiceFixtures struct {
	service     usecase.MembershipUsecase
	users       *mockRepo.MockUserRepository
	memberships *mockRepo.MockMembershipRepository
	hasher      *mockService.MockPasswordHasher
}

func createTestMembershipService(t *testing.T) membershipServiceFixtures {
	users := mockRepo.NewMockUserRepository(t)
	memberships := mockRepo.NewMockMembershipRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)

	factory := &mockRepo.StubRepositoryFactory{
		Users:       users,
		Memberships: memberships,
	}
	service := NewMembershipService(MembershipServiceParams{
		TxManager:      &mockRepo.PassthroughTxManager{Factory: factory},
		UserRepo:       users,
		MembershipRepo: memberships,
		Hasher:         hasher,
		Config:         testConfig(),
		Logger:         testLogger(),
	})

	return membershipServiceFixtures{
		service:     service,
		users:       users,
		memberships: memberships,
		hasher:      hasher,
	}
}

func purchaseInput(typ entity.MembershipType, method entity.PaymentMethod) *usecase.PurchaseInput {
	return &usecase.PurchaseInput{
		Type:      typ,
		StartDate: date(2025, time.September, 1),
		Method:    method,
	}
}

func TestMembershipService_Catalog(t *testing.T) {
	fx := createTestMembershipService(t)

	items := fx.service.Catalog()
	require.Len(t, items, 8)

	receptionOnly := 0
	for _, item := range items {
		if item.PurchaseChannel == "RECEPTION_ONLY" {
			receptionOnly++
			assert.Equal(t, entity.MembershipOneTimePass, item.Type)
		}
	}
	assert.Equal(t, 2, receptionOnly, "both one-time pass variants are reception-only")
}

func TestMembershipService_PurchaseForClient_OnlineActivates(t *testing.T) {
	fx := createTestMembershipService(t)
	ctx := context.Background()
	clientID := uuid.New()

	fx.users.On("FindByIDAndRole", ctx, clientID, entity.RoleClient).
		Return(&entity.User{ID: clientID, Role: entity.RoleClient}, nil)
	fx.memberships.On("Create", ctx, mock.MatchedBy(func(m *entity.Membership) bool {
		return m.ClientID == clientID && m.ReceptionistID == nil && m.Price == 150
	})).Return(nil)
	fx.memberships.On("CreatePayment", ctx, mock.MatchedBy(func(p *entity.MembershipPayment) bool {
		return p.Status == entity.PaymentActivated && p.Method == entity.PaymentOnline
	})).Return(nil)

	result, err := fx.service.PurchaseForClient(ctx, clientID, purchaseInput(entity.MembershipMonthly, entity.PaymentOnline))
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentActivated, result.PaymentStatus)
	assert.Equal(t, date(2025, time.October, 1), result.EndDate)
}

func TestMembershipService_PurchaseForClient_CashStaysToPay(t *testing.T) {
	fx := createTestMembershipService(t)
	ctx := context.Background()
	clientID := uuid.New()

	fx.users.On("FindByIDAndRole", ctx, clientID, entity.RoleClient).
		Return(&entity.User{ID: clientID, Role: entity.RoleClient}, nil)
	fx.memberships.On("Create", ctx, mock.AnythingOfType("*entity.Membership")).Return(nil)
	fx.memberships.On("CreatePayment", ctx, mock.MatchedBy(func(p *entity.MembershipPayment) bool {
		return p.Status == entity.PaymentToPay
	})).Return(nil)

	result, err := fx.service.PurchaseForClient(ctx, clientID, purchaseInput(entity.MembershipQuarterly, entity.PaymentCash))
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentToPay, result.PaymentStatus)
}

func TestMembershipService_PurchaseForClient_ReceptionOnlyType(t *testing.T) {
	fx := createTestMembershipService(t)

	result, err := fx.service.PurchaseForClient(context.Background(), uuid.New(),
		purchaseInput(entity.MembershipOneTimePass, entity.PaymentOnline))
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrPurchaseChannelForbidden)
}

func TestMembershipService_PurchaseForClient_UnknownType(t *testing.T) {
	fx := createTestMembershipService(t)

	_, err := fx.service.PurchaseForClient(context.Background(), uuid.New(),
		purchaseInput(entity.MembershipType("LIFETIME"), entity.PaymentOnline))
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPurchaseInput)
}

func TestMembershipService_PurchaseForClient_NegativeOverride(t *testing.T) {
	fx := createTestMembershipService(t)
	override := -10
	input := purchaseInput(entity.MembershipMonthly, entity.PaymentOnline)
	input.PriceOverride = &override

	_, err := fx.service.PurchaseForClient(context.Background(), uuid.New(), input)
	assert.ErrorIs(t, err, domainerrors.ErrNegativePriceOverride)
}

func TestMembershipService_SellAtReception_ExistingClient(t *testing.T) {
	fx := createTestMembershipService(t)
	ctx := context.Background()
	receptionistID := uuid.New()
	clientID := uuid.New()

	fx.users.On("FindByIDAndRole", ctx, receptionistID, entity.RoleReceptionist).
		Return(&entity.User{ID: receptionistID, Role: entity.RoleReceptionist}, nil)
	fx.users.On("FindByIDAndRole", ctx, clientID, entity.RoleClient).
		Return(&entity.User{ID: clientID, Role: entity.RoleClient}, nil)
	fx.memberships.On("Create", ctx, mock.MatchedBy(func(m *entity.Membership) bool {
		return m.ReceptionistID != nil && *m.ReceptionistID == receptionistID
	})).Return(nil)
	fx.memberships.On("CreatePayment", ctx, mock.MatchedBy(func(p *entity.MembershipPayment) bool {
		return p.Status == entity.PaymentActivated && p.Method == entity.PaymentCash
	})).Return(nil)

	result, err := fx.service.SellAtReception(ctx, &usecase.SellInput{
		ReceptionistID: receptionistID,
		ClientID:       &clientID,
		Purchase:       *purchaseInput(entity.MembershipOneTimePass, entity.PaymentCash),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentActivated, result.PaymentStatus, "reception sales are paid in person")
	assert.Equal(t, clientID, result.ClientID)
	assert.Equal(t, result.StartDate, result.EndDate, "one-time pass expires the same day")
}

func TestMembershipService_SellAtReception_FastRegistration(t *testing.T) {
	fx := createTestMembershipService(t)
	ctx := context.Background()
	receptionistID := uuid.New()

	newClient := &usecase.NewClientInput{
		FirstName: "Dana",
		LastName:  "Kovacs",
		BirthDate: date(1990, time.April, 12),
		Email:     "dana.kovacs@example.com",
		Phone:     "+36201234567",
		Gender:    entity.GenderFemale,
		Password:  "sup3rsecret",
	}

	fx.users.On("FindByIDAndRole", ctx, receptionistID, entity.RoleReceptionist).
		Return(&entity.User{ID: receptionistID, Role: entity.RoleReceptionist}, nil)
	fx.users.On("FindByEmail", ctx, newClient.Email).Return(nil, repository.ErrUserNotFound)
	fx.hasher.On("Hash", newClient.Password).Return("$2a$10$hash", nil)
	fx.users.On("Create", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Role == entity.RoleClient && u.Email == newClient.Email && u.PasswordHash == "$2a$10$hash"
	})).Return(nil)
	fx.memberships.On("Create", ctx, mock.AnythingOfType("*entity.Membership")).Return(nil)
	fx.memberships.On("CreatePayment", ctx, mock.AnythingOfType("*entity.MembershipPayment")).Return(nil)

	result, err := fx.service.SellAtReception(ctx, &usecase.SellInput{
		ReceptionistID: receptionistID,
		NewClient:      newClient,
		Purchase:       *purchaseInput(entity.MembershipAnnual, entity.PaymentCash),
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, result.ClientID)
	assert.Equal(t, 1200, result.Price)
}

func TestMembershipService_SellAtReception_MissingClientFields(t *testing.T) {
	fx := createTestMembershipService(t)
	ctx := context.Background()
	receptionistID := uuid.New()

	fx.users.On("FindByIDAndRole", ctx, receptionistID, entity.RoleReceptionist).
		Return(&entity.User{ID: receptionistID, Role: entity.RoleReceptionist}, nil)

	_, err := fx.service.SellAtReception(ctx, &usecase.SellInput{
		ReceptionistID: receptionistID,
		NewClient:      &usecase.NewClientInput{FirstName: "Dana"},
		Purchase:       *purchaseInput(entity.MembershipMonthly, entity.PaymentCash),
	})
	assert.ErrorIs(t, err, domainerrors.ErrMissingClientFields)
	fx.memberships.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMembershipService_SellAtReception_EmailTaken(t *testing.T) {
	fx := createTestMembershipService(t)
	ctx := context.Background()
	receptionistID := uuid.New()

	newClient := &usecase.NewClientInput{
		FirstName: "Dana",
		LastName:  "Kovacs",
		BirthDate: date(1990, time.April, 12),
		Email:     "dana.kovacs@example.com",
		Phone:     "+36201234567",
		Gender:    entity.GenderFemale,
		Password:  "sup3rsecret",
	}

	fx.users.On("FindByIDAndRole", ctx, receptionistID, entity.RoleReceptionist).
		Return(&entity.User{ID: receptionistID, Role: entity.RoleReceptionist}, nil)
	fx.users.On("FindByEmail", ctx, newClient.Email).
		Return(&entity.User{ID: uuid.New(), Email: newClient.Email}, nil)

	_, err := fx.service.SellAtReception(ctx, &usecase.SellInput{
		ReceptionistID: receptionistID,
		NewClient:      newClient,
		Purchase:       *purchaseInput(entity.MembershipMonthly, entity.PaymentCash),
	})
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyExists)
}

func TestMembershipService_SellAtReception_ReceptionistRoleRequired(t *testing.T) {
	fx := createTestMembershipService(t)
	ctx := context.Background()
	receptionistID := uuid.New()

	fx.users.On("FindByIDAndRole", ctx, receptionistID, entity.RoleReceptionist).
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.SellAtReception(ctx, &usecase.SellInput{
		ReceptionistID: receptionistID,
		Purchase:       *purchaseInput(entity.MembershipMonthly, entity.PaymentCash),
	})
	assert.ErrorIs(t, err, domainerrors.ErrRoleMismatch)
}

func TestMembershipService_ListClientMemberships(t *testing.T) {
	fx := createTestMembershipService(t)
	ctx := context.Background()
	clientID := uuid.New()

	withPayment := &repository.MembershipWithPayment{
		Membership: entity.Membership{ID: uuid.New(), ClientID: clientID, Type: entity.MembershipMonthly},
		Payment:    &entity.MembershipPayment{Status: entity.PaymentActivated, Method: entity.PaymentOnline},
	}
	orphan := &repository.MembershipWithPayment{
		Membership: entity.Membership{ID: uuid.New(), ClientID: clientID, Type: entity.MembershipAnnual},
	}

	fx.users.On("FindByIDAndRole", ctx, clientID, entity.RoleClient).
		Return(&entity.User{ID: clientID, Role: entity.RoleClient}, nil)
	fx.memberships.On("ListByClient", ctx, clientID).
		Return([]*repository.MembershipWithPayment{withPayment, orphan}, nil)

	results, err := fx.service.ListClientMemberships(ctx, clientID)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, entity.PaymentActivated, results[0].PaymentStatus)
	assert.Equal(t, entity.PaymentStatus("UNKNOWN"), results[1].PaymentStatus)
}
