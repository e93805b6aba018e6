package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"fitclub/internal/domain/entity"
	domainerrors "fitclub/internal/domain/errors"
	"fitclub/internal/domain/repository"
	"fitclub/internal/domain/service"
	"fitclub/internal/usecase"
)

// staffService implements the StaffUsecase interface.
type staffService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// StaffServiceParams holds dependencies for StaffService, injected by Fx.
type StaffServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewStaffService is the constructor for staffService.
func NewStaffService(params StaffServiceParams) usecase.StaffUsecase {
	return &staffService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

// CreateStaff registers a staff member with an inline address. Only a manager
// may call this; the address and user rows commit together.
func (srv *staffService) CreateStaff(ctx context.Context, input *usecase.CreateStaffInput) (*usecase.StaffResult, error) {
	if err := srv.requireManager(ctx, input.ManagerID); err != nil {
		return nil, err
	}
	if !entity.StaffRoles.Contains(input.Role) {
		return nil, domainerrors.ErrRoleMismatch.WithDetails("role must be one of the staff roles")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	var staff *entity.User

	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		users := repos.NewUserRepository()
		addresses := repos.NewAddressRepository()

		if _, err := users.FindByEmail(ctx, input.Email); err == nil {
			return domainerrors.ErrEmailAlreadyExists
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check email uniqueness")
		}

		address := &entity.Address{
			ID:              uuid.New(),
			City:            input.Address.City,
			PostalCode:      input.Address.PostalCode,
			StreetName:      input.Address.StreetName,
			StreetNumber:    input.Address.StreetNumber,
			ApartmentNumber: input.Address.ApartmentNumber,
		}
		if err := addresses.Create(ctx, address); err != nil {
			return errors.Wrap(err, "failed to create staff address")
		}

		now := time.Now().UTC()
		addressID := address.ID
		staff = &entity.User{
			ID:           uuid.New(),
			FirstName:    input.FirstName,
			LastName:     input.LastName,
			BirthDate:    input.BirthDate,
			Email:        input.Email,
			Phone:        input.Phone,
			Gender:       input.Gender,
			PasswordHash: hash,
			Role:         input.Role,
			AddressID:    &addressID,
			CreatedAt:    now,
			Employee: &entity.EmployeeProfile{
				HireDate:     time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
				ContractType: input.ContractType,
				Salary:       input.Salary,
				Bio:          input.Bio,
			},
		}
		if err := users.Create(ctx, staff); err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				return domainerrors.ErrEmailAlreadyExists
			}

			return errors.Wrap(err, "failed to create staff user")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("staff member created",
		slog.String("userId", staff.ID.String()),
		slog.String("role", string(staff.Role)),
		slog.String("managerId", input.ManagerID.String()),
	)

	return staffResult(staff), nil
}

// ListStaff returns staff members newest first, optionally filtered by role.
func (srv *staffService) ListStaff(ctx context.Context, managerID uuid.UUID, role *entity.Role) ([]*usecase.StaffResult, error) {
	if err := srv.requireManager(ctx, managerID); err != nil {
		return nil, err
	}
	if role != nil && !entity.StaffRoles.Contains(*role) {
		return nil, domainerrors.ErrRoleMismatch.WithDetails("role filter must be one of the staff roles")
	}

	staff, err := srv.userRepo.ListStaff(ctx, role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list staff")
	}

	results := make([]*usecase.StaffResult, 0, len(staff))
	for _, member := range staff {
		results = append(results, staffResult(member))
	}

	return results, nil
}

func (srv *staffService) requireManager(ctx context.Context, managerID uuid.UUID) error {
	if _, err := srv.userRepo.FindByIDAndRole(ctx, managerID, entity.RoleManager); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrManagerOnly
		}

		return errors.Wrap(err, "failed to resolve manager")
	}

	return nil
}

func staffResult(user *entity.User) *usecase.StaffResult {
	result := &usecase.StaffResult{
		UserID:    user.ID,
		Role:      user.Role,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Phone:     user.Phone,
		AddressID: user.AddressID,
	}
	if user.Employee != nil {
		hireDate := user.Employee.HireDate
		result.ContractType = user.Employee.ContractType
		result.HireDate = &hireDate
		result.Salary = user.Employee.Salary
	}

	return result
}
