package postgres

import (
	"context"

	"fitclub/internal/domain/entity"
	"fitclub/internal/domain/repository"
	"fitclub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// Create persists a new user entity together with its employee profile, if any.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := toUserModel(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}

		return errors.Wrap(err, "failed to create user")
	}

	return nil
}

// FindByID retrieves a single user by id, preloading the employee profile.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("EmployeeProfile").
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by its unique email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("EmployeeProfile").
		Where("email = ?", email).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// FindByIDAndRole retrieves a user only when it carries the given role.
// A matching id with a different role is indistinguishable from a missing user.
func (repo *userRepository) FindByIDAndRole(ctx context.Context, id uuid.UUID, role entity.Role) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("EmployeeProfile").
		Where("id = ? AND role = ?", id, role.String()).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id and role")
	}

	return toUserDomain(&userM), nil
}

// ListStaff returns staff users newest first, optionally filtered by role.
func (repo *userRepository) ListStaff(ctx context.Context, role *entity.Role) ([]*entity.User, error) {
	query := repo.db.WithContext(ctx).
		Preload("EmployeeProfile").
		Order("created_at DESC")

	if role != nil {
		query = query.Where("role = ?", role.String())
	} else {
		roles := make([]string, 0, len(entity.StaffRoles))
		for _, r := range entity.StaffRoles {
			roles = append(roles, r.String())
		}
		query = query.Where("role IN ?", roles)
	}

	var models []model.UserModel
	if err := query.Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list staff")
	}

	users := make([]*entity.User, 0, len(models))
	for i := range models {
		users = append(users, toUserDomain(&models[i]))
	}

	return users, nil
}

// Delete removes the user row and its employee profile.
func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := repo.db.WithContext(ctx)

	if err := db.Where("user_id = ?", id).Delete(&model.EmployeeProfileModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete employee profile")
	}
	if err := db.Where("id = ?", id).Delete(&model.UserModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete user")
	}

	return nil
}

func toUserModel(user *entity.User) *model.UserModel {
	userM := &model.UserModel{
		ID:           user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		BirthDate:    user.BirthDate,
		Email:        user.Email,
		Phone:        user.Phone,
		Gender:       string(user.Gender),
		PasswordHash: user.PasswordHash,
		Role:         user.Role.String(),
		AddressID:    user.AddressID,
		CreatedAt:    user.CreatedAt,
	}
	if user.Employee != nil {
		userM.EmployeeProfile = &model.EmployeeProfileModel{
			UserID:       user.ID,
			HireDate:     user.Employee.HireDate,
			ContractType: user.Employee.ContractType,
			Salary:       user.Employee.Salary,
			Bio:          user.Employee.Bio,
		}
	}

	return userM
}

func toUserDomain(userM *model.UserModel) *entity.User {
	user := &entity.User{
		ID:           userM.ID,
		FirstName:    userM.FirstName,
		LastName:     userM.LastName,
		BirthDate:    userM.BirthDate,
		Email:        userM.Email,
		Phone:        userM.Phone,
		Gender:       entity.Gender(userM.Gender),
		PasswordHash: userM.PasswordHash,
		Role:         entity.Role(userM.Role),
		AddressID:    userM.AddressID,
		CreatedAt:    userM.CreatedAt,
	}
	if userM.EmployeeProfile != nil {
		user.Employee = &entity.EmployeeProfile{
			HireDate:     userM.EmployeeProfile.HireDate,
			ContractType: userM.EmployeeProfile.ContractType,
			Salary:       userM.EmployeeProfile.Salary,
			Bio:          userM.EmployeeProfile.Bio,
		}
	}

	return user
}
