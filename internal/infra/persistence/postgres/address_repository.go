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

// addressRepository implements the repository.AddressRepository interface using GORM.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

// Create persists a new address.
func (repo *addressRepository) Create(ctx context.Context, address *entity.Address) error {
	addressM := &model.AddressModel{
		ID:              address.ID,
		City:            address.City,
		PostalCode:      address.PostalCode,
		StreetName:      address.StreetName,
		StreetNumber:    address.StreetNumber,
		ApartmentNumber: address.ApartmentNumber,
	}

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		return errors.Wrap(err, "failed to create address")
	}

	return nil
}

// DeleteIfOrphaned removes the address when no user references it anymore.
func (repo *addressRepository) DeleteIfOrphaned(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("id = ? AND NOT EXISTS (SELECT 1 FROM users WHERE users.address_id = addresses.id)", id).
		Delete(&model.AddressModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete orphaned address")
	}

	return nil
}
