package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"fitclub/internal/domain/entity"
)

// AddressInput holds the fields for an inline address creation.
type AddressInput struct {
	City            string
	PostalCode      string
	StreetName      string
	StreetNumber    string
	ApartmentNumber string
}

// CreateStaffInput describes a staff member to be created by a manager.
type CreateStaffInput struct {
	ManagerID    uuid.UUID
	Role         entity.Role // must be one of entity.StaffRoles
	FirstName    string
	LastName     string
	BirthDate    time.Time
	Email        string
	Phone        string
	Gender       entity.Gender
	Password     string
	ContractType string
	Salary       *int
	Bio          string
	Address      AddressInput
}

// StaffResult is the outward view of a staff member.
type StaffResult struct {
	UserID       uuid.UUID   `json:"user_id"`
	Role         entity.Role `json:"role"`
	FirstName    string      `json:"first_name"`
	LastName     string      `json:"last_name"`
	Email        string      `json:"email"`
	Phone        string      `json:"phone"`
	ContractType string      `json:"contract_type,omitempty"`
	HireDate     *time.Time  `json:"hire_date,omitempty"`
	Salary       *int        `json:"salary,omitempty"`
	AddressID    *uuid.UUID  `json:"address_id,omitempty"`
}

// StaffUsecase covers manager-gated staff management.
type StaffUsecase interface {
	// CreateStaff creates a staff user with an inline address. Manager only.
	CreateStaff(ctx context.Context, input *CreateStaffInput) (*StaffResult, error)

	// ListStaff returns staff newest first, optionally filtered by role. Manager only.
	ListStaff(ctx context.Context, managerID uuid.UUID, role *entity.Role) ([]*StaffResult, error)
}
