package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// Every role shares this table; staff rows additionally own an employee profile.
type UserModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FirstName    string     `gorm:"type:varchar(100);not null"`
	LastName     string     `gorm:"type:varchar(100);not null"`
	BirthDate    time.Time  `gorm:"type:date;not null"`
	Email        string     `gorm:"type:varchar(255);unique;not null"`
	Phone        string     `gorm:"type:varchar(30);not null"`
	Gender       string     `gorm:"type:varchar(1);not null"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	Role         string     `gorm:"type:varchar(30);not null;index"`
	AddressID    *uuid.UUID `gorm:"type:uuid"`
	CreatedAt    time.Time

	Address         *AddressModel         `gorm:"foreignKey:AddressID"`
	EmployeeProfile *EmployeeProfileModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// EmployeeProfileModel mirrors the 'employee_profiles' table. UserID references users.id (UUID).
type EmployeeProfileModel struct {
	UserID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	HireDate     time.Time `gorm:"type:date;not null"`
	ContractType string    `gorm:"type:varchar(50)"`
	Salary       *int
	Bio          string `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (EmployeeProfileModel) TableName() string {
	return "employee_profiles"
}
