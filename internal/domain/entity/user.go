package entity

import (
	"time"

	"github.com/google/uuid"
)

// Gender is the registered gender of a user.
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

// IsValid checks if the Gender is a valid value.
func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}

// User is the core identity in the system. Instead of a deep inheritance chain,
// a user is a flat record tagged with a Role; staff roles additionally carry an
// EmployeeProfile payload. Email is globally unique across all roles.
type User struct {
	ID           uuid.UUID
	FirstName    string
	LastName     string
	BirthDate    time.Time
	Email        string
	Phone        string
	Gender       Gender
	PasswordHash string // Salted bcrypt hash; plaintext is never stored.
	Role         Role
	AddressID    *uuid.UUID
	CreatedAt    time.Time

	// Employee is non-nil exactly when Role.IsStaff() is true.
	Employee *EmployeeProfile
}

// EmployeeProfile holds the payload shared by all staff roles.
type EmployeeProfile struct {
	HireDate     time.Time
	ContractType string
	Salary       *int
	Bio          string
}
