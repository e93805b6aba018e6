// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have in the system.
// A role is fixed at creation time and selects which profile payload a user carries.
type Role string

const (
	// RoleClient indicates a gym client.
	RoleClient Role = "CLIENT"
	// RoleManager indicates a club manager.
	RoleManager Role = "MANAGER"
	// RoleReceptionist indicates a front-desk receptionist.
	RoleReceptionist Role = "RECEPTIONIST"
	// RolePersonalTrainer indicates a personal trainer running individual classes.
	RolePersonalTrainer Role = "PERSONAL_TRAINER"
	// RoleInstructor indicates a group-class instructor.
	RoleInstructor Role = "INSTRUCTOR"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleClient, RoleManager, RoleReceptionist, RolePersonalTrainer, RoleInstructor:
		return true
	default:
		return false
	}
}

// IsStaff reports whether the role is an employee role and therefore
// requires an EmployeeProfile.
func (r Role) IsStaff() bool {
	switch r {
	case RoleManager, RoleReceptionist, RolePersonalTrainer, RoleInstructor:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// StaffRoles are the roles a manager may create through staff management.
// Managers themselves are provisioned out of band.
var StaffRoles = Roles{RoleReceptionist, RoleInstructor, RolePersonalTrainer}
