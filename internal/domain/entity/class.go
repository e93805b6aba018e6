package entity

import (
	"time"

	"github.com/google/uuid"
)

// ClassType discriminates the two class payload variants.
type ClassType string

const (
	ClassIndividual ClassType = "INDIVIDUAL"
	ClassGroup      ClassType = "GROUP"
)

// IsValid checks if the ClassType is a valid value.
func (t ClassType) IsValid() bool {
	return t == ClassIndividual || t == ClassGroup
}

// Class is a scheduled session in a room. The Type tag selects exactly one of
// the Individual/Group payloads; the other is nil.
type Class struct {
	ID          uuid.UUID
	Name        string
	Description string
	Room        string
	Slot        TimeSlot
	Type        ClassType
	CreatedAt   time.Time

	Individual *IndividualClass
	Group      *GroupClass
}

// IndividualClass is the payload of a one-on-one session.
type IndividualClass struct {
	TrainerID uuid.UUID
	ClientID  *uuid.UUID // nil until a client is assigned
	Note      string
}

// GroupClass is the payload of a capacity-bounded group session.
type GroupClass struct {
	InstructorID uuid.UUID
	MaxCapacity  int
	CreatedByID  *uuid.UUID // manager or receptionist who scheduled it
}

// CapacityOrDefault returns the configured seat ceiling, falling back to the
// system default when the class predates the capacity column.
func (g *GroupClass) CapacityOrDefault(fallback int) int {
	if g == nil || g.MaxCapacity <= 0 {
		return fallback
	}

	return g.MaxCapacity
}
