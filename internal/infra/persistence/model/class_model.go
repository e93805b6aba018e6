package model

import (
	"time"

	"github.com/google/uuid"
)

// ClassModel mirrors the 'classes' table, shared by individual and group
// classes. StartsAt and EndsAt carry the slot instants; ClassDate duplicates
// the calendar day so membership validity checks hit a plain date column.
type ClassModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Room        string    `gorm:"type:varchar(100);not null;index:idx_classes_room_window"`
	ClassDate   time.Time `gorm:"type:date;not null"`
	StartsAt    time.Time `gorm:"not null;index:idx_classes_room_window"`
	EndsAt      time.Time `gorm:"not null"`
	ClassType   string    `gorm:"type:varchar(20);not null"`
	CreatedAt   time.Time

	Individual *IndividualClassModel `gorm:"foreignKey:ClassID"`
	Group      *GroupClassModel      `gorm:"foreignKey:ClassID"`
}

// TableName explicitly sets the table name for GORM.
func (ClassModel) TableName() string {
	return "classes"
}

// IndividualClassModel mirrors the 'individual_classes' table.
type IndividualClassModel struct {
	ClassID   uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TrainerID uuid.UUID  `gorm:"type:uuid;not null;index"`
	ClientID  *uuid.UUID `gorm:"type:uuid;index"`
	Note      string     `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (IndividualClassModel) TableName() string {
	return "individual_classes"
}

// GroupClassModel mirrors the 'group_classes' table.
type GroupClassModel struct {
	ClassID      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	InstructorID uuid.UUID  `gorm:"type:uuid;not null;index"`
	MaxCapacity  int        `gorm:"not null"`
	CreatedByID  *uuid.UUID `gorm:"type:uuid"`
}

// TableName explicitly sets the table name for GORM.
func (GroupClassModel) TableName() string {
	return "group_classes"
}
