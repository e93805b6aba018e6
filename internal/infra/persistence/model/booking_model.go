package model

import (
	"time"

	"github.com/google/uuid"
)

// ClassBookingModel mirrors the 'class_bookings' table. The composite unique
// index enforces the one-booking-per-client-per-class invariant at the
// database level.
type ClassBookingModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ClientID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_bookings_client_class"`
	GroupClassID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_bookings_client_class;index"`
	BookedAt     time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ClassBookingModel) TableName() string {
	return "class_bookings"
}

// BookingDetailModel mirrors the 'booking_details' table, the reception-side
// ledger carrying payment status and the optional membership charge.
type BookingDetailModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ClientID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	GroupClassID uuid.UUID  `gorm:"type:uuid;not null;index"`
	MembershipID *uuid.UUID `gorm:"type:uuid"`
	Status       string     `gorm:"type:varchar(20);not null"`
	BookedByID   *uuid.UUID `gorm:"type:uuid"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (BookingDetailModel) TableName() string {
	return "booking_details"
}
