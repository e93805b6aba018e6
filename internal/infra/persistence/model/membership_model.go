package model

import (
	"time"

	"github.com/google/uuid"
)

// MembershipModel mirrors the 'memberships' table.
type MembershipModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MembershipType string     `gorm:"type:varchar(30);not null"`
	WithSauna      bool       `gorm:"not null;default:false"`
	Price          int        `gorm:"not null"`
	StartDate      time.Time  `gorm:"type:date;not null"`
	EndDate        time.Time  `gorm:"type:date;not null"`
	ClientID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	ReceptionistID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (MembershipModel) TableName() string {
	return "memberships"
}

// MembershipPaymentModel mirrors the 'membership_payments' table. One payment
// record per membership.
type MembershipPaymentModel struct {
	MembershipID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Status       string    `gorm:"type:varchar(20);not null"`
	Method       string    `gorm:"type:varchar(20);not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (MembershipPaymentModel) TableName() string {
	return "membership_payments"
}
