package model

import "github.com/google/uuid"

// AddressModel is the GORM-specific struct for the 'addresses' table.
type AddressModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	City            string    `gorm:"type:varchar(100);not null"`
	PostalCode      string    `gorm:"type:varchar(20);not null"`
	StreetName      string    `gorm:"type:varchar(255);not null"`
	StreetNumber    string    `gorm:"type:varchar(20);not null"`
	ApartmentNumber string    `gorm:"type:varchar(20)"`
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
