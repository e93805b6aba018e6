package entity

import "github.com/google/uuid"

// Address is an independently owned postal address. Users reference it by id;
// an address with no remaining referrers is removed during account deletion.
type Address struct {
	ID              uuid.UUID
	City            string
	PostalCode      string
	StreetName      string
	StreetNumber    string
	ApartmentNumber string
}
