// Package usecase defines the application's use case interfaces and their
// input/output models. Implementations live in usecase/impl.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"fitclub/internal/domain/entity"
)

// CatalogItem is one purchasable membership offering.
type CatalogItem struct {
	Type            entity.MembershipType  `json:"type"`
	Variant         string                 `json:"variant"`          // "GYM" or "GYM_SAUNA"
	PurchaseChannel string                 `json:"purchase_channel"` // "CLIENT" or "RECEPTION_ONLY"
	AllowedPayment  []entity.PaymentMethod `json:"allowed_payment"`
}

// PurchaseInput carries the membership parameters shared by both sale channels.
type PurchaseInput struct {
	Type          entity.MembershipType
	StartDate     time.Time
	WithSauna     bool
	Method        entity.PaymentMethod
	PriceOverride *int
}

// NewClientInput holds the fields for the reception "fast registration" of a
// client created inline during a sale.
type NewClientInput struct {
	FirstName string
	LastName  string
	BirthDate time.Time
	Email     string
	Phone     string
	Gender    entity.Gender
	Password  string
	AddressID *uuid.UUID
}

// SellInput is a reception-assisted sale. Exactly one of ClientID and
// NewClient must be provided.
type SellInput struct {
	ReceptionistID uuid.UUID
	ClientID       *uuid.UUID
	NewClient      *NewClientInput
	Purchase       PurchaseInput
}

// MembershipResult is the outward view of a purchased membership.
type MembershipResult struct {
	MembershipID  uuid.UUID             `json:"membership_id"`
	ClientID      uuid.UUID             `json:"client_id"`
	Type          entity.MembershipType `json:"type"`
	WithSauna     bool                  `json:"with_sauna"`
	Price         int                   `json:"price"`
	StartDate     time.Time             `json:"start_date"`
	EndDate       time.Time             `json:"end_date"`
	PaymentStatus entity.PaymentStatus  `json:"payment_status"`
	PaymentMethod entity.PaymentMethod  `json:"payment_method"`
}

// MembershipUsecase covers the membership catalog and both purchase channels.
type MembershipUsecase interface {
	// Catalog returns the static membership offering list.
	Catalog() []CatalogItem

	// PurchaseForClient performs a client self-purchase. One-time passes are
	// reception-only; payment is ACTIVATED only for the online method.
	PurchaseForClient(ctx context.Context, clientID uuid.UUID, input *PurchaseInput) (*MembershipResult, error)

	// SellAtReception performs a staff-assisted sale, optionally fast-registering
	// a new client. Payment is always ACTIVATED.
	SellAtReception(ctx context.Context, input *SellInput) (*MembershipResult, error)

	// ListClientMemberships returns the client's purchase history, newest first.
	ListClientMemberships(ctx context.Context, clientID uuid.UUID) ([]*MembershipResult, error)
}
