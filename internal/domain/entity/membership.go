package entity

import (
	"time"

	"github.com/google/uuid"
)

// MembershipType enumerates the membership offerings.
type MembershipType string

const (
	MembershipOneTimePass MembershipType = "ONE_TIME_PASS"
	MembershipMonthly     MembershipType = "MONTHLY"
	MembershipQuarterly   MembershipType = "QUARTERLY"
	MembershipAnnual      MembershipType = "ANNUAL"
)

// IsValid checks if the MembershipType is a valid value.
func (t MembershipType) IsValid() bool {
	switch t {
	case MembershipOneTimePass, MembershipMonthly, MembershipQuarterly, MembershipAnnual:
		return true
	default:
		return false
	}
}

// ReceptionOnly reports whether the type can only be sold at the front desk.
func (t MembershipType) ReceptionOnly() bool {
	return t == MembershipOneTimePass
}

// basePrices is the flat catalog price per membership type.
var basePrices = map[MembershipType]int{
	MembershipOneTimePass: 30,
	MembershipMonthly:     150,
	MembershipQuarterly:   400,
	MembershipAnnual:      1200,
}

// BasePrice returns the catalog price for a membership type.
func (t MembershipType) BasePrice() int {
	return basePrices[t]
}

// PaymentMethod is the channel a membership was paid through.
type PaymentMethod string

const (
	PaymentOnline PaymentMethod = "ONLINE"
	PaymentCash   PaymentMethod = "CASH"
)

// IsValid checks if the PaymentMethod is a valid value.
func (m PaymentMethod) IsValid() bool {
	return m == PaymentOnline || m == PaymentCash
}

// PaymentStatus is the settlement state of a membership payment.
type PaymentStatus string

const (
	PaymentActivated PaymentStatus = "ACTIVATED"
	PaymentToPay     PaymentStatus = "TO_PAY"
)

// Membership is a time-bounded entitlement purchased by a client.
// EndDate is derived deterministically from Type and StartDate.
type Membership struct {
	ID             uuid.UUID
	Type           MembershipType
	WithSauna      bool
	Price          int
	StartDate      time.Time
	EndDate        time.Time
	ClientID       uuid.UUID
	ReceptionistID *uuid.UUID // set when sold at reception
	CreatedAt      time.Time
}

// CoversDate reports whether the membership's [StartDate, EndDate] interval
// contains the given calendar date. Both bounds are inclusive.
func (m *Membership) CoversDate(date time.Time) bool {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	return !d.Before(m.StartDate) && !d.After(m.EndDate)
}

// MembershipPayment records how and whether a membership was paid.
// It is one-to-one with Membership.
type MembershipPayment struct {
	MembershipID uuid.UUID
	Status       PaymentStatus
	Method       PaymentMethod
	CreatedAt    time.Time
}

// ComputePrice returns the price for a membership purchase: the flat base price
// plus the sauna surcharge when requested. A non-nil override replaces the
// computed price entirely (promotions and comps).
func ComputePrice(t MembershipType, withSauna bool, saunaSurcharge int, override *int) int {
	if override != nil {
		return *override
	}
	price := t.BasePrice()
	if withSauna {
		price += saunaSurcharge
	}

	return price
}

// ComputeEndDate derives the membership expiry from its type and start date.
// One-time passes expire the same day; the others add 1, 3 or 12 months with
// the day-of-month clamped to the target month's last valid day.
func ComputeEndDate(t MembershipType, start time.Time) time.Time {
	switch t {
	case MembershipOneTimePass:
		return start
	case MembershipMonthly:
		return addMonthsClamped(start, 1)
	case MembershipQuarterly:
		return addMonthsClamped(start, 3)
	case MembershipAnnual:
		return addMonthsClamped(start, 12)
	default:
		return start
	}
}

// addMonthsClamped adds months without the normalization time.AddDate performs:
// Jan 31 + 1 month is Feb 28/29, not Mar 2/3.
func addMonthsClamped(d time.Time, months int) time.Time {
	year := d.Year() + (int(d.Month())-1+months)/12
	month := time.Month((int(d.Month())-1+months)%12 + 1)

	day := d.Day()
	if last := daysIn(year, month); day > last {
		day = last
	}

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
