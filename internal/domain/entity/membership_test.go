package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeEndDate(t *testing.T) {
	tests := []struct {
		name  string
		typ   MembershipType
		start time.Time
		want  time.Time
	}{
		{name: "one-time pass expires same day", typ: MembershipOneTimePass, start: day(2025, time.June, 15), want: day(2025, time.June, 15)},
		{name: "monthly plain", typ: MembershipMonthly, start: day(2025, time.June, 15), want: day(2025, time.July, 15)},
		{name: "monthly clamps jan 31", typ: MembershipMonthly, start: day(2025, time.January, 31), want: day(2025, time.February, 28)},
		{name: "monthly clamps leap year", typ: MembershipMonthly, start: day(2024, time.January, 31), want: day(2024, time.February, 29)},
		{name: "quarterly plain", typ: MembershipQuarterly, start: day(2025, time.January, 10), want: day(2025, time.April, 10)},
		{name: "quarterly clamps may 31", typ: MembershipQuarterly, start: day(2025, time.May, 31), want: day(2025, time.August, 31)},
		{name: "quarterly crosses year", typ: MembershipQuarterly, start: day(2025, time.November, 30), want: day(2026, time.February, 28)},
		{name: "annual plain", typ: MembershipAnnual, start: day(2025, time.June, 15), want: day(2026, time.June, 15)},
		{name: "annual clamps feb 29", typ: MembershipAnnual, start: day(2024, time.February, 29), want: day(2025, time.February, 28)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeEndDate(tt.typ, tt.start))
		})
	}
}

func TestComputePrice(t *testing.T) {
	override := 99

	tests := []struct {
		name      string
		typ       MembershipType
		withSauna bool
		override  *int
		want      int
	}{
		{name: "one-time pass", typ: MembershipOneTimePass, want: 30},
		{name: "monthly", typ: MembershipMonthly, want: 150},
		{name: "monthly with sauna", typ: MembershipMonthly, withSauna: true, want: 200},
		{name: "quarterly with sauna", typ: MembershipQuarterly, withSauna: true, want: 450},
		{name: "annual", typ: MembershipAnnual, want: 1200},
		{name: "override wins", typ: MembershipAnnual, withSauna: true, override: &override, want: 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputePrice(tt.typ, tt.withSauna, 50, tt.override))
		})
	}
}

func TestMembership_CoversDate(t *testing.T) {
	m := &Membership{
		StartDate: day(2025, time.June, 1),
		EndDate:   day(2025, time.July, 1),
	}

	assert.True(t, m.CoversDate(day(2025, time.June, 1)), "start date is inclusive")
	assert.True(t, m.CoversDate(day(2025, time.July, 1)), "end date is inclusive")
	assert.True(t, m.CoversDate(day(2025, time.June, 15)))
	assert.False(t, m.CoversDate(day(2025, time.May, 31)))
	assert.False(t, m.CoversDate(day(2025, time.July, 2)))
}

func TestMembershipType_ReceptionOnly(t *testing.T) {
	assert.True(t, MembershipOneTimePass.ReceptionOnly())
	assert.False(t, MembershipMonthly.ReceptionOnly())
	assert.False(t, MembershipQuarterly.ReceptionOnly())
	assert.False(t, MembershipAnnual.ReceptionOnly())
}
