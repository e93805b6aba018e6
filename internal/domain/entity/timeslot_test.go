package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func clock(h, min int) time.Time {
	return time.Date(0, 1, 1, h, min, 0, 0, time.UTC)
}

func TestNewTimeSlot_ComposesDateAndClock(t *testing.T) {
	slot := NewTimeSlot(day(2025, time.March, 10), clock(9, 30), clock(11, 0))

	assert.Equal(t, day(2025, time.March, 10), slot.Date)
	assert.Equal(t, time.Date(2025, time.March, 10, 9, 30, 0, 0, time.UTC), slot.Start)
	assert.Equal(t, time.Date(2025, time.March, 10, 11, 0, 0, 0, time.UTC), slot.End)
	assert.True(t, slot.IsValid())
}

func TestTimeSlot_IsValid(t *testing.T) {
	tests := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{name: "normal window", start: clock(9, 0), end: clock(10, 0), want: true},
		{name: "zero length", start: clock(9, 0), end: clock(9, 0), want: false},
		{name: "inverted", start: clock(11, 0), end: clock(9, 0), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot := NewTimeSlot(day(2025, time.March, 10), tt.start, tt.end)
			assert.Equal(t, tt.want, slot.IsValid())
		})
	}
}

func TestTimeSlot_Overlaps(t *testing.T) {
	base := NewTimeSlot(day(2025, time.March, 10), clock(10, 0), clock(12, 0))

	tests := []struct {
		name       string
		start, end time.Time
		date       time.Time
		want       bool
	}{
		{name: "identical", start: clock(10, 0), end: clock(12, 0), date: base.Date, want: true},
		{name: "contained", start: clock(10, 30), end: clock(11, 30), date: base.Date, want: true},
		{name: "straddles start", start: clock(9, 0), end: clock(10, 30), date: base.Date, want: true},
		{name: "straddles end", start: clock(11, 30), end: clock(13, 0), date: base.Date, want: true},
		{name: "touches start", start: clock(8, 0), end: clock(10, 0), date: base.Date, want: false},
		{name: "touches end", start: clock(12, 0), end: clock(14, 0), date: base.Date, want: false},
		{name: "disjoint before", start: clock(7, 0), end: clock(8, 0), date: base.Date, want: false},
		{name: "disjoint after", start: clock(13, 0), end: clock(14, 0), date: base.Date, want: false},
		{name: "same window next day", start: clock(10, 0), end: clock(12, 0), date: day(2025, time.March, 11), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := NewTimeSlot(tt.date, tt.start, tt.end)
			assert.Equal(t, tt.want, base.Overlaps(other))
			assert.Equal(t, tt.want, other.Overlaps(base))
		})
	}
}
