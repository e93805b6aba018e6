package entity

import "time"

// TimeSlot is a same-day reservation window: a calendar date plus start and end
// instants on that date. Classes are same-day-bounded, so cross-day slots are
// rejected up front and overlap checks can compare instants directly.
type TimeSlot struct {
	Date  time.Time // calendar day, truncated to midnight UTC
	Start time.Time
	End   time.Time
}

// NewTimeSlot composes a slot from a calendar date and two times of day.
// The times of day are taken from the clock components of start and end.
func NewTimeSlot(date time.Time, start, end time.Time) TimeSlot {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	return TimeSlot{
		Date:  day,
		Start: day.Add(clockOffset(start)),
		End:   day.Add(clockOffset(end)),
	}
}

func clockOffset(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second
}

// IsValid reports whether the slot is well-formed: start and end fall on the
// slot's date and the interval has positive length. Zero-length and inverted
// intervals are invalid.
func (s TimeSlot) IsValid() bool {
	if s.Start.Before(s.Date) || !s.End.After(s.Start) {
		return false
	}
	// End may be at most midnight of the following day.
	return !s.End.After(s.Date.AddDate(0, 0, 1))
}

// Overlaps reports whether two slots on the same resource conflict.
// Intervals are half-open: a slot ending exactly when another starts does not
// conflict.
func (s TimeSlot) Overlaps(other TimeSlot) bool {
	return s.Start.Before(other.End) && other.Start.Before(s.End)
}
