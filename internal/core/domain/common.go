package domain

import (
	"fmt"
	"time"
)

// DateKeyLayout is the canonical calendar-day format used to key bookings.
const DateKeyLayout = "2006-01-02"

// DateKey identifies a calendar day. Two times on the same day (in their own
// location) produce the same key regardless of clock time.
type DateKey string

// NewDateKey normalizes t to its calendar-day key.
func NewDateKey(t time.Time) DateKey {
	return DateKey(t.Format(DateKeyLayout))
}

// ParseDateKey parses a YYYY-MM-DD string into a key and the midnight UTC date it names.
func ParseDateKey(s string) (DateKey, time.Time, error) {
	t, err := time.Parse(DateKeyLayout, s)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return NewDateKey(t), t, nil
}

// Day returns the midnight UTC time for the key's calendar day.
func (k DateKey) Day() time.Time {
	t, _ := time.Parse(DateKeyLayout, string(k))
	return t
}

func (k DateKey) String() string {
	return string(k)
}

// CalendarDay strips the clock component of t, keeping its calendar day as midnight UTC.
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
