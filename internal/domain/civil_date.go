package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidCivilDate is returned when a civil date string or its
// components do not form a real Gregorian calendar date.
var ErrInvalidCivilDate = errors.New("invalid civil date")

// CivilDate is a Gregorian calendar date with day granularity.
// It is a value type, compared and keyed by its normalized
// ISO "YYYY-MM-DD" form. There is no time-of-day component.
type CivilDate struct {
	Year  int
	Month time.Month
	Day   int
}

// NewCivilDate creates a CivilDate from year/month/day components.
// Returns ErrInvalidCivilDate if the components do not denote a real date
// (e.g. February 30).
func NewCivilDate(year int, month time.Month, day int) (CivilDate, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return CivilDate{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidCivilDate, year, int(month), day)
	}
	return CivilDate{Year: year, Month: month, Day: day}, nil
}

// CivilDateOf truncates a time.Time to its calendar date in the
// time's own location.
func CivilDateOf(t time.Time) CivilDate {
	return CivilDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseCivilDate parses an ISO "YYYY-MM-DD" string.
// Returns ErrInvalidCivilDate for malformed or impossible dates.
func ParseCivilDate(s string) (CivilDate, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return CivilDate{}, fmt.Errorf("%w: %q", ErrInvalidCivilDate, s)
	}
	return CivilDateOf(t), nil
}

// ISO returns the normalized "YYYY-MM-DD" form, the canonical key for
// comparing and storing civil dates.
func (d CivilDate) ISO() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// String implements fmt.Stringer using the ISO form.
func (d CivilDate) String() string {
	return d.ISO()
}

// Time returns the date at midnight UTC. UTC keeps day identity stable
// regardless of the host timezone.
func (d CivilDate) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the civil date n days after d (n may be negative).
// Month and year boundaries are normalized by the time package.
func (d CivilDate) AddDays(n int) CivilDate {
	return CivilDateOf(d.Time().AddDate(0, 0, n))
}

// Weekday returns the day of the week of d.
func (d CivilDate) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// Before reports whether d is earlier than other.
func (d CivilDate) Before(other CivilDate) bool {
	return d.Time().Before(other.Time())
}

// CivilTag returns the compact "D.M" civil-date subscript shown inside
// calendar day cells.
func (d CivilDate) CivilTag() string {
	return fmt.Sprintf("%d.%d", d.Day, int(d.Month))
}
