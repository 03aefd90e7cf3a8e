// Package datekey provides the canonical calendar-day value used everywhere a
// date crosses a package boundary. A Key is timezone-resolved: the backend
// speaks a single fixed offset, so "today" is the same day no matter where the
// client runs.
package datekey

import (
	"errors"
	"fmt"
	"time"
)

const layoutISO = "2006-01-02"

// DefaultOffsetHours is the fixed backend offset (UTC+8).
const DefaultOffsetHours = 8

// ErrInvalidDate is returned by Parse for input that is not a YYYY-MM-DD date.
var ErrInvalidDate = errors.New("datekey: invalid date")

// Key is an immutable calendar day. The zero Key is not a valid date; use
// Parse, New, or one of the From helpers.
type Key struct {
	year  int
	month time.Month
	day   int
}

// New returns the Key for the given components. Out-of-range components are
// normalized the way time.Date normalizes them, so New(2026, 13, 1) is
// January 2027. Navigation arithmetic relies on this.
func New(year int, month time.Month, day int) Key {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Key{year: t.Year(), month: t.Month(), day: t.Day()}
}

// FromTime resolves an instant to a calendar day under the given fixed offset.
// This is the conversion used for every date sent to or compared with the
// backend. Mixing it with FromLocalTime for the same logical date reintroduces
// the day-boundary divergence this package exists to remove.
func FromTime(t time.Time, offsetHours int) Key {
	shifted := t.UTC().Add(time.Duration(offsetHours) * time.Hour)
	return Key{year: shifted.Year(), month: shifted.Month(), day: shifted.Day()}
}

// FromLocalTime extracts the wall-clock day without any offset conversion.
// Display only: use it for a date that is already known to be correct.
func FromLocalTime(t time.Time) Key {
	return Key{year: t.Year(), month: t.Month(), day: t.Day()}
}

// Today is FromTime(now, offsetHours) for the current instant.
func Today(offsetHours int) Key {
	return FromTime(time.Now(), offsetHours)
}

// Parse reads a canonical YYYY-MM-DD string. It rejects dates that do not
// round-trip (e.g. 2026-02-30) rather than normalizing them.
func Parse(s string) (Key, error) {
	t, err := time.Parse(layoutISO, s)
	if err != nil {
		return Key{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	k := Key{year: t.Year(), month: t.Month(), day: t.Day()}
	if k.String() != s {
		return Key{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return k, nil
}

// MustParse is Parse that panics. Intended for tests and fixed fixtures.
func MustParse(s string) Key {
	k, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return k
}

// String renders the canonical YYYY-MM-DD form. Lexicographic order of the
// rendered form matches chronological order.
func (k Key) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", k.year, int(k.month), k.day)
}

// MarshalText renders the canonical form, so a Key serializes as its
// YYYY-MM-DD string wherever it crosses a wire or storage boundary.
func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses the canonical form.
func (k *Key) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Year returns the year component.
func (k Key) Year() int { return k.year }

// Month returns the month component.
func (k Key) Month() time.Month { return k.month }

// Day returns the day-of-month component.
func (k Key) Day() int { return k.day }

// Time returns midnight of the day in UTC, the anchor for arithmetic.
func (k Key) Time() time.Time {
	return time.Date(k.year, k.month, k.day, 0, 0, 0, 0, time.UTC)
}

// Weekday returns the day of week, Sunday == 0.
func (k Key) Weekday() time.Weekday {
	return k.Time().Weekday()
}

// AddDays returns the key n days later (earlier for negative n), rolling over
// month and year boundaries.
func (k Key) AddDays(n int) Key {
	t := k.Time().AddDate(0, 0, n)
	return Key{year: t.Year(), month: t.Month(), day: t.Day()}
}

// AddMonths returns the key n months away, clamping the day to the last valid
// day of the target month, so 2026-01-31 plus one month is 2026-02-28.
func (k Key) AddMonths(n int) Key {
	first := time.Date(k.year, k.month+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	day := k.day
	if max := DaysInMonth(first.Year(), first.Month()); day > max {
		day = max
	}
	return Key{year: first.Year(), month: first.Month(), day: day}
}

// WeekStart returns the Sunday on or before the key.
func (k Key) WeekStart() Key {
	return k.AddDays(-int(k.Weekday()))
}

// MonthStart returns the first day of the key's month.
func (k Key) MonthStart() Key {
	return Key{year: k.year, month: k.month, day: 1}
}

// SameMonth reports whether both keys fall in the same year and month.
func (k Key) SameMonth(o Key) bool {
	return k.year == o.year && k.month == o.month
}

// Equal reports component-wise equality.
func (k Key) Equal(o Key) bool {
	return k == o
}

// Compare returns -1, 0, or 1 as k is before, equal to, or after o.
func (k Key) Compare(o Key) int {
	switch {
	case k == o:
		return 0
	case k.year != o.year:
		return sign(k.year - o.year)
	case k.month != o.month:
		return sign(int(k.month) - int(o.month))
	default:
		return sign(k.day - o.day)
	}
}

// Before reports whether k is chronologically before o.
func (k Key) Before(o Key) bool { return k.Compare(o) < 0 }

// DaysInMonth returns the number of days in the given month, via the zeroth
// day of the following month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
