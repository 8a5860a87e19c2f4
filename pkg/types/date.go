package types

import (
	"errors"
	"time"
)

// DateFormat is the wire and storage format for calendar dates.
const DateFormat = "2006-01-02"

// ErrInvalidDateString is returned when a string is not a valid YYYY-MM-DD date.
var ErrInvalidDateString = errors.New("types: invalid date string, expected YYYY-MM-DD")

// DateString is a calendar date in YYYY-MM-DD form.
// Dates are kept as plain strings rather than timestamps so that the date
// part of a booking never drifts across timezones. YYYY-MM-DD strings
// compare correctly with ordinary string comparison.
type DateString string

// NewDateString builds a DateString from a time.Time, dropping the time part.
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(DateFormat))
}

// ParseDateString validates and converts a raw string into a DateString.
func ParseDateString(s string) (DateString, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return "", ErrInvalidDateString
	}
	// Round-trip guards against partially-normalized inputs like "2025-7-1".
	if t.Format(DateFormat) != s {
		return "", ErrInvalidDateString
	}
	return DateString(s), nil
}

// Time converts the date to a time.Time at midnight UTC.
func (d DateString) Time() (time.Time, error) {
	t, err := time.Parse(DateFormat, string(d))
	if err != nil {
		return time.Time{}, ErrInvalidDateString
	}
	return t, nil
}

// AddDays returns the date shifted by the given number of days.
func (d DateString) AddDays(days int) (DateString, error) {
	t, err := d.Time()
	if err != nil {
		return "", err
	}
	return NewDateString(t.AddDate(0, 0, days)), nil
}

// Before reports whether d is strictly earlier than other.
// Lexicographic comparison is correct for YYYY-MM-DD.
func (d DateString) Before(other DateString) bool {
	return string(d) < string(other)
}

// After reports whether d is strictly later than other.
func (d DateString) After(other DateString) bool {
	return string(d) > string(other)
}

// String returns the raw YYYY-MM-DD value.
func (d DateString) String() string {
	return string(d)
}
