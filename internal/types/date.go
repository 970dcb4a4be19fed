// Package types implements special types for the income recorder.
package types

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// layout is the reference layout for the DD/MM/YYYY form all dates use.
const layout = "02/01/2006"

var dateFormat = regexp.MustCompile(`^[0-9]{2}/[0-9]{2}/[0-9]{4}$`)

var (
	ErrDateFormat  = errors.New("date must be in DD/MM/YYYY format")
	ErrDateInvalid = errors.New("date does not exist in the calendar")
)

// Date is a calendar day in DD/MM/YYYY form.
type Date time.Time

// NewDate returns a new Date.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// ParseDate parses a DD/MM/YYYY string and returns the Date value it represents.
//
// Both components that do not match the zero-padded format and values that do
// not form a real calendar date are rejected, e.g. "32/01/2025" and
// "29/02/2025" fail while "29/02/2024" parses.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if !dateFormat.MatchString(s) {
		return Date{}, ErrDateFormat
	}

	// time.Parse range-checks the day against the month, including the
	// leap year rule for February
	t, err := time.Parse(layout, s)
	if err != nil {
		return Date{}, ErrDateInvalid
	}

	return Date(t), nil
}

// String returns the date formatted as DD/MM/YYYY.
func (d Date) String() string {
	return time.Time(d).Format(layout)
}

// Time returns the point in time the date starts at, in UTC.
func (d Date) Time() time.Time {
	return time.Time(d)
}

// IsZero reports if the date is the zero value.
func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

// Equal reports whether d and e represent the same day.
func (d Date) Equal(e Date) bool {
	return time.Time(d).Equal(time.Time(e))
}

// Before reports whether the date d is before e.
func (d Date) Before(e Date) bool {
	return time.Time(d).Before(time.Time(e))
}

// After reports whether the date d is after e.
func (d Date) After(e Date) bool {
	return time.Time(d).After(time.Time(e))
}

// MarshalJSON implements the json.Marshaler interface.
// The output is the DD/MM/YYYY form as a JSON string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// The date is expected to be a string in DD/MM/YYYY format.
func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`) // get rid of "
	if value == "" || value == "null" {
		return nil
	}

	date, err := ParseDate(value)
	if err != nil {
		return err
	}

	*d = date
	return nil
}
