package models

import (
	"errors"
	"time"
)

// DateLayout is the canonical calendar-date encoding shared by storage and clients
const DateLayout = "2006-01-02"

// ErrInvalidDate is returned when a value is not a YYYY-MM-DD calendar date
var ErrInvalidDate = errors.New("invalid date: expected YYYY-MM-DD")

// Date is a calendar date without time zone, kept in DateLayout form.
// Dates are compared by plain string equality; two Dates are the same day only
// when both were produced in the canonical form.
type Date string

// ParseDate validates s and returns it as a Date.
// Only zero-padded YYYY-MM-DD is accepted, so "2024-6-1" is rejected.
func ParseDate(s string) (Date, error) {
	if len(s) != len(DateLayout) {
		return "", ErrInvalidDate
	}
	if _, err := time.Parse(DateLayout, s); err != nil {
		return "", ErrInvalidDate
	}
	return Date(s), nil
}

// DateOf formats t as a Date in t's own location
func DateOf(t time.Time) Date {
	return Date(t.Format(DateLayout))
}

func (d Date) String() string {
	return string(d)
}
