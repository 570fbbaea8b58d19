package utils

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format accepted by the API
const DateLayout = "2006-01-02"

// ParseDate accepts either a calendar date (YYYY-MM-DD, read as UTC midnight)
// or an RFC 3339 timestamp.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, value); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q", value)
}

// IsDate reports whether value is accepted by ParseDate
func IsDate(value string) bool {
	_, err := ParseDate(value)
	return err == nil
}
