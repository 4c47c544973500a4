package dto

import "time"

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// ParseDate parses a wire-format calendar date into a UTC-midnight time.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatDate renders a UTC-midnight time as a wire-format calendar date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
