package types

import (
	"encoding/json"
	"fmt"
	"time"
)

// dateLayout is the persisted wire format for all resume dates.
const dateLayout = "2006-01-02"

// Date is a calendar date with month+year granularity. It is held in
// memory as a real date value and persists as a "YYYY-MM-DD" string;
// the conversion happens exactly at the marshal/unmarshal boundary.
type Date struct {
	t time.Time
}

// NewDate builds a Date from year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a persisted "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{t: t}, nil
}

// Time returns the underlying time value.
func (d Date) Time() time.Time { return d.t }

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool { return d.t.IsZero() }

// String returns the persisted form.
func (d Date) String() string { return d.t.Format(dateLayout) }

// MonthYear formats the date for display, e.g. "Jan 2022".
func (d Date) MonthYear() string { return d.t.Format("Jan 2006") }

// Equal reports whether two dates fall on the same calendar day.
func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// MarshalJSON writes the date as a "YYYY-MM-DD" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.t.Format(dateLayout))
}

// UnmarshalJSON accepts a "YYYY-MM-DD" string or null.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	if s == nil || *s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(*s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// FormatDateRange renders a start/end pair for preview display.
// Both present: "Jan 2022 – Jun 2024"; one present: that one alone;
// neither: the empty string (caller omits the date element entirely).
func FormatDateRange(start, end *Date) string {
	switch {
	case start != nil && end != nil:
		return start.MonthYear() + " – " + end.MonthYear()
	case start != nil:
		return start.MonthYear()
	case end != nil:
		return end.MonthYear()
	default:
		return ""
	}
}
