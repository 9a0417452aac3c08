package types

import (
	"encoding/json"
	"time"
)

// DateOnly is a custom type for handling date-only strings from JSON
type DateOnly struct {
	time.Time
}

// NewDateOnly truncates t to midnight UTC.
func NewDateOnly(t time.Time) DateOnly {
	return DateOnly{Time: Truncate(t)}
}

// Truncate zeroes the time-of-day component, keeping only the date (UTC).
func Truncate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// UnmarshalJSON implements custom unmarshaling for date-only strings
func (d *DateOnly) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}

	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return err
	}
	d.Time = t.UTC()
	return nil
}

// MarshalJSON implements custom marshaling for date-only strings
func (d DateOnly) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Time.Format("2006-01-02"))
}

// Before reports whether d falls strictly before other, comparing dates only.
func (d DateOnly) Before(other DateOnly) bool {
	return Truncate(d.Time).Before(Truncate(other.Time))
}
