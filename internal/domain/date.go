package domain

import (
	"fmt"
	"time"
)

// DateLayout is the wire and storage format for calendar dates.
const DateLayout = "2006-01-02"

// Date is a calendar day without time of day or zone.
// The zero value is not a valid date; use IsZero to detect it.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", s, err)
	}
	return DateOf(t), nil
}

// MustParseDate is ParseDate for literals known to be valid. It panics on error.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n calendar days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	return DateOf(d.time().AddDate(0, 0, n))
}

func (d Date) Weekday() time.Weekday {
	return d.time().Weekday()
}

// DaysSince returns the number of calendar days from other to d.
// It is negative when d is earlier than other.
func (d Date) DaysSince(other Date) int {
	return int(d.time().Sub(other.time()).Hours() / 24)
}

func (d Date) Before(other Date) bool {
	return d.time().Before(other.time())
}

func (d Date) After(other Date) bool {
	return d.time().After(other.time())
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) String() string {
	return d.time().Format(DateLayout)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
