package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/fittrack/internal/domain"
)

// timestampLayout keeps sub-second precision so stored values round-trip exactly.
const timestampLayout = time.RFC3339Nano

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(timestampLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", s, err)
	}
	return t.UTC(), nil
}

// nullableDateToValue returns SQL NULL for a nil date.
func nullableDateToValue(d *domain.Date) any {
	if d == nil {
		return nil
	}
	return d.String()
}

// parseNullableDate returns nil for NULL or empty values.
func parseNullableDate(s sql.NullString) (*domain.Date, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	d, err := domain.ParseDate(s.String)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// nowUTC returns the current UTC time formatted for storage.
func nowUTC() string {
	return formatTimestamp(time.Now())
}
