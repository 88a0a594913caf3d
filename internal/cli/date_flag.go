package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/spf13/pflag"
)

// parseDateArg accepts YYYY-MM-DD or one of today, tomorrow, yesterday.
func parseDateArg(s string, today domain.Date) (domain.Date, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return today, nil
	case "tomorrow":
		return today.AddDays(1), nil
	case "yesterday":
		return today.AddDays(-1), nil
	}
	return domain.ParseDate(strings.TrimSpace(s))
}

// dateValue is a pflag.Value for calendar dates. An unset flag resolves to
// today.
type dateValue struct {
	date  domain.Date
	today func() domain.Date
}

var _ pflag.Value = (*dateValue)(nil)

func newDateValue(today func() domain.Date) *dateValue {
	return &dateValue{today: today}
}

func (v *dateValue) String() string {
	if v.date.IsZero() {
		return ""
	}
	return v.date.String()
}

func (v *dateValue) Set(s string) error {
	d, err := parseDateArg(s, v.today())
	if err != nil {
		return err
	}
	v.date = d
	return nil
}

func (v *dateValue) Type() string { return "date" }

func (v *dateValue) get() domain.Date {
	if v.date.IsZero() {
		return v.today()
	}
	return v.date
}

// monthValue is a pflag.Value for YYYY-MM.
type monthValue struct {
	year  int
	month time.Month
}

var _ pflag.Value = (*monthValue)(nil)

func (v *monthValue) String() string {
	if v.year == 0 {
		return ""
	}
	return fmt.Sprintf("%04d-%02d", v.year, int(v.month))
}

func (v *monthValue) Set(s string) error {
	t, err := time.Parse("2006-01", strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("invalid month %q (expected YYYY-MM)", s)
	}
	v.year, v.month = t.Year(), t.Month()
	return nil
}

func (v *monthValue) Type() string { return "month" }

// parseRepList parses "5,5,4,4" (spaces allowed) into per-set reps.
func parseRepList(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	reps := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid rep count %q", f)
		}
		reps = append(reps, n)
	}
	return reps, nil
}
