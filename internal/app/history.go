package app

import (
	"time"

	"github.com/alexanderramin/fittrack/internal/domain"
)

// DayCell is one calendar day in a MonthView.
type DayCell struct {
	Date      domain.Date
	WorkoutID string
	Planned   bool
	Completed bool
	Today     bool
}

// MonthView is a Monday-first calendar month.
type MonthView struct {
	Year  int
	Month time.Month
	// Leading is the number of blank cells before the 1st.
	Leading int
	Days    []DayCell
	// Completed and Planned count the days of this month only.
	Completed int
	Planned   int
}
