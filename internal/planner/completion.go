package planner

import (
	"math"

	"github.com/alexanderramin/fittrack/internal/domain"
)

// PlanCompletion counts how many scheduled days have a recorded workout.
type PlanCompletion struct {
	Completed int
	Total     int
}

// Fraction is Completed/Total, or 0 for an empty window.
func (c PlanCompletion) Fraction() float64 {
	if c.Total == 0 {
		return 0
	}
	return float64(c.Completed) / float64(c.Total)
}

// Percent is Fraction rounded to a whole percentage.
func (c PlanCompletion) Percent() int {
	return int(math.Round(c.Fraction() * 100))
}

// Completion measures the whole plan against the set of completed dates.
func Completion(plan []domain.WorkoutDay, completed map[domain.Date]bool) PlanCompletion {
	c := PlanCompletion{Total: len(plan)}
	for _, w := range plan {
		if completed[w.Date] {
			c.Completed++
		}
	}
	return c
}

// WeekStart returns the Monday of the ISO week containing d.
func WeekStart(d domain.Date) domain.Date {
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDays(-offset)
}

// WeekCompletion measures the scheduled days from Monday of today's week up to
// and including today.
func WeekCompletion(plan []domain.WorkoutDay, completed map[domain.Date]bool, today domain.Date) PlanCompletion {
	start := WeekStart(today)
	var c PlanCompletion
	for _, w := range plan {
		if w.Date.Before(start) || w.Date.After(today) {
			continue
		}
		c.Total++
		if completed[w.Date] {
			c.Completed++
		}
	}
	return c
}

// Progress returns the plan week and training day reached by today, or zero
// values when today is before the plan starts.
func Progress(plan []domain.WorkoutDay, today domain.Date) (week, day int) {
	for _, w := range plan {
		if w.Date.After(today) {
			break
		}
		week, day = w.WeekNumber, w.DayNumber
	}
	return week, day
}
