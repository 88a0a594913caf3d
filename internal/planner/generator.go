// Package planner builds the 90-day Mon/Wed/Fri calisthenics calendar from a
// start date and the user's baseline maxes. The plan is a pure function of its
// inputs and is regenerated on demand rather than stored.
package planner

import (
	"fmt"
	"time"

	"github.com/alexanderramin/fittrack/internal/domain"
)

const (
	// PlanLength is the number of training days in a plan.
	PlanLength = 90
	// DaysPerWeek is the number of training days counted as one plan week.
	DaysPerWeek = 3

	maxCheckInterval = 14
	focusCycleLength = 9
	maxCheckNote     = "max test"
)

// IsTrainingWeekday reports whether workouts are scheduled on wd.
func IsTrainingWeekday(wd time.Weekday) bool {
	return wd == time.Monday || wd == time.Wednesday || wd == time.Friday
}

// IsMaxCheckDay reports whether the training day is a max-effort test day.
func IsMaxCheckDay(dayNumber int) bool {
	return dayNumber > 0 && dayNumber%maxCheckInterval == 0
}

// FocusForDay returns the load type of a training day on the 9-day cycle.
func FocusForDay(dayNumber int) domain.LoadType {
	switch cycle := dayNumber % focusCycleLength; {
	case cycle < 3:
		return domain.LoadStrength
	case cycle < 6:
		return domain.LoadEndurance
	default:
		return domain.LoadExplosive
	}
}

// WeekNumber maps a training day to its 1-based plan week.
func WeekNumber(dayNumber int) int {
	return (dayNumber + DaysPerWeek - 1) / DaysPerWeek
}

// WorkoutID is the stable identifier of the nth training day.
func WorkoutID(dayNumber int) string {
	return fmt.Sprintf("w%d", dayNumber)
}

// GeneratePlan walks the calendar from start (inclusive) and emits one
// WorkoutDay for each Monday, Wednesday and Friday until PlanLength days exist.
func GeneratePlan(start domain.Date, maxes domain.UserMaxes) []domain.WorkoutDay {
	plan := make([]domain.WorkoutDay, 0, PlanLength)
	for date := start; len(plan) < PlanLength; date = date.AddDays(1) {
		if !IsTrainingWeekday(date.Weekday()) {
			continue
		}
		plan = append(plan, buildDay(len(plan)+1, date, maxes))
	}
	return plan
}

func buildDay(dayNumber int, date domain.Date, maxes domain.UserMaxes) domain.WorkoutDay {
	week := WeekNumber(dayNumber)
	maxCheck := IsMaxCheckDay(dayNumber)
	focus := FocusForDay(dayNumber)

	exercises := make([]domain.WorkoutExercise, 0, len(domain.ExerciseKinds))
	for _, kind := range domain.ExerciseKinds {
		ex := domain.WorkoutExercise{
			Kind: kind,
			Sets: BuildExerciseSets(maxes.For(kind), week, focus, maxCheck),
		}
		if maxCheck {
			ex.Note = maxCheckNote
		}
		exercises = append(exercises, ex)
	}

	return domain.WorkoutDay{
		ID:         WorkoutID(dayNumber),
		Date:       date,
		WeekNumber: week,
		DayNumber:  dayNumber,
		IsMaxCheck: maxCheck,
		Exercises:  exercises,
		Focus:      focus,
	}
}

// FindWorkoutByDate returns the plan entry scheduled on date.
func FindWorkoutByDate(plan []domain.WorkoutDay, date domain.Date) (domain.WorkoutDay, bool) {
	for _, w := range plan {
		if w.Date == date {
			return w, true
		}
	}
	return domain.WorkoutDay{}, false
}

// NextWorkoutDate returns the first scheduled date strictly after from.
func NextWorkoutDate(plan []domain.WorkoutDay, from domain.Date) (domain.Date, bool) {
	for _, w := range plan {
		if w.Date.After(from) {
			return w.Date, true
		}
	}
	return domain.Date{}, false
}

// Week returns the plan entries of a 1-based plan week.
func Week(plan []domain.WorkoutDay, week int) []domain.WorkoutDay {
	var out []domain.WorkoutDay
	for _, w := range plan {
		if w.WeekNumber == week {
			out = append(out, w)
		}
	}
	return out
}

// ExerciseTarget sums the target reps of every set of one exercise.
func ExerciseTarget(ex domain.WorkoutExercise) int {
	total := 0
	for _, s := range ex.Sets {
		total += s.TargetReps
	}
	return total
}

// TotalTargetReps sums the target reps across all exercises of a day.
func TotalTargetReps(day domain.WorkoutDay) int {
	total := 0
	for _, ex := range day.Exercises {
		total += ExerciseTarget(ex)
	}
	return total
}
