package progression

import (
	"slices"
	"time"

	"github.com/alexanderramin/fittrack/internal/domain"
)

// RecordCompletedWorkout appends a finished session to p and returns the new
// progress. Callers must not pass an empty set list; zero-rep sets should be
// dropped before this point.
//
// The workout list is append-only: recording the same date twice produces two
// entries. LastWorkoutDate always moves to date, even when date is earlier.
func RecordCompletedWorkout(p domain.UserProgress, workoutID string, date domain.Date, sets []domain.CompletedSet, completedAt time.Time) domain.UserProgress {
	out := p.Clone()

	xp := WorkoutXP(sets)
	recorded := slices.Clone(sets)
	if recorded == nil {
		recorded = []domain.CompletedSet{}
	}
	out.CompletedWorkouts = append(out.CompletedWorkouts, domain.CompletedWorkout{
		WorkoutID:   workoutID,
		Date:        date,
		Sets:        recorded,
		CompletedAt: completedAt,
		XPEarned:    xp,
	})

	out.TotalXP = p.TotalXP + xp
	out.Level = LevelForXP(out.TotalXP)
	out.StreakDays = NextStreak(p.LastWorkoutDate, p.StreakDays, date)
	out.LastWorkoutDate = &date

	return out
}

// NextStreak applies the calendar-gap rule: same day keeps the streak, the
// next day extends it, anything else (gaps, past dates) restarts at 1.
func NextStreak(last *domain.Date, streak int, date domain.Date) int {
	if last == nil {
		return 1
	}
	switch date.DaysSince(*last) {
	case 0:
		return streak
	case 1:
		return streak + 1
	default:
		return 1
	}
}
