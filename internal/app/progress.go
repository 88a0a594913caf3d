package app

import (
	"time"

	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/alexanderramin/fittrack/internal/progression"
)

// CompleteWorkoutInput is a logged session for one planned date.
type CompleteWorkoutInput struct {
	Date domain.Date
	Sets []domain.CompletedSet
	// CompletedAt defaults to the service clock.
	CompletedAt *time.Time
}

type CompletionResult struct {
	Workout     domain.WorkoutDay
	Recorded    domain.CompletedWorkout
	XPEarned    int
	BonusXP     int
	LevelBefore int
	LevelAfter  int
	Unlocked    []progression.Achievement
	// DroppedSets counts zero-rep sets removed before recording.
	DroppedSets int
	Progress    domain.UserProgress
}

func (r CompletionResult) LeveledUp() bool {
	return r.LevelAfter > r.LevelBefore
}

type ImportResult struct {
	WorkoutCount  int
	UnlockedCount int
	TotalXP       int
	Level         int
	PlanStartDate domain.Date
}
