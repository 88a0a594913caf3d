package testutil

import (
	"time"

	"github.com/alexanderramin/fittrack/internal/domain"
)

// FixedNow is the wall clock used by fixtures unless overridden.
var FixedNow = time.Date(2024, time.January, 1, 18, 30, 0, 0, time.UTC)

// Progress options
type ProgressOption func(*domain.UserProgress)

func WithMaxes(m domain.UserMaxes) ProgressOption {
	return func(p *domain.UserProgress) {
		p.Maxes = m
	}
}

func WithTotalXP(xp, level int) ProgressOption {
	return func(p *domain.UserProgress) {
		p.TotalXP = xp
		p.Level = level
	}
}

func WithStreak(days int, last domain.Date) ProgressOption {
	return func(p *domain.UserProgress) {
		p.StreakDays = days
		p.LastWorkoutDate = &last
	}
}

func WithUnlocked(ids ...domain.AchievementID) ProgressOption {
	return func(p *domain.UserProgress) {
		p.UnlockedAchievements = append(p.UnlockedAchievements, ids...)
	}
}

// WithCompleted appends a completed workout on the given date. XP is taken as
// given; it is not recomputed.
func WithCompleted(workoutID string, date domain.Date, xp int, sets ...domain.CompletedSet) ProgressOption {
	return func(p *domain.UserProgress) {
		if sets == nil {
			sets = []domain.CompletedSet{}
		}
		p.CompletedWorkouts = append(p.CompletedWorkouts, domain.CompletedWorkout{
			WorkoutID:   workoutID,
			Date:        date,
			Sets:        sets,
			CompletedAt: FixedNow,
			XPEarned:    xp,
		})
	}
}

// NewTestProgress returns fresh progress with default maxes and the given options applied.
func NewTestProgress(opts ...ProgressOption) *domain.UserProgress {
	p := domain.NewUserProgress(domain.DefaultMaxes)
	for _, opt := range opts {
		opt(&p)
	}
	return &p
}

// Sets builds one completed set per reps value, indexed from 0.
func Sets(kind domain.ExerciseKind, reps ...int) []domain.CompletedSet {
	sets := make([]domain.CompletedSet, 0, len(reps))
	for i, r := range reps {
		sets = append(sets, domain.CompletedSet{
			Kind:        kind,
			SetIndex:    i,
			Reps:        r,
			CompletedAt: FixedNow,
		})
	}
	return sets
}

func NewTestProfile(start domain.Date) *domain.TrainingProfile {
	return &domain.TrainingProfile{
		ID:            "default",
		PlanStartDate: start,
		CreatedAt:     FixedNow,
		UpdatedAt:     FixedNow,
	}
}
